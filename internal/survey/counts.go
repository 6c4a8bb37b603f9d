// Package survey aggregates tabulated survey responses into per-question
// option counts.
package survey

import "unicode/utf8"

// Entry is one option and its response count.
type Entry struct {
	Option string
	Count  int
}

// OptionCounts maps option labels to non-negative counts, remembering the
// order in which options were first set. The zero value is ready to use.
type OptionCounts struct {
	keys []string
	vals map[string]int
}

// NewOptionCounts returns counts pre-populated from entries, in order.
func NewOptionCounts(entries ...Entry) *OptionCounts {
	c := &OptionCounts{}
	for _, e := range entries {
		c.Set(e.Option, e.Count)
	}
	return c
}

// Set assigns n to option. An existing option keeps its position; a new one
// is appended. A negative count removes the option.
func (c *OptionCounts) Set(option string, n int) {
	if n < 0 {
		c.Delete(option)
		return
	}
	if c.vals == nil {
		c.vals = make(map[string]int)
	}
	if _, ok := c.vals[option]; !ok {
		c.keys = append(c.keys, option)
	}
	c.vals[option] = n
}

// Get returns the count for option and whether it is present.
func (c *OptionCounts) Get(option string) (int, bool) {
	if c == nil {
		return 0, false
	}
	n, ok := c.vals[option]
	return n, ok
}

// Delete removes option if present.
func (c *OptionCounts) Delete(option string) {
	if c == nil {
		return
	}
	if _, ok := c.vals[option]; !ok {
		return
	}
	delete(c.vals, option)
	for i, k := range c.keys {
		if k == option {
			c.keys = append(c.keys[:i], c.keys[i+1:]...)
			break
		}
	}
}

// Len returns the number of options.
func (c *OptionCounts) Len() int {
	if c == nil {
		return 0
	}
	return len(c.keys)
}

// Options returns the option labels in order.
func (c *OptionCounts) Options() []string {
	if c == nil {
		return nil
	}
	return append([]string(nil), c.keys...)
}

// Entries returns options with their counts, in order.
func (c *OptionCounts) Entries() []Entry {
	if c == nil {
		return nil
	}
	out := make([]Entry, len(c.keys))
	for i, k := range c.keys {
		out[i] = Entry{Option: k, Count: c.vals[k]}
	}
	return out
}

// Total returns the sum of all counts.
func (c *OptionCounts) Total() int {
	total := 0
	for _, e := range c.Entries() {
		total += e.Count
	}
	return total
}

// Empty reports whether there are no options or every count is zero.
func (c *OptionCounts) Empty() bool {
	return c.Len() == 0 || c.Total() == 0
}

// MaxLabelLen returns the length in characters of the longest option label.
func (c *OptionCounts) MaxLabelLen() int {
	longest := 0
	for _, k := range c.Options() {
		if n := utf8.RuneCountInString(k); n > longest {
			longest = n
		}
	}
	return longest
}

// Without returns a copy excluding options for which drop returns true.
func (c *OptionCounts) Without(drop func(option string) bool) *OptionCounts {
	out := &OptionCounts{}
	for _, e := range c.Entries() {
		if !drop(e.Option) {
			out.Set(e.Option, e.Count)
		}
	}
	return out
}

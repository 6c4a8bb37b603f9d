package cmd

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	cfgpkg "github.com/KaramelBytes/surveyboard/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View or set surveyboard configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show effective configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg == nil {
			fmt.Fprintln(cmd.OutOrStdout(), "No config loaded")
			return nil
		}
		printConfig(cmd.OutOrStdout(), cfg)
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a config value and save to disk",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg == nil {
			c, err := cfgpkg.Load(cfgFile)
			if err != nil {
				return err
			}
			cfg = c
		}
		if err := setConfigValue(cfg, args[0], args[1]); err != nil {
			return err
		}
		if err := cfgpkg.Save(cfg, cfgFile); err != nil {
			return err
		}
		successf(cmd.OutOrStdout(), "Saved config")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
}

func configValue(c *cfgpkg.Global, key string) string {
	switch key {
	case "data_dir":
		return c.DataDir
	case "general_file":
		return c.GeneralFile
	case "q3_file":
		return c.Q3File
	case "q4_file":
		return c.Q4File
	case "q5_file":
		return c.Q5File
	case "selected_year":
		return c.SelectedYear
	case "selected_region":
		return c.SelectedRegion
	case "regions":
		return strings.Join(c.Regions, ",")
	case "max_question":
		return strconv.Itoa(c.MaxQuestion)
	case "listen_addr":
		return c.ListenAddr
	case "read_timeout_sec":
		return strconv.Itoa(c.ReadTimeoutSec)
	case "write_timeout_sec":
		return strconv.Itoa(c.WriteTimeoutSec)
	case "snapshot_width":
		return strconv.Itoa(c.SnapshotWidth)
	case "log_level":
		return c.LogLevel
	}
	return ""
}

func printConfig(w io.Writer, c *cfgpkg.Global) {
	for _, key := range cfgpkg.Keys {
		fmt.Fprintf(w, "%s: %s\n", colorKey.Sprint(key), configValue(c, key))
	}
}

func setConfigValue(c *cfgpkg.Global, key, val string) error {
	switch key {
	case "data_dir":
		c.DataDir = val
	case "general_file":
		c.GeneralFile = val
	case "q3_file":
		c.Q3File = val
	case "q4_file":
		c.Q4File = val
	case "q5_file":
		c.Q5File = val
	case "selected_year":
		c.SelectedYear = val
	case "selected_region":
		c.SelectedRegion = val
	case "regions":
		c.Regions = nil
		for _, r := range strings.Split(val, ",") {
			if r = strings.TrimSpace(r); r != "" {
				c.Regions = append(c.Regions, r)
			}
		}
	case "max_question":
		return setPositive(&c.MaxQuestion, key, val)
	case "listen_addr":
		c.ListenAddr = val
	case "read_timeout_sec":
		return setPositive(&c.ReadTimeoutSec, key, val)
	case "write_timeout_sec":
		return setPositive(&c.WriteTimeoutSec, key, val)
	case "snapshot_width":
		return setPositive(&c.SnapshotWidth, key, val)
	case "log_level":
		switch strings.ToLower(val) {
		case "debug", "info", "warn", "error":
			c.LogLevel = strings.ToLower(val)
		default:
			return fmt.Errorf("invalid log_level: %s (use debug, info, warn or error)", val)
		}
	default:
		return fmt.Errorf("unknown key: %s", key)
	}
	return nil
}

func setPositive(dst *int, key, val string) error {
	i, err := strconv.Atoi(strings.TrimSpace(val))
	if err != nil || i <= 0 {
		return fmt.Errorf("invalid positive int for %s: %v", key, val)
	}
	*dst = i
	return nil
}

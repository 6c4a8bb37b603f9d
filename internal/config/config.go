package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/KaramelBytes/surveyboard/internal/utils"
)

// Global configuration structure.
type Global struct {
	DataDir     string `mapstructure:"data_dir" yaml:"data_dir"`
	GeneralFile string `mapstructure:"general_file" yaml:"general_file"`
	Q3File      string `mapstructure:"q3_file" yaml:"q3_file"`
	Q4File      string `mapstructure:"q4_file" yaml:"q4_file"`
	Q5File      string `mapstructure:"q5_file" yaml:"q5_file"`

	// Shared filter state
	SelectedYear   string   `mapstructure:"selected_year" yaml:"selected_year"`
	SelectedRegion string   `mapstructure:"selected_region" yaml:"selected_region"`
	Regions        []string `mapstructure:"regions" yaml:"regions"`
	MaxQuestion    int      `mapstructure:"max_question" yaml:"max_question"`

	// HTTP server
	ListenAddr      string `mapstructure:"listen_addr" yaml:"listen_addr"`
	ReadTimeoutSec  int    `mapstructure:"read_timeout_sec" yaml:"read_timeout_sec"`
	WriteTimeoutSec int    `mapstructure:"write_timeout_sec" yaml:"write_timeout_sec"`

	// PNG chart width in pixels
	SnapshotWidth int `mapstructure:"snapshot_width" yaml:"snapshot_width"`

	LogLevel string `mapstructure:"log_level" yaml:"log_level"`
}

// Keys lists every configuration key in display order.
var Keys = []string{
	"data_dir", "general_file", "q3_file", "q4_file", "q5_file",
	"selected_year", "selected_region", "regions", "max_question",
	"listen_addr", "read_timeout_sec", "write_timeout_sec", "snapshot_width",
	"log_level",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("data_dir", "data")
	v.SetDefault("general_file", "PART1_base_dataQ2-5.csv")
	v.SetDefault("q3_file", "PART2_base_dataQ3.csv")
	v.SetDefault("q4_file", "PART2_base_dataQ4.csv")
	v.SetDefault("q5_file", "PART2_base_dataQ5.csv")
	v.SetDefault("selected_year", "All")
	v.SetDefault("selected_region", "All")
	v.SetDefault("regions", []string{})
	v.SetDefault("max_question", 5)
	v.SetDefault("listen_addr", ":8501")
	v.SetDefault("read_timeout_sec", 15)
	v.SetDefault("write_timeout_sec", 30)
	v.SetDefault("snapshot_width", 900)
	v.SetDefault("log_level", "info")
}

// DefaultPath returns ~/.surveyboard/config.yaml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	return filepath.Join(home, ".surveyboard", "config.yaml"), nil
}

// Save writes the given configuration to the cfgFile path. If cfgFile is empty,
// it writes to ~/.surveyboard/config.yaml, creating the directory if necessary.
func Save(c *Global, cfgFile string) error {
	path := cfgFile
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return err
		}
		path = p
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}
	b, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}
	if err := utils.SafeWriteFile(path, b); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Load loads configuration from file, env, and defaults.
// Precedence: env > config file (cfgFile or ~/.surveyboard/config.yaml) > defaults.
func Load(cfgFile string) (*Global, error) {
	v := viper.New()
	v.SetEnvPrefix("SURVEYBOARD")
	v.AutomaticEnv()
	setDefaults(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		path, err := DefaultPath()
		if err != nil {
			return nil, err
		}
		v.AddConfigPath(filepath.Dir(path))
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}
	// optional read; a present but malformed file is an error
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var c Global
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if c.MaxQuestion <= 0 {
		c.MaxQuestion = 5
	}
	return &c, nil
}

// Path resolves name against DataDir unless it is already absolute.
func (c *Global) Path(name string) string {
	if name == "" || filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(utils.ExpandHome(c.DataDir), name)
}

// ReadTimeout returns the HTTP read timeout.
func (c *Global) ReadTimeout() time.Duration {
	return time.Duration(c.ReadTimeoutSec) * time.Second
}

// WriteTimeout returns the HTTP write timeout.
func (c *Global) WriteTimeout() time.Duration {
	return time.Duration(c.WriteTimeoutSec) * time.Second
}

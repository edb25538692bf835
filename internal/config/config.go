package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/KaramelBytes/csvtally/internal/utils"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Global configuration structure.
type Global struct {
	// Copy export
	CopyCount         int    `mapstructure:"copy_count" yaml:"copy_count"`
	IncludeCaseNumber bool   `mapstructure:"include_case_number" yaml:"include_case_number"`
	CaseNumberColumn  string `mapstructure:"case_number_column" yaml:"case_number_column"`
	Seed              uint64 `mapstructure:"seed" yaml:"seed"`

	// Chart
	ChartType  string   `mapstructure:"chart_type" yaml:"chart_type"`
	ChartWidth int      `mapstructure:"chart_width" yaml:"chart_width"`
	Emphasis   bool     `mapstructure:"emphasis" yaml:"emphasis"`
	Palette    []string `mapstructure:"palette" yaml:"palette"`

	// Clipboard sink
	Clipboard     string `mapstructure:"clipboard" yaml:"clipboard"`
	ClipboardFile string `mapstructure:"clipboard_file" yaml:"clipboard_file"`
	OSC52Mode     string `mapstructure:"osc52_mode" yaml:"osc52_mode"`

	// Input
	MaxRows    int    `mapstructure:"max_rows" yaml:"max_rows"`
	Delimiter  string `mapstructure:"delimiter" yaml:"delimiter"`
	SheetName  string `mapstructure:"sheet_name" yaml:"sheet_name"`
	SheetIndex int    `mapstructure:"sheet_index" yaml:"sheet_index"`

	// Interactive view
	CopiedResetMs int `mapstructure:"copied_reset_ms" yaml:"copied_reset_ms"`
}

// DefaultPalette mirrors chart.DefaultPalette; config stays free of rendering imports.
var DefaultPalette = []string{"#C1F11D", "#9BC915", "#75A110", "#4E790B", "#E0E0E0"}

// Path resolves the config file location. If cfgFile is empty, ~/.csvtally/config.yaml is used.
func Path(cfgFile string) (string, error) {
	if cfgFile != "" {
		return cfgFile, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	return filepath.Join(home, ".csvtally", "config.yaml"), nil
}

// Save writes the given configuration to the cfgFile path, creating the directory if necessary.
func Save(c *Global, cfgFile string) error {
	path, err := Path(cfgFile)
	if err != nil {
		return err
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
// Precedence: env > config file > defaults. Command flags are applied by the caller.
func Load(cfgFile string) (*Global, error) {
	v := viper.New()
	v.SetEnvPrefix("CSVTALLY")
	v.AutomaticEnv()

	v.SetDefault("copy_count", 16)
	v.SetDefault("include_case_number", false)
	v.SetDefault("case_number_column", "Case Number")
	v.SetDefault("seed", 0)
	v.SetDefault("chart_type", "bar")
	v.SetDefault("chart_width", 48)
	v.SetDefault("emphasis", false)
	v.SetDefault("palette", DefaultPalette)
	v.SetDefault("clipboard", "osc52")
	v.SetDefault("clipboard_file", "")
	v.SetDefault("osc52_mode", "default")
	v.SetDefault("max_rows", 100000)
	v.SetDefault("delimiter", "")
	v.SetDefault("sheet_name", "")
	v.SetDefault("sheet_index", 1)
	v.SetDefault("copied_reset_ms", 2000)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home dir: %w", err)
		}
		v.AddConfigPath(filepath.Join(home, ".csvtally"))
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}
	// optional read
	_ = v.ReadInConfig()

	var c Global
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if len(c.Palette) < 2 {
		c.Palette = append([]string(nil), DefaultPalette...)
	}
	return &c, nil
}

// Set assigns key from its string form. It returns an error for unknown keys or bad values.
func (c *Global) Set(key, val string) error {
	switch key {
	case "copy_count":
		i, err := atoi(key, val)
		if err != nil {
			return err
		}
		if i < 1 {
			return fmt.Errorf("copy_count must be at least 1: %d", i)
		}
		c.CopyCount = i
	case "include_case_number":
		b, err := parseBool(key, val)
		if err != nil {
			return err
		}
		c.IncludeCaseNumber = b
	case "case_number_column":
		c.CaseNumberColumn = val
	case "seed":
		u, err := parseUint(key, val)
		if err != nil {
			return err
		}
		c.Seed = u
	case "chart_type":
		switch val {
		case "bar", "pie":
			c.ChartType = val
		default:
			return fmt.Errorf("invalid chart_type: %s (use bar or pie)", val)
		}
	case "chart_width":
		i, err := atoi(key, val)
		if err != nil {
			return err
		}
		c.ChartWidth = i
	case "emphasis":
		b, err := parseBool(key, val)
		if err != nil {
			return err
		}
		c.Emphasis = b
	case "palette":
		p := splitList(val)
		if len(p) < 2 {
			return fmt.Errorf("palette needs at least two colors")
		}
		c.Palette = p
	case "clipboard":
		switch val {
		case "osc52", "stdout", "file":
			c.Clipboard = val
		default:
			return fmt.Errorf("invalid clipboard: %s (use osc52, stdout or file)", val)
		}
	case "clipboard_file":
		c.ClipboardFile = val
	case "osc52_mode":
		switch val {
		case "default", "tmux", "screen":
			c.OSC52Mode = val
		default:
			return fmt.Errorf("invalid osc52_mode: %s (use default, tmux or screen)", val)
		}
	case "max_rows":
		i, err := atoi(key, val)
		if err != nil {
			return err
		}
		c.MaxRows = i
	case "delimiter":
		c.Delimiter = val
	case "sheet_name":
		c.SheetName = val
	case "sheet_index":
		i, err := atoi(key, val)
		if err != nil {
			return err
		}
		c.SheetIndex = i
	case "copied_reset_ms":
		i, err := atoi(key, val)
		if err != nil {
			return err
		}
		c.CopiedResetMs = i
	default:
		return fmt.Errorf("unknown key: %s", key)
	}
	return nil
}

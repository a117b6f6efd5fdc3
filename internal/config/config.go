// Package config loads zplconv settings using viper.
package config

import (
	"fmt"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"

	logInternal "github.com/AlexStarov/zpl-GoLang-lib/log"
	"github.com/AlexStarov/zpl-GoLang-lib/zpl"
)

// Config is everything the zplconv command needs besides its arguments.
type Config struct {
	Log     logInternal.Config `mapstructure:"log" yaml:"log"`
	Options zpl.Options        `mapstructure:"options" yaml:"options"`
}

// configRoot matches the YAML structure `zplconv: ...`.
type configRoot struct {
	ZplConv Config `mapstructure:"zplconv"`
}

// Load reads path, if not empty, then applies ZPLCONV_* environment overrides
// (e.g. ZPLCONV_OPTIONS_ENCODING=z64) and the defaults.
func Load(path string) (*Config, error) {
	v := viper.New()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// key "zplconv.options.threshold" -> env "ZPLCONV_OPTIONS_THRESHOLD"
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	var root configRoot
	// encoding and dithering names decode through UnmarshalText
	hook := viper.DecodeHook(mapstructure.TextUnmarshallerHookFunc())
	if err := v.Unmarshal(&root, hook); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	cfg := root.ZplConv

	if err := cfg.ValidateAndApplyDefaults(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &cfg, nil
}

// Default returns the configuration Load produces with no file and no
// environment overrides.
func Default() *Config {
	return &Config{
		Log: logInternal.Config{
			Level:   "info",
			Pattern: logInternal.DefaultPattern,
			Time:    logInternal.DefaultTimeFormat,
			File: logInternal.FileConfig{
				Path:       "zplconv.log",
				MaxSizeMB:  10,
				MaxBackups: 3,
				MaxAgeDays: 28,
			},
		},
		Options: zpl.DefaultOptions(),
	}
}

func setDefaults(v *viper.Viper) {
	def := Default()

	v.SetDefault("zplconv.log.level", def.Log.Level)
	v.SetDefault("zplconv.log.pattern", def.Log.Pattern)
	v.SetDefault("zplconv.log.time", def.Log.Time)
	v.SetDefault("zplconv.log.file.enabled", def.Log.File.Enabled)
	v.SetDefault("zplconv.log.file.path", def.Log.File.Path)
	v.SetDefault("zplconv.log.file.max_size_mb", def.Log.File.MaxSizeMB)
	v.SetDefault("zplconv.log.file.max_backups", def.Log.File.MaxBackups)
	v.SetDefault("zplconv.log.file.max_age_days", def.Log.File.MaxAgeDays)
	v.SetDefault("zplconv.log.file.compress", def.Log.File.Compress)

	opts := def.Options
	v.SetDefault("zplconv.options.encoding", opts.EncodingKind.String())
	v.SetDefault("zplconv.options.graphic_field_only", opts.GraphicFieldOnly)
	v.SetDefault("zplconv.options.set_label_length", opts.SetLabelLength)
	v.SetDefault("zplconv.options.threshold", opts.Threshold)
	v.SetDefault("zplconv.options.dithering", opts.Dithering.String())
	v.SetDefault("zplconv.options.print_quantity", opts.PrintQuantity)
	v.SetDefault("zplconv.options.label_top", opts.LabelTop)
	v.SetDefault("zplconv.options.label_shift", opts.LabelShift)
	v.SetDefault("zplconv.options.original_dpi", opts.OriginalDPI)
	v.SetDefault("zplconv.options.target_dpi", opts.TargetDPI)
	v.SetDefault("zplconv.options.monochrome_prepass", opts.MonochromePrepass)
}

// ValidateAndApplyDefaults checks field ranges and fills the values a
// partial config leaves empty.
func (cfg *Config) ValidateAndApplyDefaults() error {
	// ── Log ──
	level, err := logInternal.ParseLevel(cfg.Log.Level)
	if err != nil {
		return err
	}
	cfg.Log.Level = strings.ToLower(level.String())
	if cfg.Log.Level == "warning" {
		cfg.Log.Level = "warn"
	}
	if cfg.Log.Pattern == "" {
		cfg.Log.Pattern = logInternal.DefaultPattern
	}
	if cfg.Log.Time == "" {
		cfg.Log.Time = logInternal.DefaultTimeFormat
	}
	if cfg.Log.File.Enabled && cfg.Log.File.Path == "" {
		return fmt.Errorf("log.file.path is required when log.file.enabled=true")
	}

	// ── Options ──
	if err := cfg.Options.Validate(); err != nil {
		return err
	}
	if cfg.Options.PrintQuantity < 0 {
		return fmt.Errorf("invalid print_quantity: %d (must be >= 0)", cfg.Options.PrintQuantity)
	}
	if cfg.Options.OriginalDPI <= 0 {
		cfg.Options.OriginalDPI = zpl.DefaultOptions().OriginalDPI
	}
	if cfg.Options.TargetDPI <= 0 {
		cfg.Options.TargetDPI = zpl.DefaultOptions().TargetDPI
	}
	return nil
}

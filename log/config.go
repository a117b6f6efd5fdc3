package log

// Config contains logging settings.
type Config struct {
	Level   string     `mapstructure:"level" yaml:"level"` // debug / info / warn / error
	Pattern string     `mapstructure:"pattern" yaml:"pattern"`
	Time    string     `mapstructure:"time" yaml:"time"`
	File    FileConfig `mapstructure:"file" yaml:"file"`
}

// FileConfig configures the rotating log file.
type FileConfig struct {
	Enabled    bool   `mapstructure:"enabled" yaml:"enabled"`
	Path       string `mapstructure:"path" yaml:"path"`
	MaxSizeMB  int    `mapstructure:"max_size_mb" yaml:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups" yaml:"max_backups"`
	MaxAgeDays int    `mapstructure:"max_age_days" yaml:"max_age_days"`
	Compress   bool   `mapstructure:"compress" yaml:"compress"`
}

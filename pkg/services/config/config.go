package config

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/de-tools/delivery-atlas/pkg/services/report"
)

type Report struct {
	ReportsDir        string `mapstructure:"reports_dir"`
	TempDir           string `mapstructure:"temp_dir"`
	Title             string `mapstructure:"title"`
	Author            string `mapstructure:"author"`
	CleanupTempImages bool   `mapstructure:"cleanup_temp_images"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Config struct {
	Report Report `mapstructure:"report"`
	Server Server `mapstructure:"server"`
}

// Load reads the application config. An empty path yields the defaults;
// a named file that cannot be read or parsed is an error.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("report.reports_dir", "output/reports")
	v.SetDefault("report.temp_dir", "output/temp")
	v.SetDefault("report.title", report.DefaultTitle)
	v.SetDefault("report.author", report.DefaultAuthor)
	v.SetDefault("report.cleanup_temp_images", false)
	v.SetDefault("server.host", "localhost")
	v.SetDefault("server.port", "8080")

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &cfg, nil
}

// ReportSettings converts the config section into assembler settings.
func (c *Config) ReportSettings() report.Settings {
	return report.Settings{
		ReportsDir:        c.Report.ReportsDir,
		TempDir:           c.Report.TempDir,
		Title:             c.Report.Title,
		Author:            c.Report.Author,
		CleanupTempImages: c.Report.CleanupTempImages,
	}
}

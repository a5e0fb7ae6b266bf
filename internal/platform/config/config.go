package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Server captures HTTP server level configuration.
type Server struct {
	Addr           string `mapstructure:"addr"`
	LogLevel       string `mapstructure:"log_level"`
	LogFormat      string `mapstructure:"log_format"`
	MaxUploadBytes int64  `mapstructure:"max_upload_bytes"`
	StrictLocality bool   `mapstructure:"strict_locality"`
	LocalitiesFile string `mapstructure:"localities_file"`
	AWS            AWS    `mapstructure:"aws"`
}

// AWS configures the document analysis collaborators. An empty Bucket
// disables image analysis.
type AWS struct {
	Region         string        `mapstructure:"region"`
	Bucket         string        `mapstructure:"bucket"`
	AnalyzeTimeout time.Duration `mapstructure:"analyze_timeout"`
}

// AnalysisEnabled reports whether enough is configured to call AWS.
func (a AWS) AnalysisEnabled() bool {
	return a.Bucket != ""
}

// DefaultMaxUploadBytes matches the 5 MiB image limit of the analyze endpoint.
const DefaultMaxUploadBytes = 5 * 1024 * 1024

// Load reads configuration from CEDULA_* environment variables and, when
// CEDULA_CONFIG names a YAML file, from that file. Environment wins.
// AWS_REGION_NAME and AWS_BUCKET_NAME are honored for the AWS section.
func Load() (Server, error) {
	v := viper.New()
	v.SetEnvPrefix("CEDULA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("addr", ":8080")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "json")
	v.SetDefault("max_upload_bytes", DefaultMaxUploadBytes)
	v.SetDefault("strict_locality", false)
	v.SetDefault("localities_file", "")
	v.SetDefault("aws.region", "us-east-1")
	v.SetDefault("aws.bucket", "")
	v.SetDefault("aws.analyze_timeout", 30*time.Second)

	_ = v.BindEnv("aws.region", "CEDULA_AWS_REGION", "AWS_REGION_NAME")
	_ = v.BindEnv("aws.bucket", "CEDULA_AWS_BUCKET", "AWS_BUCKET_NAME")

	if path := v.GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Server{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var cfg Server
	if err := v.Unmarshal(&cfg); err != nil {
		return Server{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Server{}, err
	}
	return cfg, nil
}

// Validate rejects configurations the server cannot start with.
func (s Server) Validate() error {
	if strings.TrimSpace(s.Addr) == "" {
		return errors.New("addr is required")
	}
	if s.MaxUploadBytes <= 0 {
		return errors.New("max_upload_bytes must be positive")
	}
	if s.AWS.AnalysisEnabled() && s.AWS.AnalyzeTimeout <= 0 {
		return errors.New("aws.analyze_timeout must be positive")
	}
	switch s.LogFormat {
	case "json", "text":
	default:
		return fmt.Errorf("log_format %q must be json or text", s.LogFormat)
	}
	return nil
}

package config

import (
	"log"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Server struct {
		Address      string `mapstructure:"address"`
		MetricsPort  string `mapstructure:"metrics_port"`
		BaseURL      string `mapstructure:"base_url"`
		TemplateGlob string `mapstructure:"template_glob"`
		LogLevel     string `mapstructure:"log_level"`
	} `mapstructure:"server"`
	Database struct {
		Path string `mapstructure:"path"`
	} `mapstructure:"database"`
	Auth struct {
		SessionHours int `mapstructure:"session_hours"`
	} `mapstructure:"auth"`
	Cashout struct {
		WindowMinutes int    `mapstructure:"window_minutes"`
		SigningKey    string `mapstructure:"signing_key"`
	} `mapstructure:"cashout"`
	Storage struct {
		Provider string `mapstructure:"provider"` // "local" or "s3"
		VideoDir string `mapstructure:"video_dir"`
		KeyID    string `mapstructure:"key_id"`
		AppKey   string `mapstructure:"app_key"`
		Endpoint string `mapstructure:"endpoint"`
		Region   string `mapstructure:"region"`
		Bucket   string `mapstructure:"bucket"`
	} `mapstructure:"storage"`
}

func Load() *Config {
	viper.SetEnvPrefix("GACK")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// Register keys
	viper.BindEnv("server.address")
	viper.BindEnv("server.metrics_port")
	viper.BindEnv("server.base_url")
	viper.BindEnv("server.template_glob")
	viper.BindEnv("server.log_level")
	viper.BindEnv("database.path")
	viper.BindEnv("auth.session_hours")
	viper.BindEnv("cashout.window_minutes")
	viper.BindEnv("cashout.signing_key")
	viper.BindEnv("storage.provider")
	viper.BindEnv("storage.video_dir")
	viper.BindEnv("storage.key_id")
	viper.BindEnv("storage.app_key")
	viper.BindEnv("storage.endpoint")
	viper.BindEnv("storage.region")
	viper.BindEnv("storage.bucket")

	// Defaults
	viper.SetDefault("server.address", ":8080")
	viper.SetDefault("server.metrics_port", ":9091")
	viper.SetDefault("server.base_url", "http://localhost:8080")
	viper.SetDefault("server.template_glob", "web/templates/*.html")
	viper.SetDefault("server.log_level", "info")
	viper.SetDefault("database.path", "gackfiles.db")
	viper.SetDefault("auth.session_hours", 24)
	viper.SetDefault("cashout.window_minutes", 15)
	viper.SetDefault("storage.provider", "local")
	viper.SetDefault("storage.video_dir", "./videos")

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("../")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Printf("Warning: Config error: %s", err)
		} else {
			log.Println("Info: config.yaml not found, using Environment Variables only.")
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		log.Fatalf("Unable to decode config: %v", err)
	}

	if cfg.Cashout.SigningKey == "" {
		log.Println("Warning: cashout signing key not set (GACK_CASHOUT_SIGNING_KEY), using insecure default")
		cfg.Cashout.SigningKey = "gack-cashout-dev-key"
	}

	return &cfg
}

package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Env            string        `mapstructure:"ENV"`
	Port           string        `mapstructure:"PORT"`
	ModelPath      string        `mapstructure:"MODEL_PATH"`
	ModelURL       string        `mapstructure:"MODEL_URL"`
	ModelTimeout   time.Duration `mapstructure:"MODEL_TIMEOUT"`
	CORSAllowed    string        `mapstructure:"CORS_ALLOWED_ORIGINS"`
	RequestTimeout time.Duration `mapstructure:"REQUEST_TIMEOUT"`
	MaxBodyKB      int64         `mapstructure:"MAX_BODY_KB"`
	LogLevel       string        `mapstructure:"LOG_LEVEL"`
	LogFile        string        `mapstructure:"LOG_FILE"`
}

// CORSOrigins splits the comma-separated allow-list.
func (c Config) CORSOrigins() []string {
	var out []string
	for _, o := range strings.Split(c.CORSAllowed, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}

func Load() (Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()
	_ = v.ReadInConfig()

	v.SetDefault("ENV", "dev")
	v.SetDefault("PORT", "8080")
	v.SetDefault("MODEL_PATH", "models/telco_churn_model.json")
	v.SetDefault("MODEL_URL", "")
	v.SetDefault("MODEL_TIMEOUT", "5s")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:8080")
	v.SetDefault("REQUEST_TIMEOUT", "30s")
	v.SetDefault("MAX_BODY_KB", 64)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FILE", "")

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

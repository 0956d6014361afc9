package config

import (
	"errors"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// Config defines the app configuration.
type Config struct {
	Server struct {
		Port int    `yaml:"port" env:"PORT" env-default:"4000"`
		Env  string `yaml:"env" env:"ENV" env-default:"development"`
	} `yaml:"server"`
	API struct {
		BaseURL string        `yaml:"base_url" env:"API_URL" env-default:"http://localhost:3000/api"`
		Timeout time.Duration `yaml:"timeout" env:"API_TIMEOUT" env-default:"15s"`
	} `yaml:"api"`
	Session struct {
		Name   string `yaml:"name" env:"SESSION_NAME" env-default:"bookmanager"`
		Secret string `yaml:"secret" env:"SESSION_SECRET"`
		MaxAge int    `yaml:"max_age" env:"SESSION_MAXAGE" env-default:"604800"`
		Secure bool   `yaml:"secure" env:"SESSION_SECURE"`
	} `yaml:"session"`
	S3 struct {
		AccessKeyID     string `yaml:"access_key_id" env:"ACCESSKEYID"`
		SecretAccessKey string `yaml:"secret_access_key" env:"SECRETACCESSKEY"`
		Region          string `yaml:"region" env:"REGION"`
		Bucket          string `yaml:"bucket" env:"BUCKET"`
	} `yaml:"s3"`
	Limiter struct {
		RPS     float64 `yaml:"rps" env:"RPS" env-default:"4"`
		Burst   int     `yaml:"burst" env:"BURST" env-default:"8"`
		Enabled bool    `yaml:"enabled" env:"LENABLED" env-default:"true"`
	} `yaml:"limiter"`
	Metrics struct {
		Enabled bool `yaml:"enabled" env:"MENABLED"`
	} `yaml:"metrics"`
	BasicAuth struct {
		Username string `yaml:"username" env:"USERNAME"`
		Password string `yaml:"password" env:"PASSWORD"`
	} `yaml:"basic_auth"`
	Log struct {
		Level string `yaml:"level" env:"LOG_LEVEL" env-default:"info"`
	} `yaml:"log"`
}

// ErrMissingSessionSecret is returned when no cookie signing secret is configured.
var ErrMissingSessionSecret = errors.New("session secret must be set")

// Load reads the configuration. A .env file in the working directory is
// loaded into the environment first when present. If path is empty the
// configuration comes from environment variables only, otherwise the YAML
// file at path is read and environment variables override its values.
func Load(path string) (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	var err error
	if path == "" {
		err = cleanenv.ReadEnv(&cfg)
	} else {
		err = cleanenv.ReadConfig(path, &cfg)
	}
	if err != nil {
		return Config{}, err
	}
	if cfg.Session.Secret == "" {
		return Config{}, ErrMissingSessionSecret
	}
	return cfg, nil
}

// UploadsEnabled reports whether cover uploads to object storage are configured.
func (c Config) UploadsEnabled() bool {
	return c.S3.Bucket != ""
}

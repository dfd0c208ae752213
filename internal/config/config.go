package config

import (
	"flag"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Env          string            `yaml:"env" env:"ENV" env-default:"local"`
	DSN          string            `yaml:"dsn" env:"DSN" env-required:"true"`
	HTTP         HTTPConfig        `yaml:"http"`
	Provider     ProviderConfig    `yaml:"provider"`
	PlanLimits   map[string]int    `yaml:"plan_limits"`
	DefaultOwner string            `yaml:"default_owner" env:"DEFAULT_OWNER_ID"`
}

type HTTPConfig struct {
	Host string `yaml:"host" env:"HTTP_HOST"`
	Port string `yaml:"port" env:"HTTP_PORT" env-default:"8080"`
}

// ProviderConfig carries the media-host credentials and the folder prefix
// every gallery folder is created under.
type ProviderConfig struct {
	CloudName  string `yaml:"cloud_name" env:"CLOUDINARY_CLOUD_NAME"`
	APIKey     string `yaml:"api_key" env:"CLOUDINARY_API_KEY"`
	APISecret  string `yaml:"api_secret" env:"CLOUDINARY_API_SECRET"`
	BaseFolder string `yaml:"base_folder" env:"CLOUDINARY_FOLDER" env-default:"snapfolio"`
}

// GalleryLimit returns the per-plan gallery cap, 0 meaning unlimited.
func (c *Config) GalleryLimit(plan string) int {
	if c.PlanLimits == nil {
		return 0
	}
	return c.PlanLimits[plan]
}

func MustLoad() *Config {
	path := fetchConfigPath()
	if path == "" {
		panic("config path is empty")
	}

	return MustLoadPath(path)
}

func MustLoadPath(configPath string) *Config {
	// check if file exists
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		panic("config file does not exist: " + configPath)
	}

	var cfg Config

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		panic("cannot read config: " + err.Error())
	}

	return &cfg
}

func fetchConfigPath() string {
	var res string

	// --config="path/to/config.yaml"
	flag.StringVar(&res, "config", "", "path to config file")
	flag.Parse()

	if res == "" {
		res = os.Getenv("CONFIG_PATH")
	}

	return res
}

package config

import (
	"fmt"
	"os"
	"path"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v2"
)

type Config struct {
	Public  Public
	private Private
}

type Public struct {
	Log     Log     `yaml:"log"`
	Paging  Paging  `yaml:"paging"`
	Server  Server  `yaml:"server"`
	Gateway Gateway `yaml:"gateway"`
}

type Log struct {
	Level string `yaml:"level" validate:"omitempty,oneof=debug info warn error"`
	JSON  bool   `yaml:"json"`
}

type Paging struct {
	DefaultSize int `yaml:"default_size" validate:"required,gt=0"`
	MaxSize     int `yaml:"max_size" validate:"required,gtefield=DefaultSize"`
}

type Server struct {
	Port           int           `yaml:"port" validate:"required"`
	AutoMigrate    bool          `yaml:"auto_migrate"`
	RequestTimeout time.Duration `yaml:"request_timeout" validate:"required"`
}

type Gateway struct {
	Port           int           `yaml:"port" validate:"required"`
	ServerURL      string        `yaml:"server_url" validate:"required,url"`
	RequestTimeout time.Duration `yaml:"request_timeout" validate:"required"`
	RateLimitRPS   float64       `yaml:"rate_limit_rps" validate:"required,gt=0"`
	RateLimitBurst int           `yaml:"rate_limit_burst" validate:"required,gt=0"`
	// per acting user on booking creation and approval; 0 disables
	BookingRateLimitRPS   float64       `yaml:"booking_rate_limit_rps" validate:"gte=0"`
	BookingRateLimitBurst int           `yaml:"booking_rate_limit_burst" validate:"gte=0"`
	AllowedOrigins        []string      `yaml:"allowed_origins"`
	ServiceTokenTTL       time.Duration `yaml:"service_token_ttl"`
}

type Pg struct {
	Host     string `yaml:"host" validate:"required"`
	Port     int    `yaml:"port" validate:"required"`
	User     string `yaml:"user" validate:"required"`
	Password string `yaml:"password"`
	Dbname   string `yaml:"dbname" validate:"required"`
}

type Private struct {
	Pg Pg `yaml:"pg"`
	// empty disables service tokens between gateway and server
	ServiceKey string `yaml:"service_key"`
}

func (c *Config) Pg() Pg {
	return c.private.Pg
}

func (c *Config) ServiceKey() string {
	return c.private.ServiceKey
}

func (c *Config) ServiceTokenTTL() time.Duration {
	if c.Public.Gateway.ServiceTokenTTL <= 0 {
		return time.Minute
	}
	return c.Public.Gateway.ServiceTokenTTL
}

func mustLoadPath(configPath string, output interface{}) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		panic("config file does not exist: " + configPath)
	}
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		panic("can't read config file: " + configPath)
	}

	if err = yaml.UnmarshalStrict(configFile, output); err != nil {
		panic(fmt.Sprintf("can't unmarshal config file %s: %v", configPath, err))
	}
}

func mustValidate(name string, v interface{}) {
	if err := validator.New().Struct(v); err != nil {
		panic(fmt.Sprintf("invalid %s config: %v", name, err))
	}
}

// MustLoad reads public.yaml and private.yaml from configFolder and panics on any problem.
// Validation of the pg section is left to the server, the gateway has no database.
func MustLoad(configFolder string) *Config {
	var public Public
	mustLoadPath(path.Join(configFolder, "public.yaml"), &public)
	mustValidate("public", public)

	var private Private
	mustLoadPath(path.Join(configFolder, "private.yaml"), &private)

	return &Config{public, private}
}

// MustValidatePg panics unless the database section of private.yaml is complete.
func (c *Config) MustValidatePg() {
	mustValidate("pg", c.private.Pg)
}

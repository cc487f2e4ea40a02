package config

import (
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/Astemirdum/bookstore-service/pkg/kafka"
	"github.com/Astemirdum/bookstore-service/pkg/logger"
	"github.com/Astemirdum/bookstore-service/pkg/postgres"
	"github.com/kelseyhightower/envconfig"
)

type HTTPServer struct {
	Host         string        `yaml:"host" envconfig:"BOOKSTORE_HTTP_HOST" default:"0.0.0.0"`
	Port         string        `yaml:"port" envconfig:"BOOKSTORE_HTTP_PORT" default:"8080"`
	ReadTimeout  time.Duration `yaml:"readTimeout" envconfig:"HTTP_READ" default:"10s"`
	WriteTimeout time.Duration `yaml:"writeTimeout" envconfig:"HTTP_WRITE"`
}

type Auth struct {
	// empty key trusts the X-Member-Id / X-Member-Role headers of the gateway
	JWTKey string `envconfig:"AUTH_JWT_KEY" json:"-"`
}

type Accrual struct {
	Cron    string        `envconfig:"ACCRUAL_CRON" default:"0 0 0 * * *"`
	Workers int           `envconfig:"ACCRUAL_WORKERS" default:"8"`
	Timeout time.Duration `envconfig:"ACCRUAL_TIMEOUT" default:"30m"`
}

type Config struct {
	Server   HTTPServer  `yaml:"server"`
	Database postgres.DB `yaml:"db"`
	Log      logger.Log  `yaml:"log"`
	Kafka    kafka.Config
	Auth     Auth
	Accrual  Accrual
}

var (
	once sync.Once
	cfg  *Config
)

// NewConfig reads config from environment. Options set values envconfig leaves untouched.
func NewConfig(ops ...Option) *Config {
	once.Do(func() {
		var config Config
		for _, op := range ops {
			op(&config)
		}
		err := envconfig.Process("", &config)
		if err != nil {
			log.Fatal("NewConfig ", err)
		}
		cfg = &config
		printConfig(cfg)
	})

	return cfg
}

func printConfig(cfg *Config) {
	jscfg, _ := json.MarshalIndent(cfg, "", "	") //nolint:errcheck
	fmt.Println(string(jscfg))
}

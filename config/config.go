package config

import (
	"os"
	"sync"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/sirupsen/logrus"
)

type Config struct {
	BackendURL     string        `envconfig:"BACKEND_URL"       default:"http://localhost:8080/api"`
	GatewayPort    string        `envconfig:"GATEWAY_PORT"      default:":3000"`
	LogLevel       string        `envconfig:"LOG_LEVEL"         default:"info"`
	RequestTimeout time.Duration `envconfig:"REQUEST_TIMEOUT"   default:"10s"`
	AddToCartDelay time.Duration `envconfig:"ADD_TO_CART_DELAY" default:"500ms"`
	SessionFile    string        `envconfig:"SESSION_FILE"      default:".session.json"`
	AdminUsername  string        `envconfig:"ADMIN_USERNAME"    default:"admin@123"`
	AdminPassword  string        `envconfig:"ADMIN_PASSWORD"    default:"12345"`
}

var (
	config Config
	once   sync.Once
)

func LoadConfig(logger *logrus.Logger) *Config {
	once.Do(func() {
		err := godotenv.Load()
		if err != nil && !os.IsNotExist(err) {
			logger.Warnf("Error loading .env file (but continuing): %v", err)
		} else if err == nil {
			logger.Info("Loaded configuration from .env file")
		}

		err = envconfig.Process("", &config)
		if err != nil {
			logger.Fatalf("Failed to process configuration from environment variables: %v", err)
		}

		logger.Infof("Configuration loaded: Backend=%s, Port=%s, LogLevel=%s",
			config.BackendURL, config.GatewayPort, config.LogLevel)
	})
	return &config
}

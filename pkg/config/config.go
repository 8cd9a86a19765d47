package config

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"

	checkoutmodel "github.com/Mouss-42/ReactSituPro-main/pkg/checkout/domain/model"
)

const appID = "shopfront"

const (
	StorageMemory = "memory"
	StorageFile   = "file"
	StorageMySQL  = "mysql"
	StorageRedis  = "redis"

	OrderNumbersRandom     = "random"
	OrderNumbersSequential = "sequential"
)

type Config struct {
	ServeHTTPAddress string `envconfig:"serve_http_address" default:":8080"`
	LogLevel         string `envconfig:"log_level" default:"info"`

	Storage     string `envconfig:"storage" default:"file"`
	StorageFile string `envconfig:"storage_file" default:"storage.json"`

	DatabaseDSN string `envconfig:"database_dsn" default:"root:@tcp(localhost:3306)/ecommerce?parseTime=true"`

	RedisAddress  string `envconfig:"redis_address" default:"localhost:6379"`
	RedisPassword string `envconfig:"redis_password"`
	RedisDB       int    `envconfig:"redis_db" default:"0"`

	ProcessingDelay time.Duration `envconfig:"processing_delay" default:"2s"`
	ShippingFee     string        `envconfig:"shipping_fee" default:"5.99"`
	TaxRate         string        `envconfig:"tax_rate" default:"0.20"`
	TaxInGrandTotal bool          `envconfig:"tax_in_grand_total" default:"false"`
	OrderNumbers    string        `envconfig:"order_numbers" default:"random"`

	JWTSecret   string        `envconfig:"jwt_secret" default:"secretkey"`
	JWTTTL      time.Duration `envconfig:"jwt_ttl" default:"1h"`
	BcryptCost  int           `envconfig:"bcrypt_cost" default:"10"`
	RequireAuth bool          `envconfig:"require_auth" default:"false"`
}

// Load reads an optional .env file, then SHOPFRONT_* variables.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Debug(".env file not found, using the environment only")
	}

	c := &Config{}
	if err := envconfig.Process(appID, c); err != nil {
		return nil, errors.Wrap(err, "failed to parse env")
	}
	return c, c.validate()
}

func (c *Config) validate() error {
	switch c.Storage {
	case StorageMemory, StorageFile, StorageMySQL, StorageRedis:
	default:
		return errors.Errorf("unknown storage %q", c.Storage)
	}
	switch c.OrderNumbers {
	case OrderNumbersRandom, OrderNumbersSequential:
	default:
		return errors.Errorf("unknown order number scheme %q", c.OrderNumbers)
	}
	if c.ProcessingDelay < 0 {
		return errors.New("processing delay cannot be negative")
	}
	_, err := c.Pricing()
	return err
}

func (c *Config) Pricing() (checkoutmodel.Pricing, error) {
	fee, err := decimal.NewFromString(c.ShippingFee)
	if err != nil {
		return checkoutmodel.Pricing{}, errors.Wrap(err, "invalid shipping fee")
	}
	rate, err := decimal.NewFromString(c.TaxRate)
	if err != nil {
		return checkoutmodel.Pricing{}, errors.Wrap(err, "invalid tax rate")
	}
	if fee.IsNegative() || rate.IsNegative() {
		return checkoutmodel.Pricing{}, errors.New("shipping fee and tax rate cannot be negative")
	}

	policy := checkoutmodel.TaxExcludedFromGrandTotal
	if c.TaxInGrandTotal {
		policy = checkoutmodel.TaxIncludedInGrandTotal
	}
	return checkoutmodel.Pricing{ShippingFee: fee, TaxRate: rate, TaxPolicy: policy}, nil
}

func (c *Config) Level() log.Level {
	level, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return log.InfoLevel
	}
	return level
}

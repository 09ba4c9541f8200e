package main

import (
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	storeRedis = "redis"
	storeMongo = "mongo"
)

type Config struct {
	Port            int
	Store           string
	RedisAddr       string
	RedisPassword   string
	RedisDB         int
	MongoURI        string
	MongoDatabase   string
	LogLevel        string
	LogFormat       string
	ShutdownTimeout time.Duration
}

func registerFlags(flags *pflag.FlagSet) {
	flags.Int("port", 4000, "Port the GraphQL server listens on.")
	flags.String("store", storeRedis, "Document store backend, one of [redis, mongo].")
	flags.String("redis-addr", "localhost:6379", "Redis address (host:port).")
	flags.String("redis-password", "", "Redis password.")
	flags.Int("redis-db", 0, "Redis database number.")
	flags.String("mongo-uri", "mongodb://localhost:27017", "MongoDB connection URI.")
	flags.String("mongo-database", "delivecrous", "MongoDB database holding the dishes and carts collections.")
	flags.String("log-level", "info", "Log level, one of [debug, info, warn, error].")
	flags.String("log-format", "json", "Log encoding, one of [json, console].")
	flags.Duration("shutdown-timeout", 10*time.Second, "Time allowed for in-flight requests on shutdown.")
	flags.String("config", "", "Configuration file. Overridden by environment variables and flags.")
}

// newViper layers flags over DELIVECROUS_* environment variables over the
// optional config file.
func newViper(flags *pflag.FlagSet) (*viper.Viper, error) {
	conf := viper.New()
	if err := conf.BindPFlags(flags); err != nil {
		return nil, errors.Wrap(err, "error binding flags")
	}
	conf.SetEnvPrefix("DELIVECROUS")
	conf.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	conf.AutomaticEnv()

	if file := conf.GetString("config"); file != "" {
		conf.SetConfigFile(file)
		if err := conf.ReadInConfig(); err != nil {
			return nil, errors.Wrap(err, "error reading config")
		}
	}

	return conf, nil
}

func LoadConfig(conf *viper.Viper) (Config, error) {
	config := Config{
		Port:            conf.GetInt("port"),
		Store:           conf.GetString("store"),
		RedisAddr:       conf.GetString("redis-addr"),
		RedisPassword:   conf.GetString("redis-password"),
		RedisDB:         conf.GetInt("redis-db"),
		MongoURI:        conf.GetString("mongo-uri"),
		MongoDatabase:   conf.GetString("mongo-database"),
		LogLevel:        conf.GetString("log-level"),
		LogFormat:       conf.GetString("log-format"),
		ShutdownTimeout: conf.GetDuration("shutdown-timeout"),
	}

	return config, config.Validate()
}

func (c Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return errors.Errorf("invalid port %d", c.Port)
	}
	if c.Store != storeRedis && c.Store != storeMongo {
		return errors.Errorf("unknown store %q, expected %q or %q", c.Store, storeRedis, storeMongo)
	}
	if c.ShutdownTimeout <= 0 {
		return errors.Errorf("shutdown timeout must be positive, got %s", c.ShutdownTimeout)
	}
	if c.LogFormat != "json" && c.LogFormat != "console" {
		return errors.Errorf("unknown log format %q", c.LogFormat)
	}

	return nil
}

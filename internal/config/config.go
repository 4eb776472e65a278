package config

import (
	"fmt"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

type HTTPConfig struct {
	Host         string
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

type MongoConfig struct {
	URI         string
	Database    string
	MaxPoolSize uint64
	MinPoolSize uint64
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int

	JobStream          string
	NotificationStream string
}

type WorkerConfig struct {
	Group         string
	Consumer      string
	BatchSize     int64
	BlockTimeout  time.Duration
	ClaimInterval time.Duration
}

type SecurityConfig struct {
	JWTAccessSecret string
	JWTAccessTTL    time.Duration
}

type AdminConfig struct {
	Emails []string
}

type RetentionConfig struct {
	NotificationLogs time.Duration
}

type AppConfig struct {
	Environment      string
	HTTP             HTTPConfig
	Mongo            MongoConfig
	Redis            RedisConfig
	Worker           WorkerConfig
	Security         SecurityConfig
	Admin            AdminConfig
	Retention        RetentionConfig
	AllowCORSOrigins []string
}

func Load() (*AppConfig, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("../config")

	v.SetEnvPrefix("FORCEFOCUS")
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("load config file: %w", err)
		}
	}

	var cfg AppConfig
	if err := v.Unmarshal(&cfg, func(dc *mapstructure.DecoderConfig) {
		dc.TagName = "mapstructure"
		dc.DecodeHook = mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		)
	}); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment", "development")

	v.SetDefault("http.host", "0.0.0.0")
	v.SetDefault("http.port", 8000)
	v.SetDefault("http.readtimeout", "10s")
	v.SetDefault("http.writetimeout", "15s")
	v.SetDefault("http.idletimeout", "60s")

	v.SetDefault("mongo.uri", "mongodb://127.0.0.1:27017")
	v.SetDefault("mongo.database", "force_focus")
	v.SetDefault("mongo.maxpoolsize", 30)
	v.SetDefault("mongo.minpoolsize", 5)

	v.SetDefault("redis.addr", "127.0.0.1:6379")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.jobstream", "focus:jobs")
	v.SetDefault("redis.notificationstream", "focus:notifications")

	v.SetDefault("worker.group", "focus-workers")
	v.SetDefault("worker.consumer", "worker-1")
	v.SetDefault("worker.batchsize", 10)
	v.SetDefault("worker.blocktimeout", "5s")
	v.SetDefault("worker.claiminterval", "30s")

	v.SetDefault("security.jwtaccessttl", "15m")

	v.SetDefault("retention.notificationlogs", "720h") // 30 days
}

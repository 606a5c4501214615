package config

import (
	"time"
)

// Store drivers understood by the initializer.
const (
	StoreMemory   = "memory"
	StoreSQLite   = "sqlite"
	StorePostgres = "postgres"
)

// Event sinks understood by the initializer.
const (
	SinkNone  = ""
	SinkRedis = "redis"
	SinkKafka = "kafka"
)

type DB struct {
	Url string `envconfig:"URL"`
}

type Store struct {
	Driver string `envconfig:"DRIVER" default:"memory"`
}

type Events struct {
	Sink         string   `envconfig:"SINK"`
	RedisURL     string   `envconfig:"REDIS_URL"`
	Stream       string   `envconfig:"STREAM" default:"finledger:events"`
	KafkaBrokers []string `envconfig:"KAFKA_BROKERS"`
	KafkaTopic   string   `envconfig:"KAFKA_TOPIC" default:"finledger.events"`
}

type RateLimit struct {
	MaxRequests int           `envconfig:"MAX_REQUESTS" default:"100"`
	Window      time.Duration `envconfig:"WINDOW" default:"1m"`
}

type Log struct {
	Level      int    `envconfig:"LEVEL" default:"0"`
	Format     string `envconfig:"FORMAT" default:"text"`
	TimeFormat string `envconfig:"TIME_FORMAT" default:"2006-01-02 15:04:05"`
	Prefix     string `envconfig:"PREFIX" default:"[finledger]"`
}

type Server struct {
	Scheme string `envconfig:"SCHEME" default:"http"`
	Host   string `envconfig:"HOST" default:"0.0.0.0"`
	Port   int    `envconfig:"PORT" default:"3333"`
}

type App struct {
	Env       string     `envconfig:"APP_ENV" default:"development"`
	Server    *Server    `envconfig:"SERVER"`
	Log       *Log       `envconfig:"LOG"`
	Store     *Store     `envconfig:"STORE"`
	DB        *DB        `envconfig:"DATABASE"`
	RateLimit *RateLimit `envconfig:"RATE_LIMIT"`
	Events    *Events    `envconfig:"EVENTS"`
}

package util

import (
	"fmt"
	"os"
	"strconv"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var environmentLogger = log.With().Str("logger_name", "util::environment").Logger()

type gameServerEnvironment struct {
	PersistMethod string
	RedisHost     string
	RedisPort     string
	RedisPW       string
	RedisDB       string
	NatsURL       string
	APIServerURL  string
	PostgresHost  string
	PostgresPort  string
	PostgresDB    string
	PostgresUser  string
	PostgresPW    string
	PostgresSSL   string
	LogLevel      string
	GameConfig    string
}

// Env is a helper object for accessing environment variables.
var Env = &gameServerEnvironment{
	PersistMethod: "PERSIST_METHOD",
	RedisHost:     "REDIS_HOST",
	RedisPort:     "REDIS_PORT",
	RedisPW:       "REDIS_PW",
	RedisDB:       "REDIS_DB",
	NatsURL:       "NATS_URL",
	APIServerURL:  "API_SERVER_URL",
	PostgresHost:  "POSTGRES_HOST",
	PostgresPort:  "POSTGRES_PORT",
	PostgresDB:    "POSTGRES_DB",
	PostgresUser:  "POSTGRES_USER",
	PostgresPW:    "POSTGRES_PASSWORD",
	PostgresSSL:   "POSTGRES_SSL_MODE",
	LogLevel:      "LOG_LEVEL",
	GameConfig:    "GAME_CONFIG",
}

func (g *gameServerEnvironment) GetPersistMethod() string {
	method := os.Getenv(g.PersistMethod)
	if method == "" {
		return "memory"
	}
	return method
}

func (g *gameServerEnvironment) GetRedisHost() string {
	host := os.Getenv(g.RedisHost)
	if host == "" {
		msg := fmt.Sprintf("%s is not defined", g.RedisHost)
		environmentLogger.Error().Msg(msg)
		panic(msg)
	}
	return host
}

func (g *gameServerEnvironment) GetRedisPort() int {
	portStr := os.Getenv(g.RedisPort)
	if portStr == "" {
		msg := fmt.Sprintf("%s is not defined", g.RedisPort)
		environmentLogger.Error().Msg(msg)
		panic(msg)
	}
	portNum, err := strconv.Atoi(portStr)
	if err != nil {
		msg := fmt.Sprintf("Invalid Redis port %s", portStr)
		environmentLogger.Error().Msg(msg)
		panic(msg)
	}
	return portNum
}

func (g *gameServerEnvironment) GetRedisPW() string {
	return os.Getenv(g.RedisPW)
}

func (g *gameServerEnvironment) GetRedisDB() int {
	dbStr := os.Getenv(g.RedisDB)
	if dbStr == "" {
		return 0
	}
	dbNum, err := strconv.Atoi(dbStr)
	if err != nil {
		msg := fmt.Sprintf("Invalid Redis db %s", dbStr)
		environmentLogger.Error().Msg(msg)
		panic(msg)
	}
	return dbNum
}

func (g *gameServerEnvironment) GetNatsURL() string {
	url := os.Getenv(g.NatsURL)
	if url == "" {
		return "nats://localhost:4222"
	}
	return url
}

func (g *gameServerEnvironment) GetApiServerURL() string {
	url := os.Getenv(g.APIServerURL)
	if url == "" {
		return "http://localhost:9501"
	}
	return url
}

// IsPostgresConfigured reports whether hand history should be written.
func (g *gameServerEnvironment) IsPostgresConfigured() bool {
	return os.Getenv(g.PostgresHost) != ""
}

func (g *gameServerEnvironment) GetPostgresHost() string {
	host := os.Getenv(g.PostgresHost)
	if host == "" {
		msg := fmt.Sprintf("%s is not defined", g.PostgresHost)
		environmentLogger.Error().Msg(msg)
		panic(msg)
	}
	return host
}

func (g *gameServerEnvironment) GetPostgresPort() int {
	portStr := os.Getenv(g.PostgresPort)
	if portStr == "" {
		return 5432
	}
	portNum, err := strconv.Atoi(portStr)
	if err != nil {
		msg := fmt.Sprintf("Invalid Postgres port %s", portStr)
		environmentLogger.Error().Msg(msg)
		panic(msg)
	}
	return portNum
}

func (g *gameServerEnvironment) GetPostgresUser() string {
	v := os.Getenv(g.PostgresUser)
	if v == "" {
		msg := fmt.Sprintf("%s is not defined", g.PostgresUser)
		environmentLogger.Error().Msg(msg)
		panic(msg)
	}
	return v
}

func (g *gameServerEnvironment) GetPostgresPW() string {
	v := os.Getenv(g.PostgresPW)
	if v == "" {
		msg := fmt.Sprintf("%s is not defined", g.PostgresPW)
		environmentLogger.Error().Msg(msg)
		panic(msg)
	}
	return v
}

func (g *gameServerEnvironment) GetPostgresDB() string {
	v := os.Getenv(g.PostgresDB)
	if v == "" {
		msg := fmt.Sprintf("%s is not defined", g.PostgresDB)
		environmentLogger.Error().Msg(msg)
		panic(msg)
	}
	return v
}

func (g *gameServerEnvironment) GetPostgresSSLMode() string {
	v := os.Getenv(g.PostgresSSL)
	if v == "" {
		return "disable"
	}
	return v
}

func (g *gameServerEnvironment) GetGameConfigFile() string {
	return os.Getenv(g.GameConfig)
}

func (g *gameServerEnvironment) GetZeroLogLogLevel() zerolog.Level {
	levelStr := os.Getenv(g.LogLevel)
	switch levelStr {
	case "":
		return zerolog.InfoLevel
	case "disabled":
		return zerolog.Disabled
	default:
		level, err := zerolog.ParseLevel(levelStr)
		if err != nil {
			msg := fmt.Sprintf("Invalid log level %s", levelStr)
			environmentLogger.Error().Msg(msg)
			panic(msg)
		}
		return level
	}
}

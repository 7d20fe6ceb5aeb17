package config

import (
	"log"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type key string

const (
	KeyLogger  = key("logger")
	KeyUUID    = key("uuid")
	KeySession = key("session")
	KeyMetrics = key("metrics")
)

type Config struct {
	Service   Service
	Platform  Platform
	Logger    Logger
	Postgres  Postgres
	Redis     Redis
	Kafka     Kafka
	FamilyAPI FamilyAPI
	Socket    Socket
	Session   Session
	Tree      Tree
	Local     Local
}

type Service struct {
	Port string `env:"SERVICE_PORT" env-default:"8080"`
	Name string `env:"SERVICE_NAME" env-default:"family-web"`
}

type Platform struct {
	Env string `env:"ENV" env-default:"dev"`
}

type Logger struct {
	Host string `env:"LOGGER_SERVICE_HOST"`
	Port string `env:"LOGGER_SERVICE_PORT"`
}

type Postgres struct {
	User     string `env:"FAMILY_WEB_POSTGRES_USER"`
	Password string `env:"FAMILY_WEB_POSTGRES_PASSWORD"`
	Database string `env:"FAMILY_WEB_POSTGRES_DB"`
	Host     string `env:"FAMILY_WEB_POSTGRES_HOST"`
	Port     string `env:"FAMILY_WEB_POSTGRES_PORT"`
}

type Redis struct {
	Host     string `env:"REDIS_HOST" env-default:"localhost"`
	Port     string `env:"REDIS_PORT" env-default:"6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB" env-default:"0"`
}

type Kafka struct {
	Host        string `env:"KAFKA_HOST"`
	Port        string `env:"KAFKA_PORT"`
	MemberTopic string `env:"FAMILY_MEMBER_TOPIC" env-default:"family.member.changed"`
}

type FamilyAPI struct {
	BaseURL       string        `env:"FAMILY_API_BASE_URL" env-default:"http://localhost:5000/api"`
	Timeout       time.Duration `env:"FAMILY_API_TIMEOUT" env-default:"30s"`
	SignInTimeout time.Duration `env:"SIGN_IN_TIMEOUT" env-default:"15s"`
}

type Socket struct {
	URL               string        `env:"FAMILY_SOCKET_URL" env-default:"ws://localhost:5000/ws"`
	ReconnectAttempts int           `env:"FAMILY_SOCKET_RECONNECT_ATTEMPTS" env-default:"5"`
	ReconnectDelay    time.Duration `env:"FAMILY_SOCKET_RECONNECT_DELAY" env-default:"1s"`
	HandshakeTimeout  time.Duration `env:"FAMILY_SOCKET_HANDSHAKE_TIMEOUT" env-default:"10s"`
}

type Session struct {
	Secret     string        `env:"SESSION_SECRET"`
	CookieName string        `env:"SESSION_COOKIE_NAME" env-default:"family_session"`
	TTL        time.Duration `env:"SESSION_TTL" env-default:"168h"`
	Secure     bool          `env:"SESSION_COOKIE_SECURE" env-default:"true"`
}

type Tree struct {
	CacheTTL      time.Duration `env:"TREE_CACHE_TTL" env-default:"5m"`
	CacheCapacity uint64        `env:"TREE_CACHE_CAPACITY" env-default:"1024"`
	MaxDepth      int           `env:"TREE_MAX_DEPTH" env-default:"64"`
}

// Local is used by familyctl only.
type Local struct {
	StoragePath string `env:"FAMILYCTL_STORAGE" env-default:"familyctl.db"`
}

func MustLoad() *Config {
	cfg := &Config{}
	if err := cleanenv.ReadEnv(cfg); err != nil {
		log.Fatalf("failed to read env variables: %s", err)
	}
	return cfg
}

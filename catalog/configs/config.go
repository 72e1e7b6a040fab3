package configs

import (
	"errors"
	"fmt"
	"io/fs"
	"moviecatalog/catalog/internal/media/s3"
	"moviecatalog/pkg/kvstore/mysql"
	"moviecatalog/pkg/kvstore/tiered"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Storage backends.
const (
	BackendMemory   = "memory"
	BackendMysql    = "mysql"
	BackendPostgres = "postgres"
)

type ServiceConfig struct {
	API              apiConfig              `yaml:"api"`
	Storage          StorageConfig          `yaml:"storage"`
	ServiceDiscovery serviceDiscoveryConfig `yaml:"serviceDiscovery"`
	MessengerConfig  MessengerConfig        `yaml:"messenger"`
	Metadata         MetadataConfig         `yaml:"metadata"`
	Trailer          TrailerConfig          `yaml:"trailer"`
	Media            MediaConfig            `yaml:"media"`
	Auth             AuthConfig             `yaml:"auth"`
	Backfill         BackfillConfig         `yaml:"backfill"`
	Prometheus       PrometheusConfig       `yaml:"prometheus"`
	Jaeger           JaegerConfig           `yaml:"jaeger"`
	Development      bool                   `yaml:"development"`
}

type apiConfig struct {
	Port         int      `yaml:"port"`
	GrpcPort     int      `yaml:"grpcPort"`
	Prefix       string   `yaml:"prefix"`
	AllowOrigins []string `yaml:"allowOrigins"`
	RateLimit    int      `yaml:"rateLimit"`
	RateBurst    int      `yaml:"rateBurst"`
	Hostname     string   `yaml:"hostname"`
}

type StorageConfig struct {
	Backend  string            `yaml:"backend"`
	Mysql    mysql.Config      `yaml:"mysql"`
	Postgres PostgresConfig    `yaml:"postgres"`
	Tiered   bool              `yaml:"tiered"`
	Policy   tiered.SyncPolicy `yaml:"policy"`
}

type PostgresConfig struct {
	DSN string `yaml:"dsn"`
}

type serviceDiscoveryConfig struct {
	Consul consulConfig `yaml:"consul"`
}

type consulConfig struct {
	Address string `yaml:"address"`
}

type MessengerConfig struct {
	Kafka kafkaConfig `yaml:"kafka"`
}

type kafkaConfig struct {
	Address string `yaml:"address"`
	Port    int    `yaml:"port"`
	GroupID string `yaml:"groupId"`
	Topic   string `yaml:"topic"`
}

type MetadataConfig struct {
	BaseURL   string        `yaml:"baseURL"`
	APIKey    string        `yaml:"apiKey"`
	RateLimit int           `yaml:"rateLimit"`
	Timeout   time.Duration `yaml:"timeout"`
	CacheSize int           `yaml:"cacheSize"`
	CacheTTL  time.Duration `yaml:"cacheTTL"`
}

type TrailerConfig struct {
	BaseURL   string `yaml:"baseURL"`
	RateLimit int    `yaml:"rateLimit"`
}

type MediaConfig struct {
	S3             s3.Config `yaml:"s3"`
	MaxUploadBytes int64     `yaml:"maxUploadBytes"`
}

type AuthConfig struct {
	Secret           string        `yaml:"secret"`
	TokenTTL         time.Duration `yaml:"tokenTTL"`
	ResetTTL         time.Duration `yaml:"resetTTL"`
	ExposeResetToken bool          `yaml:"exposeResetToken"`
}

type BackfillConfig struct {
	Interval  time.Duration `yaml:"interval"`
	RateLimit int           `yaml:"rateLimit"`
}

type PrometheusConfig struct {
	MetricsPort int `yaml:"metricsPort"`
}

type JaegerConfig struct {
	URL string `yaml:"url"`
}

// Load decodes the YAML file at path and overlays secrets from the
// environment. A .env file in the working directory is read when present.
func Load(path string) (*ServiceConfig, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var cfg ServiceConfig
	if err := yaml.NewDecoder(f).Decode(&cfg); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	cfg.overlayEnv()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *ServiceConfig) overlayEnv() {
	for name, dst := range map[string]*string{
		"MC_AUTH_SECRET":      &c.Auth.Secret,
		"MC_METADATA_API_KEY": &c.Metadata.APIKey,
		"MC_MYSQL_PASSWORD":   &c.Storage.Mysql.Pass,
		"MC_POSTGRES_DSN":     &c.Storage.Postgres.DSN,
		"MC_S3_ACCESS_KEY":    &c.Media.S3.AccessKey,
		"MC_S3_SECRET_KEY":    &c.Media.S3.SecretKey,
		"MC_STORAGE_BACKEND":  &c.Storage.Backend,
	} {
		if v, ok := os.LookupEnv(name); ok {
			*dst = v
		}
	}
}

// Validate checks the settings the service cannot start without.
func (c *ServiceConfig) Validate() error {
	switch c.Storage.Backend {
	case BackendMemory, BackendMysql, BackendPostgres:
	default:
		return fmt.Errorf("unknown storage backend %q", c.Storage.Backend)
	}
	if c.Storage.Tiered && c.Storage.Backend == BackendMemory {
		return errors.New("tiered storage needs a remote backend")
	}
	if c.Auth.Secret == "" {
		return errors.New("auth secret is required, set MC_AUTH_SECRET")
	}
	if c.API.Port <= 0 {
		return errors.New("api port is required")
	}
	return nil
}

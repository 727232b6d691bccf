package config

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const (
	configFileEnvKey  = "CONFIG_FILE"
	defaultConfigFile = "data/config.yaml"
)

type config struct {
	App       AppConfig       `yaml:"app"`
	HTTP      HTTPConfig      `yaml:"http"`
	Auth      AuthConfig      `yaml:"auth"`
	Storage   StorageConfig   `yaml:"storage"`
	Postgres  PostgresConfig  `yaml:"postgres"`
	SQLite    SQLiteConfig    `yaml:"sqlite"`
	Memcached MemcachedConfig `yaml:"memcached"`
	Kafka     KafkaConfig     `yaml:"kafka"`
	Tracing   TracingConfig   `yaml:"tracing"`
}

type Service struct {
	config config
}

// New reads the file named by CONFIG_FILE, or data/config.yaml when unset.
func New() (*Service, error) {
	path := os.Getenv(configFileEnvKey)
	if path == "" {
		path = defaultConfigFile
	}

	rawYAML, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading config file")
	}
	return Parse(rawYAML)
}

func Parse(rawYAML []byte) (*Service, error) {
	s := &Service{config: defaults()}

	err := yaml.Unmarshal(rawYAML, &s.config)
	if err != nil {
		return nil, errors.Wrap(err, "parsing yaml")
	}

	if err = s.validate(); err != nil {
		return nil, errors.Wrap(err, "validating config")
	}
	return s, nil
}

func defaults() config {
	return config{
		App: AppConfig{
			TimezoneName: "UTC",
			InitialPin:   "1234",
		},
		HTTP: HTTPConfig{
			ListenAddr:  ":5000",
			MetricsAddr: ":9090",
			Mode:        "release",
		},
		Auth: AuthConfig{
			Cookie: "session",
		},
		Storage: StorageConfig{
			DriverName: DriverSQLite,
		},
		Postgres: PostgresConfig{
			Hostname: "localhost",
			PortNum:  5432,
			SSL:      "disable",
		},
		SQLite: SQLiteConfig{
			FilePath: "data/finance.db",
		},
		Memcached: MemcachedConfig{
			TTLSeconds:  300,
			WarmMinutes: 15,
		},
		Kafka: KafkaConfig{
			Topic:    "finance-events",
			Consumer: "finance-reporter",
		},
		Tracing: TracingConfig{
			Service: "finance-tracker",
		},
	}
}

func (s *Service) validate() error {
	switch s.config.Storage.DriverName {
	case DriverPostgres, DriverSQLite, DriverMemory:
	default:
		return errors.Errorf("unknown storage driver %q", s.config.Storage.DriverName)
	}
	if _, err := s.config.App.Location(); err != nil {
		return err
	}
	if s.config.Auth.TTLHours < 0 {
		return errors.New("session-ttl-hours must not be negative")
	}
	if s.config.Memcached.WarmMinutes <= 0 {
		return errors.New("warm-interval-minutes must be positive")
	}
	return nil
}

func (s *Service) App() *AppConfig {
	return &s.config.App
}

func (s *Service) HTTP() *HTTPConfig {
	return &s.config.HTTP
}

func (s *Service) Auth() *AuthConfig {
	return &s.config.Auth
}

func (s *Service) Storage() *StorageConfig {
	return &s.config.Storage
}

func (s *Service) Postgres() *PostgresConfig {
	return &s.config.Postgres
}

func (s *Service) SQLite() *SQLiteConfig {
	return &s.config.SQLite
}

func (s *Service) Memcached() *MemcachedConfig {
	return &s.config.Memcached
}

func (s *Service) Kafka() *KafkaConfig {
	return &s.config.Kafka
}

func (s *Service) Tracing() *TracingConfig {
	return &s.config.Tracing
}

package config

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
	DriverMemory   = "memory"
)

type StorageConfig struct {
	DriverName string `yaml:"driver"`
}

func (s *StorageConfig) Driver() string {
	return s.DriverName
}

type SQLiteConfig struct {
	FilePath string `yaml:"path"`
}

func (s *SQLiteConfig) Path() string {
	return s.FilePath
}

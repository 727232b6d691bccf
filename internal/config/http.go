package config

type HTTPConfig struct {
	ListenAddr  string `yaml:"addr"`
	MetricsAddr string `yaml:"metrics-addr"`
	Mode        string `yaml:"gin-mode"`
}

func (s *HTTPConfig) Addr() string {
	return s.ListenAddr
}

func (s *HTTPConfig) MetricsListenAddr() string {
	return s.MetricsAddr
}

func (s *HTTPConfig) GinMode() string {
	return s.Mode
}

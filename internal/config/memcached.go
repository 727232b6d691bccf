package config

import "time"

type MemcachedConfig struct {
	NodeHosts   []string `yaml:"hosts"`
	TTLSeconds  int32    `yaml:"ttl-seconds"`
	WarmMinutes int64    `yaml:"warm-interval-minutes"`
}

func (s *MemcachedConfig) Hosts() []string {
	return s.NodeHosts
}

func (s *MemcachedConfig) TTL() time.Duration {
	return time.Duration(s.TTLSeconds) * time.Second
}

// WarmInterval is how often the reporter rebuilds today's dashboards on its own.
func (s *MemcachedConfig) WarmInterval() time.Duration {
	return time.Duration(s.WarmMinutes) * time.Minute
}

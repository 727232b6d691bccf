package config

import "time"

type AuthConfig struct {
	Secret     string `yaml:"session-secret"`
	TTLHours   int64  `yaml:"session-ttl-hours"`
	Cookie     string `yaml:"cookie-name"`
	SecureFlag bool   `yaml:"secure-cookie"`
}

func (s *AuthConfig) SessionSecret() string {
	return s.Secret
}

// SessionTTL of zero means sessions never expire.
func (s *AuthConfig) SessionTTL() time.Duration {
	return time.Duration(s.TTLHours) * time.Hour
}

func (s *AuthConfig) CookieName() string {
	return s.Cookie
}

func (s *AuthConfig) SecureCookie() bool {
	return s.SecureFlag
}

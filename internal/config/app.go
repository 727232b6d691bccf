package config

import (
	"time"

	"github.com/pkg/errors"
)

type AppConfig struct {
	TimezoneName string `yaml:"timezone"`
	InitialPin   string `yaml:"default-pin"`
}

// Location is the zone used to decide what "today" is.
func (s *AppConfig) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(s.TimezoneName)
	if err != nil {
		return nil, errors.Wrapf(err, "load timezone %s", s.TimezoneName)
	}
	return loc, nil
}

func (s *AppConfig) DefaultPin() string {
	return s.InitialPin
}

package tracing

import (
	"io"

	"github.com/pkg/errors"
	jaegercfg "github.com/uber/jaeger-client-go/config"
	"go.uber.org/zap"

	"max.ks1230/finance-tracker/internal/logger"
)

type config interface {
	Enabled() bool
	ServiceName() string
}

type nopCloser struct{}

func (nopCloser) Close() error {
	return nil
}

// Init installs a global jaeger tracer. Agent location and sampling can be
// overridden with the standard JAEGER_* environment variables.
func Init(config config) (io.Closer, error) {
	if !config.Enabled() {
		logger.Info("tracing disabled")
		return nopCloser{}, nil
	}

	cfg, err := jaegercfg.FromEnv()
	if err != nil {
		return nil, errors.Wrap(err, "read jaeger env")
	}
	if cfg.Sampler == nil {
		cfg.Sampler = &jaegercfg.SamplerConfig{}
	}
	if cfg.Sampler.Type == "" {
		cfg.Sampler.Type = "const"
		cfg.Sampler.Param = 1
	}

	closer, err := cfg.InitGlobalTracer(config.ServiceName())
	if err != nil {
		return nil, errors.Wrap(err, "init tracer")
	}
	logger.Info("tracing enabled", zap.String("service", config.ServiceName()))
	return closer, nil
}

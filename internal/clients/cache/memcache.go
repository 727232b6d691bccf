package cache

import (
	"strconv"
	"time"

	"github.com/bradfitz/gomemcache/memcache"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"max.ks1230/finance-tracker/internal/logger"
	"max.ks1230/finance-tracker/internal/model/calendar"
)

const (
	keyPrefix     = "dashboard:"
	generationKey = keyPrefix + "generation"
)

type memcacheClient interface {
	Get(key string) (*memcache.Item, error)
	Set(item *memcache.Item) error
	Add(item *memcache.Item) error
	Increment(key string, delta uint64) (uint64, error)
}

// MemcacheClient stores rendered dashboards under a generation counter.
// Invalidation bumps the counter instead of deleting entries, so a rebuild
// that started before a change can only write under a retired generation.
type MemcacheClient struct {
	client memcacheClient
	ttl    time.Duration
	now    func() time.Time
}

type config interface {
	Hosts() []string
	TTL() time.Duration
}

func NewMemcache(config config) (*MemcacheClient, error) {
	logger.Info("memcached hosts", zap.Strings("hosts", config.Hosts()))
	mc := memcache.New(config.Hosts()...)
	return newMemcacheClient(mc, config.TTL()), mc.Ping()
}

func newMemcacheClient(client memcacheClient, ttl time.Duration) *MemcacheClient {
	return &MemcacheClient{client: client, ttl: ttl, now: time.Now}
}

// formatKey ties an entry to a generation and to the day it was built for,
// so a new day never sees yesterday's windows.
func formatKey(generation uint64, period string, day time.Time) string {
	return keyPrefix + strconv.FormatUint(generation, 10) + ":" + period + ":" + calendar.FormatDate(day)
}

// seedItem starts a missing counter from the clock, which keeps it ahead of
// any generation used before the counter was evicted.
func (mc *MemcacheClient) seedItem() *memcache.Item {
	return &memcache.Item{
		Key:   generationKey,
		Value: []byte(strconv.FormatInt(mc.now().UnixNano(), 10)),
	}
}

func (mc *MemcacheClient) Generation() (uint64, error) {
	item, err := mc.client.Get(generationKey)
	if errors.Is(err, memcache.ErrCacheMiss) {
		seed := mc.seedItem()
		err = mc.client.Add(seed)
		if err == nil {
			return parseGeneration(seed.Value)
		}
		if !errors.Is(err, memcache.ErrNotStored) {
			return 0, errors.Wrap(err, "seed generation")
		}
		item, err = mc.client.Get(generationKey)
	}
	if err != nil {
		return 0, errors.Wrap(err, "get generation")
	}
	return parseGeneration(item.Value)
}

func parseGeneration(raw []byte) (uint64, error) {
	gen, err := strconv.ParseUint(string(raw), 10, 64)
	return gen, errors.Wrap(err, "parse generation")
}

func (mc *MemcacheClient) CacheDashboard(generation uint64, period string, day time.Time, payload []byte) error {
	logger.Debug("cache dashboard",
		zap.Uint64("generation", generation),
		zap.String("period", period),
		zap.Time("day", day))
	return mc.client.Set(&memcache.Item{
		Key:        formatKey(generation, period, day),
		Value:      payload,
		Expiration: int32(mc.ttl.Seconds()),
	})
}

func (mc *MemcacheClient) GetDashboard(generation uint64, period string, day time.Time) ([]byte, bool, error) {
	item, err := mc.client.Get(formatKey(generation, period, day))
	if errors.Is(err, memcache.ErrCacheMiss) {
		observeLookup(false)
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	observeLookup(true)
	return item.Value, true, nil
}

// InvalidateDashboards retires every cached dashboard by moving to the next
// generation.
func (mc *MemcacheClient) InvalidateDashboards() error {
	gen, err := mc.client.Increment(generationKey, 1)
	if err == nil {
		logger.Debug("invalidate dashboards", zap.Uint64("generation", gen))
		return nil
	}
	if !errors.Is(err, memcache.ErrCacheMiss) {
		return errors.Wrap(err, "bump generation")
	}

	err = mc.client.Add(mc.seedItem())
	if errors.Is(err, memcache.ErrNotStored) {
		_, err = mc.client.Increment(generationKey, 1)
	}
	return errors.Wrap(err, "seed generation")
}

// Noop is used when no memcached hosts are configured.
type Noop struct{}

func (Noop) Generation() (uint64, error) {
	return 0, nil
}

func (Noop) CacheDashboard(uint64, string, time.Time, []byte) error {
	return nil
}

func (Noop) GetDashboard(uint64, string, time.Time) ([]byte, bool, error) {
	return nil, false, nil
}

func (Noop) InvalidateDashboards() error {
	return nil
}

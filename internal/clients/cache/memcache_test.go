package cache

import (
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/bradfitz/gomemcache/memcache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeMemcache follows memcached semantics for the commands the client uses.
type fakeMemcache struct {
	mu    sync.Mutex
	items map[string][]byte
}

func newFakeMemcache() *fakeMemcache {
	return &fakeMemcache{items: make(map[string][]byte)}
}

func (f *fakeMemcache) Get(key string) (*memcache.Item, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	v, ok := f.items[key]
	if !ok {
		return nil, memcache.ErrCacheMiss
	}
	return &memcache.Item{Key: key, Value: v}, nil
}

func (f *fakeMemcache) Set(item *memcache.Item) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.items[item.Key] = item.Value
	return nil
}

func (f *fakeMemcache) Add(item *memcache.Item) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.items[item.Key]; ok {
		return memcache.ErrNotStored
	}
	f.items[item.Key] = item.Value
	return nil
}

func (f *fakeMemcache) Increment(key string, delta uint64) (uint64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	v, ok := f.items[key]
	if !ok {
		return 0, memcache.ErrCacheMiss
	}
	n, err := strconv.ParseUint(string(v), 10, 64)
	if err != nil {
		return 0, err
	}
	n += delta
	f.items[key] = []byte(strconv.FormatUint(n, 10))
	return n, nil
}

func (f *fakeMemcache) evict(key string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.items, key)
}

var day = time.Date(2025, time.January, 25, 0, 0, 0, 0, time.UTC)

func newTestClient(fake *fakeMemcache, now time.Time) *MemcacheClient {
	mc := newMemcacheClient(fake, time.Minute)
	mc.now = func() time.Time { return now }
	return mc
}

func Test_OnFormatKey_ShouldIncludeGenerationPeriodAndDay(t *testing.T) {
	assert.Equal(t, "dashboard:7:monthly:2025-01-25", formatKey(7, "monthly", day))
	assert.NotEqual(t, formatKey(7, "monthly", day), formatKey(7, "monthly", day.AddDate(0, 0, 1)))
	assert.NotEqual(t, formatKey(7, "monthly", day), formatKey(8, "monthly", day))
}

func Test_OnGeneration_ShouldSeedMissingCounterFromClock(t *testing.T) {
	now := time.Unix(1700000000, 0)
	mc := newTestClient(newFakeMemcache(), now)

	gen, err := mc.Generation()
	require.NoError(t, err)
	assert.Equal(t, uint64(now.UnixNano()), gen)

	again, err := mc.Generation()
	require.NoError(t, err)
	assert.Equal(t, gen, again)
}

func Test_OnCacheDashboard_ShouldBeReadableUnderSameGeneration(t *testing.T) {
	mc := newTestClient(newFakeMemcache(), time.Unix(1700000000, 0))
	gen, err := mc.Generation()
	require.NoError(t, err)

	require.NoError(t, mc.CacheDashboard(gen, "daily", day, []byte(`{"summary":{}}`)))

	payload, ok, err := mc.GetDashboard(gen, "daily", day)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.JSONEq(t, `{"summary":{}}`, string(payload))

	_, ok, err = mc.GetDashboard(gen, "weekly", day)
	require.NoError(t, err)
	assert.False(t, ok)
}

func Test_OnInvalidate_ShouldHideRebuildStartedBeforeChange(t *testing.T) {
	mc := newTestClient(newFakeMemcache(), time.Unix(1700000000, 0))

	// a rebuild reads the generation, then a write lands before it stores
	before, err := mc.Generation()
	require.NoError(t, err)
	require.NoError(t, mc.InvalidateDashboards())
	require.NoError(t, mc.CacheDashboard(before, "monthly", day, []byte("stale")))

	current, err := mc.Generation()
	require.NoError(t, err)
	assert.Greater(t, current, before)

	_, ok, err := mc.GetDashboard(current, "monthly", day)
	require.NoError(t, err)
	assert.False(t, ok)
}

func Test_OnInvalidate_ShouldMoveAheadOfEvictedCounter(t *testing.T) {
	fake := newFakeMemcache()
	old := newTestClient(fake, time.Unix(1700000000, 0))
	before, err := old.Generation()
	require.NoError(t, err)

	fake.evict(generationKey)

	mc := newTestClient(fake, time.Unix(1700000100, 0))
	require.NoError(t, mc.InvalidateDashboards())
	after, err := mc.Generation()
	require.NoError(t, err)
	assert.Greater(t, after, before)
}

func Test_OnNoop_ShouldAlwaysMiss(t *testing.T) {
	var c Noop

	gen, err := c.Generation()
	assert.NoError(t, err)
	assert.NoError(t, c.CacheDashboard(gen, "daily", day, []byte("{}")))
	payload, ok, err := c.GetDashboard(gen, "daily", day)
	assert.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, payload)
	assert.NoError(t, c.InvalidateDashboards())
}

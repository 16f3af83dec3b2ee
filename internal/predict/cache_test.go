package predict

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"big5-analyzer/internal/domain"
)

type mockRedisKVClient struct {
	store      map[string]string
	lastSetKey string
	lastSetTTL time.Duration

	getErr error
	setErr error
}

func newMockRedisKVClient() *mockRedisKVClient {
	return &mockRedisKVClient{store: make(map[string]string)}
}

func (m *mockRedisKVClient) Get(ctx context.Context, key string) *redis.StringCmd {
	cmd := redis.NewStringCmd(ctx)
	if m.getErr != nil {
		cmd.SetErr(m.getErr)
		return cmd
	}
	val, ok := m.store[key]
	if !ok {
		cmd.SetErr(redis.Nil)
		return cmd
	}
	cmd.SetVal(val)
	return cmd
}

func (m *mockRedisKVClient) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd {
	m.lastSetKey = key
	m.lastSetTTL = expiration
	cmd := redis.NewStatusCmd(ctx)
	if m.setErr != nil {
		cmd.SetErr(m.setErr)
		return cmd
	}
	switch v := value.(type) {
	case []byte:
		m.store[key] = string(v)
	case string:
		m.store[key] = v
	}
	cmd.SetVal("OK")
	return cmd
}

func samplePrediction() domain.Prediction {
	return domain.Prediction{
		Scores:   map[string]float64{domain.TraitOpenness: 0.7},
		Profiles: []string{"Analytical thinker"},
	}
}

func TestMemoryCache_Basics(t *testing.T) {
	if NewMemoryCache(0) != nil {
		t.Fatalf("expected nil cache for zero ttl")
	}

	c := NewMemoryCache(time.Minute).(*memoryCache)
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return now }

	if _, ok, _ := c.Get(context.Background(), "k"); ok {
		t.Fatalf("expected miss on empty cache")
	}
	if err := c.Set(context.Background(), "k", samplePrediction()); err != nil {
		t.Fatalf("set: %v", err)
	}
	got, ok, err := c.Get(context.Background(), "k")
	if err != nil || !ok {
		t.Fatalf("expected hit, got ok=%v err=%v", ok, err)
	}
	if got.Scores[domain.TraitOpenness] != 0.7 {
		t.Fatalf("unexpected cached prediction %+v", got)
	}

	now = now.Add(2 * time.Minute)
	if _, ok, _ := c.Get(context.Background(), "k"); ok {
		t.Fatalf("expected expired entry to miss")
	}
}

func TestRedisCache_GetSet(t *testing.T) {
	mock := newMockRedisKVClient()
	c := &redisCache{client: mock, ttl: 5 * time.Minute, prefix: "predict:cache:"}

	if _, ok, err := c.Get(context.Background(), "abc"); ok || err != nil {
		t.Fatalf("expected clean miss, got ok=%v err=%v", ok, err)
	}

	if err := c.Set(context.Background(), "abc", samplePrediction()); err != nil {
		t.Fatalf("set: %v", err)
	}
	if mock.lastSetKey != "predict:cache:abc" {
		t.Fatalf("unexpected key %q", mock.lastSetKey)
	}
	if mock.lastSetTTL != 5*time.Minute {
		t.Fatalf("unexpected ttl %s", mock.lastSetTTL)
	}

	got, ok, err := c.Get(context.Background(), "abc")
	if err != nil || !ok {
		t.Fatalf("expected hit, got ok=%v err=%v", ok, err)
	}
	if len(got.Profiles) != 1 || got.Profiles[0] != "Analytical thinker" {
		t.Fatalf("unexpected profiles %+v", got.Profiles)
	}
}

func TestRedisCache_Errors(t *testing.T) {
	mock := newMockRedisKVClient()
	mock.getErr = errors.New("redis down")
	c := &redisCache{client: mock, ttl: time.Minute, prefix: "predict:cache:"}
	if _, _, err := c.Get(context.Background(), "abc"); err == nil {
		t.Fatalf("expected redis error")
	}

	mock.getErr = nil
	mock.store["predict:cache:bad"] = "not-json"
	if _, ok, err := c.Get(context.Background(), "bad"); ok || err == nil {
		t.Fatalf("expected decode error, got ok=%v err=%v", ok, err)
	}
}

type failingCache struct{}

func (failingCache) Get(context.Context, string) (domain.Prediction, bool, error) {
	return domain.Prediction{}, false, errors.New("cache down")
}

func (failingCache) Set(context.Context, string, domain.Prediction) error {
	return errors.New("cache down")
}

func TestCachingPredictor(t *testing.T) {
	t.Run("nil cache returns next", func(t *testing.T) {
		next := &MockClient{}
		if got := NewCachingPredictor(next, nil, zap.NewNop()); got != Predictor(next) {
			t.Fatalf("expected passthrough predictor")
		}
	})

	t.Run("second call served from cache", func(t *testing.T) {
		next := &MockClient{Response: samplePrediction()}
		p := NewCachingPredictor(next, NewMemoryCache(time.Minute), zap.NewNop())
		for i := 0; i < 2; i++ {
			if _, err := p.Predict(context.Background(), "same text"); err != nil {
				t.Fatalf("predict: %v", err)
			}
		}
		if next.Calls() != 1 {
			t.Fatalf("expected 1 upstream call, got %d", next.Calls())
		}
	})

	t.Run("errors are not cached", func(t *testing.T) {
		next := &MockClient{Err: &TransportError{Op: "do request", Err: errors.New("refused")}}
		p := NewCachingPredictor(next, NewMemoryCache(time.Minute), zap.NewNop())
		for i := 0; i < 2; i++ {
			if _, err := p.Predict(context.Background(), "same text"); !errors.Is(err, ErrTransport) {
				t.Fatalf("expected transport error, got %v", err)
			}
		}
		if next.Calls() != 2 {
			t.Fatalf("expected 2 upstream calls, got %d", next.Calls())
		}
	})

	t.Run("cache failures fall through", func(t *testing.T) {
		next := &MockClient{Response: samplePrediction()}
		p := NewCachingPredictor(next, failingCache{}, zap.NewNop())
		got, err := p.Predict(context.Background(), "text")
		if err != nil {
			t.Fatalf("expected fail-open, got %v", err)
		}
		if got.Scores[domain.TraitOpenness] != 0.7 {
			t.Fatalf("unexpected prediction %+v", got)
		}
	})
}

func TestCacheKeyIgnoresSurroundingSpace(t *testing.T) {
	if CacheKey("  hola  ") != CacheKey("hola") {
		t.Fatalf("expected trimmed keys to match")
	}
	raw, _ := json.Marshal(CacheKey("hola"))
	if len(raw) != 66 {
		t.Fatalf("expected hex sha256 key, got %s", raw)
	}
}

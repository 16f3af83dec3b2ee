package predict

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"big5-analyzer/internal/domain"
)

// Cache guarda predicciones por texto para no repetir la llamada al modelo.
type Cache interface {
	Get(ctx context.Context, key string) (domain.Prediction, bool, error)
	Set(ctx context.Context, key string, prediction domain.Prediction) error
}

// CacheKey deriva la clave a partir del texto ya recortado.
func CacheKey(text string) string {
	sum := sha256.Sum256([]byte(strings.TrimSpace(text)))
	return hex.EncodeToString(sum[:])
}

type memoryEntry struct {
	prediction domain.Prediction
	expiresAt  time.Time
}

type memoryCache struct {
	mu    sync.Mutex
	ttl   time.Duration
	items map[string]memoryEntry
	now   func() time.Time
}

func NewMemoryCache(ttl time.Duration) Cache {
	if ttl <= 0 {
		return nil
	}
	return &memoryCache{
		ttl:   ttl,
		items: make(map[string]memoryEntry),
		now:   time.Now,
	}
}

func (c *memoryCache) Get(_ context.Context, key string) (domain.Prediction, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	entry, ok := c.items[key]
	if !ok {
		return domain.Prediction{}, false, nil
	}
	if c.now().After(entry.expiresAt) {
		delete(c.items, key)
		return domain.Prediction{}, false, nil
	}
	return entry.prediction, true, nil
}

func (c *memoryCache) Set(_ context.Context, key string, prediction domain.Prediction) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if strings.TrimSpace(key) == "" {
		return nil
	}
	c.items[key] = memoryEntry{prediction: prediction, expiresAt: c.now().Add(c.ttl)}
	return nil
}

type redisKVClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}

type redisCache struct {
	client redisKVClient
	ttl    time.Duration
	prefix string
}

func NewRedisCache(client *redis.Client, ttl time.Duration) Cache {
	if client == nil || ttl <= 0 {
		return nil
	}
	return &redisCache{
		client: client,
		ttl:    ttl,
		prefix: "predict:cache:",
	}
}

func (c *redisCache) Get(ctx context.Context, key string) (domain.Prediction, bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 500*time.Millisecond)
	defer cancel()

	raw, err := c.client.Get(ctx, c.prefix+key).Result()
	if errors.Is(err, redis.Nil) {
		return domain.Prediction{}, false, nil
	}
	if err != nil {
		return domain.Prediction{}, false, err
	}

	var prediction domain.Prediction
	if err := json.Unmarshal([]byte(raw), &prediction); err != nil {
		return domain.Prediction{}, false, err
	}
	return prediction, true, nil
}

func (c *redisCache) Set(ctx context.Context, key string, prediction domain.Prediction) error {
	if strings.TrimSpace(key) == "" {
		return nil
	}
	payload, err := json.Marshal(prediction)
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(ctx, 500*time.Millisecond)
	defer cancel()
	return c.client.Set(ctx, c.prefix+key, payload, c.ttl).Err()
}

// CachingPredictor consulta la cache antes de delegar. Los errores de cache no cortan el flujo.
type CachingPredictor struct {
	next   Predictor
	cache  Cache
	logger *zap.Logger
}

// NewCachingPredictor devuelve next tal cual si no hay cache configurada.
func NewCachingPredictor(next Predictor, cache Cache, logger *zap.Logger) Predictor {
	if cache == nil {
		return next
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CachingPredictor{next: next, cache: cache, logger: logger}
}

func (p *CachingPredictor) Predict(ctx context.Context, text string) (domain.Prediction, error) {
	key := CacheKey(text)

	cached, ok, err := p.cache.Get(ctx, key)
	if err != nil {
		p.logger.Warn("prediction cache get failed", zap.Error(err))
	} else if ok {
		p.logger.Debug("prediction cache hit", zap.String("key", key))
		return cached, nil
	}

	prediction, err := p.next.Predict(ctx, text)
	if err != nil {
		return domain.Prediction{}, err
	}

	if err := p.cache.Set(ctx, key, prediction); err != nil {
		p.logger.Warn("prediction cache set failed", zap.Error(err))
	}
	return prediction, nil
}

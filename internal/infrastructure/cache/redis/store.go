package redis

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/valyala/bytebufferpool"

	"github.com/myteamshq/sports-hub/internal/platform/logging"
)

const scanBatchSize = 200

type Config struct {
	Addr         string
	Password     string
	DB           int
	KeyNamespace string
}

// Store is the shared-cache backend. All operations are best effort: a Redis
// failure degrades to a cache miss and is logged, never returned, so the read
// path stays up when Redis is down.
type Store struct {
	client    *redis.Client
	namespace string
	logger    *logging.Logger
}

func NewStore(cfg Config, logger *logging.Logger) (*Store, error) {
	if logger == nil {
		logger = logging.Default()
	}

	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		MaxRetries:   3,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}

	return &Store{client: client, namespace: cfg.KeyNamespace, logger: logger}, nil
}

// NewStoreWithClient wires an existing client, which tests use with miniredis.
func NewStoreWithClient(client *redis.Client, namespace string, logger *logging.Logger) *Store {
	if logger == nil {
		logger = logging.Default()
	}
	return &Store{client: client, namespace: namespace, logger: logger}
}

func (s *Store) Get(ctx context.Context, key string) ([]byte, bool) {
	value, err := s.client.Get(ctx, s.fullKey(key)).Bytes()
	if err != nil {
		if err != redis.Nil {
			s.logger.WarnContext(ctx, "redis get failed", "key", key, "error", err)
		}
		return nil, false
	}
	return value, true
}

func (s *Store) Set(ctx context.Context, key string, value []byte, ttl time.Duration) {
	if err := s.client.Set(ctx, s.fullKey(key), value, ttl).Err(); err != nil {
		s.logger.WarnContext(ctx, "redis set failed", "key", key, "error", err)
	}
}

// DeletePrefix removes every key under the prefix using SCAN so invalidation
// never blocks the server the way KEYS would.
func (s *Store) DeletePrefix(ctx context.Context, prefix string) {
	pattern := s.fullKey(prefix) + "*"

	var cursor uint64
	for {
		keys, next, err := s.client.Scan(ctx, cursor, pattern, scanBatchSize).Result()
		if err != nil {
			s.logger.WarnContext(ctx, "redis scan failed", "prefix", prefix, "error", err)
			return
		}
		if len(keys) > 0 {
			if err := s.client.Del(ctx, keys...).Err(); err != nil {
				s.logger.WarnContext(ctx, "redis delete failed", "prefix", prefix, "keys", len(keys), "error", err)
				return
			}
		}
		cursor = next
		if cursor == 0 {
			return
		}
	}
}

func (s *Store) Close() error {
	return s.client.Close()
}

func (s *Store) fullKey(key string) string {
	if s.namespace == "" {
		return key
	}
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)
	_, _ = buf.WriteString(s.namespace)
	_ = buf.WriteByte(':')
	_, _ = buf.WriteString(key)
	return buf.String()
}

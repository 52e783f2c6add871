package rdx

import (
	"context"
	"time"

	"github.com/Circulx/Fathom-Legal-sub001/config"

	"github.com/redis/go-redis/v9"
)

var Conn *redis.Client

var ctx = context.Background()

// Init connects the shared redis client. Callers treat cache errors as
// soft failures; redis being down must never break a request.
func Init(cfg config.Redis) error {
	Conn = redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
	})
	return Conn.Ping(ctx).Err()
}

func SetWithExpiry(key, value string, ttl time.Duration) error {
	return Conn.Set(ctx, key, value, ttl).Err()
}

func RdxGet(key string) (string, error) {
	return Conn.Get(ctx, key).Result()
}

func RdxDel(key string) error {
	return Conn.Del(ctx, key).Err()
}

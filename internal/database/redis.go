package database

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/sasss77/Inskspira-A-digital-Art-Portfolio-Web--sub000/internal/config"
)

var Redis *redis.Client
var Ctx = context.Background()

func InitRedis() {
	Redis = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       0,
	})

	if _, err := Redis.Ping(Ctx).Result(); err != nil {
		log.Printf("Warning: Failed to connect to Redis: %v. View dedup and trending cache will be disabled.", err)
	} else {
		log.Println("Connected to Redis successfully")
	}
}

// MarkViewed records that viewer saw the artwork and reports whether
// this is the first view inside the dedup window. Without Redis every
// view counts.
func MarkViewed(viewerKey, artworkID string, window time.Duration) bool {
	if Redis == nil {
		return true
	}
	key := fmt.Sprintf("view:%s:%s", artworkID, viewerKey)
	ok, err := Redis.SetNX(Ctx, key, 1, window).Result()
	if err != nil {
		return true
	}
	return ok
}

func CacheSet(key string, value interface{}, expiration time.Duration) error {
	if Redis == nil {
		return redis.Nil
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return Redis.Set(Ctx, key, raw, expiration).Err()
}

func CacheGet(key string, dest interface{}) error {
	if Redis == nil {
		return redis.Nil
	}
	val, err := Redis.Get(Ctx, key).Result()
	if err != nil {
		return err
	}
	return json.Unmarshal([]byte(val), dest)
}

func CacheInvalidate(pattern string) error {
	if Redis == nil {
		return nil
	}
	keys, err := Redis.Keys(Ctx, pattern).Result()
	if err != nil {
		return err
	}
	if len(keys) > 0 {
		return Redis.Del(Ctx, keys...).Err()
	}
	return nil
}

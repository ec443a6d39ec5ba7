package database

import (
	"context"
	"log"
	"time"

	"github.com/go-redis/redis/v8"

	"bimbelku_backend/internals/configs"
)

// Redis dipakai sebagai cache opsional (ringkasan analitik bulanan).
// Kalau REDIS_ADDR kosong atau koneksi gagal, semua operasi cache jadi no-op
// dan pembacaan jatuh ke DB.
var Redis *redis.Client

func ConnectRedis() {
	addr := configs.GetEnv("REDIS_ADDR")
	if addr == "" {
		log.Println("[INFO] REDIS_ADDR kosong, cache dinonaktifkan")
		return
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: configs.GetEnv("REDIS_PASSWORD"),
		DB:       configs.GetEnvInt("REDIS_DB", 0),
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Printf("[WARN] Redis tidak terjangkau (%v), cache dinonaktifkan", err)
		return
	}

	Redis = client
	log.Println("✅ Redis connected.")
}

// CacheGet mengembalikan ("", redis.Nil) saat miss; ("", nil) saat cache mati.
func CacheGet(ctx context.Context, key string) (string, error) {
	if Redis == nil {
		return "", nil
	}
	return Redis.Get(ctx, key).Result()
}

func CacheSet(ctx context.Context, key, value string, ttl time.Duration) {
	if Redis == nil {
		return
	}
	if err := Redis.Set(ctx, key, value, ttl).Err(); err != nil {
		log.Printf("[WARN] cache set %s: %v", key, err)
	}
}

func CacheDel(ctx context.Context, keys ...string) {
	if Redis == nil || len(keys) == 0 {
		return
	}
	if err := Redis.Del(ctx, keys...).Err(); err != nil {
		log.Printf("[WARN] cache del: %v", err)
	}
}

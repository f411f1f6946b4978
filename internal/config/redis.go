package config

import (
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// NewRedisClient: rapor cache'i için Redis bağlantısı kurar.
// REDIS_ADDR tanımlı değilse veya bağlantı kurulamazsa nil döner;
// çağıran taraf cache'i devre dışı bırakarak devam eder.
func NewRedisClient(cfg *Config) *redis.Client {
	if cfg.RedisAddr == "" {
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Printf("[WARN] Redis'e bağlanılamadı (%s), rapor cache devre dışı: %v", cfg.RedisAddr, err)
		return nil
	}

	log.Println("Redis bağlantısı başarılı, rapor cache aktif.")
	return client
}

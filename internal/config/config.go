package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPPort    string
	DatabaseDSN string
	JWTSecret   string
	CORSOrigins string

	// Ad-hoc konsol sorguları için statement timeout (ms)
	QueryTimeoutMS int

	// Rapor cache (Redis) ayarları; RedisAddr boşsa cache devre dışı
	RedisAddr     string
	RedisPassword string
	CacheTTL      time.Duration

	// Sipariş durum olayları için AMQP; boşsa publish atlanır
	RabbitMQURL string

	// Demo verisi (mock fallback'lerin yerine geçen seed)
	SeedDemoData bool
}

func Load() *Config {
	// .env varsa yükle, yoksa sessizce geç (production'da env doğrudan gelir)
	_ = godotenv.Load()

	cfg := &Config{
		HTTPPort:       getEnv("HTTP_PORT", "8080"),
		DatabaseDSN:    getEnv("DATABASE_DSN", "host=localhost user=postgres password=postgres dbname=agropazar port=5432 sslmode=disable connect_timeout=2"),
		JWTSecret:      getEnv("JWT_SECRET", ""),
		CORSOrigins:    getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
		QueryTimeoutMS: getEnvInt("QUERY_TIMEOUT_MS", 5000),
		RedisAddr:      getEnv("REDIS_ADDR", ""),
		RedisPassword:  getEnv("REDIS_PASSWORD", ""),
		CacheTTL:       time.Duration(getEnvInt("CACHE_TTL_SECONDS", 60)) * time.Second,
		RabbitMQURL:    getEnv("RABBITMQ_URL", ""),
		SeedDemoData:   getEnv("SEED_DEMO_DATA", "false") == "true",
	}

	// Production güvenlik kontrolleri
	if cfg.JWTSecret == "" {
		log.Fatal("[FATAL] JWT_SECRET environment değişkeni tanımlanmamış! Production için zorunludur.")
	}
	if len(cfg.JWTSecret) < 32 {
		log.Fatal("[FATAL] JWT_SECRET en az 32 karakter olmalıdır! Güvenlik riski.")
	}
	if cfg.DatabaseDSN == "host=localhost user=postgres password=postgres dbname=agropazar port=5432 sslmode=disable connect_timeout=2" {
		log.Println("[WARN] DATABASE_DSN varsayılan değer kullanılıyor, production için mutlaka kendi Postgres bağlantı bilgisini tanımla.")
	}
	if cfg.QueryTimeoutMS <= 0 {
		log.Println("[WARN] QUERY_TIMEOUT_MS geçersiz, 5000ms kullanılıyor.")
		cfg.QueryTimeoutMS = 5000
	}

	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

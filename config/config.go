package config

import "os"

type Config struct {
	Env           string
	Port          string
	MongoURI      string
	DBName        string
	UploadDir     string
	CORSOrigin    string
	AuthEnabled   bool
	JWTSecret     string
	RedisAddr     string
	RedisPassword string
	CreateLimit   int // max issue submissions per client per day, 0 = unlimited
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func Load() Config {
	return Config{
		Env:           env("GO_ENV", "dev"),
		Port:          env("PORT", "4000"),
		MongoURI:      env("MONGODB_URI", "mongodb://localhost:27017"),
		DBName:        env("MONGODB_DB", "civic_connect"),
		UploadDir:     env("UPLOAD_DIR", "uploads"),
		CORSOrigin:    env("CORS_ORIGIN", "*"),
		AuthEnabled:   env("ENABLE_AUTH", "") == "true",
		JWTSecret:     env("JWT_SECRET", ""),
		RedisAddr:     env("REDIS_ADDRESS", ""),
		RedisPassword: env("REDIS_PASSWORD", ""),
		CreateLimit:   20,
	}
}

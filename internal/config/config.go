package config

import (
	"errors"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Env            string
	MongoURI       string
	MongoDB        string
	ServerAddr     string
	FrontendOrigin string

	RedisURL        string
	RedisAddr       string
	RedisPassword   string
	RedisDB         int
	CacheTTLSeconds int

	AdminEmail    string
	AdminPassword string

	JWTSecret         string
	AccessTTLMinutes  int
	RefreshTTLMinutes int
	CookieSecure      bool

	RateLimitContact   int
	RateLimitUpload    int
	RateLimitWindowSec int

	CloudinaryCloudName string
	CloudinaryAPIKey    string
	CloudinaryAPISecret string
	CloudinaryFolder    string

	Timezone *time.Location
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	loc, err := time.LoadLocation(getEnv("TZ", "Asia/Karachi"))
	if err != nil {
		return nil, err
	}

	mongoURI := getEnv("MONGO_URI", "")
	if mongoURI == "" {
		return nil, errors.New("MONGO_URI is required")
	}
	mongoDB := getEnv("MONGO_DB", "")
	if mongoDB == "" {
		mongoDB = mongoDBFromURI(mongoURI)
	}
	if mongoDB == "" {
		mongoDB = "xcelliti"
	}

	cfg := &Config{
		Env:            getEnv("APP_ENV", "development"),
		MongoURI:       mongoURI,
		MongoDB:        mongoDB,
		ServerAddr:     getEnv("SERVER_ADDR", ":8080"),
		FrontendOrigin: getEnv("FRONTEND_ORIGIN", "http://localhost:3000"),

		RedisURL:        getEnv("REDIS_URL", ""),
		RedisAddr:       getEnv("REDIS_ADDR", ""),
		RedisPassword:   getEnv("REDIS_PASSWORD", ""),
		RedisDB:         getEnvInt("REDIS_DB", 0),
		CacheTTLSeconds: getEnvInt("CACHE_TTL_SECONDS", 60),

		AdminEmail:    getEnv("ADMIN_EMAIL", ""),
		AdminPassword: getEnv("ADMIN_PASSWORD", ""),

		JWTSecret:         getEnv("JWT_SECRET", ""),
		AccessTTLMinutes:  getEnvInt("ACCESS_TTL_MINUTES", 15),
		RefreshTTLMinutes: getEnvInt("REFRESH_TTL_MINUTES", 43200),
		CookieSecure:      getEnv("COOKIE_SECURE", "false") == "true",

		RateLimitContact:   getEnvInt("RATE_LIMIT_CONTACT", 5),
		RateLimitUpload:    getEnvInt("RATE_LIMIT_UPLOAD", 10),
		RateLimitWindowSec: getEnvInt("RATE_LIMIT_WINDOW_SEC", 60),

		CloudinaryCloudName: getEnv("CLOUDINARY_CLOUD_NAME", ""),
		CloudinaryAPIKey:    getEnv("CLOUDINARY_API_KEY", ""),
		CloudinaryAPISecret: getEnv("CLOUDINARY_API_SECRET", ""),
		CloudinaryFolder:    getEnv("CLOUDINARY_FOLDER", "xcelliti-uploads"),

		Timezone: loc,
	}

	return cfg, nil
}

func mongoDBFromURI(uri string) string {
	u, err := url.Parse(uri)
	if err != nil {
		return ""
	}
	db := strings.Trim(u.Path, "/")
	if db == "" {
		return ""
	}
	// mongodb URIs sometimes include extra path segments; only the first one is the db name.
	if idx := strings.Index(db, "/"); idx >= 0 {
		db = db[:idx]
	}
	return db
}

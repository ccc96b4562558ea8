package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort      string
	Environment     string
	FirebaseProject string
	DatabaseURL     string
	StorageBucket   string
	MirrorDir       string
	AdminToken      string
	WatchInterval   time.Duration
	ShippingFee     int64
	FreeShippingMin int64
	UPIPayeeVPA     string
	UPIPayeeName    string
}

func Load() (*Config, error) {
	godotenv.Load()

	config := &Config{
		ServerPort:      getEnv("SERVER_PORT", "8080"),
		Environment:     getEnv("ENVIRONMENT", "development"),
		FirebaseProject: getEnv("FIREBASE_PROJECT_ID", ""),
		DatabaseURL:     getEnv("FIREBASE_DATABASE_URL", ""),
		StorageBucket:   getEnv("STORAGE_BUCKET", ""),
		MirrorDir:       getEnv("MIRROR_DIR", "./data"),
		AdminToken:      getEnv("ADMIN_TOKEN", ""),
		WatchInterval:   getEnvAsDuration("WATCH_INTERVAL", 15*time.Second),
		ShippingFee:     getEnvAsInt64("SHIPPING_FEE", 49),
		FreeShippingMin: getEnvAsInt64("FREE_SHIPPING_MIN", 499),
		UPIPayeeVPA:     getEnv("UPI_PAYEE_VPA", ""),
		UPIPayeeName:    getEnv("UPI_PAYEE_NAME", "Taruvae"),
	}

	return config, nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	if value, exists := os.LookupEnv(key); exists {
		intValue, err := strconv.ParseInt(value, 10, 64)
		if err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		d, err := time.ParseDuration(value)
		if err == nil {
			return d
		}
	}
	return defaultValue
}

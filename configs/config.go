package config

import "os"

type R2 struct {
	AccountID  string
	AccessKey  string
	SecretKey  string
	BucketName string
	PublicURL  string
}

type Config struct {
	ListenAddr    string
	PostgresURI   string
	SnapshotPath  string
	SnapshotEvery string
	FrontendURL   string
	R2            R2
}

func LoadConfig() *Config {
	return &Config{
		ListenAddr:    getEnv("LISTEN_ADDR", ":3000"),
		PostgresURI:   getEnv("POSTGRES_URI", ""),
		SnapshotPath:  getEnv("SNAPSHOT_PATH", "workspace.json"),
		SnapshotEvery: getEnv("SNAPSHOT_EVERY", "@every 00h05m00s"),
		FrontendURL:   getEnv("FRONTEND_URL", "http://localhost:5173"),
		R2: R2{
			AccountID:  getEnv("R2_ACCOUNT_ID", ""),
			AccessKey:  getEnv("R2_ACCESS_KEY", ""),
			SecretKey:  getEnv("R2_SECRET_KEY", ""),
			BucketName: getEnv("R2_BUCKET_NAME", ""),
			PublicURL:  getEnv("R2_PUBLIC_URL", ""),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

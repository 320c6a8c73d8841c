package config

import (
	"os"
	"strings"
)

type Config struct {
	HTTPAddr     string
	DataPath     string
	RedisAddr    string   // kosong = cache off
	KafkaBrokers []string // kosong = events off
	ServiceName  string
}

func Load() Config {
	return Config{
		HTTPAddr:     getenv("HTTP_ADDR", ":8080"),
		DataPath:     getenv("DATA_PATH", "data/sample.data.json"),
		RedisAddr:    getenv("REDIS_ADDR", ""),
		KafkaBrokers: splitCSV(getenv("KAFKA_BROKERS", "")),
		ServiceName:  getenv("SERVICE_NAME", "store-api"),
	}
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
func splitCSV(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}

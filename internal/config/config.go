package config

import (
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port     string
	DataFile string

	KafkaBrokers []string
	AuditTopic   string

	AuditWorkers   int
	AuditBatchSize int
	AuditFlush     time.Duration
}

// Load reads the configuration from the environment, pulling in a .env
// file when one is found near the working directory. Every knob has a
// default, so a bare environment still yields a runnable config.
func Load() *Config {
	loadEnv()

	return &Config{
		Port:           getEnv("PORT", "9000"),
		DataFile:       getEnv("DATA_FILE", "bed_and_home_orders_v5.json"),
		KafkaBrokers:   splitList(os.Getenv("KAFKA_BROKERS")),
		AuditTopic:     getEnv("AUDIT_TOPIC", "pedidos_audit"),
		AuditWorkers:   getEnvInt("AUDIT_WORKERS", 2),
		AuditBatchSize: getEnvInt("AUDIT_BATCH_SIZE", 5),
		AuditFlush:     time.Duration(getEnvInt("AUDIT_FLUSH_MS", 500)) * time.Millisecond,
	}
}

func loadEnv() {
	wd, err := os.Getwd()
	if err != nil {
		return
	}

	for _, name := range []string{".env", ".example.env"} {
		for _, dir := range []string{wd, filepath.Join(wd, ".."), filepath.Join(wd, "..", "..")} {
			path := filepath.Join(dir, name)
			if err := godotenv.Load(path); err == nil {
				log.Printf("Loaded environment variables from %s", path)
				return
			}
		}
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	n, err := strconv.Atoi(value)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}

func splitList(value string) []string {
	if value == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

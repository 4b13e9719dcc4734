package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Storage  string // file | postgres | memory
	DataDir  string
	HTTPAddr string
	Bill     BillConfig
	DB       DBConfig
	Receipt  ReceiptConfig
}

type BillConfig struct {
	Header string // printed at the top of every bill
}

type DBConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
}

// ConnString builds the pgx connection string.
func (c DBConfig) ConnString() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s",
		c.User, c.Password, c.Host, c.Port, c.Database,
	)
}

type ReceiptConfig struct {
	AMQPURL string // empty = print bills to stdout instead
	Queue   string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	port, _ := strconv.Atoi(getEnv("DB_PORT", "5432"))

	return &Config{
		Storage:  getEnv("STORAGE", "file"),
		DataDir:  getEnv("DATA_DIR", "data"),
		HTTPAddr: getEnv("HTTP_ADDR", ":8080"),
		Bill: BillConfig{
			Header: getEnv("BILL_HEADER", "Restaurant"),
		},
		DB: DBConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     port,
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			Database: getEnv("DB_NAME", "restaurant"),
		},
		Receipt: ReceiptConfig{
			AMQPURL: getEnv("RECEIPT_AMQP_URL", ""),
			Queue:   getEnv("RECEIPT_QUEUE", "receipts"),
		},
	}, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

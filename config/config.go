package config

import (
	"os"
	"strconv"
	"strings"
)

const (
	cashfreeSandboxURL    = "https://sandbox.cashfree.com/pg"
	cashfreeProductionURL = "https://api.cashfree.com/pg"
)

type Config struct {
	Port string

	MongoUri string
	MongoDb  string

	RedisAddr     string
	RedisPassword string
	RedisDb       int

	CashfreeClientId     string
	CashfreeClientSecret string
	CashfreeEnv          string
	CashfreeBaseUrl      string

	PaymentReturnUrl string
	PaymentNotifyUrl string
	PublicBaseUrl    string

	LogLevel string
}

var Cfg *Config

/*
Load reads the service configuration from environment variables and
fills in defaults. godotenv is expected to have been loaded by main
before this is called.
*/
func Load() *Config {
	cfg := &Config{
		Port: envStr("PORT", "8080"),

		MongoUri: envStr("MONGO_URI", "mongodb://localhost:27017"),
		MongoDb:  envStr("MONGO_DB", "pgregistry"),

		RedisAddr:     envStr("REDIS_ADDR", "localhost:6379"),
		RedisPassword: envStr("REDIS_PASSWORD", ""),
		RedisDb:       envInt("REDIS_DB", 0),

		CashfreeClientId:     envStr("CASHFREE_CLIENT_ID", ""),
		CashfreeClientSecret: envStr("CASHFREE_CLIENT_SECRET", ""),
		CashfreeEnv:          envStr("CASHFREE_ENV", "sandbox"),
		CashfreeBaseUrl:      envStr("CASHFREE_BASE_URL", ""),

		PaymentReturnUrl: envStr("PAYMENT_RETURN_URL", "http://localhost:5173/payment-status"),
		PaymentNotifyUrl: envStr("PAYMENT_NOTIFY_URL", ""),
		PublicBaseUrl:    envStr("PUBLIC_BASE_URL", "http://localhost:8080"),

		LogLevel: envStr("LOG_LEVEL", "info"),
	}

	// The sandbox/production switch only applies when no explicit base URL
	// override is configured.
	if cfg.CashfreeBaseUrl == "" {
		if strings.EqualFold(cfg.CashfreeEnv, "production") {
			cfg.CashfreeBaseUrl = cashfreeProductionURL
		} else {
			cfg.CashfreeBaseUrl = cashfreeSandboxURL
		}
	}

	Cfg = cfg
	return cfg
}

func envStr(key, def string) string {
	if v := os.Getenv(key); strings.TrimSpace(v) != "" {
		return v
	}
	return def
}

func envInt(key string, def int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// QuotaMode selects how the remaining-send allowance is tracked.
type QuotaMode string

const (
	// QuotaRemote queries the upstream credit service on every request.
	QuotaRemote QuotaMode = "remote"
	// QuotaLocal tracks a per-process sent count against a fixed ceiling.
	QuotaLocal QuotaMode = "local"
)

type Config struct {
	HTTPAddr      string
	WebhookSecret string
	CreditURL     string
	GatewayURL    string
	SMSUsername   string
	SMSPassword   string
	SMSSender     string
	SMSLanguage   string
	StoreContact  string
	QuotaMode     QuotaMode
	QuotaLimit    int
	Timeout       time.Duration
	DevMode       bool
}

func FromEnv() Config {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	return Config{
		HTTPAddr:      getenv("HTTP_ADDR", ":8080"),
		WebhookSecret: getenv("WEBHOOK_SECRET", ""),
		CreditURL:     getenv("CREDIT_URL", "http://localhost:9090/credit/balance"),
		GatewayURL:    getenv("GATEWAY_URL", "http://localhost:9090/sms/send"),
		SMSUsername:   getenv("SMS_USERNAME", ""),
		SMSPassword:   getenv("SMS_PASSWORD", ""),
		SMSSender:     getenv("SMS_SENDER", "STORE"),
		SMSLanguage:   getenv("SMS_LANGUAGE", "En"),
		StoreContact:  getenv("STORE_CONTACT", "our store"),
		QuotaMode:     QuotaMode(getenv("QUOTA_MODE", string(QuotaRemote))),
		QuotaLimit:    getenvInt("QUOTA_LIMIT", 100),
		Timeout:       getenvDuration("UPSTREAM_TIMEOUT", 10*time.Second),
		DevMode:       getenvBool("DEV_MODE", false),
	}
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getenvInt(k string, def int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getenvDuration(k string, def time.Duration) time.Duration {
	if v := os.Getenv(k); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func getenvBool(k string, def bool) bool {
	if v := os.Getenv(k); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}

package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

var (
	JwtSecret         string
	Issuer            string
	DbHost            string
	DbPort            string
	DbUser            string
	DbPassword        string
	DbName            string
	ServerPort        string
	AdminUsername     string
	AdminPassword     string
	ReminderInterval  int // minutes between scheduler runs
	ReminderThreshold int // minutes before a session counts as stale
	NotifyWebhookURL  string
)

func LoadConfig() {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, using environment variables")
	}

	JwtSecret = getEnv("JWT_SECRET", "defaultsecret")
	Issuer = getEnv("ISSUER", "leadintake")
	DbHost = getEnv("DB_HOST", "localhost")
	DbPort = getEnv("DB_PORT", "5432")
	DbUser = getEnv("DB_USER", "postgres")
	DbPassword = getEnv("DB_PASSWORD", "password")
	DbName = getEnv("DB_NAME", "leadintake")
	ServerPort = getEnv("SERVER_PORT", "8080")
	AdminUsername = getEnv("ADMIN_USERNAME", "admin")
	AdminPassword = getEnv("ADMIN_PASSWORD", "")
	ReminderInterval = getEnvInt("REMINDER_INTERVAL_MINUTES", 5)
	ReminderThreshold = getEnvInt("REMINDER_THRESHOLD_MINUTES", 30)
	NotifyWebhookURL = getEnv("NOTIFY_WEBHOOK_URL", "")
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return fallback
}

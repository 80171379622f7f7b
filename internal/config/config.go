package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

var (
	JwtSecret  string
	JwtExpires string
	DbHost     string
	DbPort     string
	DbUser     string
	DbPassword string
	DbName     string
	ServerPort string
	Issuer     string

	// PermissionsOwnerOnly gates permission add/remove behind the owner
	// role. Off by default to match the historical behavior where any
	// authenticated caller could manage grants on an existing form.
	PermissionsOwnerOnly bool

	SmtpHost string
	SmtpPort int
	SmtpUser string
	SmtpPass string
	MailFrom string
)

func LoadConfig() {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, using environment variables")
	}

	JwtSecret = getEnv("JWT_SECRET", "defaultsecret")
	JwtExpires = getEnv("JWT_EXPIRES_IN", "24h")
	DbHost = getEnv("DB_HOST", "localhost")
	DbPort = getEnv("DB_PORT", "5432")
	DbUser = getEnv("DB_USER", "postgres")
	DbPassword = getEnv("DB_PASSWORD", "password")
	DbName = getEnv("DB_NAME", "formlight")
	ServerPort = getEnv("SERVER_PORT", "8080")
	Issuer = getEnv("ISSUER", "formlight")

	PermissionsOwnerOnly, _ = strconv.ParseBool(getEnv("PERMISSIONS_OWNER_ONLY", "false"))

	SmtpHost = getEnv("SMTP_HOST", "localhost")
	SmtpPort, _ = strconv.Atoi(getEnv("SMTP_PORT", "587"))
	SmtpUser = getEnv("SMTP_USER", "")
	SmtpPass = getEnv("SMTP_PASS", "")
	MailFrom = getEnv("MAIL_FROM", "no-reply@formlight.local")
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

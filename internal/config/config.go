package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// Enabled reports whether enough SMTP settings are present to send mail.
// When false the welcome email is skipped.
func (s SMTPConfig) Enabled() bool {
	return s.Host != "" && s.Username != "" && s.Password != ""
}

type Config struct {
	Port         string
	MongoURI     string
	DatabaseName string
	Origin       string
	JWTSecret    string
	Timeout      time.Duration
	SMTP         SMTPConfig
}

func LoadConfig() Config {
	err := godotenv.Load()
	if err != nil && !os.IsNotExist(err) {
		panic("Error loading .env file")
	}
	return Config{
		Port:         getEnv("PORT", "3000"),
		MongoURI:     getEnv("MONGODB_URI", "mongodb://localhost:27017"),
		DatabaseName: getEnv("DATABASE_NAME", "course_nest_db"),
		Origin:       getEnv("ORIGIN", "*"),
		JWTSecret:    getEnv("JWT_SECRET", "course-nest-dev-secret"),
		Timeout:      10 * time.Second,
		SMTP: SMTPConfig{
			Host:     getEnv("SMTP_HOST", ""),
			Port:     getEnvInt("SMTP_PORT", 587),
			Username: getEnv("SMTP_USERNAME", ""),
			Password: getEnv("SMTP_PASSWORD", ""),
			From:     getEnv("SMTP_FROM", "noreply@coursenest.app"),
		},
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return n
}

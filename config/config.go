package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	DatabaseURL       string `mapstructure:"DATABASE_URL"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Redis configuration.
	RedisAddr      string `mapstructure:"REDIS_ADDR"`
	RedisPassword  string `mapstructure:"REDIS_PASSWORD"`
	RedisCacheDB   int    `mapstructure:"REDIS_CACHE_DB"`
	RedisSessionDB int    `mapstructure:"REDIS_SESSION_DB"`
	RedisQueueDB   int    `mapstructure:"REDIS_QUEUE_DB"`

	// Session behaviour.
	SessionTTLMinutes    int `mapstructure:"SESSION_TTL_MINUTES"`
	SessionCleanupHours  int `mapstructure:"SESSION_CLEANUP_HOURS"`
	ReminderLeadMinutes  int `mapstructure:"REMINDER_LEAD_MINUTES"`

	// Restaurant knowledge base.
	KnowledgeBasePath string `mapstructure:"KNOWLEDGEBASE_PATH"`
	RestaurantTZ      string `mapstructure:"RESTAURANT_TZ"`

	// Gemini API key for extraction and free-text replies.
	GeminiAPIKey string `mapstructure:"GEMINI_API_KEY"`

	// Google Cloud credentials for speech-to-text.
	GoogleAPIKey string `mapstructure:"GOOGLE_API_KEY"`

	// Chatwoot (WhatsApp inbox) integration.
	ChatwootBaseURL   string `mapstructure:"CHATWOOT_BASE_URL"`
	ChatwootAPIToken  string `mapstructure:"CHATWOOT_API_ACCESS_TOKEN"`
	ChatwootAccountID string `mapstructure:"CHATWOOT_ACCOUNT_ID"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_CACHE_DB", 0)
	viper.SetDefault("REDIS_SESSION_DB", 1)
	viper.SetDefault("REDIS_QUEUE_DB", 2)
	viper.SetDefault("SESSION_TTL_MINUTES", 60)
	viper.SetDefault("SESSION_CLEANUP_HOURS", 24)
	viper.SetDefault("REMINDER_LEAD_MINUTES", 120)
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("KNOWLEDGEBASE_PATH", "./knowledgebase")
	viper.SetDefault("RESTAURANT_TZ", "Europe/Zagreb")
	viper.SetDefault("GEMINI_API_KEY", "")
	viper.SetDefault("GOOGLE_API_KEY", "")
	viper.SetDefault("CHATWOOT_BASE_URL", "https://app.chatwoot.com")
	viper.SetDefault("CHATWOOT_API_ACCESS_TOKEN", "")
	viper.SetDefault("CHATWOOT_ACCOUNT_ID", "")

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}

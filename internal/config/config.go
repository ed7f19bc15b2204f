package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type DB struct {
	URL        string
	DbHOST     string
	DbPORT     string
	DbUSER     string
	DbPASSWORD string
	DbNAME     string
	DbSSLMODE  string
}

type MinIO struct {
	Endpoint   string
	AccessKey  string
	SecretKey  string
	BucketName string
	UseSSL     bool
	Region     string
	PublicURL  string
}

// Enabled reports whether featured image uploads can be served.
func (m MinIO) Enabled() bool {
	return m.Endpoint != ""
}

type GCP struct {
	ProjectID       string
	BillingAccount  string
	BillingDataset  string
	CloudRunService string
}

type Twilio struct {
	AccountSID string
	AuthToken  string
}

type Blog struct {
	BaseURL       string
	Title         string
	Description   string
	DefaultAuthor string
}

type Config struct {
	ServerPort      int
	DB              DB
	MinIO           MinIO
	GCP             GCP
	Twilio          Twilio
	Blog            Blog
	AdminPassword   string
	SecretKey       string
	SessionDuration time.Duration
	SecureCookie    bool
	MainAppURL      string
	MaxUploadSize   int64
	LogLevel        string
}

func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return fallback
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func parseDuration(value string, fallback time.Duration) time.Duration {
	duration, err := time.ParseDuration(value)
	if err != nil || duration <= 0 {
		return fallback
	}
	return duration
}

func parseMaxUploadSize(value string) int64 {
	size, err := strconv.ParseInt(value, 10, 64)
	if err != nil || size <= 0 {
		return 10 * 1024 * 1024
	}
	return size
}

func LoadDB() DB {
	return DB{
		URL:        getEnv("DATABASE_URL", ""),
		DbHOST:     getEnv("DB_HOST", "localhost"),
		DbPORT:     getEnv("DB_PORT", "5432"),
		DbUSER:     getEnv("DB_USER", "postgres"),
		DbPASSWORD: getEnv("DB_PASSWORD", "password"),
		DbNAME:     getEnv("DB_NAME", "loveuad"),
		DbSSLMODE:  getEnv("DB_SSLMODE", "disable"),
	}
}

// DSN prefers DATABASE_URL and falls back to the discrete DB_* settings.
func (d DB) DSN() string {
	if d.URL != "" {
		return d.URL
	}
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		d.DbHOST, d.DbPORT, d.DbUSER, d.DbPASSWORD, d.DbNAME, d.DbSSLMODE,
	)
}

func LoadMinIO() MinIO {
	return MinIO{
		Endpoint:   getEnv("MINIO_ENDPOINT", ""),
		AccessKey:  getEnv("MINIO_ACCESS_KEY", "minioadmin"),
		SecretKey:  getEnv("MINIO_SECRET_KEY", "minioadmin"),
		BucketName: getEnv("MINIO_BUCKET_NAME", "blog-images"),
		UseSSL:     getEnvBool("MINIO_USE_SSL", false),
		Region:     getEnv("MINIO_REGION", "us-east-1"),
		PublicURL:  getEnv("MINIO_PUBLIC_URL", ""),
	}
}

func LoadGCP() GCP {
	return GCP{
		ProjectID:       getEnv("GCP_PROJECT_ID", ""),
		BillingAccount:  getEnv("GCP_BILLING_ACCOUNT", ""),
		BillingDataset:  getEnv("BILLING_DATASET", ""),
		CloudRunService: getEnv("CLOUD_RUN_SERVICE", "loveuad"),
	}
}

func LoadTwilio() Twilio {
	return Twilio{
		AccountSID: getEnv("TWILIO_ACCOUNT_SID", ""),
		AuthToken:  getEnv("TWILIO_AUTH_TOKEN", ""),
	}
}

func LoadBlog() Blog {
	return Blog{
		BaseURL:       getEnv("BLOG_BASE_URL", "https://blog.loveuad.com"),
		Title:         getEnv("BLOG_TITLE", "loveUAD Blog"),
		Description:   getEnv("BLOG_DESCRIPTION", "Latest insights on dementia care and health technology"),
		DefaultAuthor: getEnv("BLOG_DEFAULT_AUTHOR", "loveUAD Team"),
	}
}

// mainAppURL derives the Cloud Run health URL when MAIN_APP_URL is not set.
func mainAppURL(gcp GCP) string {
	if url := getEnv("MAIN_APP_URL", ""); url != "" {
		return url
	}
	if gcp.ProjectID == "" {
		return ""
	}
	return fmt.Sprintf("https://%s-%s.run.app/health", gcp.CloudRunService, gcp.ProjectID)
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		slog.Warn(".env file not found, using environment variables")
	}

	gcp := LoadGCP()

	return &Config{
		ServerPort:      getEnvAsInt("SERVER_PORT", 8080),
		DB:              LoadDB(),
		MinIO:           LoadMinIO(),
		GCP:             gcp,
		Twilio:          LoadTwilio(),
		Blog:            LoadBlog(),
		AdminPassword:   getEnv("ADMIN_PASSWORD", ""),
		SecretKey:       getEnv("ADMIN_SECRET_KEY", ""),
		SessionDuration: parseDuration(getEnv("SESSION_DURATION", "12h"), 12*time.Hour),
		SecureCookie:    getEnvBool("SESSION_COOKIE_SECURE", false),
		MainAppURL:      mainAppURL(gcp),
		MaxUploadSize:   parseMaxUploadSize(getEnv("MAX_UPLOAD_SIZE", "10485760")),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
	}
}

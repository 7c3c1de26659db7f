package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
)

// AppConfig 汇总运行工作室 API 所需的全部配置。
type AppConfig struct {
	ListenAddr string
	Port       string
	Env        string
	GinMode    string

	DatabaseDriver string
	DatabaseDSN    string

	AdminPassword     string
	AdminPasswordHash string
	AdminTokenSecret  string
	AdminTokenTTL     time.Duration

	CloudinaryCloudName     string
	CloudinaryAPIKey        string
	CloudinaryAPISecret     string
	CloudinaryDefaultFolder string

	CorsOrigins []string

	SMTPHost        string
	SMTPPort        int
	SMTPUsername    string
	SMTPPassword    string
	SMTPFrom        string
	ContactNotifyTo string
}

// Load 从环境变量读取应用配置，并为缺失项提供默认值。
// 工作目录下存在 .env 时会一并加载，已设置的环境变量优先。
func Load() AppConfig {
	_ = godotenv.Load()

	port := getEnv("PORT", "8080")
	driver := strings.ToLower(getEnv("DATABASE_DRIVER", DriverSQLite))

	dsn := getEnv("DATABASE_DSN", "")
	if dsn == "" && driver == DriverSQLite {
		dsn = "studio.db"
	}

	ttl, err := time.ParseDuration(getEnv("ADMIN_TOKEN_TTL", "72h"))
	if err != nil || ttl <= 0 {
		ttl = 72 * time.Hour
	}

	smtpPort, err := strconv.Atoi(getEnv("SMTP_PORT", "587"))
	if err != nil || smtpPort <= 0 {
		smtpPort = 587
	}

	return AppConfig{
		ListenAddr: getEnv("LISTEN_ADDR", fmt.Sprintf(":%s", port)),
		Port:       port,
		Env:        getEnv("APP_ENV", "production"),
		GinMode:    getEnv("GIN_MODE", "release"),

		DatabaseDriver: driver,
		DatabaseDSN:    dsn,

		AdminPassword:     os.Getenv("ADMIN_PASSWORD"),
		AdminPasswordHash: getEnv("ADMIN_PASSWORD_HASH", ""),
		AdminTokenSecret:  getEnv("ADMIN_TOKEN_SECRET", ""),
		AdminTokenTTL:     ttl,

		CloudinaryCloudName:     getEnv("CLOUDINARY_CLOUD_NAME", ""),
		CloudinaryAPIKey:        getEnv("CLOUDINARY_API_KEY", ""),
		CloudinaryAPISecret:     getEnv("CLOUDINARY_API_SECRET", ""),
		CloudinaryDefaultFolder: getEnv("CLOUDINARY_DEFAULT_FOLDER", "portfolio"),

		CorsOrigins: splitList(getEnv("CORS_ORIGINS", "")),

		SMTPHost:        getEnv("SMTP_HOST", ""),
		SMTPPort:        smtpPort,
		SMTPUsername:    getEnv("SMTP_USERNAME", ""),
		SMTPPassword:    os.Getenv("SMTP_PASSWORD"),
		SMTPFrom:        getEnv("SMTP_FROM", ""),
		ContactNotifyTo: getEnv("CONTACT_NOTIFY_TO", ""),
	}
}

// Validate 检查服务启动必需的配置项。
func (c AppConfig) Validate() error {
	if c.AdminPassword == "" && c.AdminPasswordHash == "" {
		return errors.New("ADMIN_PASSWORD or ADMIN_PASSWORD_HASH must be set")
	}
	switch c.DatabaseDriver {
	case DriverSQLite, DriverPostgres, DriverMySQL:
	default:
		return fmt.Errorf("unsupported DATABASE_DRIVER %q", c.DatabaseDriver)
	}
	if c.DatabaseDSN == "" {
		return errors.New("DATABASE_DSN must be set")
	}
	return nil
}

// CloudinaryEnabled 判断图床凭据是否齐全。
func (c AppConfig) CloudinaryEnabled() bool {
	return c.CloudinaryCloudName != "" && c.CloudinaryAPIKey != "" && c.CloudinaryAPISecret != ""
}

// MailEnabled 判断是否具备发送联系表单通知的条件。
func (c AppConfig) MailEnabled() bool {
	return c.SMTPHost != "" && c.SMTPFrom != "" && c.ContactNotifyTo != ""
}

// getEnv 读取并去除首尾空白，密码类配置不要经过这里。
func getEnv(key, fallback string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	return value
}

func splitList(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

package config

import (
	"log"
	"net/http"
	"strings"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"seungpyo.lee/BlogBackend/pkg/config"
)

// BlogConfig extends GlobalConfig with the blog service settings.
type BlogConfig struct {
	config.GlobalConfig
	PostgresDSN    string
	JWTSecretKey   string
	DBMaxOpenConns int // 0 keeps the driver default
	DBMaxIdleConns int
	RedisAddr      string // empty disables token revocation
	RedisPassword  string
	BcryptCost     int
	CORSOrigins    []string
	TemplateGlob   string

	// BlogOwnerID, when non-zero, assigns every created blog to this user
	// instead of the authenticated caller.
	BlogOwnerID uint
	// LegacyLoginNotFound answers login failures with 404 instead of 401.
	LegacyLoginNotFound bool
}

func LoadBlogConfig() *BlogConfig {
	// Load .env file for local development
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading from environment variables")
	}
	ownerID := config.GetEnvInt("BLOG_OWNER_ID", 0)
	if ownerID < 0 {
		ownerID = 0
	}
	return &BlogConfig{
		GlobalConfig:        *config.LoadGlobalConfig(),
		PostgresDSN:         config.GetEnv("POSTGRES_DSN"),
		JWTSecretKey:        config.GetEnv("JWT_SECRET_KEY"),
		DBMaxOpenConns:      config.GetEnvInt("DB_MAX_OPEN_CONNS", 0),
		DBMaxIdleConns:      config.GetEnvInt("DB_MAX_IDLE_CONNS", 0),
		RedisAddr:           config.GetEnvOrDefault("REDIS_ADDR", ""),
		RedisPassword:       config.GetEnvOrDefault("REDIS_PASSWORD", ""),
		BcryptCost:          config.GetEnvInt("BCRYPT_COST", bcrypt.DefaultCost),
		CORSOrigins:         splitList(config.GetEnvOrDefault("CORS_ALLOWED_ORIGINS", "*")),
		TemplateGlob:        config.GetEnvOrDefault("TEMPLATE_GLOB", "templates/html/*.html"),
		BlogOwnerID:         uint(ownerID),
		LegacyLoginNotFound: config.GetEnvBool("LEGACY_LOGIN_NOT_FOUND", false),
	}
}

// LoginFailureStatus is the HTTP status used for unknown emails and wrong passwords.
func (c *BlogConfig) LoginFailureStatus() int {
	if c.LegacyLoginNotFound {
		return http.StatusNotFound
	}
	return http.StatusUnauthorized
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimRight(strings.TrimSpace(part), "/"); p != "" {
			out = append(out, p)
		}
	}
	return out
}

package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/ecogestao/erp-backend/internal/utils"
)

const AppName = "erp-backend"

// TokenValidity is the fixed lifetime of issued access tokens.
const TokenValidity = 30 * 24 * time.Hour

type Config struct {
	AppName string
	AppPort string
	AppUrl  string

	// Database
	DatabaseURL string

	// Auth
	JWTSigningKey []byte
	JWTIssuer     string
	JWTAudience   string
	TokenValidity time.Duration

	// Email
	SendGridAPIKey      string
	SendGridFromEmail   string
	SendGridSandboxMode bool

	// Bootstrap admin account
	SeedAdminEmail    string
	SeedAdminPassword string
}

func LoadConfig() *Config {
	// .env is a development convenience; absence is not an error.
	if err := godotenv.Load(); err == nil {
		utils.Logger.Debug("Loaded environment from .env file")
	}

	appPort := os.Getenv("APP_PORT")
	if appPort == "" {
		appPort = "8080"
	}
	appUrl := os.Getenv("APP_URL")
	if appUrl == "" {
		appUrl = "http://localhost:" + appPort
	}

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		utils.Logger.Fatal("DATABASE_URL env var is missing")
	}

	signingKey := os.Getenv("JWT_SIGNING_KEY")
	if signingKey == "" {
		utils.Logger.Fatal("JWT_SIGNING_KEY env var is missing")
	}
	if len(signingKey) < 32 {
		utils.Logger.Fatal("JWT_SIGNING_KEY must be at least 32 bytes for HMAC-SHA256")
	}

	issuer := os.Getenv("JWT_ISSUER")
	if issuer == "" {
		issuer = AppName
	}
	audience := os.Getenv("JWT_AUDIENCE")
	if audience == "" {
		audience = appUrl
	}

	sgKey := os.Getenv("SENDGRID_API_KEY")
	if sgKey == "" {
		utils.Logger.Fatal("SENDGRID_API_KEY env var is missing")
	}
	sgFrom := os.Getenv("SENDGRID_FROM_EMAIL")
	if sgFrom == "" {
		utils.Logger.Warn("SENDGRID_FROM_EMAIL is empty, defaulting to no-reply@ecogestao.app")
		sgFrom = "no-reply@ecogestao.app"
	}
	sandbox, _ := strconv.ParseBool(os.Getenv("SENDGRID_SANDBOX_MODE"))

	seedAdminEmail := os.Getenv("SEED_ADMIN_EMAIL")
	if seedAdminEmail == "" {
		seedAdminEmail = "admin@example.com"
	}
	seedAdminPassword := os.Getenv("SEED_ADMIN_PASSWORD")
	if seedAdminPassword == "" {
		utils.Logger.Fatal("SEED_ADMIN_PASSWORD env var is missing")
	}

	return &Config{
		AppName:             AppName,
		AppPort:             appPort,
		AppUrl:              appUrl,
		DatabaseURL:         dbURL,
		JWTSigningKey:       []byte(signingKey),
		JWTIssuer:           issuer,
		JWTAudience:         audience,
		TokenValidity:       TokenValidity,
		SendGridAPIKey:      sgKey,
		SendGridFromEmail:   sgFrom,
		SendGridSandboxMode: sandbox,
		SeedAdminEmail:      seedAdminEmail,
		SeedAdminPassword:   seedAdminPassword,
	}
}

package config

import (
	"crypto/rsa"
	"encoding/base64"
	"encoding/pem"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/golang-jwt/jwt/v5"
	"github.com/joho/godotenv"

	"github.com/clienthub/customers-service/internal/utils"
)

const AppName = "customers-service"

// envConfig is the raw environment shape; LoadConfig resolves it into Config.
type envConfig struct {
	Env     string `env:"ENV" envDefault:"development"`
	AppPort string `env:"APP_PORT" envDefault:"8080"`
	AppURL  string `env:"APP_URL" envDefault:"http://localhost:8080"`

	DBUrl string `env:"DATABASE_URL,required"`

	RSAPrivateKeyBase64 string `env:"RSA_PRIVATE_KEY_BASE64,required"`
	RSAPublicKeyBase64  string `env:"RSA_PUBLIC_KEY_BASE64,required"`

	AccessTokenTTL time.Duration `env:"ACCESS_TOKEN_TTL" envDefault:"15m"`
	SessionTTL     time.Duration `env:"SESSION_TTL" envDefault:"720h"`

	RunMigrations  bool   `env:"RUN_MIGRATIONS" envDefault:"true"`
	MigrationsPath string `env:"MIGRATIONS_PATH" envDefault:"migrations"`

	SeedSampleData    bool   `env:"SEED_SAMPLE_DATA" envDefault:"false"`
	SeedAdminUsername string `env:"SEED_ADMIN_USERNAME" envDefault:"admin"`
	SeedAdminPassword string `env:"SEED_ADMIN_PASSWORD"`
}

type Config struct {
	Env     string
	AppName string
	AppPort string
	AppURL  string

	DBUrl string

	RSAPrivateKey *rsa.PrivateKey
	RSAPublicKey  *rsa.PublicKey

	AccessTokenTTL time.Duration
	SessionTTL     time.Duration

	RunMigrations  bool
	MigrationsPath string

	SeedSampleData    bool
	SeedAdminUsername string
	SeedAdminPassword string
}

// LoadConfig reads the environment (plus an optional .env for local runs)
// and fails fast on anything missing or malformed.
func LoadConfig() *Config {
	// .env is optional; real deployments inject the environment directly.
	if err := godotenv.Load(); err == nil {
		utils.Logger.Debug("Loaded environment overrides from .env")
	}

	var raw envConfig
	if err := env.Parse(&raw); err != nil {
		utils.Logger.WithError(err).Fatal("Failed to parse environment")
	}

	if raw.SeedSampleData && raw.SeedAdminPassword == "" {
		utils.Logger.Fatal("SEED_ADMIN_PASSWORD is required when SEED_SAMPLE_DATA is enabled")
	}

	privateKey := parseRSAPrivateKey(raw.RSAPrivateKeyBase64)
	publicKey := parseRSAPublicKey(raw.RSAPublicKeyBase64)

	utils.Logger.Infof("Loaded config for %s (%s)", AppName, raw.Env)

	return &Config{
		Env:     raw.Env,
		AppName: AppName,
		AppPort: raw.AppPort,
		AppURL:  raw.AppURL,

		DBUrl: raw.DBUrl,

		RSAPrivateKey: privateKey,
		RSAPublicKey:  publicKey,

		AccessTokenTTL: raw.AccessTokenTTL,
		SessionTTL:     raw.SessionTTL,

		RunMigrations:  raw.RunMigrations,
		MigrationsPath: raw.MigrationsPath,

		SeedSampleData:    raw.SeedSampleData,
		SeedAdminUsername: raw.SeedAdminUsername,
		SeedAdminPassword: raw.SeedAdminPassword,
	}
}

func parseRSAPrivateKey(encoded string) *rsa.PrivateKey {
	keyPEM, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		utils.Logger.WithError(err).Fatal("Failed to decode base64 private key")
	}
	block, _ := pem.Decode(keyPEM)
	if block == nil {
		utils.Logger.Fatal("Failed to decode PEM block for private key")
	}
	key, err := jwt.ParseRSAPrivateKeyFromPEM(keyPEM)
	if err != nil {
		utils.Logger.WithError(err).Fatal("Failed to parse RSA private key")
	}
	return key
}

func parseRSAPublicKey(encoded string) *rsa.PublicKey {
	keyPEM, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		utils.Logger.WithError(err).Fatal("Failed to decode base64 public key")
	}
	block, _ := pem.Decode(keyPEM)
	if block == nil {
		utils.Logger.Fatal("Failed to decode PEM block for public key")
	}
	key, err := jwt.ParseRSAPublicKeyFromPEM(keyPEM)
	if err != nil {
		utils.Logger.WithError(err).Fatal("Failed to parse RSA public key")
	}
	return key
}

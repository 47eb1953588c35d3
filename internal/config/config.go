package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	defaultJWTAccessTTL     = "15m"
	defaultAdminSessionTTL  = "24h"
	defaultResetTokenTTL    = "10m"
	defaultOTPCodeTTL       = "5m"
	defaultOTPResend        = "60s"
	defaultJWTSecret        = "change-me-jwt-secret"
	defaultOTPPepper        = "change-me-otp-pepper"
	defaultCookieSecure     = "false"
	defaultCookieSameSite   = "Lax"
	defaultUploadDir        = "./uploads"
	defaultGatewayKeyID     = "gw_test_key"
	defaultGatewayKeySecret = "gw_test_secret"
	defaultLoginBurst       = 5
)

type Config struct {
	AppEnv string

	JWTSecret       string
	JWTAccessTTL    time.Duration
	AdminSessionTTL time.Duration
	ResetTokenTTL   time.Duration

	OTPPepper         string
	OTPCodeTTL        time.Duration
	OTPResendCooldown time.Duration

	CookieSecure   bool
	CookieSameSite string

	UploadDir     string
	UploadBaseURL string

	GatewayKeyID     string
	GatewayKeySecret string

	// Login rate limit: LoginBurst attempts per IP, one token back per minute.
	LoginBurst int
}

func Load() (*Config, error) {
	cfg := &Config{}

	appEnv := strings.TrimSpace(os.Getenv("APP_ENV"))
	if appEnv == "" {
		appEnv = "dev"
	}
	cfg.AppEnv = strings.ToLower(appEnv)

	cfg.JWTSecret = strings.TrimSpace(getEnv("JWT_SECRET", defaultJWTSecret))
	cfg.OTPPepper = strings.TrimSpace(getEnv("OTP_PEPPER", defaultOTPPepper))
	if cfg.AppEnv == "prod" {
		if cfg.JWTSecret == defaultJWTSecret {
			return nil, fmt.Errorf("JWT_SECRET must be set in prod")
		}
		if cfg.OTPPepper == defaultOTPPepper {
			return nil, fmt.Errorf("OTP_PEPPER must be set in prod")
		}
	}

	var err error
	if cfg.JWTAccessTTL, err = parseDurationEnv("JWT_ACCESS_TTL", defaultJWTAccessTTL); err != nil {
		return nil, err
	}
	if cfg.AdminSessionTTL, err = parseDurationEnv("ADMIN_SESSION_TTL", defaultAdminSessionTTL); err != nil {
		return nil, err
	}
	if cfg.ResetTokenTTL, err = parseDurationEnv("RESET_TOKEN_TTL", defaultResetTokenTTL); err != nil {
		return nil, err
	}
	if cfg.OTPCodeTTL, err = parseDurationEnv("OTP_CODE_TTL", defaultOTPCodeTTL); err != nil {
		return nil, err
	}
	if cfg.OTPResendCooldown, err = parseDurationEnv("OTP_RESEND_COOLDOWN", defaultOTPResend); err != nil {
		return nil, err
	}

	cfg.CookieSecure = getEnv("COOKIE_SECURE", defaultCookieSecure) == "true"
	cfg.CookieSameSite = getEnv("COOKIE_SAMESITE", defaultCookieSameSite)

	cfg.UploadDir = getEnv("UPLOAD_DIR", defaultUploadDir)
	cfg.UploadBaseURL = getEnv("UPLOAD_BASE_URL", "/static")

	cfg.GatewayKeyID = getEnv("GATEWAY_KEY_ID", defaultGatewayKeyID)
	cfg.GatewayKeySecret = getEnv("GATEWAY_KEY_SECRET", defaultGatewayKeySecret)

	cfg.LoginBurst = defaultLoginBurst
	if v := os.Getenv("LOGIN_BURST"); v != "" {
		n, convErr := strconv.Atoi(v)
		if convErr != nil || n <= 0 {
			return nil, fmt.Errorf("LOGIN_BURST must be a positive integer")
		}
		cfg.LoginBurst = n
	}

	return cfg, nil
}

func getEnv(name, def string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return def
}

func parseDurationEnv(name, def string) (time.Duration, error) {
	raw := getEnv(name, def)
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: invalid duration %q", name, raw)
	}
	return d, nil
}

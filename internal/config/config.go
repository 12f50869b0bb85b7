// Package config loads the process-wide immutable settings read once
// at cold start and never mutated afterward.
package config

import "github.com/caarlos0/env/v11"

// Config is the top-level, process-wide configuration.
type Config struct {
	Bucket       string `env:"BUCKET,required"`
	Prefix       string `env:"PREFIX" envDefault:"json/"`
	CorsOrigin   string `env:"CORS_ORIGIN" envDefault:"*"`
	MaxBodyBytes int    `env:"MAX_BODY_BYTES" envDefault:"1048576"`

	UserPoolIssuer string `env:"USER_POOL_ISSUER,required"`
	ClientID       string `env:"CLIENT_ID,required"`
	JWKSURL        string `env:"JWKS_URL"`
	JWKSCacheTTL   int    `env:"JWKS_CACHE_TTL" envDefault:"3600"`

	LogLevel                string `env:"LOG_LEVEL" envDefault:"info"`
	AWSRegion               string `env:"AWS_REGION" envDefault:"us-east-1"`
	S3Endpoint              string `env:"S3_ENDPOINT"`
	CookieName              string `env:"COOKIE_NAME" envDefault:"session"`
	RequireIfMatchOnReplace bool   `env:"REQUIRE_IF_MATCH_ON_REPLACE" envDefault:"false"`
}

// Load reads Config from the process environment.
func Load() (Config, error) {
	cfg := Config{}

	if err := env.Parse(&cfg); err != nil {
		return Config{}, err
	}

	if cfg.JWKSURL == "" {
		cfg.JWKSURL = cfg.UserPoolIssuer + "/.well-known/jwks.json"
	}

	return cfg, nil
}

// Package bootstrap performs the once-per-process construction of the
// application: config, logger, object-store client, repositories,
// services, controllers, and the route table. The Lambda entry point
// calls New exactly once per cold start.
package bootstrap

import (
	"context"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/vku007/objectapi/internal/auth"
	"github.com/vku007/objectapi/internal/config"
	"github.com/vku007/objectapi/internal/controllers"
	"github.com/vku007/objectapi/internal/httpapi"
	"github.com/vku007/objectapi/internal/httpapi/middleware"
	"github.com/vku007/objectapi/internal/mlog"
	"github.com/vku007/objectapi/internal/objectstore"
	"github.com/vku007/objectapi/internal/services"
)

// App holds the per-instance, immutable-after-init application state.
type App struct {
	Config config.Config
	Logger mlog.Logger
	Router *httpapi.Router
}

// New loads configuration, builds the S3 client, and wires
// repositories, services, controllers, and the router.
func New(ctx context.Context) (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger, err := mlog.NewZapLogger(cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.AWSRegion))
	if err != nil {
		return nil, err
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.S3Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.S3Endpoint)
			o.UsePathStyle = true
		}
	})

	docRepo := objectstore.NewDocumentRepository(client, cfg.Bucket, cfg.Prefix, logger)
	userRepo := objectstore.NewUserRepository(client, cfg.Bucket, cfg.Prefix, logger)
	gameRepo := objectstore.NewGameRepository(client, cfg.Bucket, cfg.Prefix, logger)

	docSvc := services.NewDocumentService(docRepo, cfg.RequireIfMatchOnReplace)
	userSvc := services.NewUserService(userRepo, cfg.RequireIfMatchOnReplace)
	gameSvc := services.NewGameService(gameRepo, cfg.RequireIfMatchOnReplace)

	verifier := &auth.Verifier{
		Provider: &auth.JWKProvider{
			URL:      cfg.JWKSURL,
			CacheTTL: time.Duration(cfg.JWKSCacheTTL) * time.Second,
		},
		Issuer:   cfg.UserPoolIssuer,
		Audience: cfg.ClientID,
	}

	router := NewRouter(
		cfg,
		middleware.Authenticate(verifier, cfg.CookieName),
		controllers.NewDocumentController(docSvc, FilesPath),
		controllers.NewUserController(userSvc, UsersPath),
		controllers.NewGameController(gameSvc, GamesPath),
		controllers.NewExternalController(userSvc),
	)

	return &App{Config: cfg, Logger: logger, Router: router}, nil
}

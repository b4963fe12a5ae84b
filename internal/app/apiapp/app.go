package apiapp

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/minio/minio-go/v7"
	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/presetapp/gigboard/internal/config"
	s3infra "github.com/presetapp/gigboard/internal/infra/s3"
	palettejob "github.com/presetapp/gigboard/internal/jobs/palettes"
	pgrepo "github.com/presetapp/gigboard/internal/repo/postgres"
	redrepo "github.com/presetapp/gigboard/internal/repo/redis"
	authsvc "github.com/presetapp/gigboard/internal/services/auth"
	gigsvc "github.com/presetapp/gigboard/internal/services/gigs"
	mediasvc "github.com/presetapp/gigboard/internal/services/media"
	profilesvc "github.com/presetapp/gigboard/internal/services/profiles"
	ratesvc "github.com/presetapp/gigboard/internal/services/rate"
	savedsvc "github.com/presetapp/gigboard/internal/services/saved"
	"github.com/presetapp/gigboard/internal/transport/http/handlers"
)

type App struct {
	cfg        config.Config
	logger     *zap.Logger
	server     *http.Server
	postgres   *pgxpool.Pool
	redis      *goredis.Client
	s3         *minio.Client
	palettes   *palettejob.Job
	httpRouter http.Handler
}

func New(ctx context.Context, cfg config.Config, log *zap.Logger) (*App, error) {
	if log == nil {
		return nil, fmt.Errorf("logger is nil")
	}

	r := chi.NewRouter()
	ApplyMiddlewares(r, log)

	var pool *pgxpool.Pool
	if p, err := pgrepo.NewPool(ctx, pgrepo.PoolConfig{
		DSN:            cfg.Postgres.DSN,
		MaxConns:       int32(cfg.Postgres.MaxConns),
		ConnectTimeout: cfg.Postgres.ConnectTimeout,
	}); err != nil {
		log.Warn("postgres init failed, continuing in degraded mode", zap.Error(err))
	} else {
		pool = p
	}

	redisClient := redrepo.NewClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	cacheRepo := redrepo.NewCacheRepo(redisClient)
	rateRepo := redrepo.NewRateRepo(redisClient)

	var s3Client *minio.Client
	if c, err := s3infra.NewClient(s3infra.Config{
		Endpoint:  cfg.S3.Endpoint,
		Region:    cfg.S3.Region,
		AccessKey: cfg.S3.AccessKey,
		SecretKey: cfg.S3.SecretKey,
		UseSSL:    cfg.S3.UseSSL,
	}); err != nil {
		log.Warn("s3 init failed, continuing in degraded mode", zap.Error(err))
	} else {
		s3Client = c
	}

	gigRepo := pgrepo.NewGigRepo(pool)
	savedRepo := pgrepo.NewSavedGigRepo(pool)
	profileRepo := pgrepo.NewProfileRepo(pool)
	referenceRepo := pgrepo.NewReferenceRepo(pool)

	mediaStorage := mediasvc.NewS3Storage(s3Client, cfg.S3.Bucket)
	mediaService := mediasvc.NewService(mediaStorage, cfg.S3.URLTTL, log.Named("media"))

	gigService := gigsvc.NewService(gigRepo, gigsvc.Config{
		PageSize:                cfg.Gigs.PageSize,
		EnrichMissingTags:       cfg.Gigs.EnrichMissingTags,
		SimulatePalettes:        cfg.Gigs.SimulatePalettes,
		PaletteLimit:            cfg.Gigs.PaletteLimit,
		PaletteCacheTTL:         cfg.Gigs.PaletteCacheTTL,
		FallbackPalettes:        cfg.Gigs.FallbackPalettes,
		FallbackSpecializations: cfg.Gigs.FallbackSpecializations,
	}, log.Named("gigs"))
	gigService.AttachURLResolver(mediaService)
	gigService.AttachReference(referenceRepo, cacheRepo)

	savedService := savedsvc.NewService(savedRepo, log.Named("saved"))
	savedService.AttachGigs(gigService)
	savedService.AttachLimiter(ratesvc.NewLimiter(
		rateRepo,
		"saves",
		cfg.RateLimit.SavesPerMinute,
		cfg.RateLimit.SavesPer10Sec,
	))
	gigService.AttachSaved(savedService)

	profileService := profilesvc.NewService(profileRepo, log.Named("profiles"))
	jwtManager := authsvc.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.Audience, 0)

	palettes := palettejob.New(gigService, cfg.Gigs.PaletteRefreshSpec, log.Named("palettes"))

	healthChecks := map[string]handlers.HealthCheck{
		"redis": func(ctx context.Context) error {
			return redisClient.Ping(ctx).Err()
		},
		"s3": mediaStorage.Ping,
		"postgres": func(ctx context.Context) error {
			if pool == nil {
				return errors.New("postgres pool is not initialized")
			}
			return pool.Ping(ctx)
		},
	}

	RegisterRoutes(r, Dependencies{
		GigService:     gigService,
		SavedService:   savedService,
		ProfileService: profileService,
		JWTManager:     jwtManager,
		HealthChecks:   healthChecks,
		Logger:         log,
	})

	server := &http.Server{
		Addr:         cfg.HTTP.Addr,
		Handler:      r,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
	}

	return &App{
		cfg:        cfg,
		logger:     log,
		server:     server,
		postgres:   pool,
		redis:      redisClient,
		s3:         s3Client,
		palettes:   palettes,
		httpRouter: r,
	}, nil
}

// Run starts the palette refresher and blocks serving HTTP.
func (a *App) Run(ctx context.Context) error {
	if err := a.palettes.Start(ctx); err != nil {
		return fmt.Errorf("start palette refresher: %w", err)
	}

	a.logger.Info("api server started", zap.String("addr", a.cfg.HTTP.Addr))
	err := a.server.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

func (a *App) Shutdown(ctx context.Context) error {
	var shutdownErr error

	if err := a.server.Shutdown(ctx); err != nil {
		shutdownErr = err
	}
	a.palettes.Stop()
	if a.postgres != nil {
		a.postgres.Close()
	}
	if a.redis != nil {
		if err := a.redis.Close(); err != nil && shutdownErr == nil {
			shutdownErr = err
		}
	}

	return shutdownErr
}

func (a *App) Handler() http.Handler {
	return a.httpRouter
}

package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	pgrepo "github.com/presetapp/gigboard/internal/repo/postgres"
	redrepo "github.com/presetapp/gigboard/internal/repo/redis"
	gigsvc "github.com/presetapp/gigboard/internal/services/gigs"
)

func NewPalettesCommand() *cobra.Command {
	var (
		limit      int
		clearCache bool
	)

	cmd := &cobra.Command{
		Use:   "palettes",
		Short: "Refresh the popular palette cache",
		Long: `Recompute the most used palette colors from published moodboards and
store them in the redis cache the API reads from.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			log, err := newLogger(cfg)
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			ctx := cmd.Context()
			redisClient := redrepo.NewClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
			defer redisClient.Close()
			cache := redrepo.NewCacheRepo(redisClient)

			if clearCache {
				if err := cache.Delete(ctx, redrepo.PopularPalettesKey); err != nil {
					return fmt.Errorf("clear palette cache: %w", err)
				}
				log.Info("palette cache cleared")
				return nil
			}

			pool, err := pgrepo.NewPool(ctx, pgrepo.PoolConfig{
				DSN:            cfg.Postgres.DSN,
				MaxConns:       2,
				ConnectTimeout: cfg.Postgres.ConnectTimeout,
			})
			if err != nil {
				return err
			}
			defer pool.Close()

			if limit <= 0 {
				limit = cfg.Gigs.PaletteLimit
			}
			service := gigsvc.NewService(pgrepo.NewGigRepo(pool), gigsvc.Config{
				PaletteLimit:     limit,
				PaletteCacheTTL:  cfg.Gigs.PaletteCacheTTL,
				FallbackPalettes: cfg.Gigs.FallbackPalettes,
			}, log)
			service.AttachReference(pgrepo.NewReferenceRepo(pool), cache)

			colors, err := service.RefreshPalettes(ctx)
			if err != nil {
				return fmt.Errorf("refresh palettes: %w", err)
			}
			log.Info("palette cache refreshed", zap.Int("colors", len(colors)))

			for _, color := range colors {
				fmt.Fprintln(cmd.OutOrStdout(), color)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 0, "number of colors to keep (default from config)")
	cmd.Flags().BoolVar(&clearCache, "clear", false, "drop the cached palettes instead of refreshing")

	return cmd
}

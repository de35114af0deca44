package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abuelosolos/Fara/internal/config"
	"github.com/abuelosolos/Fara/internal/db"
	"github.com/abuelosolos/Fara/internal/logger"
)

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadDatabase()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			log, err := newLogger(cfg)
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()
			ctx := logger.WithContext(cmd.Context(), log)

			pool, err := db.NewPool(ctx, cfg.DBDSN)
			if err != nil {
				return fmt.Errorf("failed to connect to db: %w", err)
			}
			defer pool.Close()

			applied, err := db.Migrate(ctx, pool)
			if err != nil {
				return err
			}
			log.Info("migrations complete", zap.Int("applied", len(applied)))
			return nil
		},
	}
}

package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abuelosolos/Fara/internal/app"
	"github.com/abuelosolos/Fara/internal/availability"
	availabilityHttp "github.com/abuelosolos/Fara/internal/availability/http"
	"github.com/abuelosolos/Fara/internal/config"
	"github.com/abuelosolos/Fara/internal/db"
	"github.com/abuelosolos/Fara/internal/logger"
)

func newAvailabilityCmd() *cobra.Command {
	var (
		localDate    string
		localMinutes int
	)

	cmd := &cobra.Command{
		Use:   "availability",
		Short: "Print the current availability window as JSON",
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

			var q availability.Query
			if cmd.Flags().Changed("local-date") {
				q.LocalDate = &localDate
			}
			if cmd.Flags().Changed("local-minutes") {
				q.LocalMinutes = &localMinutes
			}

			pool, err := db.NewPool(ctx, cfg.DBDSN)
			if err != nil {
				return fmt.Errorf("failed to connect to db: %w", err)
			}
			defer pool.Close()

			days, err := app.NewAvailability(cfg, pool).Availability(ctx, q)
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(availabilityHttp.NewDayResponses(days))
		},
	}

	cmd.Flags().StringVar(&localDate, "local-date", "", "caller's local date (YYYY-MM-DD)")
	cmd.Flags().IntVar(&localMinutes, "local-minutes", 0, "caller's local minutes since midnight (0-1439)")
	return cmd
}

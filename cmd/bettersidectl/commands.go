package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"betterside.backend/internal/config"
	"betterside.backend/internal/domain/entities"
	"betterside.backend/internal/infrastructure/datasources/postgres"
	"betterside.backend/internal/infrastructure/models"
	"betterside.backend/internal/infrastructure/repositories"
	"betterside.backend/internal/usecases"
)

// openDB returns a handle and the func that releases its pool
var openDB = func() (*gorm.DB, func(), error) {
	cfg := config.Load()
	sqlDB, err := postgres.NewConnection(cfg.Database)
	if err != nil {
		return nil, nil, err
	}
	db, err := postgres.NewGormDB(sqlDB)
	if err != nil {
		_ = sqlDB.Close()
		return nil, nil, err
	}
	return db, func() { _ = sqlDB.Close() }, nil
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "bettersidectl",
		Short:         "BetterSide operations tool",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		migrateCmd(),
		seedCmd(),
		marketingCmd(),
		adsCmd(),
	)
	return rootCmd
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update all tables",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, closeDB, err := openDB()
			if err != nil {
				return err
			}
			defer closeDB()
			if err := db.AutoMigrate(models.All()...); err != nil {
				return fmt.Errorf("failed to migrate: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Migration complete.")
			return nil
		},
	}
}

func marketingCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "marketing",
		Short: "Collateral team operations",
	}
	cmd.AddCommand(marketingIncrementCmd(), marketingRequestStatusCmd())
	return cmd
}

func newMarketingUsecase(db *gorm.DB) *usecases.MarketingUsecase {
	return usecases.NewMarketingUsecase(
		repositories.NewMarketingCounterRepository(db),
		repositories.NewMarketingRequestRepository(db),
		repositories.NewProjectRepository(db),
	)
}

func marketingIncrementCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "increment",
		Short: "Add shared creatives and EDMs to a CP's counters",
		RunE: func(cmd *cobra.Command, args []string) error {
			input := &entities.IncrementCountersInput{}
			input.CpID, _ = cmd.Flags().GetString("cp-id")
			if projectID, _ := cmd.Flags().GetString("project-id"); projectID != "" {
				input.ProjectID = &projectID
			}
			if cmd.Flags().Changed("creatives") {
				n, _ := cmd.Flags().GetInt("creatives")
				input.Creatives = &n
			}
			if cmd.Flags().Changed("edms") {
				n, _ := cmd.Flags().GetInt("edms")
				input.Edms = &n
			}

			db, closeDB, err := openDB()
			if err != nil {
				return err
			}
			defer closeDB()
			counter, err := newMarketingUsecase(db).Increment(cmd.Context(), input)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), counter)
		},
	}
	cmd.Flags().String("cp-id", "", "CP user id")
	cmd.Flags().String("project-id", "", "project id, omit for the CP-wide counter")
	cmd.Flags().Int("creatives", 0, "creatives shared")
	cmd.Flags().Int("edms", 0, "EDMs sent")
	_ = cmd.MarkFlagRequired("cp-id")
	return cmd
}

func marketingRequestStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "request-status",
		Short: "Set the status of a marketing request",
		RunE: func(cmd *cobra.Command, args []string) error {
			rawID, _ := cmd.Flags().GetString("id")
			status, _ := cmd.Flags().GetString("status")
			id, err := uuid.Parse(rawID)
			if err != nil {
				return fmt.Errorf("invalid --id: %w", err)
			}

			db, closeDB, err := openDB()
			if err != nil {
				return err
			}
			defer closeDB()
			req, err := newMarketingUsecase(db).UpdateRequestStatus(cmd.Context(), id,
				&entities.UpdateMarketingRequestStatusInput{Status: status})
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), req)
		},
	}
	cmd.Flags().String("id", "", "marketing request id")
	cmd.Flags().String("status", "", "pending, in_progress, completed or cancelled")
	_ = cmd.MarkFlagRequired("id")
	_ = cmd.MarkFlagRequired("status")
	return cmd
}

func adsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ads",
		Short: "Ad operations",
	}
	cmd.AddCommand(adsMetricsCmd())
	return cmd
}

func adsMetricsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "metrics",
		Short: "Record reported performance for an ad",
		RunE: func(cmd *cobra.Command, args []string) error {
			rawID, _ := cmd.Flags().GetString("id")
			id, err := uuid.Parse(rawID)
			if err != nil {
				return fmt.Errorf("invalid --id: %w", err)
			}

			input := &entities.AdMetricsInput{}
			for flag, dst := range map[string]**int{
				"impressions": &input.Impressions,
				"clicks":      &input.Clicks,
				"leads":       &input.Leads,
				"spent":       &input.SpentAmount,
			} {
				if cmd.Flags().Changed(flag) {
					n, _ := cmd.Flags().GetInt(flag)
					*dst = &n
				}
			}

			db, closeDB, err := openDB()
			if err != nil {
				return err
			}
			defer closeDB()
			uc := usecases.NewAdUsecase(repositories.NewAdRepository(db), repositories.NewProjectRepository(db))
			ad, err := uc.UpdateMetrics(cmd.Context(), id, input)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), ad)
		},
	}
	cmd.Flags().String("id", "", "ad id")
	cmd.Flags().Int("impressions", 0, "total impressions")
	cmd.Flags().Int("clicks", 0, "total clicks")
	cmd.Flags().Int("leads", 0, "leads reported by the platform")
	cmd.Flags().Int("spent", 0, "amount spent in INR")
	_ = cmd.MarkFlagRequired("id")
	return cmd
}

func printJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

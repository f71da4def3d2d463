package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/notsocj/clinic-records/internal/config"
	"github.com/notsocj/clinic-records/internal/labfiles"
	"github.com/notsocj/clinic-records/internal/store"
)

// Shared by every subcommand, set up in the root PersistentPreRunE.
var (
	cfg      *config.Config
	st       *store.Store
	importer *labfiles.Importer
)

func main() {
	root := &cobra.Command{
		Use:           "clinic",
		Short:         "Single-clinic patient records",
		Long:          "Manages patient demographics, visit history, prescriptions,\nthe daily walk-in queue, lab attachments and medical certificates,\nall backed by a local database file.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
				With().Timestamp().Logger()

			var err error
			cfg, err = config.Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			st, err = store.Open(cfg.DBPath, store.Options{
				CascadeLabImages: cfg.CascadeLabImages,
			})
			if err != nil {
				return fmt.Errorf("open database: %w", err)
			}
			importer = &labfiles.Importer{Dir: cfg.LabImageDir}

			// Startup sweep; failures are logged inside and never fatal.
			st.PurgeOldQueue(cfg.QueueRetentionDays)
			return nil
		},
	}

	root.AddCommand(
		patientCmd(),
		visitCmd(),
		medicineCmd(),
		queueCmd(),
		labsCmd(),
		certificateCmd(),
	)

	if err := root.Execute(); err != nil {
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}

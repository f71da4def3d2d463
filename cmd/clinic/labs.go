package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/notsocj/clinic-records/internal/labfiles"
)

func labsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "labs",
		Short: "Manage lab attachments and the lab reference list",
	}
	cmd.AddCommand(labsImportCmd(), labsListCmd(), labsDeleteCmd(), labsPreviewCmd(), labsCatalogCmd())
	return cmd
}

func labsImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <patient id> <file>...",
		Short: "Attach scans or lab reports to a patient",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid patient id %q", args[0])
			}

			res, err := importer.Import(st, id, args[1:])
			if err != nil {
				return err
			}
			fmt.Printf("Saved %d new file(s), skipped %d already on record\n",
				len(res.Saved), len(res.Skipped))
			if res.CheckupID != 0 {
				fmt.Printf("Recorded under checkup %d\n", res.CheckupID)
			}
			return nil
		},
	}
}

func labsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list <patient id>",
		Short: "List a patient's lab attachments",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid patient id %q", args[0])
			}
			for _, path := range st.ListPatientLabImages(id) {
				fmt.Println(path)
			}
			return nil
		},
	}
}

func labsDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <patient id> <file path>",
		Short: "Remove one attachment record",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid patient id %q", args[0])
			}
			if !st.DeletePatientLabImage(id, args[1]) {
				return fmt.Errorf("no attachment %q on record for patient %d", args[1], id)
			}
			fmt.Println("Attachment record removed.")
			return nil
		},
	}
}

func labsPreviewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "preview <file>",
		Short: "Extract the text of a PDF lab report",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := labfiles.PreviewText(args[0])
			if err != nil {
				return err
			}
			if strings.TrimSpace(text) == "" {
				fmt.Println("No extractable text.")
				return nil
			}
			fmt.Println(text)
			return nil
		},
	}
}

func labsCatalogCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "catalog",
		Short: "List the lab reference table",
		RunE: func(cmd *cobra.Command, args []string) error {
			labs, err := st.ListLabs()
			if err != nil {
				return err
			}
			for _, l := range labs {
				fmt.Printf("%4d  %s\n", l.ID, l.Name)
			}
			return nil
		},
	}
}

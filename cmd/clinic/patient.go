package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/notsocj/clinic-records/internal/store"
)

func patientCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "patient",
		Short: "Manage patient demographics",
	}
	cmd.AddCommand(patientAddCmd(), patientShowCmd(), patientListCmd(), patientDeleteCmd())
	return cmd
}

func patientFlags(cmd *cobra.Command, p *store.Patient) {
	cmd.Flags().StringVar(&p.Name, "name", "", "full patient name")
	cmd.Flags().StringVar(&p.Address, "address", "", "home address")
	cmd.Flags().StringVar(&p.Birthdate, "birthdate", "", "birthdate (YYYY-MM-DD)")
	cmd.Flags().StringVar(&p.Phone, "phone", "", "contact number")
	cmd.Flags().StringVar(&p.CivilStatus, "civil-status", "", "Single, Married, Divorced or Widowed")
	cmd.Flags().StringVar(&p.Gender, "gender", "", "Male or Female")
}

func patientAddCmd() *cobra.Command {
	var p store.Patient
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Register a new patient",
		RunE: func(cmd *cobra.Command, args []string) error {
			if p.Name == "" {
				return fmt.Errorf("--name is required")
			}
			if existing, err := st.GetPatientByName(p.Name); err != nil {
				return err
			} else if existing != nil {
				return fmt.Errorf("patient %q already exists (id %d)", p.Name, existing.ID)
			}

			id, err := st.AddPatient(p)
			if err != nil {
				return err
			}
			fmt.Printf("Registered patient %q with id %d\n", p.Name, id)
			return nil
		},
	}
	patientFlags(cmd, &p)
	cmd.MarkFlagRequired("name")
	return cmd
}

func patientShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <name>",
		Short: "Show a patient's details and visit history",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := st.GetPatientByName(args[0])
			if err != nil {
				return err
			}
			if p == nil {
				return fmt.Errorf("no patient named %q", args[0])
			}

			fmt.Printf("id:           %d\n", p.ID)
			fmt.Printf("name:         %s\n", p.Name)
			fmt.Printf("address:      %s\n", p.Address)
			fmt.Printf("birthdate:    %s\n", p.Birthdate)
			fmt.Printf("phone:        %s\n", p.Phone)
			fmt.Printf("civil status: %s\n", p.CivilStatus)
			fmt.Printf("gender:       %s\n", p.Gender)
			if bp := st.LatestBloodPressure(p.ID); bp != "" {
				fmt.Printf("last BP:      %s\n", bp)
			}

			history := st.ListCheckupsForPatient(p.ID)
			if len(history) == 0 {
				fmt.Println("\nNo previous checkups.")
				return nil
			}
			fmt.Printf("\nVisits (%d):\n", len(history))
			for _, c := range history {
				fmt.Printf("  %s  BP %-8s %s\n", c.LastCheckupDate, c.BloodPressure, c.Findings)
			}
			return nil
		},
	}
}

func patientListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all patients by name",
		RunE: func(cmd *cobra.Command, args []string) error {
			patients, err := st.ListPatients()
			if err != nil {
				return err
			}
			for _, p := range patients {
				fmt.Printf("%4d  %s\n", p.ID, p.Name)
			}
			return nil
		},
	}
}

func patientDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a patient with all checkups and prescriptions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid patient id %q", args[0])
			}

			p, err := st.GetPatientDetails(id)
			if err != nil {
				return err
			}
			if p == nil {
				return fmt.Errorf("no patient with id %d", id)
			}

			if err := st.DeletePatient(id); err != nil {
				return err
			}
			fmt.Printf("Deleted patient %q and all associated records\n", p.Name)
			return nil
		},
	}
}

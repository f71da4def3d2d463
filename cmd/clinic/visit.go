package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/notsocj/clinic-records/internal/store"
)

func visitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "visit",
		Short: "Record and browse clinical visits",
	}
	cmd.AddCommand(visitSaveCmd(), visitShowCmd())
	return cmd
}

// visitSaveCmd is the whole front-desk save flow: upsert the patient by
// name, update or create the checkup for the visit date, then replace the
// prescription list for that date.
func visitSaveCmd() *cobra.Command {
	var (
		p        store.Patient
		date     string
		findings string
		bp       string
		rxSpecs  []string
	)
	cmd := &cobra.Command{
		Use:   "save",
		Short: "Save a visit (creates or updates patient, checkup and prescriptions)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if p.Name == "" {
				return fmt.Errorf("--name is required")
			}
			if date == "" {
				date = time.Now().Format("2006-01-02")
			}

			rxs, err := parsePrescriptions(rxSpecs)
			if err != nil {
				return err
			}

			// Same name means same patient: update in place.
			existing, err := st.GetPatientByName(p.Name)
			if err != nil {
				return err
			}
			var patientID int64
			if existing != nil {
				patientID = existing.ID
				p.ID = patientID
				if err := st.UpdatePatient(p); err != nil {
					return err
				}
			} else {
				patientID, err = st.AddPatient(p)
				if err != nil {
					return err
				}
			}

			// Check-then-update-or-insert: the schema does not enforce
			// one checkup per date.
			checkup, err := st.GetCheckupByDate(patientID, date)
			if err != nil {
				return err
			}
			if checkup != nil {
				if !st.UpdateCheckup(findings, checkup.LabIDs, bp, checkup.ID) {
					fmt.Println("Warning: checkup not updated, visit notes unchanged")
				}
			} else {
				_, err = st.AddCheckup(store.Checkup{
					PatientID:       patientID,
					Findings:        findings,
					DateOfVisit:     date,
					LastCheckupDate: date,
					BloodPressure:   bp,
				})
				if err != nil {
					return err
				}
			}

			// Replace-on-save: clear the date's prescriptions, reinsert
			// the current list.
			if err := st.DeletePrescriptionsForCheckup(patientID, date); err != nil {
				return err
			}
			for _, rx := range rxs {
				rx.PatientID = patientID
				rx.LastCheckupDate = date
				if err := st.AddPrescription(rx); err != nil {
					return err
				}
			}

			if existing != nil {
				fmt.Printf("Updated visit %s for %q (id %d)\n", date, p.Name, patientID)
			} else {
				fmt.Printf("Saved new patient %q (id %d) with visit %s\n", p.Name, patientID, date)
			}
			return nil
		},
	}
	patientFlags(cmd, &p)
	cmd.Flags().StringVar(&date, "date", "", "visit date (YYYY-MM-DD, default today)")
	cmd.Flags().StringVar(&findings, "findings", "", "diagnosis / findings text")
	cmd.Flags().StringVar(&bp, "bp", "", "blood pressure reading")
	cmd.Flags().StringArrayVar(&rxSpecs, "rx", nil,
		`prescription line "generic|brand|quantity|administration" (repeatable)`)
	cmd.MarkFlagRequired("name")
	return cmd
}

func parsePrescriptions(specs []string) ([]store.Prescription, error) {
	var out []store.Prescription
	for _, spec := range specs {
		parts := strings.Split(spec, "|")
		if len(parts) != 4 {
			return nil, fmt.Errorf("invalid --rx %q: want generic|brand|quantity|administration", spec)
		}
		out = append(out, store.Prescription{
			Generic:        strings.TrimSpace(parts[0]),
			Brand:          strings.TrimSpace(parts[1]),
			Quantity:       strings.TrimSpace(parts[2]),
			Administration: strings.TrimSpace(parts[3]),
		})
	}
	return out, nil
}

func visitShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <name> <date>",
		Short: "Show one visit with its prescriptions",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, date := args[0], args[1]

			p, err := st.GetPatientByName(name)
			if err != nil {
				return err
			}
			if p == nil {
				return fmt.Errorf("no patient named %q", name)
			}

			c, err := st.GetCheckupByDate(p.ID, date)
			if err != nil {
				return err
			}
			if c == nil {
				return fmt.Errorf("no visit for %q on %s", name, date)
			}

			fmt.Printf("Visit %s for %s\n", date, p.Name)
			if c.BloodPressure != "" {
				fmt.Printf("BP: %s\n", c.BloodPressure)
			}
			fmt.Printf("Findings: %s\n", c.Findings)

			rxs, err := st.GetPrescriptionsForCheckup(p.ID, date)
			if err != nil {
				return err
			}
			if len(rxs) > 0 {
				fmt.Println("\nPrescriptions:")
				for _, rx := range rxs {
					fmt.Printf("  %-20s %-20s %-8s %s\n", rx.Brand, rx.Generic, rx.Quantity, rx.Administration)
				}
			}
			if imgs := st.ListCheckupLabImages(c.ID); len(imgs) > 0 {
				fmt.Println("\nLab attachments:")
				for _, path := range imgs {
					fmt.Printf("  %s\n", path)
				}
			}
			return nil
		},
	}
}

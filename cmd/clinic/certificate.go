package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/notsocj/clinic-records/internal/certificate"
)

func certificateCmd() *cobra.Command {
	var lh certificate.Letterhead
	var diagnosis, remarks string

	cmd := &cobra.Command{
		Use:   "certificate <patient name>",
		Short: "Print a medical certificate for a patient",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := st.GetPatientByName(args[0])
			if err != nil {
				return err
			}
			if p == nil {
				return fmt.Errorf("no patient named %q on record", args[0])
			}

			now := time.Now()
			age, err := certificate.AgeAt(p.Birthdate, now)
			if err != nil {
				return fmt.Errorf("patient birthdate: %w", err)
			}

			// Fall back to the latest recorded findings when no
			// diagnosis is given on the command line.
			if diagnosis == "" {
				for _, c := range st.ListCheckupsForPatient(p.ID) {
					if c.Findings != "" {
						diagnosis = c.Findings
						break
					}
				}
			}

			d := certificate.Details{
				PatientName: p.Name,
				Age:         age,
				Address:     p.Address,
				Diagnosis:   diagnosis,
				Remarks:     remarks,
			}
			fmt.Print(certificate.Render(d, lh, now))
			return nil
		},
	}

	cmd.Flags().StringVar(&lh.Doctor, "doctor", "", "attending physician's name")
	cmd.Flags().StringVar(&lh.Specialty, "specialty", "", "physician's specialty")
	cmd.Flags().StringVar(&lh.SubSpecialty, "sub-specialty", "", "physician's sub-specialty")
	cmd.Flags().StringVar(&lh.LicenseNo, "license-no", "", "professional license number")
	cmd.Flags().StringVar(&lh.PTRNo, "ptr-no", "", "professional tax receipt number")
	cmd.Flags().StringVar(&lh.ClinicName, "clinic", "", "clinic name for the letterhead")
	cmd.Flags().StringVar(&diagnosis, "diagnosis", "", "diagnosis line (defaults to the latest findings)")
	cmd.Flags().StringVar(&remarks, "remarks", "", "remarks line")
	_ = cmd.MarkFlagRequired("doctor")

	return cmd
}

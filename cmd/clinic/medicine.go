package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func medicineCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "medicine",
		Short: "Curate the medicine catalog",
	}
	cmd.AddCommand(medicineAddCmd(), medicineUpdateCmd(), medicineDeleteCmd(), medicineListCmd())
	return cmd
}

func medicineAddCmd() *cobra.Command {
	var quantity, administration string
	cmd := &cobra.Command{
		Use:   "add <brand> <generic>",
		Short: "Add a catalog entry",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			brand, generic := args[0], args[1]

			var (
				id  int64
				err error
			)
			if quantity == "" && administration == "" {
				id, err = st.AddMedicine(brand, generic)
			} else {
				id, err = st.AddMedicineFull(brand, generic, quantity, administration)
			}
			if err != nil {
				return err
			}
			fmt.Printf("Added medicine %s (%s) with id %d\n", brand, generic, id)
			return nil
		},
	}
	cmd.Flags().StringVar(&quantity, "quantity", "", "default dosage text")
	cmd.Flags().StringVar(&administration, "administration", "", "default route/frequency text")
	return cmd
}

func medicineUpdateCmd() *cobra.Command {
	var quantity, administration string
	cmd := &cobra.Command{
		Use:   "update <id> <generic>",
		Short: "Update a catalog entry",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid medicine id %q", args[0])
			}
			generic := args[1]

			// Without dosage flags this is the legacy generic-only update.
			if !cmd.Flags().Changed("quantity") && !cmd.Flags().Changed("administration") {
				if err := st.UpdateMedicineGeneric(id, generic); err != nil {
					return err
				}
			} else {
				if err := st.UpdateMedicine(id, generic, quantity, administration); err != nil {
					return err
				}
			}
			fmt.Printf("Updated medicine %d\n", id)
			return nil
		},
	}
	cmd.Flags().StringVar(&quantity, "quantity", "", "default dosage text")
	cmd.Flags().StringVar(&administration, "administration", "", "default route/frequency text")
	return cmd
}

func medicineDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Remove a catalog entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid medicine id %q", args[0])
			}

			n, err := st.DeleteMedicine(id)
			if err != nil {
				return err
			}
			if n == 0 {
				fmt.Printf("No medicine with id %d\n", id)
				return nil
			}
			fmt.Printf("Deleted medicine %d\n", id)
			return nil
		},
	}
}

func medicineListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			meds, err := st.ListMedicines()
			if err != nil {
				return err
			}
			for _, m := range meds {
				fmt.Printf("%4d  %-20s %-20s %-10s %s\n",
					m.ID, m.Brand, m.Generic, m.Quantity, m.Administration)
			}
			return nil
		},
	}
}

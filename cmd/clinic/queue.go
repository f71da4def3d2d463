package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/notsocj/clinic-records/internal/store"
)

func queueCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "queue",
		Short: "Manage today's walk-in queue",
	}
	cmd.AddCommand(
		queueAddCmd(),
		queueListCmd(),
		queueStatusCmd("done", store.QueueCompleted, "Mark a queue slot completed"),
		queueStatusCmd("cancel", store.QueueCancelled, "Mark a queue slot cancelled"),
		queueRemoveCmd(),
		queuePurgeCmd(),
	)
	return cmd
}

func queueAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <patient name>",
		Short: "Add a walk-in to today's queue",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			number := st.NextQueueNumber()
			id := st.AddToQueue(number, args[0], time.Now().Format("15:04"))
			if id == 0 {
				return fmt.Errorf("could not add %q to the queue", args[0])
			}
			fmt.Printf("#%d  %s\n", number, args[0])
			return nil
		},
	}
}

func queueListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Show who is still waiting today",
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := st.ListTodaysQueue()
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				fmt.Println("Queue is empty.")
				return nil
			}
			for _, q := range entries {
				fmt.Printf("#%-3d %-30s %s  (id %d)\n", q.Number, q.PatientName, q.Time, q.ID)
			}
			return nil
		},
	}
}

func queueStatusCmd(use, status, short string) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <id>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid queue id %q", args[0])
			}
			if !st.UpdateQueueStatus(id, status) {
				return fmt.Errorf("queue slot %d not updated", id)
			}
			fmt.Printf("Queue slot %d is now %s\n", id, status)
			return nil
		},
	}
}

func queueRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <id>",
		Short: "Remove a slot from the queue entirely",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid queue id %q", args[0])
			}
			if !st.RemoveFromQueue(id) {
				return fmt.Errorf("queue slot %d not removed", id)
			}
			fmt.Printf("Removed queue slot %d\n", id)
			return nil
		},
	}
}

func queuePurgeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "purge",
		Short: "Sweep queue entries older than the retention window",
		RunE: func(cmd *cobra.Command, args []string) error {
			st.PurgeOldQueue(cfg.QueueRetentionDays)
			fmt.Printf("Purged entries older than %d days\n", cfg.QueueRetentionDays)
			return nil
		},
	}
}

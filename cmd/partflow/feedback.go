package main

import (
	"fmt"
	"time"

	"github.com/C0DE-Z/Drone-Part-Picker-sub000/internal/model"
	"github.com/spf13/cobra"
)

func feedbackCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "feedback <listing-id> <category>",
		Short: "Record a human category correction",
		Long: `Append a correction to the feedback log. The log is consumed by
the offline weight-tuning pass; it never influences classification
synchronously, so classification stays deterministic.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			category := model.ParseCategory(args[1])
			if !category.IsKnown() {
				return fmt.Errorf("unknown category %q", args[1])
			}

			store, err := openStorage()
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			ctx := cmd.Context()
			if err := store.Migrate(ctx); err != nil {
				return fmt.Errorf("failed to migrate catalog index: %w", err)
			}

			listing, err := store.GetListing(ctx, args[0])
			if err != nil {
				return err
			}

			entry := model.FeedbackEntry{
				Fingerprint: listing.Fingerprint,
				Category:    category,
				Timestamp:   time.Now().UTC(),
			}
			if err := store.AppendFeedback(ctx, entry); err != nil {
				return err
			}

			cmd.Printf("recorded feedback for %s: %s\n", args[0], category)
			return nil
		},
	}
	return cmd
}

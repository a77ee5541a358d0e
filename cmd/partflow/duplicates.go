package main

import (
	"fmt"

	"github.com/C0DE-Z/Drone-Part-Picker-sub000/internal/dupe"
	"github.com/C0DE-Z/Drone-Part-Picker-sub000/internal/model"
	"github.com/spf13/cobra"
)

func duplicatesCmd() *cobra.Command {
	var (
		description string
		vendor      string
		category    string
	)

	cmd := &cobra.Command{
		Use:   "duplicates <name>",
		Short: "Find likely duplicates of a listing in the catalog index",
		Long: `Compare a listing against the indexed catalog and print
candidates ranked by similarity. Candidates at or above the auto-merge
threshold are safe to merge automatically; the rest need human review.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			table, err := loadTable()
			if err != nil {
				return err
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

			pool, err := store.CatalogEntries(ctx)
			if err != nil {
				return err
			}

			listing := model.Listing{
				Name:             args[0],
				Description:      description,
				Vendor:           vendor,
				ExistingCategory: model.ParseCategory(category),
			}

			candidates := dupe.NewMatcher(table).FindDuplicates(listing, pool)
			if len(candidates) == 0 {
				cmd.Println("no duplicate candidates")
				return nil
			}

			for _, c := range candidates {
				cmd.Printf("%s  similarity=%.2f  %s\n", c.CandidateID, c.Similarity, c.Action)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&description, "description", "d", "", "listing description text")
	cmd.Flags().StringVar(&vendor, "vendor", "", "vendor name")
	cmd.Flags().StringVar(&category, "category", "", "category the listing was classified into")
	return cmd
}

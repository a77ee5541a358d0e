package main

import (
	"fmt"

	"github.com/C0DE-Z/Drone-Part-Picker-sub000/internal/service"
	"github.com/C0DE-Z/Drone-Part-Picker-sub000/internal/variant"
	"github.com/spf13/cobra"
)

func addCmd() *cobra.Command {
	var (
		id          string
		description string
		vendor      string
	)

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Classify a listing and record it in the catalog index",
		Long: `Classify a scraped listing, warn when it bundles multiple SKUs,
and store the result in the local catalog index used by resort and
duplicate matching.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if id == "" {
				return fmt.Errorf("--id is required")
			}

			classifier, err := buildClassifier()
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

			name := args[0]
			result := classifier.Classify(name, description)
			printResult(cmd, result)

			if plan := variant.NewDetector().DetectVariants(name, description, result.Category); plan != nil {
				cmd.Printf("\nbundled listing: %d %s variants detected; consider splitting:\n",
					len(plan.Children), plan.Group.Type)
				for _, child := range plan.Children {
					cmd.Printf("  %s\n", child.Name)
				}
			}

			listing := service.StoredListing{
				ID:          id,
				Name:        name,
				Description: description,
				Vendor:      vendor,
				Category:    result.Category,
				Method:      result.Method,
				Confidence:  result.Confidence,
			}
			if err := store.UpsertListing(ctx, &listing); err != nil {
				return err
			}

			cmd.Printf("\nindexed listing %s\n", id)
			return nil
		},
	}

	cmd.Flags().StringVar(&id, "id", "", "listing identifier (required)")
	cmd.Flags().StringVarP(&description, "description", "d", "", "listing description text")
	cmd.Flags().StringVar(&vendor, "vendor", "", "vendor name")
	return cmd
}

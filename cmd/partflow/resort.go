package main

import (
	"fmt"

	"github.com/C0DE-Z/Drone-Part-Picker-sub000/internal/engine"
	"github.com/C0DE-Z/Drone-Part-Picker-sub000/internal/model"
	"github.com/C0DE-Z/Drone-Part-Picker-sub000/internal/service"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

func resortCmd() *cobra.Command {
	var (
		category  string
		vendor    string
		overwrite string
		workers   int
		dryRun    bool
	)

	cmd := &cobra.Command{
		Use:   "resort",
		Short: "Reclassify the catalog index, or a filtered subset",
		Long: `Re-run classification over already-indexed listings. Listings are
processed concurrently; per-item failures are collected without aborting
the run, and an interrupt stops it cooperatively.

Examples:
  # Reclassify everything currently filed as unknown
  partflow resort --category unknown

  # Dry run over one vendor's listings
  partflow resort --vendor getfpv --dry-run

  # Full-catalog resort, overwriting existing assignments
  partflow resort --overwrite always`,
		RunE: func(cmd *cobra.Command, _ []string) error {
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

			opts := engine.DefaultResortOptions()
			opts.DryRun = dryRun
			if workers > 0 {
				opts.Workers = workers
			}
			switch overwrite {
			case "", string(engine.OverwriteKeepConfident):
				opts.Overwrite = engine.OverwriteKeepConfident
			case string(engine.OverwriteAlways):
				opts.Overwrite = engine.OverwriteAlways
			default:
				return fmt.Errorf("invalid --overwrite value %q (use always or keep-confident)", overwrite)
			}

			filter := service.ListingFilter{Vendor: vendor}
			if category != "" {
				cat := model.ParseCategory(category)
				filter.Category = &cat
			}
			opts.Filter = filter

			var bar *progressbar.ProgressBar
			opts.OnProgress = func(processed, total int) {
				if bar == nil {
					bar = progressbar.Default(int64(total), "resorting")
				}
				_ = bar.Set(processed)
			}

			summary, err := engine.NewResorter(classifier, store).Run(ctx, opts)
			if summary != nil {
				printSummary(cmd, summary, dryRun)
			}
			return err
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "only resort listings currently in this category")
	cmd.Flags().StringVar(&vendor, "vendor", "", "only resort listings from this vendor")
	cmd.Flags().StringVar(&overwrite, "overwrite", "", "existing-assignment policy: always or keep-confident")
	cmd.Flags().IntVar(&workers, "workers", 0, "worker count (default: number of CPUs)")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "report changes without persisting them")
	return cmd
}

func printSummary(cmd *cobra.Command, summary *engine.ResortSummary, dryRun bool) {
	cmd.Printf("\nprocessed:    %d\n", summary.TotalProcessed)
	cmd.Printf("reclassified: %d\n", summary.Reclassified)
	cmd.Printf("errors:       %d\n", len(summary.Errors))

	if dryRun {
		for _, change := range summary.Changes {
			cmd.Printf("  %s: %s -> %s (confidence %d)\n",
				change.ID, change.From, change.To, change.Confidence)
		}
	}
	for _, e := range summary.Errors {
		cmd.Printf("  error %s: %v\n", e.ID, e.Err)
	}
}

package main

import (
	"strings"

	"github.com/C0DE-Z/Drone-Part-Picker-sub000/internal/model"
	"github.com/C0DE-Z/Drone-Part-Picker-sub000/internal/variant"
	"github.com/spf13/cobra"
)

func variantsCmd() *cobra.Command {
	var (
		description string
		category    string
	)

	cmd := &cobra.Command{
		Use:   "variants <name>",
		Short: "Detect bundled SKU variants in a listing",
		Long: `Scan a listing for enumerated same-spec values (KV ratings,
capacities, cell counts, amperages, sizes) and print the proposed split.

Example:
  partflow variants "Badass 2 - 2207.5 Motor - 1400KV/1900KV/2400KV"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			cat := model.ParseCategory(category)

			plan := variant.NewDetector().DetectVariants(name, description, cat)
			if plan == nil {
				cmd.Println("no variant bundle detected")
				return nil
			}

			cmd.Printf("variant type: %s\n", plan.Group.Type)
			cmd.Printf("base name:    %s\n", plan.Group.BaseName)
			cmd.Printf("values:       %s\n", strings.Join(plan.Group.Values, ", "))
			cmd.Println("children:")
			for _, child := range plan.Children {
				cmd.Printf("  %s\n", child.Name)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&description, "description", "d", "", "listing description text")
	cmd.Flags().StringVar(&category, "category", "", "category the listing was classified into")
	return cmd
}

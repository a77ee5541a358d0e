package main

import (
	"strings"

	"github.com/C0DE-Z/Drone-Part-Picker-sub000/internal/model"
	"github.com/spf13/cobra"
)

func classifyCmd() *cobra.Command {
	var description string

	cmd := &cobra.Command{
		Use:   "classify <name>",
		Short: "Classify a single listing",
		Long: `Classify a raw listing name (plus optional description) into a
part category, printing the confidence, deciding rule class, and the full
reasoning trail.

Examples:
  partflow classify "Tattu 1550mAh 4S 75C LiPo Battery"
  partflow classify "SpeedyBee Mario 5 Frame Kit" --description "propeller compatibility: up to 5.1\""`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			classifier, err := buildClassifier()
			if err != nil {
				return err
			}

			name := strings.Join(args, " ")
			result := classifier.Classify(name, description)
			printResult(cmd, result)
			return nil
		},
	}

	cmd.Flags().StringVarP(&description, "description", "d", "", "listing description text")
	return cmd
}

func printResult(cmd *cobra.Command, result model.ClassificationResult) {
	cmd.Printf("category:   %s\n", result.Category)
	cmd.Printf("confidence: %d\n", result.Confidence)
	cmd.Printf("method:     %s\n", result.Method)
	if len(result.Reasoning) > 0 {
		cmd.Printf("reasoning:  %s\n", strings.Join(result.Reasoning, ", "))
	}
	for _, w := range result.Warnings {
		cmd.Printf("warning:    %s\n", w)
	}
}

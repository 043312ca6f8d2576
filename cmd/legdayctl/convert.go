package main

import (
	"fmt"
	"strconv"

	"github.com/2beens/legday/internal/units"

	"github.com/spf13/cobra"
)

func newConvertCmd() *cobra.Command {
	var toggles int

	cmd := &cobra.Command{
		Use:   "convert <value> <from> <to>",
		Short: "Convert a weight between lb and kg",
		Long: `Convert a weight between lb and kg.

With --toggle N the displayed unit is switched N more times after the
conversion, printing each value. Every value is converted from the typed
one, so toggling back and forth never drifts.`,
		Example: "  legdayctl convert 100 lb kg\n  legdayctl convert 135 lb kg --toggle 3",
		Args:    cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("invalid value [%s]: %w", args[0], err)
			}
			from, err := units.ParseMetric(args[1])
			if err != nil {
				return err
			}
			to, err := units.ParseMetric(args[2])
			if err != nil {
				return err
			}
			if toggles < 0 {
				return fmt.Errorf("invalid toggle count [%d]", toggles)
			}

			result, err := units.Convert(value, from, to)
			if err != nil {
				return err
			}
			if err := printWeight(cmd, result, to); err != nil {
				return err
			}
			if toggles == 0 {
				return nil
			}

			entry, err := units.NewWeightEntry(value, from)
			if err != nil {
				return err
			}
			if to != from {
				entry = entry.Toggle()
			}
			for i := 0; i < toggles; i++ {
				entry = entry.Toggle()
				shown, metric := entry.Displayed()
				if err := printWeight(cmd, shown, metric); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&toggles, "toggle", 0, "switch the displayed unit N times after converting")

	return cmd
}

func printWeight(cmd *cobra.Command, value float64, metric units.Metric) error {
	_, err := fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", strconv.FormatFloat(value, 'f', -1, 64), metric)
	return err
}

package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"vitals/internal/engine"
)

var verdictDate string

var verdictCmd = &cobra.Command{
	Use:   "verdict",
	Short: "Show the risk verdict for a day",
	Long: `Evaluate the risk gates for one day and print the verdict.

The verdict is GREEN, YELLOW or RED with a recommended step ceiling,
or GRAY when the day has no data. Every flag that fired is listed,
red flags first.

EXAMPLES:

  vitals verdict                    # today
  vitals verdict --date 2026-08-20  # a specific day`,
	RunE: func(cmd *cobra.Command, args []string) error {
		day, err := parseDateFlag(verdictDate)
		if err != nil {
			return err
		}

		verdict, err := eng.Evaluate(day)
		if err != nil {
			return err
		}

		printVerdict(verdict)
		return nil
	},
}

func init() {
	verdictCmd.Flags().StringVarP(&verdictDate, "date", "d", "", "day to evaluate (YYYY-MM-DD, default today)")
}

func statusColor(s engine.Status) *color.Color {
	switch s {
	case engine.StatusGreen:
		return color.New(color.FgGreen, color.Bold)
	case engine.StatusYellow:
		return color.New(color.FgYellow, color.Bold)
	case engine.StatusRed:
		return color.New(color.FgRed, color.Bold)
	}
	return color.New(color.Faint, color.Bold)
}

func printVerdict(v *engine.Verdict) {
	faint := color.New(color.Faint)

	fmt.Printf("%s  %s\n", v.Day.Format("Mon 2006-01-02"), statusColor(v.Status).Sprint(string(v.Status)))
	fmt.Println(v.Reason())
	fmt.Printf("Step ceiling: %d\n", v.TargetSteps)

	if v.Metrics.RestingHR != nil {
		faint.Printf("  rhr %.1f bpm\n", *v.Metrics.RestingHR)
	}
	if v.Metrics.BodyBattery != nil {
		faint.Printf("  body battery %.0f%%\n", *v.Metrics.BodyBattery)
	}
	if v.Metrics.PhysioCost > 0 {
		faint.Printf("  cost %.1f kcal/1k steps\n", v.Metrics.PhysioCost)
	}

	if len(v.Flags) == 0 {
		return
	}
	fmt.Println()
	for _, f := range v.RedFlags() {
		color.New(color.FgRed).Printf("  ✗ %s\n", f.Message())
	}
	for _, f := range v.Warnings() {
		color.New(color.FgYellow).Printf("  ! %s\n", f.Message())
	}
}

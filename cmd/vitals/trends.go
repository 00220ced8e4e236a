package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"vitals/internal/engine"
)

var (
	trendsDate string
	trendsDays int
)

var trendsCmd = &cobra.Command{
	Use:   "trends",
	Short: "Show short-horizon signal trends",
	Long: `Print the current value plus 3- and 7-day deltas for resting HR,
body battery, stress and HRV, along with the recent efficiency-cost
series (active kcal per 1000 steps).

EXAMPLES:

  vitals trends
  vitals trends --days 14
  vitals trends --date 2026-08-20`,
	RunE: func(cmd *cobra.Command, args []string) error {
		day, err := parseDateFlag(trendsDate)
		if err != nil {
			return err
		}

		report, err := eng.Trends(day, trendsDays)
		if err != nil {
			return err
		}

		fmt.Printf("Trends through %s\n\n", day.Format("Mon 2006-01-02"))
		printTrendLine("RHR", report.RHR, "bpm")
		printTrendLine("Battery", report.Battery, "%")
		printTrendLine("Stress", report.Stress, "")
		printTrendLine("HRV", report.HRV, "ms")

		if len(report.Cost) > 0 {
			fmt.Println()
			fmt.Println("Cost (kcal/1k steps):")
			for _, p := range report.Cost {
				statusColor(p.Band).Printf("  %s  %.1f\n", p.Day, p.Cost)
			}
		}
		return nil
	},
}

func printTrendLine(label string, t engine.SignalTrend, unit string) {
	faint := color.New(color.Faint)
	if t.Value == 0 {
		fmt.Printf("%-8s %s\n", label, faint.Sprint("no data"))
		return
	}
	fmt.Printf("%-8s %6.1f %-3s ", label, t.Value, unit)
	faint.Printf("3d %+.1f  7d %+.1f\n", t.Delta3d, t.Delta7d)
}

func init() {
	trendsCmd.Flags().StringVarP(&trendsDate, "date", "d", "", "day to end the window on (YYYY-MM-DD, default today)")
	trendsCmd.Flags().IntVarP(&trendsDays, "days", "n", 7, "lookback window in days")
}

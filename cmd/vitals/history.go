package main

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var historyDays int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show day-by-day verdicts and scores",
	Long: `Print the verdict and recovery score for each of the last N days,
newest first. Days where storage failed are marked "data gap"; their
verdict falls back to neutral and the score is omitted.

EXAMPLES:

  vitals history
  vitals history --days 30`,
	RunE: func(cmd *cobra.Command, args []string) error {
		days := historyDays
		if days <= 0 {
			days = cfg.Display.HistoryDays
		}

		end := time.Now()
		start := end.AddDate(0, 0, -(days - 1))
		points, err := eng.History(start, end)
		if err != nil {
			return err
		}

		faint := color.New(color.Faint)
		for i := len(points) - 1; i >= 0; i-- {
			p := points[i]

			score := "   -  "
			if p.Score != nil {
				score = fmt.Sprintf("%5.1f ", p.Score.Score)
			}

			fmt.Printf("%s  %s %s",
				p.Day.Format("Mon 2006-01-02"),
				statusColor(p.Verdict.Status).Sprintf("%-6s", string(p.Verdict.Status)),
				score)

			if p.Degraded {
				color.New(color.FgRed).Print(" data gap")
			} else if n := len(p.Verdict.Flags); n > 0 {
				faint.Printf(" %d flag(s)", n)
			}
			fmt.Println()
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().IntVarP(&historyDays, "days", "n", 0, "days to show (default from config)")
}

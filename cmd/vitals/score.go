package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var scoreDate string

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Show the recovery score for a day",
	Long: `Compute the 0-100 recovery score for one day.

The composite blends three sub-scores over a trailing 7-day window:
resting heart rate (40%), HRV (40%) and stress (20%). A RED verdict
vetoes the score to 40; a YELLOW verdict caps it at 75.

EXAMPLES:

  vitals score
  vitals score --date 2026-08-20`,
	RunE: func(cmd *cobra.Command, args []string) error {
		day, err := parseDateFlag(scoreDate)
		if err != nil {
			return err
		}

		// The veto needs the day's verdict.
		verdict, err := eng.Evaluate(day)
		if err != nil {
			return err
		}
		score, err := eng.Score(day, verdict.Status)
		if err != nil {
			return err
		}

		faint := color.New(color.Faint)

		fmt.Printf("%s  recovery %s\n",
			day.Format("Mon 2006-01-02"),
			statusColor(verdict.Status).Sprintf("%.1f / 100", score.Score))
		if score.Vetoed() {
			color.New(color.FgRed).Println(score.VetoMessage)
		}

		fmt.Println()
		fmt.Printf("RHR    %5.1f  ", score.RHR.Score)
		faint.Printf("7d avg %.1f bpm, z %+.2f\n", score.RHR.Avg7d, score.RHR.ZScore)
		fmt.Printf("HRV    %5.1f  ", score.HRV.Score)
		faint.Printf("last night %.1f ms, 7d avg %.1f ms, ratio %.2f\n",
			score.HRV.LastNight, score.HRV.Avg7d, score.HRV.Ratio)
		fmt.Printf("Stress %5.1f  ", score.Stress.Score)
		faint.Printf("raw %.1f, adjusted %.1f\n", score.Stress.Raw, score.Stress.Adjusted)

		return nil
	},
}

func init() {
	scoreCmd.Flags().StringVarP(&scoreDate, "date", "d", "", "day to score (YYYY-MM-DD, default today)")
}

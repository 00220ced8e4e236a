package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Run the device export script",
	Long: `Run the sync script configured as data.sync_script and stream its
output. The script owns the actual device download and database
writes; vitals only reads the result.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		faint := color.New(color.Faint)
		err := syncRunner().Run(cmd.Context(), func(line string) {
			faint.Println(line)
		})
		if err != nil {
			return err
		}
		fmt.Println("Sync complete.")
		return nil
	},
}

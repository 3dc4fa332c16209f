package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var resultsCmd = &cobra.Command{
	Use:   "results",
	Short: "Print the practice log, newest first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		student, _ := cmd.Flags().GetString("student")
		limit, _ := cmd.Flags().GetInt("limit")

		results, err := st.ListResults(cmd.Context(), student, limit)
		if err != nil {
			return err
		}
		for _, r := range results {
			mark := "✗"
			if r.IsCorrect {
				mark = "✓"
			}
			fmt.Printf("%s  %s  %-10s %s  %q -> %q\n",
				r.Timestamp.Format("2006-01-02 15:04"), mark, r.Standard,
				r.Student, r.UserAnswer, r.CorrectAnswer)
		}
		return nil
	},
}

func init() {
	resultsCmd.Flags().String("student", "", "Only show results for this student")
	resultsCmd.Flags().Int("limit", 0, "Maximum rows to print (0 = all)")
}

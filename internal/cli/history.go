package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/cmlabs-hris/staff-roster-go/internal/pkg/validator"
)

var historyMonth string

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show the activity log for a month",
	Args:  cobra.NoArgs,
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().StringVar(&historyMonth, "month", "", "Month to show, YYYY-MM (default: current month)")
}

func runHistory(cmd *cobra.Command, args []string) error {
	month := time.Now()
	if historyMonth != "" {
		parsed, ok := validator.IsValidMonth(historyMonth)
		if !ok {
			return fmt.Errorf("invalid month %q, expected YYYY-MM", historyMonth)
		}
		month = parsed
	}

	entries, err := application.history.ListMonth(cmd.Context(), month)
	if err != nil {
		return err
	}
	cmd.Println(renderHistory(month, entries))
	return nil
}

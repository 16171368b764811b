package cli

import (
	"github.com/spf13/cobra"
)

var onDutyCmd = &cobra.Command{
	Use:   "onduty",
	Short: "Show who is present today, grouped by department",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		view, err := application.schedules.OnDuty(cmd.Context())
		if err != nil {
			return describeViewError(err)
		}
		cmd.Println(renderOnDuty(view))
		return nil
	},
}

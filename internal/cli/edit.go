package cli

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/cmlabs-hris/staff-roster-go/internal/domain/schedule"
)

var editMonth string

var editCmd = &cobra.Command{
	Use:   "edit",
	Short: "Open an interactive edit session on a month's schedule",
	Long: `Opens the schedule grid in edit mode and reads commands from stdin:

  show                                  redraw the grid
  staff                                 list employee IDs
  next | prev                           move a week (crossing a month boundary
                                        asks whether to save open changes)
  attendance <id> <date> <status>       set Present or Absent
  shift <id> <date> <slot> <kind>       replace the shift in a slot (0-3)
  add <id> <date>                       add the first unused shift
  rm <id> <date> <slot>                 remove the shift in a slot
  save                                  commit the session
  cancel                                discard the session
  quit                                  leave (discards unsaved changes)`,
	Args: cobra.NoArgs,
	RunE: runEdit,
}

func init() {
	editCmd.Flags().StringVar(&editMonth, "month", "", "Month to edit, YYYY-MM (default: current month)")
}

func runEdit(cmd *cobra.Command, args []string) error {
	if err := selectMonthFlag(cmd, editMonth); err != nil {
		return err
	}

	if err := application.schedules.EnterEdit(cmd.Context()); err != nil {
		return describeViewError(err)
	}
	if err := showGrid(cmd); err != nil {
		return err
	}

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Fprint(cmd.OutOrStdout(), "roster> ")
		if !scanner.Scan() {
			return scanner.Err()
		}
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		quit, err := runEditCommand(cmd, scanner, fields)
		if err != nil {
			cmd.PrintErrln(err)
			continue
		}
		if quit {
			return nil
		}
	}
}

func runEditCommand(cmd *cobra.Command, scanner *bufio.Scanner, fields []string) (bool, error) {
	ctx := cmd.Context()

	switch fields[0] {
	case "show":
		return false, showGrid(cmd)

	case "staff":
		for _, emp := range application.schedules.Roster() {
			cmd.Printf("  %-10s %s (%s · %s)\n", emp.ID, emp.FullName, emp.Department, emp.Designation)
		}
		return false, nil

	case "next", "prev":
		dir := 1
		if fields[0] == "prev" {
			dir = -1
		}
		saveEdits := false
		if crossing, month := willCrossMonth(cmd, dir); crossing && application.schedules.EditMode() {
			saveEdits = confirm(cmd, scanner, fmt.Sprintf("Save changes to %s before leaving?", month.Format("January 2006")))
		}
		if err := application.schedules.NavigateWeek(ctx, dir, saveEdits); err != nil {
			return false, describeViewError(err)
		}
		return false, showGrid(cmd)

	case "attendance":
		if len(fields) != 4 {
			return false, fmt.Errorf("usage: attendance <id> <date> <Present|Absent>")
		}
		err := application.schedules.SetAttendance(ctx, schedule.SetAttendanceRequest{
			EmployeeID: fields[1],
			DateKey:    fields[2],
			Status:     fields[3],
		})
		if err != nil {
			return false, err
		}
		return false, showGrid(cmd)

	case "shift":
		if len(fields) < 5 {
			return false, fmt.Errorf("usage: shift <id> <date> <slot> <kind>")
		}
		slot, err := strconv.Atoi(fields[3])
		if err != nil {
			return false, fmt.Errorf("slot must be a number: %w", err)
		}
		err = application.schedules.SetShift(ctx, schedule.SetShiftRequest{
			EmployeeID: fields[1],
			DateKey:    fields[2],
			Index:      slot,
			Kind:       strings.Join(fields[4:], " "),
		})
		if err != nil {
			return false, err
		}
		return false, showGrid(cmd)

	case "add":
		if len(fields) != 3 {
			return false, fmt.Errorf("usage: add <id> <date>")
		}
		if err := application.schedules.AddShift(ctx, fields[1], fields[2]); err != nil {
			return false, err
		}
		return false, showGrid(cmd)

	case "rm":
		if len(fields) != 4 {
			return false, fmt.Errorf("usage: rm <id> <date> <slot>")
		}
		slot, err := strconv.Atoi(fields[3])
		if err != nil {
			return false, fmt.Errorf("slot must be a number: %w", err)
		}
		if err := application.schedules.RemoveShift(ctx, fields[1], fields[2], slot); err != nil {
			return false, err
		}
		return false, showGrid(cmd)

	case "save":
		if err := application.schedules.Save(ctx); err != nil {
			return false, err
		}
		cmd.Println("Saved.")
		return true, nil

	case "cancel":
		if err := application.schedules.Cancel(ctx); err != nil {
			return false, err
		}
		cmd.Println("Changes discarded.")
		return true, nil

	case "quit", "exit":
		if application.schedules.EditMode() {
			if confirm(cmd, scanner, "Save changes before quitting?") {
				if err := application.schedules.Save(ctx); err != nil {
					return false, err
				}
				cmd.Println("Saved.")
			}
		}
		return true, nil

	default:
		return false, fmt.Errorf("unknown command %q", fields[0])
	}
}

func showGrid(cmd *cobra.Command) error {
	view, err := application.schedules.View(cmd.Context())
	if err != nil {
		return describeViewError(err)
	}
	cmd.Println(renderWeekView(view, application.cfg.Company.Name, time.Now()))
	return nil
}

// willCrossMonth reports whether a week step in dir leaves the selected
// month, and which month would be left.
func willCrossMonth(cmd *cobra.Command, dir int) (bool, time.Time) {
	view, err := application.schedules.View(cmd.Context())
	if err != nil {
		if errors.Is(err, schedule.ErrScheduleNotFound) {
			return false, time.Time{}
		}
		return false, time.Time{}
	}
	if dir < 0 {
		return view.WeekIndex == 0, view.Month
	}
	return view.WeekIndex == view.TotalWeeks-1, view.Month
}

func confirm(cmd *cobra.Command, scanner *bufio.Scanner, prompt string) bool {
	fmt.Fprintf(cmd.OutOrStdout(), "%s [y/N] ", prompt)
	if !scanner.Scan() {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(scanner.Text()))
	return answer == "y" || answer == "yes"
}

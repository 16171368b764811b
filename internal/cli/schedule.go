package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/cmlabs-hris/staff-roster-go/internal/domain/filter"
	"github.com/cmlabs-hris/staff-roster-go/internal/domain/schedule"
	"github.com/cmlabs-hris/staff-roster-go/internal/pkg/validator"
)

var (
	scheduleMonth   string
	scheduleWeek    int
	scheduleFilters []string
)

var scheduleCmd = &cobra.Command{
	Use:   "schedule",
	Short: "Show the schedule grid for a week of a month",
	Args:  cobra.NoArgs,
	RunE:  runSchedule,
}

func init() {
	scheduleCmd.Flags().StringVar(&scheduleMonth, "month", "", "Month to show, YYYY-MM (default: current month)")
	scheduleCmd.Flags().IntVar(&scheduleWeek, "week", 0, "Week of the month to show, 1-based (default: week containing today)")
	scheduleCmd.Flags().StringArrayVar(&scheduleFilters, "filter", nil, "Filter rows, type=value (department, designation, name); repeatable")
}

func parseFilters(args []string) (filter.Set, error) {
	var set filter.Set
	for _, arg := range args {
		f, err := filter.Parse(arg)
		if err != nil {
			return nil, err
		}
		set = append(set, f)
	}
	return set, nil
}

// selectMonthFlag applies the --month flag when given. Returns whether the
// selection moved away from the default.
func selectMonthFlag(cmd *cobra.Command, raw string) error {
	if raw == "" {
		return nil
	}
	month, ok := validator.IsValidMonth(raw)
	if !ok {
		return fmt.Errorf("invalid month %q, expected YYYY-MM", raw)
	}
	return application.schedules.SelectMonth(cmd.Context(), month, false)
}

func runSchedule(cmd *cobra.Command, args []string) error {
	if err := selectMonthFlag(cmd, scheduleMonth); err != nil {
		return err
	}

	set, err := parseFilters(scheduleFilters)
	if err != nil {
		return err
	}
	application.schedules.SetFilters(set)

	if scheduleWeek > 0 {
		if err := seekWeek(cmd, scheduleWeek-1); err != nil {
			return err
		}
	}

	view, err := application.schedules.View(cmd.Context())
	if err != nil {
		return describeViewError(err)
	}
	cmd.Println(renderWeekView(view, application.cfg.Company.Name, time.Now()))
	return nil
}

// seekWeek steps the selection to the requested week index within the
// selected month.
func seekWeek(cmd *cobra.Command, target int) error {
	view, err := application.schedules.View(cmd.Context())
	if err != nil {
		return describeViewError(err)
	}
	if target >= view.TotalWeeks {
		return fmt.Errorf("week %d out of range, month has %d weeks", target+1, view.TotalWeeks)
	}
	for view.WeekIndex != target {
		dir := 1
		if view.WeekIndex > target {
			dir = -1
		}
		if err := application.schedules.NavigateWeek(cmd.Context(), dir, false); err != nil {
			return err
		}
		if view, err = application.schedules.View(cmd.Context()); err != nil {
			return describeViewError(err)
		}
	}
	return nil
}

func describeViewError(err error) error {
	switch {
	case errors.Is(err, schedule.ErrScheduleNotFound):
		return fmt.Errorf("no schedule exists for this month yet; run \"roster create\" to generate one")
	case errors.Is(err, schedule.ErrMonthBlocked):
		return fmt.Errorf("schedules can only be created up to one month ahead")
	default:
		return err
	}
}

var createMonth string

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create the schedule for an upcoming month",
	Args:  cobra.NoArgs,
	RunE:  runCreate,
}

func init() {
	createCmd.Flags().StringVar(&createMonth, "month", "", "Month to create, YYYY-MM (default: selected month)")
}

func runCreate(cmd *cobra.Command, args []string) error {
	if err := selectMonthFlag(cmd, createMonth); err != nil {
		return err
	}

	done, err := application.schedules.CreateSchedule(cmd.Context())
	switch {
	case errors.Is(err, schedule.ErrScheduleExists):
		return fmt.Errorf("a schedule already exists for %s", application.schedules.SelectedMonth().Format("January 2006"))
	case errors.Is(err, schedule.ErrMonthBlocked):
		return fmt.Errorf("schedules can only be created up to one month ahead")
	case err != nil:
		return err
	}

	cmd.Printf("Creating schedule for %s...\n", application.schedules.SelectedMonth().Format("January 2006"))
	<-done

	view, err := application.schedules.View(cmd.Context())
	if err != nil {
		return err
	}
	cmd.Println(renderWeekView(view, application.cfg.Company.Name, time.Now()))
	return nil
}

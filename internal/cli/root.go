// Package cli wires the terminal commands: the schedule grid, the edit
// session, today's on-duty summary, the activity log, reports and exports.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cmlabs-hris/staff-roster-go/internal/config"
	"github.com/cmlabs-hris/staff-roster-go/internal/domain/report"
	"github.com/cmlabs-hris/staff-roster-go/internal/pkg/clock"
	"github.com/cmlabs-hris/staff-roster-go/internal/pkg/logger"
	"github.com/cmlabs-hris/staff-roster-go/internal/repository/memory"
	exportsvc "github.com/cmlabs-hris/staff-roster-go/internal/service/export"
	historysvc "github.com/cmlabs-hris/staff-roster-go/internal/service/history"
	reportsvc "github.com/cmlabs-hris/staff-roster-go/internal/service/report"
	schedulesvc "github.com/cmlabs-hris/staff-roster-go/internal/service/schedule"
)

// app holds the wired services for one command invocation. Data lives in
// memory only: every run regenerates the same demo dataset from the seed, so
// consecutive invocations see a consistent world.
type app struct {
	cfg       *config.Config
	log       *zap.Logger
	schedules *schedulesvc.ScheduleService
	history   *historysvc.HistoryServiceImpl
	reports   report.ReportService
	exports   exportsvc.ExportService
}

var application *app

var rootCmd = &cobra.Command{
	Use:           "roster",
	Short:         "Staff scheduling dashboard for the hotel demo roster",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initApp()
	},
}

func initApp() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	log, err := logger.New(cfg.App.LogLevel, cfg.App.LogFormat)
	if err != nil {
		return fmt.Errorf("failed to init logger: %w", err)
	}

	clk := clock.System{}
	scheduleRepo := memory.NewScheduleRepository()
	historyRepo := memory.NewHistoryRepository()

	schedules := schedulesvc.NewScheduleService(scheduleRepo, historyRepo, clk, cfg.Schedule.Seed, cfg.Schedule.CreationDelay, log)
	reports := reportsvc.NewReportService(schedules, clk, log)

	application = &app{
		cfg:       cfg,
		log:       log,
		schedules: schedules,
		history:   historysvc.NewHistoryService(historyRepo, clk, cfg.Schedule.Seed, log),
		reports:   reports,
		exports:   exportsvc.NewExportService(schedules, reports, log),
	}
	return nil
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(scheduleCmd)
	rootCmd.AddCommand(createCmd)
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(onDutyCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(exportCmd)
}

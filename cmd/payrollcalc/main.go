package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/shopspring/decimal"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/cmlabs-hris/payroll-engine-go/internal/config"
	"github.com/cmlabs-hris/payroll-engine-go/internal/domain/attendance"
	"github.com/cmlabs-hris/payroll-engine-go/internal/domain/payroll"
	"github.com/cmlabs-hris/payroll-engine-go/internal/domain/policy"
	"github.com/cmlabs-hris/payroll-engine-go/internal/fixtures"
	"github.com/cmlabs-hris/payroll-engine-go/internal/pkg/validator"
	storebunt "github.com/cmlabs-hris/payroll-engine-go/internal/repository/buntdb"
	"github.com/cmlabs-hris/payroll-engine-go/internal/service/preview"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	app := &cli.App{
		Name:  "payrollcalc",
		Usage: "attendance-to-payroll calculation engine",
		Commands: []*cli.Command{
			seedCommand,
			calculateCommand,
			previewCommand,
		},
	}
	return app.Run(os.Args)
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.App.Env == "production" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

func openStore(cfg *config.Config) (*storebunt.Store, error) {
	return storebunt.Open(cfg.Store.Path)
}

var companyFlag = &cli.StringFlag{
	Name:  "company",
	Usage: "company id",
}

var seedCommand = &cli.Command{
	Name:  "seed",
	Usage: "seed the store with a demo company, employees and a month of attendance",
	Flags: []cli.Flag{
		companyFlag,
		&cli.IntFlag{Name: "year", Value: time.Now().Year()},
		&cli.IntFlag{Name: "month", Value: int(time.Now().Month())},
	},
	Action: func(c *cli.Context) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		logger, err := newLogger(cfg)
		if err != nil {
			return err
		}
		defer logger.Sync()

		store, err := openStore(cfg)
		if err != nil {
			return err
		}
		defer store.Close()

		companyID := c.String("company")
		if companyID == "" {
			companyID = uuid.NewString()
		}
		period := payroll.Period{Year: c.Int("year"), Month: c.Int("month")}

		if err := seed(c.Context, store, companyID, period); err != nil {
			return err
		}
		logger.Info("store seeded",
			zap.String("company_id", companyID),
			zap.String("period", period.String()),
			zap.String("store", cfg.Store.Path),
		)
		fmt.Println("seeded company", companyID)
		return nil
	},
}

var previewCommand = &cli.Command{
	Name:  "preview",
	Usage: "compute a payroll preview for a company and period",
	Flags: []cli.Flag{
		companyFlag,
		&cli.IntFlag{Name: "year", Value: time.Now().Year()},
		&cli.IntFlag{Name: "month", Value: int(time.Now().Month())},
		&cli.StringSliceFlag{Name: "employee", Usage: "restrict to specific employee ids"},
	},
	Action: func(c *cli.Context) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		logger, err := newLogger(cfg)
		if err != nil {
			return err
		}
		defer logger.Sync()

		store, err := openStore(cfg)
		if err != nil {
			return err
		}
		defer store.Close()

		svc := preview.NewService(preview.NewPolicyCache(store), store, store, logger, cfg.App.Workers)
		resp, err := svc.Preview(c.Context, &payroll.PreviewRequest{
			CompanyID:   c.String("company"),
			PeriodYear:  c.Int("year"),
			PeriodMonth: c.Int("month"),
			EmployeeIDs: c.StringSlice("employee"),
		})
		if err != nil {
			return err
		}

		renderPreview(resp)
		return nil
	},
}

var calculateCommand = &cli.Command{
	Name:  "calculate",
	Usage: "compute one employee's payroll with the per-day breakdown",
	Flags: []cli.Flag{
		companyFlag,
		&cli.StringFlag{Name: "employee", Usage: "employee id", Required: true},
		&cli.IntFlag{Name: "year", Value: time.Now().Year()},
		&cli.IntFlag{Name: "month", Value: int(time.Now().Month())},
	},
	Action: func(c *cli.Context) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		logger, err := newLogger(cfg)
		if err != nil {
			return err
		}
		defer logger.Sync()

		store, err := openStore(cfg)
		if err != nil {
			return err
		}
		defer store.Close()

		svc := preview.NewService(preview.NewPolicyCache(store), store, store, logger, cfg.App.Workers)
		resp, err := svc.Preview(c.Context, &payroll.PreviewRequest{
			CompanyID:   c.String("company"),
			PeriodYear:  c.Int("year"),
			PeriodMonth: c.Int("month"),
			EmployeeIDs: []string{c.String("employee")},
		})
		if err != nil {
			return err
		}

		row := resp.Employees[0]
		if row.Result == nil {
			return fmt.Errorf("employee %s: %s", row.EmployeeID, *row.Error)
		}
		renderEmployee(row)
		return nil
	},
}

func renderEmployee(row payroll.EmployeePayrollPreview) {
	r := row.Result

	days := table.NewWriter()
	days.SetOutputMirror(os.Stdout)
	days.SetTitle(fmt.Sprintf("%s (%s) %s", row.EmployeeName, row.EmployeeID, r.Period.String()))
	days.AppendHeader(table.Row{"Date", "In", "Out", "Net", "Night", "Overtime", "Flags"})
	for _, d := range r.Days {
		flags := ""
		if d.WorkingHours.IsOvernightShift {
			flags += "overnight "
		}
		if !d.WorkingHours.BreakCompliant {
			flags += "break-short "
		}
		if d.Overtime.OverCapMinutes > 0 {
			flags += "over-cap "
		}
		days.AppendRow(table.Row{
			d.Date.Format("2006-01-02"),
			d.RoundedCheckIn.Format("15:04"),
			d.RoundedCheckOut.Format("15:04"),
			validator.FormatMinutes(d.WorkingHours.NetWorkingMinutes),
			validator.FormatMinutes(d.WorkingHours.NightMinutes),
			validator.FormatMinutes(d.Overtime.TotalOvertimeMinutes),
			flags,
		})
	}
	days.AppendFooter(table.Row{
		"", "", "",
		validator.FormatMinutes(r.Summary.WorkingMinutes),
		"",
		validator.FormatMinutes(r.Overtime.TotalOvertimeMinutes),
		"",
	})
	days.SetStyle(table.StyleRounded)
	days.Render()

	totals := table.NewWriter()
	totals.SetOutputMirror(os.Stdout)
	totals.AppendRows([]table.Row{
		{"Base salary", r.BaseSalary.StringFixed(0)},
		{"Overtime pay", r.TotalOvertimePay.StringFixed(0)},
		{"Allowances", r.TotalAllowances.StringFixed(0)},
		{"Deductions", r.TotalDeductions.StringFixed(0)},
		{"Gross", r.GrossSalary.StringFixed(0)},
		{"Net", r.NetSalary.StringFixed(0)},
	})
	for _, w := range r.Warnings {
		totals.AppendRow(table.Row{"Warning", w.Message})
	}
	totals.SetStyle(table.StyleRounded)
	totals.Render()
}

func renderPreview(resp *payroll.PayrollPreviewResponse) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetTitle(fmt.Sprintf("Payroll preview %s %d-%02d", resp.CompanyID, resp.PeriodYear, resp.PeriodMonth))
	t.AppendHeader(table.Row{"Employee", "Name", "Base", "Overtime", "Allowances", "Deductions", "Net", "Notes"})

	for _, row := range resp.Employees {
		if row.Result == nil {
			t.AppendRow(table.Row{row.EmployeeID, row.EmployeeName, "", "", "", "", "", *row.Error})
			continue
		}
		r := row.Result
		notes := ""
		for i, w := range r.Warnings {
			if i > 0 {
				notes += "; "
			}
			notes += w.Code
		}
		t.AppendRow(table.Row{
			row.EmployeeID,
			row.EmployeeName,
			r.BaseSalary.StringFixed(0),
			r.TotalOvertimePay.StringFixed(0),
			r.TotalAllowances.StringFixed(0),
			r.TotalDeductions.StringFixed(0),
			r.NetSalary.StringFixed(0),
			notes,
		})
	}
	t.AppendFooter(table.Row{
		"", "", "", "", "",
		fmt.Sprintf("failed: %d", resp.FailedCount),
		resp.TotalNetSalary.StringFixed(0),
		"",
	})
	t.SetStyle(table.StyleRounded)
	t.Render()
}

// seed writes a default policy, three employees on different salary types and
// a plausible month of attendance.
func seed(ctx context.Context, store *storebunt.Store, companyID string, period payroll.Period) error {
	if err := store.SaveCompanyPolicy(ctx, fixtures.DefaultCompanyPolicy(companyID)); err != nil {
		return err
	}

	employees := []payroll.EmployeeSalaryInfo{
		{
			EmployeeID:    "emp-001",
			EmployeeName:  "Ayu Lestari",
			Type:          payroll.SalaryTypeMonthly,
			MonthlySalary: decimal.NewFromInt(10000000),
			HourlyRate:    decimal.NewFromInt(60000),
		},
		{
			EmployeeID:   "emp-002",
			EmployeeName: "Budi Santoso",
			Type:         payroll.SalaryTypeHourly,
			HourlyRate:   decimal.NewFromInt(55000),
		},
		{
			EmployeeID:   "emp-003",
			EmployeeName: "Citra Dewi",
			Type:         payroll.SalaryTypeDaily,
			DailyRate:    decimal.NewFromInt(450000),
			HourlyRate:   decimal.NewFromInt(56250),
		},
	}
	for _, info := range employees {
		if err := store.SaveSalaryInfo(ctx, companyID, info); err != nil {
			return err
		}
	}

	for _, info := range employees {
		for d := period.Start(); !d.After(period.End()); d = d.AddDate(0, 0, 1) {
			day := attendance.Day{
				Date:      d,
				IsWeekend: d.Weekday() == time.Saturday || d.Weekday() == time.Sunday,
				Schedule:  &attendance.DaySchedule{ClockIn: policy.ClockOf(9, 0), ClockOut: policy.ClockOf(18, 0)},
			}
			if !day.IsWeekend {
				in := time.Date(d.Year(), d.Month(), d.Day(), 8, 55+d.Day()%10, 0, 0, d.Location())
				out := time.Date(d.Year(), d.Month(), d.Day(), 18, d.Day()%20, 0, 0, d.Location())
				day.CheckIn = &in
				day.CheckOut = &out
				day.Breaks = []attendance.BreakRecord{{
					Start: time.Date(d.Year(), d.Month(), d.Day(), 12, 0, 0, 0, d.Location()),
					End:   time.Date(d.Year(), d.Month(), d.Day(), 12, 55, 0, 0, d.Location()),
				}}
			}
			if err := store.SaveDay(ctx, companyID, info.EmployeeID, day); err != nil {
				return err
			}
		}
	}
	return nil
}

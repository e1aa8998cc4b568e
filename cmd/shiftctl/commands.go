package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/SscSPs/shiftpay/internal/core/domain"
	"github.com/SscSPs/shiftpay/internal/platform/config"
	"github.com/SscSPs/shiftpay/internal/utils"
	"github.com/SscSPs/shiftpay/internal/utils/earnings"
	"github.com/SscSPs/shiftpay/internal/utils/money"
	"github.com/SscSPs/shiftpay/internal/utils/shifttime"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

// clock is swapped in tests.
var clock shifttime.Clock = shifttime.SystemClock

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "shiftctl",
		Short:         "Shift pay calculator",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.Version = appVersion
	root.SetVersionTemplate("shiftctl v{{.Version}}\n")

	root.AddCommand(
		newHoursCmd(),
		newClassifyCmd(),
		newCountdownCmd(),
		newEarningsCmd(),
		newFormatCmd(),
		newParseCmd(),
		newTokenCmd(),
	)
	return root
}

func newHoursCmd() *cobra.Command {
	var startStr, endStr string
	cmd := &cobra.Command{
		Use:   "hours",
		Short: "Scheduled hours between two clock times",
		RunE: func(cmd *cobra.Command, args []string) error {
			start, end, err := parseRange(startStr, endStr)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "hours: %s\n", shifttime.DeriveScheduledHours(start, end).StringFixed(2))
			fmt.Fprintf(out, "overnight: %t\n", shifttime.IsOvernight(start, end))
			return nil
		},
	}
	cmd.Flags().StringVar(&startStr, "start", "", "Shift start HH:MM")
	cmd.Flags().StringVar(&endStr, "end", "", "Shift end HH:MM")
	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("end")
	return cmd
}

func newClassifyCmd() *cobra.Command {
	var startStr, endStr, hoursStr, dateStr, nowStr string
	cmd := &cobra.Command{
		Use:   "classify",
		Short: "Status of a shift window at an instant",
		RunE: func(cmd *cobra.Command, args []string) error {
			start, end, err := parseWindow(startStr, endStr, hoursStr)
			if err != nil {
				return err
			}
			now, err := parseNow(nowStr)
			if err != nil {
				return err
			}

			var w domain.ShiftWindow
			if dateStr == "" {
				w = shifttime.ClassifyShift(start, end, now)
			} else {
				date, err := time.ParseInLocation(time.DateOnly, dateStr, now.Location())
				if err != nil {
					return fmt.Errorf("invalid --date %q: %w", dateStr, err)
				}
				w = shifttime.ClassifyEntry(date, start, end, now)
			}
			printWindow(cmd.OutOrStdout(), w)
			return nil
		},
	}
	cmd.Flags().StringVar(&startStr, "start", "", "Shift start HH:MM")
	cmd.Flags().StringVar(&endStr, "end", "", "Shift end HH:MM")
	cmd.Flags().StringVar(&hoursStr, "hours", "", "Shift length in hours, instead of --end")
	cmd.Flags().StringVar(&dateStr, "date", "", "Shift date YYYY-MM-DD (default: placed around now)")
	cmd.Flags().StringVar(&nowStr, "now", "", "Instant to classify at, RFC3339 (default: current time)")
	_ = cmd.MarkFlagRequired("start")
	cmd.MarkFlagsOneRequired("end", "hours")
	cmd.MarkFlagsMutuallyExclusive("end", "hours")
	return cmd
}

func newCountdownCmd() *cobra.Command {
	var endStr, nowStr string
	var follow bool
	var tick time.Duration
	cmd := &cobra.Command{
		Use:   "countdown",
		Short: "Time left until a shift ends",
		RunE: func(cmd *cobra.Command, args []string) error {
			end, err := time.Parse(time.RFC3339, endStr)
			if err != nil {
				return fmt.Errorf("invalid --end %q: %w", endStr, err)
			}
			out := cmd.OutOrStdout()
			if !follow {
				now, err := parseNow(nowStr)
				if err != nil {
					return err
				}
				printCountdown(out, shifttime.ProjectCountdown(end, now))
				return nil
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			err = shifttime.RunCountdown(ctx, end, clock, tick, func(c domain.Countdown) {
				printCountdown(out, c)
			})
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		},
	}
	cmd.Flags().StringVar(&endStr, "end", "", "Shift end, RFC3339")
	cmd.Flags().StringVar(&nowStr, "now", "", "Instant to count from, RFC3339 (default: current time)")
	cmd.Flags().BoolVarP(&follow, "follow", "f", false, "Keep ticking until the shift ends")
	cmd.Flags().DurationVar(&tick, "tick", time.Second, "Tick interval with --follow")
	_ = cmd.MarkFlagRequired("end")
	return cmd
}

type earningsFlags struct {
	payType      string
	rate         string
	currency     string
	fixedIncome  bool
	hours        string
	actualHours  string
	start        string
	end          string
	shiftType    string
	overrideType string
	overrideAmt  string
	overrideCur  string
	holiday      bool
	multiplier   string
	holidayRate  string
}

func newEarningsCmd() *cobra.Command {
	var f earningsFlags
	cmd := &cobra.Command{
		Use:   "earnings",
		Short: "Price one shift under a pay profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			job, in, err := f.build()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			res := earnings.Resolve(in, job)
			if res == nil {
				fmt.Fprintln(out, "earnings: not calculable")
				return nil
			}
			fmt.Fprintf(out, "earnings: %s\n", money.FormatCurrency(res.Amount, res.CurrencyCode))
			fmt.Fprintf(out, "amount: %s %s\n", res.Amount.StringFixed(2), res.CurrencyCode)
			fmt.Fprintf(out, "source: %s\n", res.Source)
			if res.Multiplier != nil {
				fmt.Fprintf(out, "multiplier: %s\n", res.Multiplier.String())
			}
			return nil
		},
	}
	fl := cmd.Flags()
	fl.StringVar(&f.payType, "pay-type", string(domain.PayHourly), "Job pay type: hourly, daily, monthly or salary")
	fl.StringVar(&f.rate, "rate", "", "Job rate for the pay type")
	fl.StringVar(&f.currency, "currency", "USD", "Job currency")
	fl.BoolVar(&f.fixedIncome, "fixed-income", false, "Job shows in fixed income (monthly/salary only)")
	fl.StringVar(&f.hours, "hours", "", "Scheduled hours (default: derived from --start/--end)")
	fl.StringVar(&f.actualHours, "actual-hours", "", "Actual hours worked")
	fl.StringVar(&f.start, "start", "", "Shift start HH:MM")
	fl.StringVar(&f.end, "end", "", "Shift end HH:MM")
	fl.StringVar(&f.shiftType, "shift-type", string(domain.ShiftWork), "Shift type")
	fl.StringVar(&f.overrideType, "override", string(domain.OverrideNone), "Pay override: none, fixed, custom_hourly or custom_daily")
	fl.StringVar(&f.overrideAmt, "override-amount", "", "Pay override amount or rate")
	fl.StringVar(&f.overrideCur, "override-currency", "", "Pay override currency")
	fl.BoolVar(&f.holiday, "holiday", false, "Shift falls on a holiday")
	fl.StringVar(&f.multiplier, "multiplier", "", "Holiday multiplier")
	fl.StringVar(&f.holidayRate, "holiday-rate", "", "Holiday fixed hourly rate")
	return cmd
}

func (f earningsFlags) build() (*domain.Job, domain.PayInput, error) {
	var in domain.PayInput
	job := &domain.Job{
		PayType:           domain.PayType(f.payType),
		CurrencyCode:      strings.ToUpper(f.currency),
		ShowInFixedIncome: f.fixedIncome,
	}
	if !job.PayType.Valid() {
		return nil, in, fmt.Errorf("invalid --pay-type %q", f.payType)
	}
	rate, err := optionalDecimal("rate", f.rate)
	if err != nil {
		return nil, in, err
	}
	switch job.PayType {
	case domain.PayHourly:
		job.HourlyRate = rate
	case domain.PayDaily:
		job.DailyRate = rate
	default:
		job.MonthlySalary = rate
	}

	in.ShiftType = domain.ShiftType(f.shiftType)
	in.IsHoliday = f.holiday
	if in.ScheduledHours, err = optionalDecimal("hours", f.hours); err != nil {
		return nil, in, err
	}
	if in.ScheduledHours == nil && f.start != "" && f.end != "" {
		start, end, err := parseRange(f.start, f.end)
		if err != nil {
			return nil, in, err
		}
		h := shifttime.DeriveScheduledHours(start, end)
		in.ScheduledHours = &h
	}
	if in.ActualHours, err = optionalDecimal("actual-hours", f.actualHours); err != nil {
		return nil, in, err
	}
	if in.HolidayMultiplier, err = optionalDecimal("multiplier", f.multiplier); err != nil {
		return nil, in, err
	}
	if in.HolidayFixedRate, err = optionalDecimal("holiday-rate", f.holidayRate); err != nil {
		return nil, in, err
	}

	in.Override = domain.PayOverride{Type: domain.PayOverrideType(f.overrideType), CurrencyCode: strings.ToUpper(f.overrideCur)}
	amt, err := optionalDecimal("override-amount", f.overrideAmt)
	if err != nil {
		return nil, in, err
	}
	if amt != nil {
		in.Override.Amount = *amt
	}
	return job, in, nil
}

func newFormatCmd() *cobra.Command {
	var currency string
	cmd := &cobra.Command{
		Use:   "format AMOUNT",
		Short: "Render an amount in a currency's display format",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := decimal.NewFromString(args[0])
			if err != nil {
				return fmt.Errorf("invalid amount %q: %w", args[0], err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), money.FormatCurrency(amount, currency))
			return nil
		},
	}
	cmd.Flags().StringVarP(&currency, "currency", "c", "USD", "ISO 4217 currency code")
	return cmd
}

func newParseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse TEXT",
		Short: "Read typed money text as a decimal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), money.ParseCurrency(args[0]).String())
			return nil
		},
	}
}

func newTokenCmd() *cobra.Command {
	var userID string
	var ttl time.Duration
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Sign a development bearer token with JWT_SECRET and JWT_ISSUER",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return err
			}
			signed, err := utils.IssueToken(userID, cfg.JWTSecret, cfg.JWTIssuer, ttl, clock())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), signed)
			return nil
		},
	}
	cmd.Flags().StringVarP(&userID, "user", "u", "", "User id to put in the subject claim")
	cmd.Flags().DurationVar(&ttl, "ttl", 24*time.Hour, "Token lifetime")
	_ = cmd.MarkFlagRequired("user")
	return cmd
}

func parseRange(startStr, endStr string) (shifttime.TimeOfDay, shifttime.TimeOfDay, error) {
	start, err := shifttime.ParseTimeOfDay(startStr)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid --start %q: %w", startStr, err)
	}
	end, err := shifttime.ParseTimeOfDay(endStr)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid --end %q: %w", endStr, err)
	}
	return start, end, nil
}

// parseWindow reads --start with either --end or --hours.
func parseWindow(startStr, endStr, hoursStr string) (shifttime.TimeOfDay, shifttime.TimeOfDay, error) {
	if hoursStr == "" {
		return parseRange(startStr, endStr)
	}
	start, err := shifttime.ParseTimeOfDay(startStr)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid --start %q: %w", startStr, err)
	}
	hours, err := decimal.NewFromString(hoursStr)
	if err != nil || !hours.IsPositive() || hours.GreaterThanOrEqual(decimal.NewFromInt(24)) {
		return 0, 0, fmt.Errorf("invalid --hours %q: want a length between 0 and 24", hoursStr)
	}
	return start, shifttime.EndFromDuration(start, hours), nil
}

func parseNow(s string) (time.Time, error) {
	if s == "" {
		return clock(), nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --now %q: %w", s, err)
	}
	return t, nil
}

func optionalDecimal(name, s string) (*decimal.Decimal, error) {
	if s == "" {
		return nil, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil, fmt.Errorf("invalid --%s %q: %w", name, s, err)
	}
	return &d, nil
}

func printWindow(out io.Writer, w domain.ShiftWindow) {
	fmt.Fprintf(out, "status: %s\n", w.Status)
	fmt.Fprintf(out, "start: %s\n", w.StartDateTime.Format(time.RFC3339))
	fmt.Fprintf(out, "end: %s\n", w.EndDateTime.Format(time.RFC3339))
	fmt.Fprintf(out, "overnight: %t\n", w.IsOvernight)
}

func printCountdown(out io.Writer, c domain.Countdown) {
	fmt.Fprintf(out, "%02d:%02d:%02d\n", c.Hours, c.Minutes, c.Seconds)
}

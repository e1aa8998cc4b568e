package main

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/SscSPs/shiftpay/internal/utils/shifttime"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestHoursOvernight(t *testing.T) {
	out, err := run(t, "hours", "--start", "22:00", "--end", "06:30")
	require.NoError(t, err)
	assert.Equal(t, "hours: 8.50\novernight: true\n", out)
}

func TestHoursRejectsBadClock(t *testing.T) {
	_, err := run(t, "hours", "--start", "25:00", "--end", "06:00")
	assert.ErrorContains(t, err, "invalid --start")
}

func TestClassifyOnDate(t *testing.T) {
	out, err := run(t, "classify",
		"--date", "2024-03-14", "--start", "22:00", "--end", "06:00",
		"--now", "2024-03-15T02:00:00Z")
	require.NoError(t, err)
	assert.Contains(t, out, "status: active\n")
	assert.Contains(t, out, "start: 2024-03-14T22:00:00Z\n")
	assert.Contains(t, out, "end: 2024-03-15T06:00:00Z\n")
	assert.Contains(t, out, "overnight: true\n")
}

func TestClassifyAroundNow(t *testing.T) {
	out, err := run(t, "classify", "--start", "09:00", "--end", "17:00", "--now", "2024-03-15T18:00:00Z")
	require.NoError(t, err)
	assert.Contains(t, out, "status: ended\n")
}

func TestClassifyWithDuration(t *testing.T) {
	out, err := run(t, "classify",
		"--date", "2024-03-14", "--start", "23:00", "--hours", "7.5",
		"--now", "2024-03-15T06:00:00Z")
	require.NoError(t, err)
	assert.Contains(t, out, "status: active\n")
	assert.Contains(t, out, "end: 2024-03-15T06:30:00Z\n")
	assert.Contains(t, out, "overnight: true\n")
}

func TestClassifyRejectsEndAndHoursTogether(t *testing.T) {
	_, err := run(t, "classify", "--start", "09:00", "--end", "17:00", "--hours", "8")
	assert.Error(t, err)

	_, err = run(t, "classify", "--start", "09:00", "--hours", "30")
	assert.ErrorContains(t, err, "invalid --hours")
}

func TestCountdownOnce(t *testing.T) {
	out, err := run(t, "countdown", "--end", "2024-03-15T06:00:00Z", "--now", "2024-03-15T01:29:30Z")
	require.NoError(t, err)
	assert.Equal(t, "04:30:30\n", out)
}

func TestCountdownFollowStopsAtZero(t *testing.T) {
	end := time.Date(2024, 3, 15, 6, 0, 0, 0, time.UTC)
	ticks := []time.Time{end.Add(-2 * time.Second), end.Add(-time.Second), end}
	i := 0
	clock = func() time.Time {
		now := ticks[i]
		if i < len(ticks)-1 {
			i++
		}
		return now
	}
	t.Cleanup(func() { clock = shifttime.SystemClock })

	out, err := run(t, "countdown", "--end", end.Format(time.RFC3339), "--follow", "--tick", "1ms")
	require.NoError(t, err)
	assert.Equal(t, "00:00:02\n00:00:01\n00:00:00\n", out)
}

func TestEarningsHolidayMultiplier(t *testing.T) {
	out, err := run(t, "earnings", "--rate", "25", "--hours", "9", "--holiday", "--multiplier", "1.5")
	require.NoError(t, err)
	assert.Contains(t, out, "earnings: $337.50\n")
	assert.Contains(t, out, "source: job_hourly\n")
	assert.Contains(t, out, "multiplier: 1.5\n")
}

func TestEarningsDerivesHoursFromTimes(t *testing.T) {
	out, err := run(t, "earnings", "--rate", "20", "--start", "23:00", "--end", "07:00", "--currency", "eur")
	require.NoError(t, err)
	assert.Contains(t, out, "amount: 160.00 EUR\n")
}

func TestEarningsFixedOverrideWins(t *testing.T) {
	out, err := run(t, "earnings", "--pay-type", "daily", "--rate", "200", "--override", "fixed", "--override-amount", "150")
	require.NoError(t, err)
	assert.Contains(t, out, "amount: 150.00 USD\n")
	assert.Contains(t, out, "source: fixed_amount\n")
}

func TestEarningsFixedIncomeNotCalculable(t *testing.T) {
	out, err := run(t, "earnings", "--pay-type", "salary", "--rate", "3000", "--fixed-income", "--hours", "8")
	require.NoError(t, err)
	assert.Equal(t, "earnings: not calculable\n", out)
}

func TestEarningsRejectsBadPayType(t *testing.T) {
	_, err := run(t, "earnings", "--pay-type", "weekly")
	assert.ErrorContains(t, err, "invalid --pay-type")
}

func TestFormatAndParse(t *testing.T) {
	out, err := run(t, "format", "1234.5", "-c", "JPY")
	require.NoError(t, err)
	assert.Equal(t, "¥1,235\n", out)

	out, err = run(t, "parse", "$1,234.50")
	require.NoError(t, err)
	assert.Equal(t, "1234.5\n", out)
}

func TestTokenUsesConfiguredSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "cli-secret")
	t.Setenv("JWT_ISSUER", "shiftpay-dev")

	out, err := run(t, "token", "--user", "user-1")
	require.NoError(t, err)

	claims := &jwt.RegisteredClaims{}
	_, err = jwt.ParseWithClaims(strings.TrimSpace(out), claims, func(*jwt.Token) (interface{}, error) {
		return []byte("cli-secret"), nil
	}, jwt.WithIssuer("shiftpay-dev"))
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.Subject)
}

package pgsql

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
	"testing"

	"github.com/SscSPs/shiftpay/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var placeholderRe = regexp.MustCompile(`(\w+) = \$(\d+)`)

func TestShiftUpdateStatement_PlaceholdersMatchArgs(t *testing.T) {
	m := models.Shift{
		ShiftID:   "shift-1",
		UserID:    "user-1",
		Notes:     "swapped",
		Status:    "completed",
		ShiftType: "work",
		AuditFields: models.AuditFields{
			CreatedBy:     "creator",
			LastUpdatedBy: "editor",
		},
	}

	query, args := shiftUpdateStatement(m)

	bound := map[string]any{}
	var used []int
	for _, match := range placeholderRe.FindAllStringSubmatch(query, -1) {
		n, err := strconv.Atoi(match[2])
		require.NoError(t, err)
		require.LessOrEqual(t, n, len(args), "column %s", match[1])
		used = append(used, n)
		bound[match[1]] = args[n-1]
	}

	sort.Ints(used)
	require.Len(t, used, len(args), "every arg is referenced exactly once")
	for i, n := range used {
		assert.Equal(t, i+1, n)
	}

	assert.Equal(t, "shift-1", bound["shift_id"])
	assert.Equal(t, "user-1", bound["user_id"])
	assert.Equal(t, "swapped", bound["notes"])
	assert.Equal(t, "completed", bound["status"])
	assert.Equal(t, "editor", bound["last_updated_by"])
	assert.NotContains(t, bound, "created_at")
	assert.NotContains(t, bound, "created_by")
	assert.True(t, strings.HasPrefix(query, "UPDATE shifts SET "))
	assert.Contains(t, query, " WHERE shift_id = $")
}

func TestPlaceholders(t *testing.T) {
	assert.Equal(t, "$1, $2, $3", placeholders(3))
}

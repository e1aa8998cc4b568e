package pagination

import (
	"encoding/base64"
	"fmt"
	"strings"
	"time"
)

const dateFormat = "2006-01-02"

// ShiftCursor is the keyset position of the last shift on a page.
// Shifts are ordered by (date, start time, id).
type ShiftCursor struct {
	Date      time.Time
	StartTime string
	ShiftID   string
}

// EncodeShiftToken creates a base64 encoded token from a shift's sort key.
func EncodeShiftToken(c ShiftCursor) string {
	return EncodeMultiFieldToken(c.Date.Format(dateFormat), c.StartTime, c.ShiftID)
}

// DecodeShiftToken parses a token produced by EncodeShiftToken.
func DecodeShiftToken(token string) (ShiftCursor, error) {
	parts, err := DecodeMultiFieldToken(token)
	if err != nil {
		return ShiftCursor{}, err
	}
	if len(parts) != 3 {
		return ShiftCursor{}, fmt.Errorf("invalid pagination token format (split)")
	}

	date, err := time.Parse(dateFormat, parts[0])
	if err != nil {
		return ShiftCursor{}, fmt.Errorf("invalid pagination token format (shift date parse): %w", err)
	}
	if parts[2] == "" {
		return ShiftCursor{}, fmt.Errorf("invalid pagination token format (missing shift id)")
	}

	return ShiftCursor{Date: date, StartTime: parts[1], ShiftID: parts[2]}, nil
}

// EncodeMultiFieldToken creates a token with any number of string fields
func EncodeMultiFieldToken(fields ...string) string {
	tokenStr := strings.Join(fields, "|")
	return base64.StdEncoding.EncodeToString([]byte(tokenStr))
}

// DecodeMultiFieldToken decodes a token into its component fields
func DecodeMultiFieldToken(token string) ([]string, error) {
	decodedBytes, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return nil, fmt.Errorf("invalid pagination token format (base64 decode): %w", err)
	}

	tokenStr := string(decodedBytes)
	parts := strings.Split(tokenStr, "|")
	return parts, nil
}

package board

import (
	"strings"
	"time"
)

const (
	DateNotSet    = "N/A"
	DateInvalid   = "Invalid Date"
	dateOutLayout = "02 Jan 2006"
	YesText       = "Yes"
	NoText        = "No"
	UnknownName   = "Unknown Candidate"
	DefaultStatus = "Initiated"
)

var dateInLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// FormatDate возвращает дату в виде "05 Mar 2024".
func FormatDate(value *string) string {
	if value == nil || strings.TrimSpace(*value) == "" {
		return DateNotSet
	}
	str := strings.TrimSpace(*value)
	for _, layout := range dateInLayouts {
		t, err := time.Parse(layout, str)
		if err == nil {
			return t.Format(dateOutLayout)
		}
	}
	return DateInvalid
}

func FormatBool(value bool) string {
	if value {
		return YesText
	}
	return NoText
}

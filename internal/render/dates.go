package render

import (
	"strings"
	"time"
)

// monthLayout is the wire format for resume dates: a year and month with no
// day component.
const monthLayout = "2006-01"

// FormatMonth renders a "YYYY-MM" date as "Mon YYYY" for display.
// Empty or unparseable input renders as an empty string, never an error.
func FormatMonth(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	t, err := time.Parse(monthLayout, raw)
	if err != nil {
		return ""
	}
	return t.Format("Jan 2006")
}

// FormatRange renders a start/end pair as a display range. A current role
// ends at "Present"; a missing end with no current flag shows the start
// alone.
func FormatRange(start, end string, isCurrent bool) string {
	from := FormatMonth(start)
	to := FormatMonth(end)
	if isCurrent {
		to = "Present"
	}
	switch {
	case from == "" && to == "":
		return ""
	case from == "":
		return to
	case to == "":
		return from
	default:
		return from + " - " + to
	}
}

package render

import "testing"

func TestFormatMonth(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{name: "january", raw: "2023-01", want: "Jan 2023"},
		{name: "december", raw: "2019-12", want: "Dec 2019"},
		{name: "empty", raw: "", want: ""},
		{name: "whitespace", raw: "  ", want: ""},
		{name: "garbage", raw: "not-a-date", want: ""},
		{name: "full date rejected", raw: "2023-01-15", want: ""},
		{name: "out of range month", raw: "2023-13", want: ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatMonth(tt.raw); got != tt.want {
				t.Fatalf("FormatMonth(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestFormatRange(t *testing.T) {
	tests := []struct {
		name      string
		start     string
		end       string
		isCurrent bool
		want      string
	}{
		{name: "closed range", start: "2021-03", end: "2023-06", want: "Mar 2021 - Jun 2023"},
		{name: "current role", start: "2021-03", isCurrent: true, want: "Mar 2021 - Present"},
		{name: "current ignores end", start: "2021-03", end: "2022-01", isCurrent: true, want: "Mar 2021 - Present"},
		{name: "start only", start: "2021-03", want: "Mar 2021"},
		{name: "nothing", want: ""},
		{name: "current with no start", isCurrent: true, want: "Present"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatRange(tt.start, tt.end, tt.isCurrent); got != tt.want {
				t.Fatalf("FormatRange(%q, %q, %v) = %q, want %q", tt.start, tt.end, tt.isCurrent, got, tt.want)
			}
		})
	}
}

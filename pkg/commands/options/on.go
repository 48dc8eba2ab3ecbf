package options

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

const (
	layoutISO      = "2006-1-2"
	layoutISOShort = "1/2"
)

// OnOptions sets the day a record happened.
type OnOptions struct {
	OnString string
}

func AddOnArgs(cmd *cobra.Command, o *OnOptions) {
	cmd.Flags().StringVar(&o.OnString, "on", "",
		`Day it happened, example: --on="2024-2-28" or --on="2/28".`)
}

// GetOn returns nil when --on was not given. A short date without a year is
// taken as the most recent past occurrence, since journal records look back.
func (o *OnOptions) GetOn() (*time.Time, error) {
	return parseDay(o.OnString, time.Now(), false)
}

func parseDay(raw string, now time.Time, future bool) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	if t, err := time.ParseInLocation(layoutISO, raw, time.Local); err == nil {
		return &t, nil
	}
	t, err := time.ParseInLocation(layoutISOShort, raw, time.Local)
	if err != nil {
		return nil, fmt.Errorf("options: invalid date %q, want YYYY-M-D or M/D", raw)
	}
	t = time.Date(now.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.Local)
	switch {
	case future && t.Before(now):
		t = t.AddDate(1, 0, 0)
	case !future && t.After(now):
		t = t.AddDate(-1, 0, 0)
	}
	return &t, nil
}

package options

import (
	"time"

	"github.com/spf13/cobra"
)

// RecordOptions holds the optional fields of a new record. Which ones apply
// depends on the kind being added.
type RecordOptions struct {
	Notes        string
	Rating       int
	Progress     int
	TargetString string
	Frequency    string
	Products     []string
}

func AddNotesArgs(cmd *cobra.Command, o *RecordOptions) {
	cmd.Flags().StringVarP(&o.Notes, "notes", "n", "",
		"Free-form notes.")
}

func AddEntryArgs(cmd *cobra.Command, o *RecordOptions) {
	cmd.Flags().IntVar(&o.Rating, "rating", 0,
		"How it went, 1 to 5.")
}

func AddGoalArgs(cmd *cobra.Command, o *RecordOptions) {
	cmd.Flags().IntVar(&o.Progress, "progress", 0,
		"Percent complete, 0 to 100.")
	cmd.Flags().StringVar(&o.TargetString, "target", "",
		`Target date, example: --target="2025-6-1" or --target="6/1".`)
}

func AddRoutineArgs(cmd *cobra.Command, o *RecordOptions) {
	cmd.Flags().StringVar(&o.Frequency, "frequency", "",
		`How often, example: --frequency=weekly.`)
	cmd.Flags().StringSliceVar(&o.Products, "product", nil,
		"Product used; repeat for more than one.")
}

// GetTarget returns nil when --target was not given. A short date is taken
// as the next occurrence.
func (o *RecordOptions) GetTarget() (*time.Time, error) {
	return parseDay(o.TargetString, time.Now(), true)
}

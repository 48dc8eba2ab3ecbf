package options

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// OutputOptions
type OutputOptions struct {
	Output string
	Out    io.Writer
}

func AddOutputArg(cmd *cobra.Command, o *OutputOptions) {
	cmd.Flags().StringVarP(&o.Output, "output", "o", "text",
		"Output format. One of 'text' or 'json'.")
}

func (o *OutputOptions) JSON() bool {
	return strings.EqualFold(o.Output, "json")
}

// Validate rejects unknown output formats.
func (o *OutputOptions) Validate() error {
	switch strings.ToLower(o.Output) {
	case "", "text", "json":
		return nil
	}
	return fmt.Errorf("options: unknown output %q, want text or json", o.Output)
}

func (o *OutputOptions) Writer() io.Writer {
	if o.Out == nil {
		return color.Output
	}
	return o.Out
}

// HandleError reports err as a JSON object when JSON output was requested.
func (o *OutputOptions) HandleError(err error) error {
	if o.JSON() && err != nil {
		b, merr := json.Marshal(map[string]string{"error": err.Error()})
		if merr != nil {
			return merr
		}
		_, _ = fmt.Fprintln(o.Writer(), string(b))
		return nil
	}
	return err
}

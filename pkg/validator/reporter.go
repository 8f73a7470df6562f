package validator

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"
)

// ReportFormat selects how a Reporter renders a Report.
type ReportFormat string

const (
	// ReportText renders a colored, human-readable summary.
	ReportText ReportFormat = "text"
	// ReportJSON renders the report as indented JSON.
	ReportJSON ReportFormat = "json"
)

// Reporter writes validation reports.
type Reporter struct {
	out    io.Writer
	format ReportFormat
}

// NewReporter returns a Reporter writing to out. Unknown formats render as text.
func NewReporter(out io.Writer, format ReportFormat) *Reporter {
	return &Reporter{out: out, format: format}
}

// Report writes report. A nil report writes nothing.
func (r *Reporter) Report(report *Report) error {
	if report == nil {
		return nil
	}

	switch r.format {
	case ReportJSON:
		return r.reportJSON(report)
	default:
		return r.reportText(report)
	}
}

func (r *Reporter) reportJSON(report *Report) error {
	out := struct {
		Valid   bool          `json:"valid"`
		Results []FieldResult `json:"results"`
	}{
		Valid:   report.Valid(),
		Results: report.Results,
	}
	if out.Results == nil {
		out.Results = []FieldResult{}
	}

	enc := json.NewEncoder(r.out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encoding JSON report: %w", err)
	}
	return nil
}

func (r *Reporter) reportText(report *Report) error {
	failed := report.Failed()
	if len(failed) == 0 {
		_, err := fmt.Fprintln(r.out, color.GreenString("✓ Validation passed"))
		return err
	}

	if _, err := fmt.Fprintf(r.out, "Validation failed: %s\n\n", color.RedString("%d of %d field(s)", len(failed), len(report.Results))); err != nil {
		return err
	}

	field := color.New(color.FgRed).SprintFunc()
	muted := color.New(color.FgHiBlack).SprintFunc()
	for _, res := range failed {
		message := res.Message
		if message == "" {
			message = muted("(no message)")
		}
		if _, err := fmt.Fprintf(r.out, "  • %s: %s\n", field(res.Field), message); err != nil {
			return err
		}
	}
	return nil
}

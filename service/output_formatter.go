package service

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"gopkg.in/yaml.v3"

	"github.com/ludo-technologies/rulescan/domain"
)

// OutputFormatterImpl implements the OutputFormatter interface
type OutputFormatterImpl struct {
	// ShowDetails adds correction guidance to text output
	ShowDetails bool
}

// NewOutputFormatter creates a new output formatter
func NewOutputFormatter() *OutputFormatterImpl {
	return &OutputFormatterImpl{}
}

// Format renders the response in the specified format as a string
func (f *OutputFormatterImpl) Format(response *domain.LintResponse, format domain.OutputFormat) (string, error) {
	var sb strings.Builder
	if err := f.Write(response, format, &sb); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// Write renders the response in the specified format to the writer
func (f *OutputFormatterImpl) Write(response *domain.LintResponse, format domain.OutputFormat, writer io.Writer) error {
	switch format {
	case domain.OutputFormatJSON:
		return writeJSON(writer, response)
	case domain.OutputFormatYAML:
		return yaml.NewEncoder(writer).Encode(response)
	case domain.OutputFormatCSV:
		return f.writeCSV(response, writer)
	case domain.OutputFormatText:
		return f.writeText(response, writer)
	default:
		return domain.NewUnsupportedFormatError(string(format))
	}
}

// writeJSON writes data as indented JSON to the writer
func writeJSON(writer io.Writer, data interface{}) error {
	encoder := json.NewEncoder(writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

// writeCSV writes one row per diagnostic
func (f *OutputFormatterImpl) writeCSV(response *domain.LintResponse, writer io.Writer) error {
	w := csv.NewWriter(writer)
	if err := w.Write([]string{"file", "line", "column", "severity", "rule", "message", "fixable"}); err != nil {
		return err
	}
	for _, file := range response.Files {
		for _, d := range file.Diagnostics {
			record := []string{
				d.FilePath,
				strconv.Itoa(d.Anchor.Line),
				strconv.Itoa(d.Anchor.Column),
				string(d.Severity),
				d.RuleCode,
				d.Message,
				strconv.FormatBool(d.Fixable),
			}
			if err := w.Write(record); err != nil {
				return err
			}
		}
	}
	w.Flush()
	return w.Error()
}

// writeText writes a human-readable report with colored severities
func (f *OutputFormatterImpl) writeText(response *domain.LintResponse, writer io.Writer) error {
	bold := color.New(color.Bold).SprintFunc()

	for _, file := range response.Files {
		if file.ParseError != "" {
			fmt.Fprintf(writer, "%s\n  %s %s\n\n", bold(file.FilePath),
				severityLabel(domain.SeverityError), "skipped: "+file.ParseError)
			continue
		}
		if len(file.Diagnostics) == 0 {
			continue
		}

		fmt.Fprintf(writer, "%s\n", bold(file.FilePath))
		for _, d := range file.Diagnostics {
			fixMark := ""
			if d.Fixable {
				fixMark = color.CyanString(" [fixable]")
			}
			fmt.Fprintf(writer, "  %d:%d  %s  %s  %s%s\n",
				d.Anchor.Line, d.Anchor.Column,
				severityLabel(d.Severity),
				d.Message,
				color.New(color.Faint).Sprint(d.RuleCode),
				fixMark)
			if f.ShowDetails && d.Correction != "" {
				fmt.Fprintf(writer, "           %s\n", color.New(color.Faint).Sprint(d.Correction))
			}
		}
		fmt.Fprintln(writer)
	}

	f.writeTextSummary(response, writer)
	return nil
}

// writeTextSummary writes the aggregate line and any warnings
func (f *OutputFormatterImpl) writeTextSummary(response *domain.LintResponse, writer io.Writer) {
	s := response.Summary

	if s.TotalDiagnostics == 0 {
		fmt.Fprintf(writer, "%s %d files analyzed, no problems found\n",
			color.GreenString("✓"), s.FilesAnalyzed)
	} else {
		problems := fmt.Sprintf("%d problems (%d errors, %d warnings, %d info)",
			s.TotalDiagnostics, s.ErrorCount, s.WarningCount, s.InfoCount)
		if s.ErrorCount > 0 {
			fmt.Fprintf(writer, "%s %s\n", color.RedString("✗"), problems)
		} else {
			fmt.Fprintf(writer, "%s %s\n", color.YellowString("!"), problems)
		}
		if s.FixableCount > 0 {
			fmt.Fprintf(writer, "  %d fixable with the --fix option\n", s.FixableCount)
		}
	}

	if s.FilesSkipped > 0 {
		fmt.Fprintf(writer, "  %d files skipped\n", s.FilesSkipped)
	}

	for _, w := range response.Warnings {
		fmt.Fprintf(writer, "%s %s\n", color.YellowString("warning:"), w)
	}
	for _, e := range response.Errors {
		fmt.Fprintf(writer, "%s %s\n", color.RedString("error:"), e)
	}
}

// severityLabel renders a fixed-width colored severity tag
func severityLabel(severity domain.Severity) string {
	switch severity {
	case domain.SeverityError:
		return color.RedString("error  ")
	case domain.SeverityWarning:
		return color.YellowString("warning")
	default:
		return color.CyanString("info   ")
	}
}

package output

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/gonvenience/ytbx"
	"github.com/homeport/dyff/pkg/dyff"
)

// DiffYAML computes a YAML-aware diff between two documents using dyff.
// Returns an empty string when the documents are equivalent.
func DiffYAML(from, to []byte, useColor bool) (string, error) {
	if len(bytes.TrimSpace(from)) == 0 && len(bytes.TrimSpace(to)) == 0 {
		return "", nil
	}

	fromInput, err := parseYAMLInput("from", from)
	if err != nil {
		return "", fmt.Errorf("parsing from YAML: %w", err)
	}

	toInput, err := parseYAMLInput("to", to)
	if err != nil {
		return "", fmt.Errorf("parsing to YAML: %w", err)
	}

	report, err := dyff.CompareInputFiles(fromInput, toInput)
	if err != nil {
		return "", fmt.Errorf("comparing YAML: %w", err)
	}

	if len(report.Diffs) == 0 {
		return "", nil
	}

	return renderDyffReport(report, useColor)
}

// parseYAMLInput parses YAML bytes into a dyff input file.
func parseYAMLInput(name string, data []byte) (ytbx.InputFile, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return ytbx.InputFile{Location: name}, nil
	}

	docs, err := ytbx.LoadYAMLDocuments(data)
	if err != nil {
		return ytbx.InputFile{}, err
	}

	return ytbx.InputFile{
		Location:  name,
		Documents: docs,
	}, nil
}

// renderDyffReport renders a dyff report to a string.
func renderDyffReport(report dyff.Report, useColor bool) (string, error) {
	var buf bytes.Buffer

	reportWriter := &dyff.HumanReport{
		Report:            report,
		DoNotInspectCerts: true,
		NoTableStyle:      !useColor,
		OmitHeader:        true,
	}

	if err := reportWriter.WriteReport(io.Writer(&buf)); err != nil {
		return "", fmt.Errorf("writing report: %w", err)
	}

	lines := strings.Split(buf.String(), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}

	return strings.TrimSpace(strings.Join(lines, "\n")), nil
}

// RenderRecordDiff renders the diff between two bundle records with a
// header naming both packages. A version downgrade is flagged in the header.
func RenderRecordDiff(from, to, diff string, downgrade bool, styles *Styles) string {
	var sb strings.Builder

	sb.WriteString(StyleNoun.Render(from))
	sb.WriteString(StyleDim.Render(" -> "))
	sb.WriteString(StyleNoun.Render(to))
	sb.WriteString("\n")

	if downgrade {
		sb.WriteString(styles.Error.Render("version code decreases"))
		sb.WriteString("\n")
	}

	if diff == "" {
		sb.WriteString(StatusStyle(StatusUnchanged).Render("No changes detected."))
		sb.WriteString("\n")
		return sb.String()
	}

	sb.WriteString(styles.Warning.Render("Modified:"))
	sb.WriteString("\n")
	for _, line := range strings.Split(diff, "\n") {
		if line != "" {
			sb.WriteString("    ")
			sb.WriteString(line)
			sb.WriteString("\n")
		}
	}

	return sb.String()
}

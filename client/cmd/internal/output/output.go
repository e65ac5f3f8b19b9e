package output

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/olekukonko/tablewriter"
	"gopkg.in/yaml.v3"

	"github.com/goto/chronoset/config"
	"github.com/goto/chronoset/internal/lib/interval"
)

const indent = 2

// Result is rendered as a table from Header and Rows, or encoded from Value for yaml and json.
type Result struct {
	Header []string
	Rows   [][]string
	Value  any
}

type Printer struct {
	writer io.Writer
	format config.OutputFormat
}

func NewPrinter(writer io.Writer, format config.OutputFormat) *Printer {
	return &Printer{
		writer: writer,
		format: format,
	}
}

func (p Printer) Print(result Result) error {
	switch p.format {
	case config.OutputTable, "":
		table := tablewriter.NewWriter(p.writer)
		table.SetBorder(false)
		table.SetAutoWrapText(false)
		table.SetAlignment(tablewriter.ALIGN_LEFT)
		table.SetHeader(result.Header)
		table.AppendBulk(result.Rows)
		table.Render()
		return nil
	case config.OutputYAML:
		encoder := yaml.NewEncoder(p.writer)
		encoder.SetIndent(indent)
		if err := encoder.Encode(result.Value); err != nil {
			return fmt.Errorf("error encoding yaml output: %w", err)
		}
		return encoder.Close()
	case config.OutputJSON:
		encoder := json.NewEncoder(p.writer)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(result.Value); err != nil {
			return fmt.Errorf("error encoding json output: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("unknown output format [%s]", p.format)
	}
}

type Span struct {
	Start time.Time `json:"start" yaml:"start"`
	End   time.Time `json:"end"   yaml:"end"`
}

// Intervals renders each interval as one row with its duration.
func Intervals(ivs []interval.Interval[time.Time]) Result {
	spans := make([]Span, 0, len(ivs))
	rows := make([][]string, 0, len(ivs))
	for _, iv := range ivs {
		spans = append(spans, Span{Start: iv.Start(), End: iv.End()})
		rows = append(rows, []string{
			iv.Start().Format(time.RFC3339),
			iv.End().Format(time.RFC3339),
			iv.End().Sub(iv.Start()).String(),
		})
	}
	return Result{
		Header: []string{"Start", "End", "Duration"},
		Rows:   rows,
		Value:  spans,
	}
}

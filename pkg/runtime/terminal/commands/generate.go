package commands

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/sera-tools/sera-atlas/pkg/models/domain"
	"github.com/sera-tools/sera-atlas/pkg/models/store"
	"github.com/sera-tools/sera-atlas/pkg/runtime/terminal/export"
	"github.com/sera-tools/sera-atlas/pkg/services/report"
	"github.com/sera-tools/sera-atlas/pkg/services/report/render"

	"github.com/spf13/cobra"
)

type GenerateCmd struct {
	inputPath  string
	reportType string
	format     string
	outputPath string
	rules      report.Rules
	output     io.Writer
}

// NewGenerateCmd builds a feasibility report from an analysis JSON file
// without going through the web server. The "text" format prints a terminal
// summary; pdf/json/excel use the same renderers as the download endpoint.
func NewGenerateCmd(rules report.Rules, output io.Writer) *cobra.Command {
	gc := &GenerateCmd{rules: rules, output: output}
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a feasibility report from analysis figures",
		RunE:  gc.run,
	}

	cmd.Flags().StringVarP(&gc.inputPath, "input", "i", "", "Path to the analysis input JSON file")
	cmd.Flags().StringVarP(&gc.reportType, "type", "t", "comprehensive", "Report type")
	cmd.Flags().StringVarP(&gc.format, "format", "f", "text", "Output format (text, pdf, json, excel)")
	cmd.Flags().StringVarP(&gc.outputPath, "output", "o", "", "Write output to file instead of stdout")

	_ = cmd.MarkFlagRequired("input")

	return cmd
}

func (gc *GenerateCmd) run(cmd *cobra.Command, args []string) error {
	raw, err := os.ReadFile(gc.inputPath)
	if err != nil {
		return fmt.Errorf("failed to read input file: %w", err)
	}

	var input domain.AnalysisInput
	if err := json.Unmarshal(raw, &input); err != nil {
		return fmt.Errorf("failed to parse analysis input: %w", err)
	}

	clock := report.SystemClock{}
	analyzer := report.NewAnalyzer(gc.rules, clock)
	reportID := report.NewIDGenerator(clock).NewReportID()
	rpt := analyzer.Synthesize(input, gc.reportType, reportID)

	if gc.format == "text" {
		var buf bytes.Buffer
		if err := export.NewReporter(&buf).Handle(&rpt); err != nil {
			return err
		}
		return gc.emit(buf.Bytes())
	}

	renderer, err := render.NewRegistry(clock).ForFormat(gc.format)
	if err != nil {
		return err
	}

	body, err := renderer.Render(store.ReportRecord{ReportID: reportID, Data: rpt})
	if err != nil {
		return fmt.Errorf("failed to render report: %w", err)
	}
	return gc.emit(body)
}

func (gc *GenerateCmd) emit(body []byte) error {
	if gc.outputPath != "" {
		return os.WriteFile(gc.outputPath, body, 0o644)
	}
	_, err := gc.output.Write(body)
	return err
}

package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cgpa-hub/cgpa-calculator/internal/application/query"
	"github.com/cgpa-hub/cgpa-calculator/internal/domain/grading"
	"github.com/cgpa-hub/cgpa-calculator/internal/infrastructure/input"
	"github.com/cgpa-hub/cgpa-calculator/internal/interface/cli/presenter"
	"github.com/cgpa-hub/cgpa-calculator/pkg/logger"
)

type calcFlags struct {
	format    string
	precision int
}

func newCalcCommand(app *App) *cobra.Command {
	var flags calcFlags

	cmd := &cobra.Command{
		Use:   "calc [file|-]",
		Short: "Calculate TGPA per semester, CGPA and the grade distribution",
		Long: `Reads a transcript document and prints the report.

The document lists semesters in order, each with subject rows:

  {"mode": "marks", "semesters": [{"subjects": [{"name": "Maths", "credit": 4, "marks": 91}]}]}

In letter mode rows carry "letter" instead of "marks". With no file or "-"
the document is read from stdin.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "-"
			if len(args) == 1 {
				path = args[0]
			}
			return app.runCalc(cmd, path, flags)
		},
	}

	cmd.Flags().StringVarP(&flags.format, "format", "f", "table", "output format: table or json")
	cmd.Flags().IntVarP(&flags.precision, "precision", "p", app.cfg.Grading.Precision, "decimal places shown for averages")

	return cmd
}

func (a *App) runCalc(cmd *cobra.Command, path string, flags calcFlags) error {
	format := strings.ToLower(strings.TrimSpace(flags.format))
	if format != "table" && format != "json" {
		return fmt.Errorf("unknown format %q, expected table or json", flags.format)
	}
	if flags.precision < 0 || flags.precision > 6 {
		return fmt.Errorf("precision %d out of range [0, 6]", flags.precision)
	}

	mode, err := a.activeMode()
	if err != nil {
		return err
	}
	scale, err := a.loadScale()
	if err != nil {
		return err
	}

	var doc *input.TranscriptDTO
	if path == "-" {
		doc, err = input.DecodeTranscript(cmd.InOrStdin())
	} else {
		doc, err = input.ReadTranscriptFile(path)
	}
	if err != nil {
		return err
	}

	// --mode wins over the document's own mode.
	override := ""
	if a.mode != "" {
		override = string(mode)
	}

	log := a.log.With(logger.Operation("calc"))
	handler := query.NewCalculateGPAHandler(grading.NewResolver(scale), a.queryOptions(mode), log)
	result, err := handler.Handle(cmd.Context(), doc.ToQuery(override))
	if err != nil {
		return err
	}

	opts := presenter.Options{Precision: flags.precision, Features: a.cfg.Features}
	log.Debug("rendering report",
		logger.CalculationID(result.ID),
		logger.String("format", format),
		logger.Int("precision", flags.precision),
	)

	if format == "json" {
		return presenter.RenderJSON(cmd.OutOrStdout(), result, opts)
	}
	return presenter.RenderTable(cmd.OutOrStdout(), result, opts)
}

package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/cgpa-hub/cgpa-calculator/internal/domain/grading"
	"github.com/cgpa-hub/cgpa-calculator/internal/infrastructure/input"
)

func newScaleCommand(app *App) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "scale",
		Short: "Print the active grading scale and its fingerprint",
		Long: `Prints the marks table, the letter table and the performance bands.
With --json the scale is printed as a document that --scale accepts,
which is a convenient starting point for a custom scale.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			scale, err := app.loadScale()
			if err != nil {
				return err
			}
			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(input.FromScale(scale))
			}
			return writeScale(cmd.OutOrStdout(), scale)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print the scale as a JSON document")
	return cmd
}

func writeScale(w io.Writer, s grading.Scale) error {
	var err error
	printf := func(format string, args ...any) {
		if err == nil {
			_, err = fmt.Fprintf(w, format, args...)
		}
	}

	printf("Scale: %s\n", s.Name)
	printf("Fingerprint: %s\n", s.Fingerprint())
	printf("Max point: %g\n", s.MaxPoint)

	printf("\nMarks\n")
	for _, r := range s.Marks {
		printf("  %-14s %g\n", s.RangeLabel(grading.ModeMarks, r.Letter), r.Point)
	}
	printf("  %-14s %g\n", s.RangeLabel(grading.ModeMarks, s.Fallback.Letter), s.Fallback.Point)

	printf("\nLetters\n")
	for _, lp := range s.Letters {
		printf("  %-4s %g\n", lp.Letter, lp.Point)
	}

	if len(s.Bands) > 0 {
		printf("\nPerformance\n")
		for _, b := range s.Bands {
			printf("  >= %-4g %s\n", b.Min, b.Label)
		}
		printf("  %-7s %s\n", "else", s.FallbackBand)
	}

	return err
}

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cgpa-hub/cgpa-calculator/internal/domain/grading"
	"github.com/cgpa-hub/cgpa-calculator/internal/infrastructure/input"
)

func newResolveCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "resolve VALUE...",
		Short: "Resolve marks or letters to grade points",
		Long: `Resolves each value with the active scale. In marks mode a value that is
not a number reads as 0 marks, the way an empty form field does.`,
		Example: `  gradecalc resolve 91 73.5 12
  gradecalc --mode letter resolve a+ B O`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, err := app.activeMode()
			if err != nil {
				return err
			}
			scale, err := app.loadScale()
			if err != nil {
				return err
			}
			resolver := grading.NewResolver(scale)

			out := cmd.OutOrStdout()
			for _, raw := range args {
				var line string
				switch mode {
				case grading.ModeLetter:
					if g, ok := resolver.ResolveLetter(raw); ok {
						line = fmt.Sprintf("%s\t%s\t%g", raw, g.Letter, g.Point)
					} else {
						line = fmt.Sprintf("%s\t-\tunrecognized letter", raw)
					}
				default:
					g := resolver.ResolveMarks(input.ParseNumber(raw).Value)
					line = fmt.Sprintf("%s\t%s\t%g", raw, g.Letter, g.Point)
				}
				if _, err := fmt.Fprintln(out, line); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

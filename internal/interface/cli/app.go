// Package cli wires the gradecalc commands: calc, scale and resolve.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cgpa-hub/cgpa-calculator/config"
	"github.com/cgpa-hub/cgpa-calculator/internal/application/query"
	"github.com/cgpa-hub/cgpa-calculator/internal/domain/grading"
	"github.com/cgpa-hub/cgpa-calculator/internal/infrastructure/input"
	"github.com/cgpa-hub/cgpa-calculator/pkg/logger"
)

// ══════════════════════════════════════════════════════════════════════════════
// APPLICATION
// ══════════════════════════════════════════════════════════════════════════════

// App holds what every command needs.
type App struct {
	cfg *config.Config
	log *logger.Logger

	// scaleFile overrides cfg.Grading.ScaleFile when set by --scale.
	scaleFile string
	// mode overrides cfg.Grading.InputMode when set by --mode.
	mode string
}

// NewApp creates the application. A nil config uses config.Default();
// a nil logger discards output.
func NewApp(cfg *config.Config, log *logger.Logger) *App {
	if cfg == nil {
		cfg = config.Default()
	}
	if log == nil {
		log = logger.Nop()
	}
	return &App{cfg: cfg, log: log}
}

// NewRootCommand builds the command tree.
func NewRootCommand(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "gradecalc",
		Short:         "Calculate TGPA and CGPA from marks or letter grades",
		Version:       app.cfg.App.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&app.scaleFile, "scale", "",
		"grading scale JSON file (default: built-in 10-point scale)")
	root.PersistentFlags().StringVar(&app.mode, "mode", "",
		"input mode: marks or letter (default from GRADING_INPUT_MODE)")

	root.AddCommand(
		newCalcCommand(app),
		newScaleCommand(app),
		newResolveCommand(app),
	)

	return root
}

// loadScale returns the active grading scale.
func (a *App) loadScale() (grading.Scale, error) {
	path := a.scaleFile
	if path == "" {
		path = a.cfg.Grading.ScaleFile
	}
	if path == "" {
		return grading.DefaultScale(), nil
	}

	scale, err := input.ReadScaleFile(path)
	if err != nil {
		return grading.Scale{}, fmt.Errorf("load scale %s: %w", path, err)
	}
	a.log.Debug("scale loaded", logger.ScaleName(scale.Name), logger.String("path", path))
	return scale, nil
}

// activeMode returns the mode from --mode, falling back to configuration.
func (a *App) activeMode() (grading.InputMode, error) {
	raw := a.mode
	if raw == "" {
		raw = a.cfg.Grading.InputMode
	}
	return grading.ParseMode(raw)
}

// queryOptions maps grading configuration to handler options.
func (a *App) queryOptions(mode grading.InputMode) query.Options {
	g := a.cfg.Grading
	return query.Options{
		DefaultMode:     mode,
		MaxSemesters:    g.MaxSemesters,
		MaxSubjects:     g.MaxSubjects,
		CreditMin:       g.CreditMin,
		CreditMax:       g.CreditMax,
		MarksMin:        g.MarksMin,
		MarksMax:        g.MarksMax,
		ZeroMarksAbsent: g.ZeroMarksAbsent,
	}
}

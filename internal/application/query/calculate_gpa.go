// Package query contains read operations following CQRS pattern.
// Queries never modify state - they only read and return data.
// Each query is a self-contained use case with its own request/response types.
package query

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/cgpa-hub/cgpa-calculator/internal/domain/grading"
	"github.com/cgpa-hub/cgpa-calculator/internal/domain/shared"
	"github.com/cgpa-hub/cgpa-calculator/internal/domain/transcript"
	"github.com/cgpa-hub/cgpa-calculator/pkg/logger"
)

// ══════════════════════════════════════════════════════════════════════════════
// CALCULATE GPA QUERY
// Resolves every subject of a transcript, clamps inputs to their bounds and
// computes TGPA per semester, CGPA and the grade distribution.
// ══════════════════════════════════════════════════════════════════════════════

// SubjectInput is one subject row as entered. Nil numbers were not entered.
type SubjectInput struct {
	Name   string
	Credit *float64
	Marks  *float64
	Letter string
}

// SemesterInput is one semester as entered.
type SemesterInput struct {
	Subjects []SubjectInput
}

// CalculateGPAQuery contains the transcript to calculate.
type CalculateGPAQuery struct {
	// Mode is "marks" or "letter" in any case; empty uses the handler default.
	// Parsed by grading.ParseMode.
	Mode string

	// Semesters in order; the first is semester 1.
	Semesters []SemesterInput `validate:"required,min=1"`
}

// Options configures the handler.
type Options struct {
	DefaultMode grading.InputMode

	MaxSemesters int
	MaxSubjects  int

	CreditMin float64
	CreditMax float64
	MarksMin  float64
	MarksMax  float64

	// ZeroMarksAbsent reads a mark of exactly 0 as "not entered".
	ZeroMarksAbsent bool
}

// DefaultOptions returns the bounds of the standard calculator form.
func DefaultOptions() Options {
	return Options{
		DefaultMode:  grading.ModeMarks,
		MaxSemesters: 8,
		MaxSubjects:  10,
		CreditMin:    1,
		CreditMax:    10,
		MarksMin:     0,
		MarksMax:     100,
	}
}

// CalculateGPAResult is the outcome of one calculation.
type CalculateGPAResult struct {
	// ID identifies this calculation in logs and output.
	ID string

	// GeneratedAt is when the calculation ran.
	GeneratedAt time.Time

	// Mode is the input mode used.
	Mode grading.InputMode

	// Scale is the grading scale used.
	Scale grading.Scale

	// ScaleFingerprint is Scale.Fingerprint().
	ScaleFingerprint string

	// Semesters holds one result per input semester, in input order.
	Semesters []transcript.SemesterResult

	// Overall holds CGPA, totals and the distribution.
	Overall transcript.OverallResult

	// Summary holds highest/lowest TGPA.
	Summary transcript.Summary

	// Warnings lists inputs that were adjusted or ignored.
	Warnings []string
}

// HasData reports whether at least one subject was included.
func (r *CalculateGPAResult) HasData() bool {
	return r.Overall.HasData()
}

// CalculateGPAHandler handles CalculateGPAQuery.
type CalculateGPAHandler struct {
	resolver *grading.Resolver
	opts     Options
	validate *validator.Validate
	log      *logger.Logger
	newID    func() string
	now      func() time.Time
}

// NewCalculateGPAHandler creates a handler. A nil logger discards output.
func NewCalculateGPAHandler(resolver *grading.Resolver, opts Options, log *logger.Logger) *CalculateGPAHandler {
	if log == nil {
		log = logger.Nop()
	}
	return &CalculateGPAHandler{
		resolver: resolver,
		opts:     opts,
		validate: validator.New(),
		log:      log.With(logger.Component("calculate_gpa")),
		newID:    func() string { return uuid.New().String() },
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// WithIDGenerator replaces the calculation ID generator.
func (h *CalculateGPAHandler) WithIDGenerator(fn func() string) *CalculateGPAHandler {
	h.newID = fn
	return h
}

// WithClock replaces the clock.
func (h *CalculateGPAHandler) WithClock(fn func() time.Time) *CalculateGPAHandler {
	h.now = fn
	return h
}

// Validate checks the query shape against the handler limits.
func (h *CalculateGPAHandler) Validate(q CalculateGPAQuery) error {
	if err := h.validate.Struct(q); err != nil {
		if len(q.Semesters) == 0 {
			return shared.WrapError("query", "CalculateGPA", shared.ErrValidation, "no semesters", shared.ErrTranscriptEmpty)
		}
		return shared.WrapError("query", "CalculateGPA", shared.ErrValidation, "invalid query", err)
	}

	if err := h.validate.Var(q.Semesters, fmt.Sprintf("max=%d", h.opts.MaxSemesters)); err != nil {
		return shared.WrapError("query", "CalculateGPA", shared.ErrValidation,
			fmt.Sprintf("%d semesters, at most %d allowed", len(q.Semesters), h.opts.MaxSemesters),
			shared.ErrTooManySemesters)
	}

	subjectsRule := fmt.Sprintf("max=%d", h.opts.MaxSubjects)
	for i, sem := range q.Semesters {
		if err := h.validate.Var(sem.Subjects, subjectsRule); err != nil {
			return shared.WrapError("query", "CalculateGPA", shared.ErrValidation,
				fmt.Sprintf("semester %d has %d subjects, at most %d allowed", i+1, len(sem.Subjects), h.opts.MaxSubjects),
				shared.ErrTooManySubjects)
		}
	}

	return nil
}

// Handle runs the calculation.
func (h *CalculateGPAHandler) Handle(ctx context.Context, q CalculateGPAQuery) (*CalculateGPAResult, error) {
	started := time.Now()

	if err := h.Validate(q); err != nil {
		return nil, err
	}

	mode := h.opts.DefaultMode
	if strings.TrimSpace(q.Mode) != "" {
		m, err := grading.ParseMode(q.Mode)
		if err != nil {
			return nil, shared.WrapError("query", "CalculateGPA", shared.ErrValidation, "invalid mode", err)
		}
		mode = m
	}

	scale := h.resolver.Scale()
	result := &CalculateGPAResult{
		ID:               h.newID(),
		GeneratedAt:      h.now(),
		Mode:             mode,
		Scale:            scale,
		ScaleFingerprint: scale.Fingerprint(),
	}
	log := h.log.With(logger.CalculationID(result.ID), logger.InputMode(string(mode)))

	semesters := make([]transcript.Semester, 0, len(q.Semesters))
	for i, sem := range q.Semesters {
		subjects := make(transcript.Semester, 0, len(sem.Subjects))
		for j, in := range sem.Subjects {
			subjects = append(subjects, h.buildSubject(log, result, mode, i+1, j+1, in))
		}
		semesters = append(semesters, subjects)
	}

	agg := transcript.NewAggregator(scale.Labels(mode))
	out := agg.Compute(semesters)

	result.Semesters = out.Semesters
	result.Overall = out.Overall
	result.Summary = transcript.Summarize(out.Semesters)

	log.Info("gpa calculated",
		logger.Int("semesters", len(result.Semesters)),
		logger.Int("included_subjects", result.Overall.TotalSubjects),
		logger.Float64("total_credits", result.Overall.TotalCredits),
		logger.Bool("has_data", result.HasData()),
		logger.Latency(time.Since(started)),
	)

	return result, nil
}

// buildSubject applies the boundary rules to one row.
func (h *CalculateGPAHandler) buildSubject(
	log *logger.Logger,
	result *CalculateGPAResult,
	mode grading.InputMode,
	semester, row int,
	in SubjectInput,
) transcript.Subject {
	name := in.Name
	if name == "" {
		name = fmt.Sprintf("Subject %d", row)
	}

	warn := func(fields []logger.Field, format string, args ...any) {
		msg := fmt.Sprintf("semester %d, %s: ", semester, name) + fmt.Sprintf(format, args...)
		result.Warnings = append(result.Warnings, msg)
		fields = append(fields, logger.Semester(semester), logger.SubjectName(name), logger.String("detail", msg))
		log.Debug("input adjusted", fields...)
	}

	subject := transcript.Subject{Name: name}

	if in.Credit != nil && !math.IsNaN(*in.Credit) && *in.Credit > 0 {
		credit := clamp(*in.Credit, h.opts.CreditMin, h.opts.CreditMax)
		if credit != *in.Credit {
			warn(logger.Clamped(*in.Credit, credit), "credit %g clamped to %g", *in.Credit, credit)
		}
		subject.Credit = credit
	}

	switch mode {
	case grading.ModeLetter:
		grade, ok := h.resolver.ResolveLetter(in.Letter)
		if !ok && in.Letter != "" {
			warn(nil, "unrecognized letter %q ignored", in.Letter)
		}
		subject.Grade = grade
		subject.Entered = ok

	default:
		if in.Marks == nil || math.IsNaN(*in.Marks) {
			subject.Grade = h.resolver.ResolveMarks(0)
			return subject
		}
		marks := clamp(*in.Marks, h.opts.MarksMin, h.opts.MarksMax)
		if marks != *in.Marks {
			warn(logger.Clamped(*in.Marks, marks), "marks %g clamped to %g", *in.Marks, marks)
		}
		subject.Grade = h.resolver.ResolveMarks(marks)
		subject.Entered = !(h.opts.ZeroMarksAbsent && marks == 0)
	}

	if subject.Entered && subject.Credit == 0 {
		warn(nil, "no credit entered, subject excluded")
	}

	return subject
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}

package grading

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"golang.org/x/crypto/blake2b"

	"github.com/cgpa-hub/cgpa-calculator/internal/domain/shared"
)

// ══════════════════════════════════════════════════════════════════════════════
// VALUE OBJECTS
// ══════════════════════════════════════════════════════════════════════════════

// Letter is a canonical grade label such as "O" or "A+".
type Letter string

// String returns the label.
func (l Letter) String() string { return string(l) }

// InputMode selects how a subject's score is entered.
type InputMode string

const (
	// ModeMarks - numeric marks in [0, 100].
	ModeMarks InputMode = "marks"
	// ModeLetter - a letter grade chosen from the scale's letter table.
	ModeLetter InputMode = "letter"
)

// ParseMode parses an input mode name. Empty input selects ModeMarks.
func ParseMode(s string) (InputMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "marks", "mark":
		return ModeMarks, nil
	case "letter", "letters", "grade":
		return ModeLetter, nil
	default:
		return "", shared.WrapError("grading", "ParseMode", shared.ErrInvalidInput,
			fmt.Sprintf("unknown input mode %q", s), shared.ErrUnknownInputMode)
	}
}

// Grade is a resolved grade: the point value and its canonical letter.
type Grade struct {
	Point  float64
	Letter Letter
}

// Rung is one row of the marks table: marks >= Min earn Point and Letter.
type Rung struct {
	Min    float64
	Point  float64
	Letter Letter
}

// LetterPoint maps a directly entered letter to its point value.
type LetterPoint struct {
	Letter Letter
	Point  float64
}

// Band labels an average: averages >= Min get Label.
type Band struct {
	Min   float64
	Label string
}

// ══════════════════════════════════════════════════════════════════════════════
// SCALE
// ══════════════════════════════════════════════════════════════════════════════

// Scale is a complete institutional grading scale.
type Scale struct {
	// Name identifies the scale in reports.
	Name string

	// MaxPoint is the highest grade point on the scale.
	MaxPoint float64

	// MarksMax is the nominal upper bound of marks, used for range labels.
	MarksMax float64

	// Marks holds the rungs in strictly descending order of Min.
	Marks []Rung

	// Fallback is the grade for marks that match no rung.
	Fallback Grade

	// Letters is the letter table in canonical display order.
	Letters []LetterPoint

	// Bands holds performance bands in strictly descending order of Min.
	Bands []Band

	// FallbackBand labels averages below every band.
	FallbackBand string
}

// DefaultScale returns the 10-point O/A+/A/B+/B/C/D/F scale.
func DefaultScale() Scale {
	return Scale{
		Name:     "default-10",
		MaxPoint: 10,
		MarksMax: 100,
		Marks: []Rung{
			{Min: 90, Point: 10, Letter: "O"},
			{Min: 80, Point: 9, Letter: "A+"},
			{Min: 70, Point: 8, Letter: "A"},
			{Min: 60, Point: 7, Letter: "B+"},
			{Min: 50, Point: 6, Letter: "B"},
			{Min: 45, Point: 5, Letter: "C"},
			{Min: 40, Point: 4, Letter: "D"},
		},
		Fallback: Grade{Point: 0, Letter: "F"},
		Letters: []LetterPoint{
			{Letter: "O", Point: 10},
			{Letter: "A+", Point: 9},
			{Letter: "A", Point: 8},
			{Letter: "B+", Point: 7},
			{Letter: "B", Point: 6},
			{Letter: "C", Point: 5},
			{Letter: "D", Point: 4},
			{Letter: "E", Point: 0},
			{Letter: "F", Point: 0},
			{Letter: "G", Point: 0},
			{Letter: "I", Point: 0},
		},
		Bands: []Band{
			{Min: 9, Label: "Outstanding"},
			{Min: 8, Label: "Excellent"},
			{Min: 7, Label: "Very Good"},
			{Min: 6, Label: "Good"},
			{Min: 5, Label: "Average"},
		},
		FallbackBand: "Needs Improvement",
	}
}

// Validate checks the scale for structural problems.
func (s Scale) Validate() error {
	if len(s.Marks) == 0 {
		return shared.ErrScaleNoRungs
	}
	if len(s.Letters) == 0 {
		return shared.ErrScaleNoLetters
	}

	inRange := func(p float64) bool {
		return !math.IsNaN(p) && p >= 0 && p <= s.MaxPoint
	}

	for i, r := range s.Marks {
		if i > 0 && !(r.Min < s.Marks[i-1].Min) {
			return shared.WrapError("grading", "Validate", shared.ErrInvalidInput,
				fmt.Sprintf("rung %d (%s) threshold %g is not below %g", i, r.Letter, r.Min, s.Marks[i-1].Min),
				shared.ErrScaleRungOrder)
		}
		if !inRange(r.Point) {
			return shared.WrapError("grading", "Validate", shared.ErrValueOutOfRange,
				fmt.Sprintf("rung %s point %g", r.Letter, r.Point), shared.ErrScalePointRange)
		}
		if r.Letter == "" {
			return shared.WrapError("grading", "Validate", shared.ErrEmptyValue,
				fmt.Sprintf("rung %d has no letter", i), shared.ErrScaleNoRungs)
		}
	}
	if s.Fallback.Letter == "" {
		return shared.WrapError("grading", "Validate", shared.ErrEmptyValue,
			"fallback grade has no letter", shared.ErrScaleNoRungs)
	}
	if !inRange(s.Fallback.Point) {
		return shared.WrapError("grading", "Validate", shared.ErrValueOutOfRange,
			fmt.Sprintf("fallback point %g", s.Fallback.Point), shared.ErrScalePointRange)
	}

	seen := make(map[Letter]struct{}, len(s.Letters))
	for _, lp := range s.Letters {
		if _, dup := seen[lp.Letter]; dup {
			return shared.WrapError("grading", "Validate", shared.ErrInvalidInput,
				fmt.Sprintf("letter %q", lp.Letter), shared.ErrScaleDuplicateLabel)
		}
		seen[lp.Letter] = struct{}{}
		if !inRange(lp.Point) {
			return shared.WrapError("grading", "Validate", shared.ErrValueOutOfRange,
				fmt.Sprintf("letter %s point %g", lp.Letter, lp.Point), shared.ErrScalePointRange)
		}
	}

	for i := 1; i < len(s.Bands); i++ {
		if !(s.Bands[i].Min < s.Bands[i-1].Min) {
			return shared.ErrScaleBandOrder
		}
	}

	return nil
}

// Labels returns the canonical label order used for grade distributions.
// Marks mode lists the rung letters followed by the fallback letter;
// letter mode lists the letter table.
func (s Scale) Labels(mode InputMode) []Letter {
	if mode == ModeLetter {
		labels := make([]Letter, 0, len(s.Letters))
		for _, lp := range s.Letters {
			labels = append(labels, lp.Letter)
		}
		return labels
	}

	labels := make([]Letter, 0, len(s.Marks)+1)
	seen := make(map[Letter]struct{}, len(s.Marks)+1)
	for _, r := range s.Marks {
		if _, ok := seen[r.Letter]; ok {
			continue
		}
		seen[r.Letter] = struct{}{}
		labels = append(labels, r.Letter)
	}
	if _, ok := seen[s.Fallback.Letter]; !ok {
		labels = append(labels, s.Fallback.Letter)
	}
	return labels
}

// RangeLabel renders a legend label for a letter, e.g. "A+ (80-89)" or "F (<40)"
// in marks mode and "A+ (9)" in letter mode.
func (s Scale) RangeLabel(mode InputMode, letter Letter) string {
	if mode == ModeLetter {
		for _, lp := range s.Letters {
			if lp.Letter == letter {
				return fmt.Sprintf("%s (%s)", letter, formatNumber(lp.Point))
			}
		}
		return string(letter)
	}

	for i, r := range s.Marks {
		if r.Letter != letter {
			continue
		}
		upper := s.MarksMax
		if i > 0 {
			upper = s.Marks[i-1].Min - 1
		}
		return fmt.Sprintf("%s (%s-%s)", letter, formatNumber(r.Min), formatNumber(upper))
	}
	if letter == s.Fallback.Letter {
		return fmt.Sprintf("%s (<%s)", letter, formatNumber(s.Marks[len(s.Marks)-1].Min))
	}
	return string(letter)
}

// Performance returns the band label for an average.
func (s Scale) Performance(average float64) string {
	for _, b := range s.Bands {
		if average >= b.Min {
			return b.Label
		}
	}
	return s.FallbackBand
}

// Fingerprint returns a stable hex digest of the scale's content.
// Two scales with the same rules have the same fingerprint.
func (s Scale) Fingerprint() string {
	// Marshaling a struct of slices and scalars is deterministic.
	data, err := json.Marshal(s)
	if err != nil {
		return ""
	}
	sum := blake2b.Sum256(data)
	return hex.EncodeToString(sum[:])
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

package grading

import (
	"math"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// Resolver maps raw marks and letters to grades using a Scale.
// It is immutable after construction and safe to share.
type Resolver struct {
	scale   Scale
	letters map[Letter]float64
}

// NewResolver creates a resolver for the given scale.
func NewResolver(scale Scale) *Resolver {
	letters := make(map[Letter]float64, len(scale.Letters))
	for _, lp := range scale.Letters {
		letters[lp.Letter] = lp.Point
	}
	return &Resolver{
		scale:   scale,
		letters: letters,
	}
}

// Scale returns the scale the resolver was built with.
func (r *Resolver) Scale() Scale {
	return r.scale
}

// ResolveMarks maps marks to a grade. The first rung whose threshold is
// reached wins, so anything at or above the top threshold (including marks
// above 100) gets the top grade. Negative marks and NaN get the fallback.
func (r *Resolver) ResolveMarks(marks float64) Grade {
	if math.IsNaN(marks) {
		return r.scale.Fallback
	}
	for _, rung := range r.scale.Marks {
		if marks >= rung.Min {
			return Grade{Point: rung.Point, Letter: rung.Letter}
		}
	}
	return r.scale.Fallback
}

// ResolveLetter maps a letter grade to its point value.
// Unknown or empty input returns a zero grade and false.
func (r *Resolver) ResolveLetter(raw string) (Grade, bool) {
	letter := NormalizeLetter(raw)
	if letter == "" {
		return Grade{}, false
	}
	point, ok := r.letters[letter]
	if !ok {
		return Grade{}, false
	}
	return Grade{Point: point, Letter: letter}, true
}

// IsKnownLetter reports whether the letter is part of the scale.
func (r *Resolver) IsKnownLetter(letter Letter) bool {
	_, ok := r.letters[letter]
	return ok
}

// NormalizeLetter folds compatibility forms (full-width "Ａ＋"), strips
// whitespace and upper-cases the input.
func NormalizeLetter(raw string) Letter {
	s := norm.NFKC.String(raw)
	s = strings.Join(strings.Fields(s), "")
	if s == "" {
		return ""
	}
	return Letter(cases.Upper(language.Und).String(s))
}

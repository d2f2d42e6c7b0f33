// Package transcript folds semesters of graded subjects into weighted
// averages: a TGPA per semester and a CGPA over all of them.
//
// All sums are kept at full precision. Rounding is a display concern and
// happens only through Average.Rounded.
package transcript

import (
	"math"

	"github.com/cgpa-hub/cgpa-calculator/internal/domain/grading"
)

// Subject is one graded row of a semester.
type Subject struct {
	// Name is for display only.
	Name string

	// Credit weights the subject in averages.
	Credit float64

	// Grade is the resolved point and letter.
	Grade grading.Grade

	// Entered reports whether a score was actually supplied. A supplied
	// score of zero is a real failing grade; an absent one is not.
	Entered bool
}

// EffectiveCredit returns the credit, with negative and non-finite values read as 0.
func (s Subject) EffectiveCredit() float64 {
	if math.IsNaN(s.Credit) || math.IsInf(s.Credit, 0) || s.Credit < 0 {
		return 0
	}
	return s.Credit
}

// Included reports whether the subject contributes to aggregates.
func (s Subject) Included() bool {
	return s.Entered && s.EffectiveCredit() > 0
}

// Semester is an ordered list of subjects.
type Semester []Subject

// Average is a weighted mean that may be undefined.
// Valid is false when no credits were included; Value is 0 in that case.
type Average struct {
	Value float64
	Valid bool
}

// Rounded returns the value rounded to the given number of decimal places.
func (a Average) Rounded(places int) float64 {
	return Round(a.Value, places)
}

// Round rounds half away from zero to the given number of decimal places.
func Round(v float64, places int) float64 {
	if places < 0 {
		places = 0
	}
	pow := math.Pow(10, float64(places))
	return math.Round(v*pow) / pow
}

func weightedAverage(points, credits float64) Average {
	if credits <= 0 {
		return Average{}
	}
	return Average{Value: points / credits, Valid: true}
}

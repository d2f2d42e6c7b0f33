package transcript

import (
	"github.com/cgpa-hub/cgpa-calculator/internal/domain/grading"
)

// ══════════════════════════════════════════════════════════════════════════════
// RESULTS
// ══════════════════════════════════════════════════════════════════════════════

// SubjectLine is an included subject as it appears in a semester breakdown.
type SubjectLine struct {
	Name           string
	Credit         float64
	Grade          grading.Grade
	WeightedPoints float64
}

// SemesterResult holds the aggregates of one semester.
type SemesterResult struct {
	// Index is the 1-based position of the semester.
	Index int

	// TGPA is the credit-weighted mean of included grade points.
	TGPA Average

	// Credits is the sum of included credits.
	Credits float64

	// SubjectCount is the number of included subjects.
	SubjectCount int

	// WeightedPoints is the raw sum of point*credit.
	WeightedPoints float64

	// Subjects lists the included subjects in input order.
	Subjects []SubjectLine
}

// HasData reports whether any subject of the semester was included.
func (r SemesterResult) HasData() bool {
	return r.TGPA.Valid
}

// OverallResult holds the aggregates over all semesters.
type OverallResult struct {
	CGPA          Average
	TotalCredits  float64
	TotalSubjects int
	TotalPoints   float64
	Distribution  Distribution
}

// HasData reports whether any subject in any semester was included.
func (r OverallResult) HasData() bool {
	return r.CGPA.Valid
}

// Result is the full outcome of one calculation.
type Result struct {
	Semesters []SemesterResult
	Overall   OverallResult
}

// ══════════════════════════════════════════════════════════════════════════════
// AGGREGATOR
// ══════════════════════════════════════════════════════════════════════════════

// Aggregator computes semester and overall averages.
type Aggregator struct {
	labels []grading.Letter
}

// NewAggregator creates an aggregator whose distribution is keyed by labels,
// usually Scale.Labels(mode).
func NewAggregator(labels []grading.Letter) *Aggregator {
	return &Aggregator{labels: labels}
}

// ComputeSemester aggregates one semester. index is 1-based.
func (a *Aggregator) ComputeSemester(index int, subjects Semester) SemesterResult {
	res := SemesterResult{Index: index}

	for _, s := range subjects {
		if !s.Included() {
			continue
		}
		credit := s.EffectiveCredit()
		weighted := s.Grade.Point * credit

		res.WeightedPoints += weighted
		res.Credits += credit
		res.SubjectCount++
		res.Subjects = append(res.Subjects, SubjectLine{
			Name:           s.Name,
			Credit:         credit,
			Grade:          s.Grade,
			WeightedPoints: weighted,
		})
	}

	res.TGPA = weightedAverage(res.WeightedPoints, res.Credits)
	return res
}

// Compute aggregates every semester and the overall figures. The CGPA is
// derived from raw weighted points and credits, never from rounded TGPAs.
func (a *Aggregator) Compute(semesters []Semester) Result {
	out := Result{
		Semesters: make([]SemesterResult, 0, len(semesters)),
		Overall: OverallResult{
			Distribution: NewDistribution(a.labels),
		},
	}

	for i, sem := range semesters {
		res := a.ComputeSemester(i+1, sem)
		out.Semesters = append(out.Semesters, res)

		out.Overall.TotalPoints += res.WeightedPoints
		out.Overall.TotalCredits += res.Credits
		out.Overall.TotalSubjects += res.SubjectCount
		for _, line := range res.Subjects {
			out.Overall.Distribution.Add(line.Grade.Letter)
		}
	}

	out.Overall.CGPA = weightedAverage(out.Overall.TotalPoints, out.Overall.TotalCredits)
	return out
}

// ComputeOverall returns only the overall figures of Compute.
func (a *Aggregator) ComputeOverall(semesters []Semester) OverallResult {
	return a.Compute(semesters).Overall
}

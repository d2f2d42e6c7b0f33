package presenter

import (
	"encoding/json"
	"io"
	"time"

	"github.com/cgpa-hub/cgpa-calculator/config"
	"github.com/cgpa-hub/cgpa-calculator/internal/application/query"
	"github.com/cgpa-hub/cgpa-calculator/internal/domain/transcript"
)

// ReportDTO is the JSON form of a calculation result.
type ReportDTO struct {
	ID               string          `json:"id"`
	GeneratedAt      time.Time       `json:"generated_at"`
	Mode             string          `json:"mode"`
	Scale            string          `json:"scale"`
	ScaleFingerprint string          `json:"scale_fingerprint,omitempty"`
	MaxPoint         float64         `json:"max_point"`
	CGPA             *float64        `json:"cgpa"`
	TotalCredits     float64         `json:"total_credits"`
	TotalSubjects    int             `json:"total_subjects"`
	Semesters        []SemesterDTO   `json:"semesters"`
	Distribution     []GradeCountDTO `json:"distribution"`
	Summary          *SummaryDTO     `json:"summary,omitempty"`
	Charts           *ChartsDTO      `json:"charts,omitempty"`
	Message          string          `json:"message,omitempty"`
	Warnings         []string        `json:"warnings,omitempty"`
}

// SemesterDTO is one semester row.
type SemesterDTO struct {
	Semester    int          `json:"semester"`
	TGPA        *float64     `json:"tgpa"`
	Credits     float64      `json:"credits"`
	Subjects    int          `json:"subjects"`
	Performance string       `json:"performance,omitempty"`
	Lines       []SubjectDTO `json:"lines,omitempty"`
}

// SubjectDTO is one included subject.
type SubjectDTO struct {
	Name     string  `json:"name"`
	Credit   float64 `json:"credit"`
	Letter   string  `json:"letter"`
	Point    float64 `json:"point"`
	Weighted float64 `json:"weighted"`
}

// GradeCountDTO is one distribution bucket.
type GradeCountDTO struct {
	Letter string `json:"letter"`
	Label  string `json:"label"`
	Count  int    `json:"count"`
}

// SummaryDTO holds the TGPA extremes.
type SummaryDTO struct {
	Highest         *float64 `json:"highest_tgpa"`
	HighestSemester int      `json:"highest_semester"`
	Lowest          *float64 `json:"lowest_tgpa"`
	LowestSemester  int      `json:"lowest_semester"`
}

// ChartsDTO holds chart series.
type ChartsDTO struct {
	TGPA         *Series `json:"tgpa,omitempty"`
	Distribution *Series `json:"distribution,omitempty"`
}

// NewReportDTO builds the JSON form. Averages are rounded to opts.Precision
// and are null when there is no data.
func NewReportDTO(r *query.CalculateGPAResult, opts Options) ReportDTO {
	dto := ReportDTO{
		ID:            r.ID,
		GeneratedAt:   r.GeneratedAt,
		Mode:          string(r.Mode),
		Scale:         r.Scale.Name,
		MaxPoint:      r.Scale.MaxPoint,
		CGPA:          rounded(r.Overall.CGPA, opts.Precision),
		TotalCredits:  r.Overall.TotalCredits,
		TotalSubjects: r.Overall.TotalSubjects,
		Semesters:     make([]SemesterDTO, 0, len(r.Semesters)),
		Distribution:  make([]GradeCountDTO, 0),
		Warnings:      r.Warnings,
	}

	if opts.enabled(config.FeatureReportFingerprint) {
		dto.ScaleFingerprint = r.ScaleFingerprint
	}

	withPerformance := opts.enabled(config.FeatureReportPerformance)
	withLines := opts.enabled(config.FeatureReportSubjects)
	for _, sem := range r.Semesters {
		s := SemesterDTO{
			Semester: sem.Index,
			TGPA:     rounded(sem.TGPA, opts.Precision),
			Credits:  sem.Credits,
			Subjects: sem.SubjectCount,
		}
		if withPerformance && sem.HasData() {
			s.Performance = r.Scale.Performance(sem.TGPA.Rounded(opts.Precision))
		}
		if withLines {
			for _, line := range sem.Subjects {
				s.Lines = append(s.Lines, SubjectDTO{
					Name:     line.Name,
					Credit:   line.Credit,
					Letter:   line.Grade.Letter.String(),
					Point:    line.Grade.Point,
					Weighted: transcript.Round(line.WeightedPoints, opts.Precision),
				})
			}
		}
		dto.Semesters = append(dto.Semesters, s)
	}

	for _, e := range r.Overall.Distribution.Entries() {
		dto.Distribution = append(dto.Distribution, GradeCountDTO{
			Letter: e.Letter.String(),
			Label:  r.Scale.RangeLabel(r.Mode, e.Letter),
			Count:  e.Count,
		})
	}

	if !r.HasData() {
		dto.Message = NoDataMessage
		return dto
	}

	if opts.enabled(config.FeatureReportSummary) {
		dto.Summary = &SummaryDTO{
			Highest:         rounded(r.Summary.Highest, opts.Precision),
			HighestSemester: r.Summary.HighestIndex,
			Lowest:          rounded(r.Summary.Lowest, opts.Precision),
			LowestSemester:  r.Summary.LowestIndex,
		}
	}

	charts := &ChartsDTO{}
	if opts.enabled(config.FeatureReportTGPAChart) {
		tgpa := TGPASeries(r)
		for i, v := range tgpa.Values {
			tgpa.Values[i] = transcript.Round(v, opts.Precision)
		}
		charts.TGPA = &tgpa
	}
	if opts.enabled(config.FeatureReportDistribution) {
		dist := DistributionSeries(r)
		charts.Distribution = &dist
	}
	if charts.TGPA != nil || charts.Distribution != nil {
		dto.Charts = charts
	}

	return dto
}

// RenderJSON writes the report as indented JSON.
func RenderJSON(w io.Writer, r *query.CalculateGPAResult, opts Options) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(NewReportDTO(r, opts))
}

func rounded(a transcript.Average, places int) *float64 {
	if !a.Valid {
		return nil
	}
	v := a.Rounded(places)
	return &v
}

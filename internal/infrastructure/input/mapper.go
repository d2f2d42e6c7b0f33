package input

import (
	"github.com/cgpa-hub/cgpa-calculator/internal/application/query"
	"github.com/cgpa-hub/cgpa-calculator/internal/domain/grading"
)

// ToQuery maps the transcript document to a calculation query.
// modeOverride, when non-empty, replaces the document's mode.
func (t *TranscriptDTO) ToQuery(modeOverride string) query.CalculateGPAQuery {
	q := query.CalculateGPAQuery{
		Mode:      t.Mode,
		Semesters: make([]query.SemesterInput, 0, len(t.Semesters)),
	}
	if modeOverride != "" {
		q.Mode = modeOverride
	}

	for _, sem := range t.Semesters {
		in := query.SemesterInput{
			Subjects: make([]query.SubjectInput, 0, len(sem.Subjects)),
		}
		for _, s := range sem.Subjects {
			in.Subjects = append(in.Subjects, query.SubjectInput{
				Name:   s.Name,
				Credit: s.Credit.Ptr(),
				Marks:  s.Marks.Ptr(),
				Letter: string(s.Letter),
			})
		}
		q.Semesters = append(q.Semesters, in)
	}

	return q
}

// ToScale maps the scale document to a domain scale. Letters are
// normalized the same way entered letters are.
func (d ScaleDTO) ToScale() grading.Scale {
	marksMax := d.MarksMax
	if marksMax == 0 {
		marksMax = 100
	}

	s := grading.Scale{
		Name:     d.Name,
		MaxPoint: d.MaxPoint,
		MarksMax: marksMax,
		Marks:    make([]grading.Rung, 0, len(d.Marks)),
		Fallback: grading.Grade{
			Point:  d.Fallback.Point,
			Letter: grading.NormalizeLetter(d.Fallback.Letter),
		},
		Letters:      make([]grading.LetterPoint, 0, len(d.Letters)),
		Bands:        make([]grading.Band, 0, len(d.Bands)),
		FallbackBand: d.FallbackBand,
	}

	for _, r := range d.Marks {
		s.Marks = append(s.Marks, grading.Rung{
			Min:    r.Min,
			Point:  r.Point,
			Letter: grading.NormalizeLetter(r.Letter),
		})
	}
	for _, lp := range d.Letters {
		s.Letters = append(s.Letters, grading.LetterPoint{
			Letter: grading.NormalizeLetter(lp.Letter),
			Point:  lp.Point,
		})
	}
	for _, b := range d.Bands {
		s.Bands = append(s.Bands, grading.Band{Min: b.Min, Label: b.Label})
	}

	return s
}

// FromScale maps a domain scale to its document form.
func FromScale(s grading.Scale) ScaleDTO {
	d := ScaleDTO{
		Name:         s.Name,
		MaxPoint:     s.MaxPoint,
		MarksMax:     s.MarksMax,
		Fallback:     GradeDTO{Point: s.Fallback.Point, Letter: string(s.Fallback.Letter)},
		FallbackBand: s.FallbackBand,
	}
	for _, r := range s.Marks {
		d.Marks = append(d.Marks, RungDTO{Min: r.Min, Point: r.Point, Letter: string(r.Letter)})
	}
	for _, lp := range s.Letters {
		d.Letters = append(d.Letters, LetterPointDTO{Letter: string(lp.Letter), Point: lp.Point})
	}
	for _, b := range s.Bands {
		d.Bands = append(d.Bands, BandDTO{Min: b.Min, Label: b.Label})
	}
	return d
}

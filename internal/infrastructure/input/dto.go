// Package input decodes transcript and grading-scale documents.
package input

// ══════════════════════════════════════════════════════════════════════════════
// TRANSCRIPT DOCUMENT
// ══════════════════════════════════════════════════════════════════════════════

// TranscriptDTO is the transcript document:
//
//	{
//	  "mode": "marks",
//	  "semesters": [
//	    {"subjects": [{"name": "Maths", "credit": 4, "marks": 90}]}
//	  ]
//	}
type TranscriptDTO struct {
	Mode      string        `json:"mode"`
	Semesters []SemesterDTO `json:"semesters"`
}

// SemesterDTO is one semester of the transcript document.
type SemesterDTO struct {
	Name     string       `json:"name,omitempty"`
	Subjects []SubjectDTO `json:"subjects"`
}

// SubjectDTO is one subject row. Marks or Letter is used depending on the mode.
type SubjectDTO struct {
	Name   string `json:"name"`
	Credit Number `json:"credit"`
	Marks  Number `json:"marks"`
	Letter Text   `json:"letter"`
}

// ══════════════════════════════════════════════════════════════════════════════
// SCALE DOCUMENT
// ══════════════════════════════════════════════════════════════════════════════

// ScaleDTO is a grading scale document.
type ScaleDTO struct {
	Name         string           `json:"name" validate:"required"`
	MaxPoint     float64          `json:"max_point" validate:"gt=0"`
	MarksMax     float64          `json:"marks_max" validate:"gte=0"`
	Marks        []RungDTO        `json:"marks" validate:"required,min=1,dive"`
	Fallback     GradeDTO         `json:"fallback"`
	Letters      []LetterPointDTO `json:"letters" validate:"required,min=1,dive"`
	Bands        []BandDTO        `json:"bands" validate:"omitempty,dive"`
	FallbackBand string           `json:"fallback_band"`
}

// RungDTO is one marks threshold.
type RungDTO struct {
	Min    float64 `json:"min"`
	Point  float64 `json:"point" validate:"gte=0"`
	Letter string  `json:"letter" validate:"required"`
}

// GradeDTO is the fallback grade for marks below every rung.
type GradeDTO struct {
	Point  float64 `json:"point" validate:"gte=0"`
	Letter string  `json:"letter" validate:"required"`
}

// LetterPointDTO maps a letter to a point value.
type LetterPointDTO struct {
	Letter string  `json:"letter" validate:"required"`
	Point  float64 `json:"point" validate:"gte=0"`
}

// BandDTO is one performance band.
type BandDTO struct {
	Min   float64 `json:"min"`
	Label string  `json:"label" validate:"required"`
}

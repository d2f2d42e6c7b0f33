package grading

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cgpa-hub/cgpa-calculator/internal/domain/shared"
)

func TestDefaultScale_Validate(t *testing.T) {
	assert.NoError(t, DefaultScale().Validate())
}

func TestScale_ValidateRejectsBrokenScales(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(s *Scale)
		want   error
	}{
		{
			name:   "no rungs",
			mutate: func(s *Scale) { s.Marks = nil },
			want:   shared.ErrScaleNoRungs,
		},
		{
			name:   "no letters",
			mutate: func(s *Scale) { s.Letters = nil },
			want:   shared.ErrScaleNoLetters,
		},
		{
			name:   "rungs not descending",
			mutate: func(s *Scale) { s.Marks[2].Min = 85 },
			want:   shared.ErrScaleRungOrder,
		},
		{
			name:   "equal thresholds",
			mutate: func(s *Scale) { s.Marks[1].Min = 90 },
			want:   shared.ErrScaleRungOrder,
		},
		{
			name:   "fallback without letter",
			mutate: func(s *Scale) { s.Fallback.Letter = "" },
			want:   shared.ErrScaleNoRungs,
		},
		{
			name:   "point above max",
			mutate: func(s *Scale) { s.Marks[0].Point = 11 },
			want:   shared.ErrScalePointRange,
		},
		{
			name:   "negative letter point",
			mutate: func(s *Scale) { s.Letters[3].Point = -1 },
			want:   shared.ErrScalePointRange,
		},
		{
			name:   "duplicate letter",
			mutate: func(s *Scale) { s.Letters[1].Letter = "O" },
			want:   shared.ErrScaleDuplicateLabel,
		},
		{
			name:   "bands not descending",
			mutate: func(s *Scale) { s.Bands[1].Min = 9.5 },
			want:   shared.ErrScaleBandOrder,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := DefaultScale()
			tt.mutate(&s)

			err := s.Validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
			assert.True(t, shared.IsValidation(err))
		})
	}
}

func TestScale_Labels(t *testing.T) {
	s := DefaultScale()

	assert.Equal(t,
		[]Letter{"O", "A+", "A", "B+", "B", "C", "D", "F"},
		s.Labels(ModeMarks))
	assert.Equal(t,
		[]Letter{"O", "A+", "A", "B+", "B", "C", "D", "E", "F", "G", "I"},
		s.Labels(ModeLetter))
}

func TestScale_RangeLabel(t *testing.T) {
	s := DefaultScale()

	assert.Equal(t, "O (90-100)", s.RangeLabel(ModeMarks, "O"))
	assert.Equal(t, "A+ (80-89)", s.RangeLabel(ModeMarks, "A+"))
	assert.Equal(t, "C (45-49)", s.RangeLabel(ModeMarks, "C"))
	assert.Equal(t, "D (40-44)", s.RangeLabel(ModeMarks, "D"))
	assert.Equal(t, "F (<40)", s.RangeLabel(ModeMarks, "F"))
	assert.Equal(t, "A+ (9)", s.RangeLabel(ModeLetter, "A+"))
	assert.Equal(t, "I (0)", s.RangeLabel(ModeLetter, "I"))
	assert.Equal(t, "Z", s.RangeLabel(ModeMarks, "Z"))
}

func TestScale_Performance(t *testing.T) {
	s := DefaultScale()

	tests := []struct {
		avg  float64
		want string
	}{
		{10, "Outstanding"},
		{9, "Outstanding"},
		{8.99, "Excellent"},
		{7.5, "Very Good"},
		{6, "Good"},
		{5.01, "Average"},
		{4.99, "Needs Improvement"},
		{0, "Needs Improvement"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, s.Performance(tt.avg), "average %v", tt.avg)
	}
}

func TestScale_Fingerprint(t *testing.T) {
	a := DefaultScale()
	b := DefaultScale()

	fp := a.Fingerprint()
	assert.Len(t, fp, 64)
	assert.Equal(t, fp, b.Fingerprint())
	assert.Equal(t, fp, a.Fingerprint())

	b.Marks[0].Min = 91
	assert.NotEqual(t, fp, b.Fingerprint())
}

func TestParseMode(t *testing.T) {
	m, err := ParseMode("")
	require.NoError(t, err)
	assert.Equal(t, ModeMarks, m)

	m, err = ParseMode(" Letter ")
	require.NoError(t, err)
	assert.Equal(t, ModeLetter, m)

	_, err = ParseMode("percent")
	assert.ErrorIs(t, err, shared.ErrUnknownInputMode)
	assert.True(t, shared.IsValidation(err))
}

package grading

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveMarks(t *testing.T) {
	r := NewResolver(DefaultScale())

	tests := []struct {
		marks  float64
		point  float64
		letter Letter
	}{
		{100, 10, "O"},
		{95, 10, "O"},
		{90, 10, "O"},
		{89.5, 9, "A+"},
		{82, 9, "A+"},
		{80, 9, "A+"},
		{79.99, 8, "A"},
		{70, 8, "A"},
		{65, 7, "B+"},
		{55, 6, "B"},
		{49, 5, "C"},
		{45, 5, "C"},
		{44, 4, "D"},
		{40, 4, "D"},
		{39, 0, "F"},
		{0, 0, "F"},
		{-5, 0, "F"},
		{120, 10, "O"},
	}

	for _, tt := range tests {
		g := r.ResolveMarks(tt.marks)
		assert.Equal(t, tt.point, g.Point, "marks %v", tt.marks)
		assert.Equal(t, tt.letter, g.Letter, "marks %v", tt.marks)
	}
}

func TestResolveMarks_NonFinite(t *testing.T) {
	r := NewResolver(DefaultScale())

	assert.Equal(t, Grade{Point: 0, Letter: "F"}, r.ResolveMarks(math.NaN()))
	assert.Equal(t, Grade{Point: 0, Letter: "F"}, r.ResolveMarks(math.Inf(-1)))
	assert.Equal(t, Grade{Point: 10, Letter: "O"}, r.ResolveMarks(math.Inf(1)))
}

func TestResolveMarks_RangeOfValues(t *testing.T) {
	r := NewResolver(DefaultScale())
	points := map[float64]bool{0: true, 4: true, 5: true, 6: true, 7: true, 8: true, 9: true, 10: true}
	letters := map[Letter]bool{"O": true, "A+": true, "A": true, "B+": true, "B": true, "C": true, "D": true, "F": true}

	for m := -20.0; m <= 130; m += 0.25 {
		g := r.ResolveMarks(m)
		assert.True(t, points[g.Point], "unexpected point %v for marks %v", g.Point, m)
		assert.True(t, letters[g.Letter], "unexpected letter %q for marks %v", g.Letter, m)
	}
}

func TestResolveLetter(t *testing.T) {
	r := NewResolver(DefaultScale())

	tests := []struct {
		raw   string
		point float64
		want  Letter
		ok    bool
	}{
		{"O", 10, "O", true},
		{"A+", 9, "A+", true},
		{"a+", 9, "A+", true},
		{" b + ", 7, "B+", true},
		{"Ａ＋", 9, "A+", true},
		{"D", 4, "D", true},
		{"E", 0, "E", true},
		{"F", 0, "F", true},
		{"G", 0, "G", true},
		{"I", 0, "I", true},
		{"", 0, "", false},
		{"   ", 0, "", false},
		{"Z", 0, "", false},
		{"A++", 0, "", false},
	}

	for _, tt := range tests {
		g, ok := r.ResolveLetter(tt.raw)
		assert.Equal(t, tt.ok, ok, "letter %q", tt.raw)
		assert.Equal(t, tt.point, g.Point, "letter %q", tt.raw)
		assert.Equal(t, tt.want, g.Letter, "letter %q", tt.raw)
	}
}

func TestResolver_CustomScale(t *testing.T) {
	s := Scale{
		Name:     "four-point",
		MaxPoint: 4,
		MarksMax: 100,
		Marks: []Rung{
			{Min: 85, Point: 4, Letter: "A"},
			{Min: 70, Point: 3, Letter: "B"},
			{Min: 55, Point: 2, Letter: "C"},
		},
		Fallback: Grade{Point: 0, Letter: "F"},
		Letters: []LetterPoint{
			{Letter: "A", Point: 4},
			{Letter: "B", Point: 3},
			{Letter: "C", Point: 2},
			{Letter: "F", Point: 0},
		},
	}
	assert.NoError(t, s.Validate())

	r := NewResolver(s)
	assert.Equal(t, Grade{Point: 3, Letter: "B"}, r.ResolveMarks(72))
	assert.Equal(t, Grade{Point: 0, Letter: "F"}, r.ResolveMarks(54))

	_, ok := r.ResolveLetter("O")
	assert.False(t, ok)
	assert.True(t, r.IsKnownLetter("C"))
}

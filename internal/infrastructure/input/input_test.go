package input

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cgpa-hub/cgpa-calculator/internal/domain/grading"
	"github.com/cgpa-hub/cgpa-calculator/internal/domain/shared"
)

func TestNumber_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		raw  string
		want Number
	}{
		{`4`, Number{Value: 4, Set: true}},
		{`-2.5`, Number{Value: -2.5, Set: true}},
		{`0`, Number{Value: 0, Set: true}},
		{`"85"`, Number{Value: 85, Set: true}},
		{`" 72.5 "`, Number{Value: 72.5, Set: true}},
		{`""`, Number{}},
		{`"abc"`, Number{}},
		{`"NaN"`, Number{}},
		{`"Inf"`, Number{}},
		{`null`, Number{}},
		{`true`, Number{}},
		{`{"v": 1}`, Number{}},
		{`[1]`, Number{}},
	}

	for _, tt := range tests {
		var n Number
		require.NoError(t, json.Unmarshal([]byte(tt.raw), &n), tt.raw)
		assert.Equal(t, tt.want, n, tt.raw)
	}
}

func TestNumber_PtrAndMarshal(t *testing.T) {
	assert.Nil(t, Number{}.Ptr())

	p := NewNumber(3).Ptr()
	require.NotNil(t, p)
	assert.Equal(t, 3.0, *p)

	data, err := json.Marshal(struct {
		A Number `json:"a"`
		B Number `json:"b"`
	}{A: NewNumber(9.5)})
	require.NoError(t, err)
	assert.JSONEq(t, `{"a": 9.5, "b": null}`, string(data))
}

func TestText_UnmarshalJSON(t *testing.T) {
	var doc struct {
		A Text `json:"a"`
		B Text `json:"b"`
		C Text `json:"c"`
		D Text `json:"d"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"a": "A+", "b": 7, "c": null, "d": false}`), &doc))

	assert.Equal(t, Text("A+"), doc.A)
	assert.Equal(t, Text("7"), doc.B)
	assert.Equal(t, Text(""), doc.C)
	assert.Equal(t, Text(""), doc.D)
}

func TestDecodeTranscript_ToQuery(t *testing.T) {
	doc := `{
		"mode": "marks",
		"semesters": [
			{"subjects": [
				{"name": "Maths", "credit": 4, "marks": 90},
				{"name": "Physics", "credit": "3", "marks": ""},
				{"name": "Chemistry", "credit": null, "marks": "abc"}
			]},
			{"subjects": [{"name": "Lab", "credit": 2, "letter": "A+"}]}
		]
	}`

	dto, err := DecodeTranscript(strings.NewReader(doc))
	require.NoError(t, err)
	require.Len(t, dto.Semesters, 2)

	q := dto.ToQuery("")
	assert.Equal(t, "marks", q.Mode)
	require.Len(t, q.Semesters, 2)
	require.Len(t, q.Semesters[0].Subjects, 3)

	maths := q.Semesters[0].Subjects[0]
	assert.Equal(t, "Maths", maths.Name)
	require.NotNil(t, maths.Credit)
	assert.Equal(t, 4.0, *maths.Credit)
	require.NotNil(t, maths.Marks)
	assert.Equal(t, 90.0, *maths.Marks)

	physics := q.Semesters[0].Subjects[1]
	require.NotNil(t, physics.Credit)
	assert.Equal(t, 3.0, *physics.Credit)
	assert.Nil(t, physics.Marks)

	chem := q.Semesters[0].Subjects[2]
	assert.Nil(t, chem.Credit)
	assert.Nil(t, chem.Marks)

	assert.Equal(t, "A+", q.Semesters[1].Subjects[0].Letter)

	assert.Equal(t, "letter", dto.ToQuery("letter").Mode)
}

func TestDecodeTranscript_Malformed(t *testing.T) {
	_, err := DecodeTranscript(strings.NewReader(`{"semesters": [`))
	require.Error(t, err)
	assert.True(t, shared.IsInvalidFormat(err))
	assert.ErrorIs(t, err, shared.ErrTranscriptMalformed)
}

func TestReadTranscriptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "transcript.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"semesters": [{"subjects": []}]}`), 0o600))

	dto, err := ReadTranscriptFile(path)
	require.NoError(t, err)
	assert.Len(t, dto.Semesters, 1)

	_, err = ReadTranscriptFile(filepath.Join(t.TempDir(), "missing.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestDecodeScale_DefaultScaleDocument(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, json.NewEncoder(&buf).Encode(FromScale(grading.DefaultScale())))

	scale, err := DecodeScale(&buf)
	require.NoError(t, err)
	assert.Equal(t, grading.DefaultScale(), scale)
	assert.Equal(t, grading.DefaultScale().Fingerprint(), scale.Fingerprint())
}

func TestDecodeScale_CustomScale(t *testing.T) {
	doc := `{
		"name": "four-point",
		"max_point": 4,
		"marks": [
			{"min": 85, "point": 4, "letter": "a"},
			{"min": 70, "point": 3, "letter": "b"}
		],
		"fallback": {"point": 0, "letter": "f"},
		"letters": [
			{"letter": "a", "point": 4},
			{"letter": "b", "point": 3},
			{"letter": "f", "point": 0}
		]
	}`

	scale, err := DecodeScale(strings.NewReader(doc))
	require.NoError(t, err)

	assert.Equal(t, "four-point", scale.Name)
	assert.Equal(t, 100.0, scale.MarksMax)
	assert.Equal(t, grading.Letter("A"), scale.Marks[0].Letter)
	assert.Equal(t, grading.Letter("F"), scale.Fallback.Letter)
	assert.Equal(t, []grading.Letter{"A", "B", "F"}, scale.Labels(grading.ModeMarks))
}

func TestDecodeScale_Invalid(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want error
	}{
		{
			name: "not json",
			doc:  `name: x`,
			want: shared.ErrInvalidFormat,
		},
		{
			name: "missing name",
			doc:  `{"max_point": 10, "marks": [{"min": 50, "point": 5, "letter": "P"}], "fallback": {"letter": "F"}, "letters": [{"letter": "P", "point": 5}]}`,
			want: shared.ErrValidation,
		},
		{
			name: "missing fallback letter",
			doc:  `{"name": "x", "max_point": 10, "marks": [{"min": 50, "point": 5, "letter": "P"}], "letters": [{"letter": "P", "point": 5}]}`,
			want: shared.ErrValidation,
		},
		{
			name: "no letters",
			doc:  `{"name": "x", "max_point": 10, "marks": [{"min": 50, "point": 5, "letter": "P"}], "fallback": {"letter": "F"}, "letters": []}`,
			want: shared.ErrValidation,
		},
		{
			name: "blank fallback letter",
			doc:  `{"name": "x", "max_point": 10, "marks": [{"min": 50, "point": 5, "letter": "P"}], "fallback": {"letter": "  "}, "letters": [{"letter": "P", "point": 5}]}`,
			want: shared.ErrEmptyValue,
		},
		{
			name: "rungs out of order",
			doc:  `{"name": "x", "max_point": 10, "marks": [{"min": 40, "point": 4, "letter": "D"}, {"min": 50, "point": 5, "letter": "C"}], "fallback": {"letter": "F"}, "letters": [{"letter": "C", "point": 5}]}`,
			want: shared.ErrScaleRungOrder,
		},
		{
			name: "point above max",
			doc:  `{"name": "x", "max_point": 4, "marks": [{"min": 50, "point": 5, "letter": "P"}], "fallback": {"letter": "F"}, "letters": [{"letter": "P", "point": 4}]}`,
			want: shared.ErrScalePointRange,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeScale(strings.NewReader(tt.doc))
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

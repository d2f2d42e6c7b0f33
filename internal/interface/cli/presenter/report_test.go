package presenter

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cgpa-hub/cgpa-calculator/config"
	"github.com/cgpa-hub/cgpa-calculator/internal/application/query"
	"github.com/cgpa-hub/cgpa-calculator/internal/domain/grading"
)

func num(v float64) *float64 { return &v }

func calculate(t *testing.T, q query.CalculateGPAQuery) *query.CalculateGPAResult {
	t.Helper()
	h := query.NewCalculateGPAHandler(grading.NewResolver(grading.DefaultScale()), query.DefaultOptions(), nil).
		WithIDGenerator(func() string { return "report-1" }).
		WithClock(func() time.Time { return time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC) })

	res, err := h.Handle(context.Background(), q)
	require.NoError(t, err)
	return res
}

func sampleResult(t *testing.T) *query.CalculateGPAResult {
	return calculate(t, query.CalculateGPAQuery{
		Semesters: []query.SemesterInput{
			{Subjects: []query.SubjectInput{
				{Name: "Maths", Credit: num(4), Marks: num(90)},
				{Name: "Physics", Credit: num(3), Marks: num(80)},
			}},
			{Subjects: []query.SubjectInput{
				{Name: "Networks", Credit: num(5), Marks: num(72)},
			}},
			{},
		},
	})
}

func emptyResult(t *testing.T) *query.CalculateGPAResult {
	return calculate(t, query.CalculateGPAQuery{
		Semesters: []query.SemesterInput{
			{Subjects: []query.SubjectInput{{Name: "Maths", Credit: num(4)}}},
		},
	})
}

func TestRenderTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderTable(&buf, sampleResult(t), DefaultOptions()))
	out := buf.String()

	assert.Contains(t, out, "CGPA: 8.92 / 10.00")
	assert.Contains(t, out, "Total credits: 12 across 3 semesters")
	assert.Contains(t, out, "Total subjects: 3")
	assert.Contains(t, out, "Semester 1  9.57  7")
	assert.Contains(t, out, "Outstanding")
	assert.Contains(t, out, "Excellent")
	assert.NotContains(t, out, "Semester 3")
	assert.Contains(t, out, "Highest TGPA: 9.57 (Semester 1)")
	assert.Contains(t, out, "Lowest TGPA:  8.00 (Semester 2)")
	assert.Contains(t, out, "Sem 1")
	assert.Contains(t, out, "O (90-100)")
	assert.Contains(t, out, "F (<40)")
	assert.NotContains(t, out, "Maths")
	assert.NotContains(t, out, NoDataMessage)
}

func TestRenderTable_Sections(t *testing.T) {
	ff := config.DefaultFeatureFlags()
	ff.Set(config.FeatureReportPerformance, false)
	ff.Set(config.FeatureReportSummary, false)
	ff.Set(config.FeatureReportSubjects, true)
	ff.Set(config.FeatureReportFingerprint, true)

	res := sampleResult(t)
	var buf bytes.Buffer
	require.NoError(t, RenderTable(&buf, res, Options{Precision: 1, Features: ff}))
	out := buf.String()

	assert.Contains(t, out, "CGPA: 8.9 / 10.0")
	assert.NotContains(t, out, "Performance")
	assert.NotContains(t, out, "Highest TGPA")
	assert.Contains(t, out, "Semester 1 subjects")
	assert.Contains(t, out, "Maths")
	assert.Contains(t, out, res.ScaleFingerprint)
}

func TestRenderTable_NoData(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderTable(&buf, emptyResult(t), DefaultOptions()))
	out := buf.String()

	assert.Contains(t, out, "CGPA: - / 10.00")
	assert.Contains(t, out, "Total credits: 0 across 1 semester\n")
	assert.Contains(t, out, "Total subjects: 0")
	assert.Contains(t, out, NoDataMessage)
	assert.NotContains(t, out, "Semester-wise breakdown")
	assert.Contains(t, out, "no credit entered")
}

func TestRenderJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderJSON(&buf, sampleResult(t), DefaultOptions()))

	var doc ReportDTO
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))

	assert.Equal(t, "report-1", doc.ID)
	assert.Equal(t, "marks", doc.Mode)
	require.NotNil(t, doc.CGPA)
	assert.Equal(t, 8.92, *doc.CGPA)
	require.Len(t, doc.Semesters, 3)
	assert.Equal(t, 9.57, *doc.Semesters[0].TGPA)
	assert.Equal(t, "Outstanding", doc.Semesters[0].Performance)
	assert.Nil(t, doc.Semesters[2].TGPA)
	assert.Empty(t, doc.Semesters[2].Performance)
	assert.Len(t, doc.Distribution, 8)
	assert.Empty(t, doc.ScaleFingerprint)
	assert.Empty(t, doc.Message)

	require.NotNil(t, doc.Summary)
	assert.Equal(t, 1, doc.Summary.HighestSemester)
	require.NotNil(t, doc.Charts)
	assert.Equal(t, []float64{9.57, 8}, doc.Charts.TGPA.Values)
}

func TestRenderJSON_NoData(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderJSON(&buf, emptyResult(t), DefaultOptions()))

	var doc map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))

	assert.Nil(t, doc["cgpa"])
	assert.Contains(t, doc, "cgpa")
	assert.Equal(t, NoDataMessage, doc["message"])
	assert.NotContains(t, doc, "summary")
	assert.NotContains(t, doc, "charts")
}

func TestSeries(t *testing.T) {
	res := sampleResult(t)

	tgpa := TGPASeries(res)
	assert.Equal(t, []string{"Sem 1", "Sem 2"}, tgpa.Labels)
	assert.InDelta(t, 67.0/7.0, tgpa.Values[0], 1e-12)

	dist := DistributionSeries(res)
	assert.Equal(t, []string{
		"O (90-100)", "A+ (80-89)", "A (70-79)", "B+ (60-69)",
		"B (50-59)", "C (45-49)", "D (40-44)", "F (<40)",
	}, dist.Labels)
	assert.Equal(t, []float64{1, 1, 1, 0, 0, 0, 0, 0}, dist.Values)

	empty := TGPASeries(emptyResult(t))
	assert.Empty(t, empty.Labels)
	assert.True(t, strings.HasPrefix(DistributionSeries(emptyResult(t)).Labels[0], "O"))
}

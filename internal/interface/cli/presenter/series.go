package presenter

import (
	"fmt"

	"github.com/cgpa-hub/cgpa-calculator/internal/application/query"
)

// Series is chart data: parallel labels and values.
type Series struct {
	Labels []string  `json:"labels"`
	Values []float64 `json:"values"`
}

// TGPASeries returns the TGPA of every semester that has data, labelled
// "Sem N". Values keep full precision.
func TGPASeries(r *query.CalculateGPAResult) Series {
	s := Series{Labels: []string{}, Values: []float64{}}
	for _, sem := range r.Semesters {
		if !sem.HasData() {
			continue
		}
		s.Labels = append(s.Labels, fmt.Sprintf("Sem %d", sem.Index))
		s.Values = append(s.Values, sem.TGPA.Value)
	}
	return s
}

// DistributionSeries returns the grade counts in canonical label order,
// labelled with the letter's range on the result's scale.
func DistributionSeries(r *query.CalculateGPAResult) Series {
	entries := r.Overall.Distribution.Entries()
	s := Series{
		Labels: make([]string, 0, len(entries)),
		Values: make([]float64, 0, len(entries)),
	}
	for _, e := range entries {
		s.Labels = append(s.Labels, r.Scale.RangeLabel(r.Mode, e.Letter))
		s.Values = append(s.Values, float64(e.Count))
	}
	return s
}

package transcript

import "github.com/cgpa-hub/cgpa-calculator/internal/domain/grading"

// DistributionEntry is one letter and its count.
type DistributionEntry struct {
	Letter grading.Letter
	Count  int
}

// Distribution counts letters in a fixed canonical order.
// Letters outside that order are never recorded.
type Distribution struct {
	labels []grading.Letter
	counts map[grading.Letter]int
}

// NewDistribution creates an empty distribution over the given labels.
func NewDistribution(labels []grading.Letter) Distribution {
	counts := make(map[grading.Letter]int, len(labels))
	ordered := make([]grading.Letter, 0, len(labels))
	for _, l := range labels {
		if _, ok := counts[l]; ok {
			continue
		}
		counts[l] = 0
		ordered = append(ordered, l)
	}
	return Distribution{labels: ordered, counts: counts}
}

// Add records one occurrence. It reports false for letters outside the label set.
func (d Distribution) Add(letter grading.Letter) bool {
	if _, ok := d.counts[letter]; !ok {
		return false
	}
	d.counts[letter]++
	return true
}

// Count returns the occurrences of a letter.
func (d Distribution) Count(letter grading.Letter) int {
	return d.counts[letter]
}

// Has reports whether the letter is a key of the distribution.
func (d Distribution) Has(letter grading.Letter) bool {
	_, ok := d.counts[letter]
	return ok
}

// Total returns the sum of all counts.
func (d Distribution) Total() int {
	total := 0
	for _, c := range d.counts {
		total += c
	}
	return total
}

// Entries returns every label with its count, in canonical order.
func (d Distribution) Entries() []DistributionEntry {
	out := make([]DistributionEntry, 0, len(d.labels))
	for _, l := range d.labels {
		out = append(out, DistributionEntry{Letter: l, Count: d.counts[l]})
	}
	return out
}

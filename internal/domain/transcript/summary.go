package transcript

// Summary holds the extremes over semesters that have data.
type Summary struct {
	SemestersWithData int

	Highest      Average
	HighestIndex int

	Lowest      Average
	LowestIndex int
}

// Summarize finds the highest and lowest TGPA. Semesters without data are
// skipped; on ties the earliest semester wins. With no data at all both
// extremes are invalid and the indexes are 0.
func Summarize(results []SemesterResult) Summary {
	var sum Summary
	for _, r := range results {
		if !r.HasData() {
			continue
		}
		sum.SemestersWithData++

		if !sum.Highest.Valid || r.TGPA.Value > sum.Highest.Value {
			sum.Highest = r.TGPA
			sum.HighestIndex = r.Index
		}
		if !sum.Lowest.Valid || r.TGPA.Value < sum.Lowest.Value {
			sum.Lowest = r.TGPA
			sum.LowestIndex = r.Index
		}
	}
	return sum
}

package review

import "math"

// Summary is the reduced rating view of one listing's reviews.
type Summary struct {
	Average float64 // mean rating rounded to 2 decimals; 0 when Count is 0
	Count   int
}

// Summarize reduces ratings into an average and count. An empty input yields
// the zero Summary.
func Summarize(ratings []int) Summary {
	if len(ratings) == 0 {
		return Summary{}
	}
	sum := 0
	for _, r := range ratings {
		sum += r
	}
	avg := float64(sum) / float64(len(ratings))
	return Summary{
		Average: math.Round(avg*100) / 100,
		Count:   len(ratings),
	}
}

// Stars rounds the average to the nearest whole star for display, independent
// of the stored 2-decimal average.
func (s Summary) Stars() int {
	return int(math.Round(s.Average))
}

// Package forecast implements the activity trend estimation used to judge
// whether a user keeps up their visit frequency.
//
// Visit counts are bucketed per calendar month, a linear trend is fitted by
// least squares over the month index, and the count predicted for the next
// month is compared against the count of the first observed month.
package forecast

import "time"

// MonthlyCounts buckets event timestamps into calendar months spanning from
// the month of `from` through the month of `to` inclusive, oldest first.
// Months without events are zero-filled. Events outside the range are ignored.
func MonthlyCounts(events []time.Time, from, to time.Time) []int {
	months := monthIndex(from, to)
	if months < 0 {
		return nil
	}

	counts := make([]int, months+1)
	for _, e := range events {
		i := monthIndex(from, e)
		if i < 0 || i >= len(counts) {
			continue
		}
		counts[i]++
	}

	return counts
}

// PredictNext fits a linear trend count = slope*i + intercept over the month
// indexes i = 0..n-1 and evaluates it at i = n. A single sample predicts
// itself; an empty slice predicts 0.
func PredictNext(counts []int) float64 {
	n := len(counts)
	switch n {
	case 0:
		return 0
	case 1:
		return float64(counts[0])
	}

	// Closed-form least squares over x = 0..n-1.
	var sumX, sumY, sumXY, sumXX float64
	for i, c := range counts {
		x, y := float64(i), float64(c)
		sumX += x
		sumY += y
		sumXY += x * y
		sumXX += x * x
	}

	fn := float64(n)
	denom := fn*sumXX - sumX*sumX
	slope := (fn*sumXY - sumX*sumY) / denom
	intercept := (sumY - slope*sumX) / fn

	return slope*fn + intercept
}

// RetentionProbability returns the probability [0, 1] that the activity level
// holds next month: the predicted next-month count relative to the first
// observed month, clamped. A first month without visits yields 1, no observed
// months yield 0.
func RetentionProbability(counts []int) float64 {
	if len(counts) == 0 {
		return 0
	}

	if counts[0] == 0 {
		return 1
	}

	prob := PredictNext(counts) / float64(counts[0])
	if prob < 0 {
		return 0
	}
	if prob > 1 {
		return 1
	}
	return prob
}

// monthIndex returns the number of whole calendar months between the month of
// `from` and the month of `t` (negative when t precedes from).
func monthIndex(from, t time.Time) int {
	return (t.Year()-from.Year())*12 + int(t.Month()) - int(from.Month())
}

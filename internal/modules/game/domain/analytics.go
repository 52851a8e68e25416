package domain

import (
	"fmt"
	"sort"
)

// NumberCount pairs a generated value with how often it occurred.
type NumberCount struct {
	Value int
	Count int
}

// Analytics is a pure read over a fixed snapshot of the history. Every
// method recomputes from the snapshot; histories are small enough that
// caching would only buy complexity.
type Analytics struct {
	records []Record
}

func NewAnalytics(records []Record) Analytics {
	return Analytics{records: records}
}

func (a Analytics) TotalAttempts() int {
	return len(a.records)
}

func (a Analytics) TotalPredictions() int {
	n := 0
	for _, r := range a.records {
		if r.Prediction != nil {
			n++
		}
	}
	return n
}

func (a Analytics) TotalHits() int {
	n := 0
	for _, r := range a.records {
		if r.IsHit() {
			n++
		}
	}
	return n
}

// HitRate is the percentage of predictions that were exact hits.
// A history with no predictions has a hit rate of zero, not an error.
func (a Analytics) HitRate() float64 {
	predictions := a.TotalPredictions()
	if predictions == 0 {
		return 0.0
	}
	return float64(a.TotalHits()) / float64(predictions) * 100
}

// AverageDistance returns the mean distance over records that carry a
// prediction. The second return is false when no record does, which is
// distinct from an average of zero.
func (a Analytics) AverageDistance() (float64, bool) {
	sum, n := 0, 0
	for _, r := range a.records {
		if d, ok := r.Distance(); ok {
			sum += d
			n++
		}
	}
	if n == 0 {
		return 0, false
	}
	return float64(sum) / float64(n), true
}

// NumberFrequency maps each generated value that occurred to its count.
func (a Analytics) NumberFrequency() map[int]int {
	freq := make(map[int]int, len(a.records))
	for _, r := range a.records {
		freq[r.Generated]++
	}
	return freq
}

// frequencyOrdered lists observed values with counts in order of first
// encounter, which is the tie-break order for hot and cold rankings.
func (a Analytics) frequencyOrdered() []NumberCount {
	index := map[int]int{}
	ordered := []NumberCount{}
	for _, r := range a.records {
		if i, seen := index[r.Generated]; seen {
			ordered[i].Count++
			continue
		}
		index[r.Generated] = len(ordered)
		ordered = append(ordered, NumberCount{Value: r.Generated, Count: 1})
	}
	return ordered
}

// HotNumbers returns the topN most frequently generated values, ties broken
// by which value was generated first.
func (a Analytics) HotNumbers(topN int) []NumberCount {
	hot := a.frequencyOrdered()
	sort.SliceStable(hot, func(i, j int) bool { return hot[i].Count > hot[j].Count })
	if topN < len(hot) {
		hot = hot[:topN]
	}
	return hot
}

// ColdNumbers returns up to topN cold values in [minVal, maxVal]. Values
// never generated are the coldest tier and come first, sorted ascending;
// any remaining slots are filled with the least-frequent observed values.
func (a Analytics) ColdNumbers(topN, minVal, maxVal int) []int {
	freq := a.NumberFrequency()
	never := []int{}
	for v := minVal; v <= maxVal; v++ {
		if _, ok := freq[v]; !ok {
			never = append(never, v)
		}
	}
	if len(never) >= topN {
		return never[:topN]
	}

	observed := a.frequencyOrdered()
	sort.SliceStable(observed, func(i, j int) bool { return observed[i].Count < observed[j].Count })
	cold := never
	for _, nc := range observed {
		if len(cold) == topN {
			break
		}
		cold = append(cold, nc.Value)
	}
	return cold
}

// CurrentStreak counts consecutive hits ending at the most recent record.
func (a Analytics) CurrentStreak() int {
	streak := 0
	for i := len(a.records) - 1; i >= 0; i-- {
		if !a.records[i].IsHit() {
			break
		}
		streak++
	}
	return streak
}

// LongestStreak is the longest run of consecutive hits anywhere in history.
func (a Analytics) LongestStreak() int {
	longest, current := 0, 0
	for _, r := range a.records {
		if !r.IsHit() {
			current = 0
			continue
		}
		current++
		if current > longest {
			longest = current
		}
	}
	return longest
}

func (a Analytics) SpecialNumberCount(special int) int {
	n := 0
	for _, r := range a.records {
		if r.Generated == special {
			n++
		}
	}
	return n
}

// Distribution bins the observed value range into bins equal-width buckets
// and returns parallel label and count slices. The last bucket's edge is
// pinned to the observed max so counts always sum to the history length.
// An empty history yields two empty slices.
func (a Analytics) Distribution(bins int) ([]string, []int) {
	if len(a.records) == 0 || bins < 1 {
		return []string{}, []int{}
	}

	minNum, maxNum := a.records[0].Generated, a.records[0].Generated
	for _, r := range a.records[1:] {
		if r.Generated < minNum {
			minNum = r.Generated
		}
		if r.Generated > maxNum {
			maxNum = r.Generated
		}
	}

	span := maxNum - minNum + 1
	width := (span + bins - 1) / bins
	if width < 1 {
		width = 1
	}

	labels := make([]string, 0, bins)
	counts := make([]int, 0, bins)
	for i := 0; i < bins; i++ {
		start := minNum + i*width
		end := start + width - 1
		if i == bins-1 {
			end = maxNum
		}
		count := 0
		for _, r := range a.records {
			if r.Generated >= start && r.Generated <= end {
				count++
			}
		}
		labels = append(labels, fmt.Sprintf("%d-%d", start, end))
		counts = append(counts, count)
	}
	return labels, counts
}

// Package statistics summarizes solving progress over the question catalog.
package statistics

import (
	"fmt"
	"math"
	"sort"

	"github.com/at-ishikawa/lcsolved/internal/catalog"
)

// DefaultBucketWidth is the rating span of one bucket.
const DefaultBucketWidth = 200

// Bucket holds counts for questions rated in [Min, Max).
type Bucket struct {
	Min    int
	Max    int
	Total  int
	Solved int
}

func (b Bucket) Label() string {
	return fmt.Sprintf("%d-%d", b.Min, b.Max-1)
}

func (b Bucket) Percent() float64 {
	return percent(b.Solved, b.Total)
}

// Aggregate holds totals across every bucket.
type Aggregate struct {
	Total  int
	Solved int
}

func (a Aggregate) Percent() float64 {
	return percent(a.Solved, a.Total)
}

// ProgressResult holds the per-bucket and aggregate counts
type ProgressResult struct {
	BucketWidth int
	Buckets     []Bucket
	Aggregate   Aggregate
}

// CalculateProgress groups questions into rating buckets of the given width and
// counts how many are solved in each. Buckets are sorted by rating ascending
// and empty buckets are omitted. A non-positive width falls back to DefaultBucketWidth.
func CalculateProgress(questions []catalog.Question, bucketWidth int) ProgressResult {
	if bucketWidth <= 0 {
		bucketWidth = DefaultBucketWidth
	}

	buckets := make(map[int]*Bucket)
	var aggregate Aggregate
	for _, q := range questions {
		lower := int(math.Floor(q.Rating/float64(bucketWidth))) * bucketWidth
		b, ok := buckets[lower]
		if !ok {
			b = &Bucket{Min: lower, Max: lower + bucketWidth}
			buckets[lower] = b
		}
		b.Total++
		aggregate.Total++
		if q.Solved {
			b.Solved++
			aggregate.Solved++
		}
	}

	result := ProgressResult{
		BucketWidth: bucketWidth,
		Buckets:     make([]Bucket, 0, len(buckets)),
		Aggregate:   aggregate,
	}
	for _, b := range buckets {
		result.Buckets = append(result.Buckets, *b)
	}
	sort.Slice(result.Buckets, func(i, j int) bool {
		return result.Buckets[i].Min < result.Buckets[j].Min
	})
	return result
}

func percent(solved, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(solved) * 100 / float64(total)
}

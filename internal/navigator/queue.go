package navigator

import (
	"container/heap"

	"github.com/islecrest/expedition-solver/internal/models"
)

// ScoredSite pairs a site with the priority computed for one simulated day.
// Ordering considers Score only; entries with equal scores pop in whatever
// order the heap's sift leaves them.
type ScoredSite struct {
	Site  *models.Site
	Score float64
}

// scoreHeap implements heap.Interface as a max-heap over ScoredSite
type scoreHeap []ScoredSite

func (h scoreHeap) Len() int           { return len(h) }
func (h scoreHeap) Less(i, j int) bool { return h[i].Score > h[j].Score }
func (h scoreHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }

func (h *scoreHeap) Push(x any) {
	*h = append(*h, x.(ScoredSite))
}

func (h *scoreHeap) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[0 : n-1]
	return x
}

// ScoreQueue is a max-priority queue of scored sites
type ScoreQueue struct {
	h scoreHeap
}

// NewScoreQueue bulk-builds a queue from the given entries (O(n) heapify)
func NewScoreQueue(entries []ScoredSite) *ScoreQueue {
	q := &ScoreQueue{
		h: make(scoreHeap, len(entries)),
	}
	copy(q.h, entries)
	heap.Init(&q.h)
	return q
}

// Push adds an entry to the queue
func (q *ScoreQueue) Push(e ScoredSite) {
	heap.Push(&q.h, e)
}

// Pop removes and returns the maximum-score entry; ok is false when the
// queue is empty
func (q *ScoreQueue) Pop() (ScoredSite, bool) {
	if len(q.h) == 0 {
		return ScoredSite{}, false
	}
	return heap.Pop(&q.h).(ScoredSite), true
}

// Peek returns the maximum-score entry without removing it
func (q *ScoreQueue) Peek() (ScoredSite, bool) {
	if len(q.h) == 0 {
		return ScoredSite{}, false
	}
	return q.h[0], true
}

// Empty returns true if the queue has no entries
func (q *ScoreQueue) Empty() bool {
	return len(q.h) == 0
}

// Len returns the number of entries in the queue
func (q *ScoreQueue) Len() int {
	return len(q.h)
}

package bsp

import (
	"runtime"
	"sync"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
	"github.com/oxybsp/oxybsp/geom"
)

// ParallelScoreThreshold is the candidate-list size above which
// selectRoot scores candidates on a worker pool instead of in the calling
// goroutine. Below it, pool setup costs more than the O(N^2) scan it would
// save. Overridable per-compile via WithParallelThreshold.
const ParallelScoreThreshold = 64

// candidateScore is the result of scoring one root candidate: the number
// of triangles it would split plus the absolute imbalance between the
// triangles left in front of it and behind it (spec §4.3).
type candidateScore struct {
	splits  int
	inFront int
	inBack  int
}

func (s candidateScore) value() int {
	imbalance := s.inFront - s.inBack
	if imbalance < 0 {
		imbalance = -imbalance
	}
	return s.splits + imbalance
}

// scoreCandidate scores items[i] as a potential root: for every other
// triangle, count whether it would be split, land in front, or land
// behind. Triangles lying on the plane are not counted.
func scoreCandidate(items []*rawTri, i int) candidateScore {
	var s candidateScore
	plane := items[i].plane
	for j, t := range items {
		if j == i {
			continue
		}
		switch t.classify(plane) {
		case geom.Spanning:
			s.splits++
		case geom.InFront:
			s.inFront++
		case geom.InBack:
			s.inBack++
		}
	}
	return s
}

// selectRoot implements the §4.3 root-selection heuristic: for an N-item
// candidate list this is O(N^2). Scoring is parallelized across a worker
// pool once the list exceeds parallelThreshold (falling back to
// ParallelScoreThreshold when <= 0), exactly the frame-prep fan-out
// pattern the teacher's scene package uses (a bounded DynamicWorkerPool
// synchronized with a sync.WaitGroup rather than pool.Wait(), since
// pool.Wait() blocks until workers idle-exit — unsuitable for a single
// tight synchronous call). Ties are broken by first-seen index; the
// sequential scan exits early on a score of 0 (no splits, perfectly
// balanced), while the parallel path scores every candidate.
func selectRoot(items []*rawTri, parallelThreshold int) int {
	n := len(items)
	if n == 0 {
		panic("bsp: selectRoot called with an empty candidate list")
	}
	if parallelThreshold <= 0 {
		parallelThreshold = ParallelScoreThreshold
	}

	scores := make([]candidateScore, n)

	if n <= parallelThreshold {
		for i := range items {
			scores[i] = scoreCandidate(items, i)
			if scores[i].value() == 0 {
				break
			}
		}
	} else {
		workers := runtime.NumCPU() - 1
		if workers < 1 {
			workers = 1
		}
		pool := worker.NewDynamicWorkerPool(workers, n, time.Second)
		var wg sync.WaitGroup
		for i := range items {
			wg.Add(1)
			idx := i
			pool.SubmitTask(worker.Task{
				ID: idx,
				Do: func() (any, error) {
					defer wg.Done()
					scores[idx] = scoreCandidate(items, idx)
					return nil, nil
				},
			})
		}
		wg.Wait()
	}

	best := 0
	for i := 1; i < n; i++ {
		if scores[i].value() < scores[best].value() {
			best = i
		}
	}
	return best
}

package askfor

import (
	"bytes"
	"container/heap"

	"github.com/libsv/go-p2p/wire"
)

// queueEntry is one (due time, item) pair in the work queue. The heap keeps
// the index current so the entry a request state points at can be removed
// eagerly when the request is forgotten or re-queued.
type queueEntry struct {
	dueUS int64
	inv   wire.InvVect
	index int
}

// workQueue orders outstanding items by due time, with the inv vector as the
// tie-break. The earliest entry is the worker's next deadline.
//
// Invariant: each item has at most one entry.
type workQueue struct {
	entries entryHeap
}

func (q *workQueue) len() int {
	return q.entries.Len()
}

func (q *workQueue) peek() *queueEntry {
	return q.entries[0]
}

func (q *workQueue) push(dueUS int64, inv wire.InvVect) *queueEntry {
	e := &queueEntry{dueUS: dueUS, inv: inv}
	heap.Push(&q.entries, e)
	return e
}

func (q *workQueue) pop() *queueEntry {
	e, _ := heap.Pop(&q.entries).(*queueEntry)
	return e
}

func (q *workQueue) remove(e *queueEntry) {
	heap.Remove(&q.entries, e.index)
}

type entryHeap []*queueEntry

func (h entryHeap) Len() int { return len(h) }

func (h entryHeap) Less(i, j int) bool {
	a, b := h[i], h[j]
	if a.dueUS != b.dueUS {
		return a.dueUS < b.dueUS
	}
	if a.inv.Type != b.inv.Type {
		return a.inv.Type < b.inv.Type
	}
	return bytes.Compare(a.inv.Hash[:], b.inv.Hash[:]) < 0
}

func (h entryHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

func (h *entryHeap) Push(x any) {
	e, _ := x.(*queueEntry)
	e.index = len(*h)
	*h = append(*h, e)
}

func (h *entryHeap) Pop() any {
	old := *h
	n := len(old)
	e := old[n-1]
	old[n-1] = nil
	e.index = -1
	*h = old[:n-1]
	return e
}

package askfor

import "sync/atomic"

type schedulerStats struct {
	requested atomic.Int64
	retried   atomic.Int64
	exhausted atomic.Int64
	completed atomic.Int64
}

func newSchedulerStats() *schedulerStats {
	return &schedulerStats{}
}

type Stats struct {
	RequestedCount  int64
	RetriedCount    int64
	ExhaustedCount  int64
	CompletedCount  int64
	OutstandingSize int64
	QueueLength     int64
	PeerCount       int64
}

func (s *Scheduler) GetStats() *Stats {
	s.mu.Lock()
	defer s.mu.Unlock()

	return &Stats{
		RequestedCount:  s.stats.requested.Load(),
		RetriedCount:    s.stats.retried.Load(),
		ExhaustedCount:  s.stats.exhausted.Load(),
		CompletedCount:  s.stats.completed.Load(),
		OutstandingSize: int64(len(s.requests)),
		QueueLength:     int64(s.queue.len()),
		PeerCount:       int64(len(s.peers)),
	}
}

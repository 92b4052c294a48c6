package askfor

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/libsv/go-p2p/wire"
)

// wakeGranularity is the resolution of timed waits; a wait is rounded up so
// it never undershoots the deadline it targets.
const wakeGranularity = time.Millisecond

// worker is the scheduler's single event loop. It drains due work queue
// entries, requests each popped item from the lowest untried peer ID, and
// then sleeps until the earliest remaining deadline or an external wake-up.
func (s *Scheduler) worker(ctx context.Context) {
	s.l.Debug("Starting worker")
	defer s.l.Debug("Shutting down worker")

	timer := time.NewTimer(wakeGranularity)
	if !timer.Stop() {
		<-timer.C
	}

	for {
		if ctx.Err() != nil {
			return
		}

		timeToNext, haveNext := s.processDue()

		switch {
		case !haveNext:
			select {
			case <-ctx.Done():
				return
			case <-s.wakeCh:
			}

		case timeToNext > 0:
			wait := timeToNext.Truncate(wakeGranularity)
			if wait < timeToNext {
				wait += wakeGranularity
			}

			timer.Reset(wait)
			select {
			case <-ctx.Done():
				stopTimer(timer)
				return
			case <-s.wakeCh:
				stopTimer(timer)
			case <-timer.C:
			}
		}
	}
}

// processDue runs the work queue until its earliest entry is in the future.
// It returns the time until that entry, or haveNext false when the queue is
// empty and the worker should sleep until woken.
func (s *Scheduler) processDue() (timeToNext time.Duration, haveNext bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now().UnixMicro()
	for s.queue.len() > 0 && s.queue.peek().dueUS <= now {
		entry := s.queue.pop()

		r, ok := s.requests[entry.inv]
		if !ok {
			// the item completed while its entry was still queued
			s.l.Debug("No request for queued item", slog.String(hashKey, entry.inv.Hash.String()))
			continue
		}
		r.entry = nil

		if len(r.untried) == 0 {
			s.l.Debug("No more peers to request item from, discarding request",
				slog.String(hashKey, entry.inv.Hash.String()),
			)
			s.forget(entry.inv, r)
			s.stats.exhausted.Add(1)
			continue
		}

		// lowest untried peer ID wins
		peer := r.untried[0]
		r.untried = r.untried[1:]
		r.inFlight = peer
		r.hasInFlight = true

		s.request(peer, entry.inv, entry.dueUS != 0)

		// revisit after the request timeout
		r.entry = s.queue.push(now+s.requestTimeout.Microseconds(), entry.inv)
	}

	if s.queue.len() == 0 {
		return 0, false
	}

	return time.Duration(s.queue.peek().dueUS-s.now().UnixMicro()) * time.Microsecond, true
}

// request emits a GETDATA for the item through the peer's bound handle.
// The handle enqueues without blocking, so holding the lock here is safe.
// Requires the lock.
func (s *Scheduler) request(peer PeerID, inv wire.InvVect, retry bool) {
	state, ok := s.peers[peer]
	if !ok {
		panic(fmt.Sprintf("askfor: selected unregistered peer %d for %s", peer, inv.Hash.String()))
	}

	s.l.Debug("Requesting item",
		slog.String(hashKey, inv.Hash.String()),
		slog.Int64(peerKey, int64(peer)),
		slog.Bool("retry", retry),
	)

	msg := wire.NewMsgGetDataSizeHint(1)
	iv := inv
	_ = msg.AddInvVect(&iv)
	state.handle.WriteMsg(msg)

	s.stats.requested.Add(1)
	if retry {
		s.stats.retried.Add(1)
	}
}

func stopTimer(t *time.Timer) {
	if !t.Stop() {
		<-t.C
	}
}

// insertPeer inserts id into the ascending slice, keeping it duplicate-free.
func insertPeer(ids []PeerID, id PeerID) []PeerID {
	i := sort.Search(len(ids), func(n int) bool { return ids[n] >= id })
	if i < len(ids) && ids[i] == id {
		return ids
	}

	ids = append(ids, 0)
	copy(ids[i+1:], ids[i:])
	ids[i] = id
	return ids
}

func removePeer(ids []PeerID, id PeerID) []PeerID {
	i := sort.Search(len(ids), func(n int) bool { return ids[n] >= id })
	if i == len(ids) || ids[i] != id {
		return ids
	}

	return append(ids[:i], ids[i+1:]...)
}

package askfor

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/libsv/go-p2p/wire"
)

const (
	requestTimeoutDefault  = 2 * time.Minute
	maxItemsPerPeerDefault = 5000

	hashKey = "hash"
	peerKey = "peer"
)

// PeerID identifies a peer connection for its lifetime. IDs are totally
// ordered; candidates for an item are tried in ascending ID order. An ID may
// be reused after its peer disconnects.
type PeerID int64

// OutboundHandle is the write side of a peer connection. WriteMsg enqueues
// the message into the peer's send buffer and must not block; the scheduler
// calls it while holding its lock.
type OutboundHandle interface {
	WriteMsg(msg wire.Message)
}

// peerState is the scheduler's bookkeeping for one registered peer.
type peerState struct {
	// items announced by this peer whose request is still outstanding
	items map[wire.InvVect]struct{}
	// outbound handle, rebound on every announce
	handle OutboundHandle
}

// requestState tracks one outstanding inventory item.
//
// Invariant: untried is a subset of candidates, kept in ascending peer ID
// order. inFlight, when set, is a candidate and not untried. entry is the
// item's single entry in the work queue, or nil.
type requestState struct {
	candidates  map[PeerID]struct{}
	untried     []PeerID
	inFlight    PeerID
	hasInFlight bool
	entry       *queueEntry
}

// Scheduler fetches announced inventory items from one peer at a time,
// retrying against a different announcer when a request is not answered
// within the request timeout and giving up once every announcer has been
// tried. There is a two-way mapping between peer state and request state;
// all of it lives behind a single mutex together with the work queue.
type Scheduler struct {
	execWg        sync.WaitGroup
	execCtx       context.Context
	cancelExecCtx context.CancelFunc

	l   *slog.Logger
	now func() time.Time

	requestTimeout  time.Duration
	maxItemsPerPeer int

	mu       sync.Mutex
	peers    map[PeerID]*peerState
	requests map[wire.InvVect]*requestState
	queue    workQueue
	// wakes the worker when external state changes may have advanced the
	// earliest deadline; buffered so a pending wake-up is never lost
	wakeCh chan struct{}

	stats *schedulerStats
}

func New(logger *slog.Logger, opts ...Option) *Scheduler {
	s := &Scheduler{
		l:   logger.With(slog.String("module", "askfor")),
		now: time.Now,

		requestTimeout:  requestTimeoutDefault,
		maxItemsPerPeer: maxItemsPerPeerDefault,

		peers:    make(map[PeerID]*peerState),
		requests: make(map[wire.InvVect]*requestState),
		wakeCh:   make(chan struct{}, 1),

		stats: newSchedulerStats(),
	}

	for _, opt := range opts {
		opt(s)
	}

	newPrometheusCollector(s)

	return s
}

// Start spawns the scheduler worker.
func (s *Scheduler) Start() {
	ctx, cancelFn := context.WithCancel(context.Background())
	s.execCtx = ctx
	s.cancelExecCtx = cancelFn

	s.execWg.Add(1)
	go func() {
		defer s.execWg.Done()
		s.worker(ctx)
	}()
}

// Shutdown signals the worker to exit and waits for it. Requests still in
// flight are not recalled; a late Complete after shutdown is a no-op.
func (s *Scheduler) Shutdown() {
	s.l.Info("Shutting down scheduler")

	if s.cancelExecCtx != nil {
		s.cancelExecCtx()
	}
	s.wake()
	s.execWg.Wait()
}

// Connect registers a peer. Connecting an already registered peer keeps the
// existing state.
func (s *Scheduler) Connect(peer PeerID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.peers[peer]; ok {
		return
	}

	s.peers[peer] = &peerState{items: make(map[wire.InvVect]struct{})}
}

// Disconnect deregisters a peer. Every request the peer announced loses it
// as a candidate; an item the peer was being asked for is re-queued as due
// immediately so the worker re-runs peer selection. A request left with no
// candidates keeps its row until the worker next visits it.
func (s *Scheduler) Disconnect(peer PeerID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, ok := s.peers[peer]
	if !ok {
		panic(fmt.Sprintf("askfor: Disconnect of unregistered peer %d", peer))
	}

	for inv := range state.items {
		r, ok := s.requests[inv]
		if !ok {
			continue
		}

		delete(r.candidates, peer)
		r.untried = removePeer(r.untried, peer)

		if r.hasInFlight && r.inFlight == peer {
			s.l.Debug("Item was being requested from disconnecting peer",
				slog.String(hashKey, inv.Hash.String()),
				slog.Int64(peerKey, int64(peer)),
			)
			r.hasInFlight = false

			// the retry entry belongs to the dead request; drop it before
			// re-inserting so the item keeps exactly one queue entry
			if r.entry != nil {
				s.queue.remove(r.entry)
			}
			r.entry = s.queue.push(0, inv)
			s.wake()
		}
	}

	delete(s.peers, peer)
}

// Announce records that peer holds inv and binds the peer's current outbound
// handle. The first announce of an item by anyone creates its request and
// schedules it as due immediately. An announce that would grow the peer's
// outstanding set beyond the per-peer cap is dropped silently; the cap
// indirectly bounds every scheduler data structure.
func (s *Scheduler) Announce(peer PeerID, handle OutboundHandle, inv wire.InvVect) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, ok := s.peers[peer]
	if !ok {
		panic(fmt.Sprintf("askfor: Announce from unregistered peer %d", peer))
	}

	// latest announce's handle is authoritative
	state.handle = handle

	if _, ok := state.items[inv]; !ok && len(state.items) >= s.maxItemsPerPeer {
		return
	}

	s.l.Debug("Announce",
		slog.String(hashKey, inv.Hash.String()),
		slog.Int64(peerKey, int64(peer)),
	)

	r, ok := s.requests[inv]
	if !ok {
		r = &requestState{candidates: make(map[PeerID]struct{})}
		s.requests[inv] = r

		// first time this item is announced by anyone, due immediately
		r.entry = s.queue.push(0, inv)
		s.wake()
	}

	if _, ok := r.candidates[peer]; !ok {
		r.candidates[peer] = struct{}{}
		r.untried = insertPeer(r.untried, peer)
	}

	state.items[inv] = struct{}{}
}

// Complete records that the payload for inv arrived, from whichever peer,
// and was accepted. The item is forgotten entirely; completing an unknown
// item is a no-op since a retried request may be answered by more than one
// peer.
func (s *Scheduler) Complete(inv wire.InvVect) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.requests[inv]
	if !ok {
		s.l.Debug("Completed item is not outstanding", slog.String(hashKey, inv.Hash.String()))
		return
	}

	s.l.Debug("Completed", slog.String(hashKey, inv.Hash.String()))
	s.forget(inv, r)
	s.stats.completed.Add(1)
}

// forget removes every trace of the item: the per-peer associations of all
// its candidates, its queue entry and its request row. Requires the lock.
func (s *Scheduler) forget(inv wire.InvVect, r *requestState) {
	for peer := range r.candidates {
		state, ok := s.peers[peer]
		if !ok {
			panic(fmt.Sprintf("askfor: request %s references unregistered peer %d", inv.Hash.String(), peer))
		}
		delete(state.items, inv)
	}

	if r.entry != nil {
		s.queue.remove(r.entry)
		r.entry = nil
	}

	delete(s.requests, inv)
}

func (s *Scheduler) wake() {
	select {
	case s.wakeCh <- struct{}{}:
	default: // a wake-up is already pending
	}
}

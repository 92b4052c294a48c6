package p2p

import (
	"context"
	"errors"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/libsv/go-p2p/wire"

	"github.com/rebroad/invsched/internal/askfor"
)

const restartBackoffDefault = 5 * time.Second

var (
	ErrPeerNetworkMismatch = errors.New("peer network mismatch")
	ErrPeerRestartFailed   = errors.New("peer restart failed")
)

// PeerManager owns the set of live peer connections and feeds their
// lifecycle into the request scheduler: a peer that joins is registered, a
// peer that leaves (or is restarted as unhealthy) is deregistered first, so
// items in flight to it re-enter peer selection immediately.
type PeerManager struct {
	execWg        sync.WaitGroup
	execCtx       context.Context
	cancelExecCtx context.CancelFunc

	l         *slog.Logger
	network   wire.BitcoinNet
	scheduler RequestSchedulerI

	mu    sync.RWMutex
	peers map[askfor.PeerID]PeerI

	restartUnhealthyPeers bool
	restartBackoff        time.Duration
}

func NewPeerManager(l *slog.Logger, scheduler RequestSchedulerI, network wire.BitcoinNet, options ...PeerManagerOptions) *PeerManager {
	ctx, cancelFn := context.WithCancel(context.Background())

	m := &PeerManager{
		execCtx:       ctx,
		cancelExecCtx: cancelFn,

		l:         l,
		network:   network,
		scheduler: scheduler,

		peers:          make(map[askfor.PeerID]PeerI),
		restartBackoff: restartBackoffDefault,
	}

	for _, opt := range options {
		opt(m)
	}

	return m
}

func (m *PeerManager) AddPeer(peer PeerI) error {
	if peer.Network() != m.network {
		return ErrPeerNetworkMismatch
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.peers[peer.ID()] = peer
	m.scheduler.Connect(peer.ID())

	if m.restartUnhealthyPeers {
		m.startMonitorPeerHealth(peer)
	}

	return nil
}

func (m *PeerManager) RemovePeer(peer PeerI) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	_, found := m.peers[peer.ID()]
	if found {
		delete(m.peers, peer.ID())
		m.scheduler.Disconnect(peer.ID())
	}

	return found
}

// GetPeers returns the managed peers ordered by ID.
func (m *PeerManager) GetPeers() []PeerI {
	m.mu.RLock()
	defer m.mu.RUnlock()

	peers := make([]PeerI, 0, len(m.peers))
	for _, p := range m.peers {
		peers = append(peers, p)
	}

	sort.Slice(peers, func(i, j int) bool {
		return peers[i].ID() < peers[j].ID()
	})

	return peers
}

func (m *PeerManager) CountConnectedPeers() uint {
	m.mu.RLock()
	defer m.mu.RUnlock()

	c := uint(0)
	for _, p := range m.peers {
		if p.Connected() {
			c++
		}
	}

	return c
}

func (m *PeerManager) Shutdown() {
	m.l.Info("Shutting down peer manager")

	m.cancelExecCtx()
	m.execWg.Wait()

	for _, peer := range m.GetPeers() {
		peer.Shutdown()
	}
}

func (m *PeerManager) startMonitorPeerHealth(peer PeerI) {
	m.l.Info("Starting peer health monitoring", slog.String("peer", peer.String()))
	m.execWg.Add(1)

	go func(p PeerI) {
		defer m.execWg.Done()

		for {
			select {
			case <-m.execCtx.Done():
				return

			case <-p.IsUnhealthyCh():
				m.l.Warn("Peer unhealthy - restarting", slog.String("peer", p.String()))

				// deregister first so items in flight to this peer are
				// re-queued against the remaining candidates
				m.scheduler.Disconnect(p.ID())

				if !m.restartPeer(p) {
					return
				}
				m.scheduler.Connect(p.ID())
			}
		}
	}(peer)
}

// restartPeer retries the restart with a constant backoff until it succeeds
// or the manager shuts down. Returns false when the manager context ended.
func (m *PeerManager) restartPeer(p PeerI) (ok bool) {
	policy := backoff.WithContext(backoff.NewConstantBackOff(m.restartBackoff), m.execCtx)

	operation := func() error {
		if !p.Restart() {
			return ErrPeerRestartFailed
		}
		return nil
	}

	notify := func(err error, nextTry time.Duration) {
		m.l.Error("Peer restart failed", slog.String("peer", p.String()), slog.String("next try", nextTry.String()), slog.String(errKey, err.Error()))
	}

	err := backoff.RetryNotify(operation, policy, notify)
	return err == nil
}

package askfor_test

import (
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/libsv/go-p2p/chaincfg/chainhash"
	"github.com/libsv/go-p2p/wire"
	"github.com/stretchr/testify/require"

	"github.com/rebroad/invsched/internal/askfor"
	"github.com/rebroad/invsched/internal/askfor/mocks"
)

const requestTimeout = 60 * time.Second

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Unix(0, 0)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.now = c.now.Add(d)
}

func txInv(b byte) wire.InvVect {
	var hash chainhash.Hash
	hash[0] = b

	return wire.InvVect{Type: wire.InvTypeTx, Hash: hash}
}

func fetchRecorder() (*mocks.OutboundHandleMock, chan wire.Message) {
	ch := make(chan wire.Message, 16)
	handle := &mocks.OutboundHandleMock{
		WriteMsgFunc: func(msg wire.Message) { ch <- msg },
	}

	return handle, ch
}

func requireFetch(t *testing.T, ch chan wire.Message, inv wire.InvVect) {
	t.Helper()

	select {
	case msg := <-ch:
		getData, ok := msg.(*wire.MsgGetData)
		require.True(t, ok, "expected GETDATA, got %s", msg.Command())
		require.Len(t, getData.InvList, 1)
		require.Equal(t, inv, *getData.InvList[0])
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for GETDATA")
	}
}

func requireNoFetch(t *testing.T, chs ...chan wire.Message) {
	t.Helper()

	deadline := time.After(100 * time.Millisecond)
	for {
		select {
		case <-deadline:
			return
		default:
		}

		for _, ch := range chs {
			select {
			case msg := <-ch:
				t.Fatalf("unexpected message: %s", msg.Command())
			default:
			}
		}

		time.Sleep(10 * time.Millisecond)
	}
}

func newTestScheduler(t *testing.T, clock *fakeClock, opts ...askfor.Option) *askfor.Scheduler {
	t.Helper()

	opts = append([]askfor.Option{
		askfor.WithNow(clock.Now),
		askfor.WithRequestTimeout(requestTimeout),
	}, opts...)

	sut := askfor.New(slog.Default(), opts...)
	sut.Start()
	t.Cleanup(sut.Shutdown)

	return sut
}

func TestScheduler_SinglePeerHappyPath(t *testing.T) {
	// given
	clock := newFakeClock()
	sut := newTestScheduler(t, clock)

	h1, fetches := fetchRecorder()
	x := txInv(0x01)

	// when
	sut.Connect(1)
	sut.Announce(1, h1, x)
	clock.Advance(time.Microsecond)

	// then
	requireFetch(t, fetches, x)

	// when
	sut.Complete(x)

	// then
	require.Eventually(t, func() bool {
		return sut.GetStats().OutstandingSize == 0
	}, time.Second, 10*time.Millisecond)

	clock.Advance(requestTimeout + time.Microsecond)
	askfor.Wake(sut)
	requireNoFetch(t, fetches)
}

func TestScheduler_RetryOnTimeout(t *testing.T) {
	// given
	clock := newFakeClock()
	sut := newTestScheduler(t, clock)

	h1, fetches1 := fetchRecorder()
	h2, fetches2 := fetchRecorder()
	x := txInv(0x02)

	sut.Connect(1)
	sut.Connect(2)
	sut.Announce(1, h1, x)
	sut.Announce(2, h2, x)

	// then: lowest peer ID is tried first
	requireFetch(t, fetches1, x)
	requireNoFetch(t, fetches2)

	// when: the first request times out
	clock.Advance(requestTimeout + time.Microsecond)
	askfor.Wake(sut)

	// then
	requireFetch(t, fetches2, x)

	// when
	sut.Complete(x)
	clock.Advance(requestTimeout + time.Microsecond)
	askfor.Wake(sut)

	// then: no third fetch
	requireNoFetch(t, fetches1, fetches2)
}

func TestScheduler_Exhaustion(t *testing.T) {
	// given
	clock := newFakeClock()
	sut := newTestScheduler(t, clock)

	h1, fetches1 := fetchRecorder()
	h2, fetches2 := fetchRecorder()
	x := txInv(0x03)

	sut.Connect(1)
	sut.Connect(2)
	sut.Announce(1, h1, x)
	sut.Announce(2, h2, x)

	requireFetch(t, fetches1, x)

	clock.Advance(requestTimeout + time.Microsecond)
	askfor.Wake(sut)
	requireFetch(t, fetches2, x)

	// when: the second request times out as well
	clock.Advance(requestTimeout + time.Microsecond)
	askfor.Wake(sut)

	// then: no candidate left, the request is discarded
	require.Eventually(t, func() bool {
		return sut.GetStats().OutstandingSize == 0
	}, time.Second, 10*time.Millisecond)

	clock.Advance(requestTimeout + time.Microsecond)
	askfor.Wake(sut)
	requireNoFetch(t, fetches1, fetches2)

	require.Equal(t, int64(1), sut.GetStats().ExhaustedCount)
}

func TestScheduler_LateArrival(t *testing.T) {
	// given
	clock := newFakeClock()
	sut := newTestScheduler(t, clock)

	h1, fetches1 := fetchRecorder()
	h2, fetches2 := fetchRecorder()
	x := txInv(0x04)

	// when
	sut.Connect(1)
	sut.Announce(1, h1, x)

	// then
	requireFetch(t, fetches1, x)

	// when: the payload arrives, then a second peer announces and delivers
	// the same item again before the worker can act on it
	sut.Complete(x)
	sut.Shutdown()

	sut.Connect(2)
	sut.Announce(2, h2, x)
	sut.Complete(x)
	sut.Complete(x)

	// then: completing an already completed item stays a no-op
	require.Equal(t, int64(0), sut.GetStats().OutstandingSize)
	requireNoFetch(t, fetches1, fetches2)
	require.Equal(t, int64(1), sut.GetStats().RequestedCount)
}

func TestScheduler_DisconnectOfInFlightPeer(t *testing.T) {
	// given
	clock := newFakeClock()
	sut := newTestScheduler(t, clock)

	h1, fetches1 := fetchRecorder()
	h2, fetches2 := fetchRecorder()
	x := txInv(0x05)

	sut.Connect(1)
	sut.Connect(2)
	sut.Announce(1, h1, x)
	sut.Announce(2, h2, x)

	requireFetch(t, fetches1, x)

	// when: the in-flight peer goes away well before the timeout
	sut.Disconnect(1)

	// then: the next candidate is tried immediately
	requireFetch(t, fetches2, x)
}

func TestScheduler_MaxItemsPerPeer(t *testing.T) {
	// given
	clock := newFakeClock()
	sut := newTestScheduler(t, clock, askfor.WithMaxItemsPerPeer(2))

	h1, fetches1 := fetchRecorder()
	a := txInv(0x0a)
	b := txInv(0x0b)
	c := txInv(0x0c)

	// when
	sut.Connect(1)
	sut.Announce(1, h1, a)
	sut.Announce(1, h1, b)
	sut.Announce(1, h1, c)

	// then: only a and b are requested, c was dropped silently
	requireFetch(t, fetches1, a)
	requireFetch(t, fetches1, b)
	requireNoFetch(t, fetches1)
	require.Equal(t, int64(2), sut.GetStats().OutstandingSize)
}

func TestScheduler_LatestAnnouncedHandleIsAuthoritative(t *testing.T) {
	// given
	clock := newFakeClock()
	stale, staleFetches := fetchRecorder()
	fresh, freshFetches := fetchRecorder()
	x := txInv(0x06)

	sut := askfor.New(slog.Default(),
		askfor.WithNow(clock.Now),
		askfor.WithRequestTimeout(requestTimeout),
	)

	// when: the peer re-announces with a new handle before the worker runs
	sut.Connect(1)
	sut.Announce(1, stale, x)
	sut.Announce(1, fresh, x)

	sut.Start()
	defer sut.Shutdown()

	// then
	requireFetch(t, freshFetches, x)
	requireNoFetch(t, staleFetches)
}

func TestScheduler_ForgetOnAllAnnouncersGone(t *testing.T) {
	// given
	clock := newFakeClock()
	sut := newTestScheduler(t, clock)

	h1, fetches1 := fetchRecorder()
	h2, fetches2 := fetchRecorder()
	x := txInv(0x07)

	sut.Connect(1)
	sut.Connect(2)
	sut.Announce(1, h1, x)
	sut.Announce(2, h2, x)

	requireFetch(t, fetches1, x)

	// when: every announcer disconnects
	sut.Disconnect(2)
	sut.Disconnect(1)

	// then: the worker drops the request once it runs to quiescence
	require.Eventually(t, func() bool {
		return sut.GetStats().OutstandingSize == 0
	}, time.Second, 10*time.Millisecond)
	requireNoFetch(t, fetches1, fetches2)
}

func TestScheduler_UnknownPeerPanics(t *testing.T) {
	tt := []struct {
		name string
		call func(s *askfor.Scheduler)
	}{
		{
			name: "announce from unregistered peer",
			call: func(s *askfor.Scheduler) {
				h, _ := fetchRecorder()
				s.Announce(99, h, txInv(0x08))
			},
		},
		{
			name: "disconnect of unregistered peer",
			call: func(s *askfor.Scheduler) {
				s.Disconnect(99)
			},
		},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			// given
			sut := askfor.New(slog.Default(), askfor.WithNow(newFakeClock().Now))

			// when then
			require.Panics(t, func() { tc.call(sut) })
		})
	}
}

package p2p_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/libsv/go-p2p/chaincfg/chainhash"
	"github.com/libsv/go-p2p/wire"
	"github.com/stretchr/testify/require"

	"github.com/rebroad/invsched/internal/askfor"
	"github.com/rebroad/invsched/internal/p2p"
	"github.com/rebroad/invsched/internal/p2p/mocks"
	"github.com/rebroad/invsched/internal/payload"
)

func invHandlerPeer(id askfor.PeerID) *mocks.PeerIMock {
	return &mocks.PeerIMock{
		IDFunc:     func() askfor.PeerID { return id },
		StringFunc: func() string { return "localhost:18333" },
	}
}

func Test_InventoryHandlerOnReceiveInv(t *testing.T) {
	t.Run("TX and block announcements reach the scheduler", func(t *testing.T) {
		// given
		scheduler := &mocks.RequestSchedulerIMock{
			AnnounceFunc: func(_ askfor.PeerID, _ askfor.OutboundHandle, _ wire.InvVect) {},
		}
		peerMq := invHandlerPeer(4)

		sut := p2p.NewInventoryHandler(slog.Default(), scheduler, payload.NewStore())

		txHash, err := chainhash.NewHashFromStr("4a5e1e4baab89f3a32518a88c31bc87f618f76673e2cc77ab2127b7afdeda33b")
		require.NoError(t, err)

		invMsg := wire.NewMsgInv()
		require.NoError(t, invMsg.AddInvVect(wire.NewInvVect(wire.InvTypeTx, txHash)))
		require.NoError(t, invMsg.AddInvVect(wire.NewInvVect(wire.InvTypeBlock, txHash)))
		require.NoError(t, invMsg.AddInvVect(wire.NewInvVect(wire.InvTypeError, txHash)))

		// when
		sut.OnReceive(invMsg, peerMq)

		// then
		calls := scheduler.AnnounceCalls()
		require.Len(t, calls, 2)
		require.Equal(t, askfor.PeerID(4), calls[0].Peer)
		require.Equal(t, wire.InvTypeTx, calls[0].Inv.Type)
		require.Equal(t, *txHash, calls[0].Inv.Hash)
		require.Equal(t, wire.InvTypeBlock, calls[1].Inv.Type)

		// the announcing peer itself is the outbound handle
		require.Same(t, peerMq, calls[0].Handle)
	})
}

func Test_InventoryHandlerOnReceiveTx(t *testing.T) {
	t.Run("Delivered TX is stored and completes the request", func(t *testing.T) {
		// given
		scheduler := &mocks.RequestSchedulerIMock{
			CompleteFunc: func(_ wire.InvVect) {},
		}
		peerMq := invHandlerPeer(4)
		payloads := payload.NewStore()

		sut := p2p.NewInventoryHandler(slog.Default(), scheduler, payloads)

		txMsg := wire.NewMsgTx(70001)
		hash := txMsg.TxHash()

		// when
		sut.OnReceive(txMsg, peerMq)

		// then
		calls := scheduler.CompleteCalls()
		require.Len(t, calls, 1)
		require.Equal(t, wire.InvVect{Type: wire.InvTypeTx, Hash: hash}, calls[0].Inv)

		var expected bytes.Buffer
		require.NoError(t, txMsg.Serialize(&expected))

		raw, found := payloads.Get(calls[0].Inv)
		require.True(t, found)
		require.Equal(t, expected.Bytes(), raw)
	})
}

func Test_InventoryHandlerOnSend(t *testing.T) {
	t.Run("Outgoing GETDATA is accepted silently", func(t *testing.T) {
		// given
		scheduler := &mocks.RequestSchedulerIMock{}
		peerMq := invHandlerPeer(4)

		sut := p2p.NewInventoryHandler(slog.Default(), scheduler, payload.NewStore())

		// when then
		require.NotPanics(t, func() {
			sut.OnSend(wire.NewMsgGetData(), peerMq)
			sut.OnSend(wire.NewMsgPing(1), peerMq)
		})
	})
}

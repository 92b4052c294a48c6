package p2p

import (
	"bytes"
	"context"
	"log/slog"

	"github.com/libsv/go-p2p/wire"

	"github.com/rebroad/invsched/internal/logger"
	"github.com/rebroad/invsched/internal/payload"
)

var _ MessageHandlerI = (*InventoryHandler)(nil)

// InventoryHandler routes inventory traffic between peers and the request
// scheduler: INV messages become announcements, delivered TX and BLOCK
// payloads are parked in the payload store and retire their request.
type InventoryHandler struct {
	l         *slog.Logger
	scheduler RequestSchedulerI
	payloads  *payload.Store
}

func NewInventoryHandler(l *slog.Logger, scheduler RequestSchedulerI, payloads *payload.Store) *InventoryHandler {
	return &InventoryHandler{
		l:         l.With(slog.String("module", "inv-handler")),
		scheduler: scheduler,
		payloads:  payloads,
	}
}

// OnReceive handles incoming messages depending on command type
func (h *InventoryHandler) OnReceive(msg wire.Message, peer PeerI) {
	cmd := msg.Command()
	switch cmd {
	case wire.CmdInv:
		h.handleReceivedInv(msg, peer)

	case wire.CmdTx:
		h.handleReceivedTx(msg, peer)

	case wire.CmdBlock:
		h.handleReceivedBlock(msg, peer)

	case wire.CmdNotFound:
		// the peer does not hold the item after all; the retry timeout
		// moves the request to the next candidate
		h.l.Debug("Peer reported NOTFOUND", slog.String("peer", peer.String()))

	default:
		// ignore other messages
	}
}

// OnSend handles outgoing messages depending on command type
func (h *InventoryHandler) OnSend(msg wire.Message, peer PeerI) {
	cmd := msg.Command()
	switch cmd {
	case wire.CmdGetData:
		h.l.Log(context.Background(), logger.LevelTrace, "Sent", logger.UpperString(commandKey, cmd), slog.String("peer", peer.String()))
	default:
		// ignore other messages
	}
}

func (h *InventoryHandler) handleReceivedInv(wireMsg wire.Message, peer PeerI) {
	msg, ok := wireMsg.(*wire.MsgInv)
	if !ok {
		return
	}

	for _, iv := range msg.InvList {
		switch iv.Type {
		case wire.InvTypeTx, wire.InvTypeBlock:
			h.scheduler.Announce(peer.ID(), peer, *iv)
		default:
			// ignore INV with error or other types
		}
	}
}

func (h *InventoryHandler) handleReceivedTx(wireMsg wire.Message, peer PeerI) {
	msg, ok := wireMsg.(*wire.MsgTx)
	if !ok {
		return
	}

	hash := msg.TxHash()
	iv := wire.InvVect{Type: wire.InvTypeTx, Hash: hash}

	var buf bytes.Buffer
	err := msg.Serialize(&buf)
	if err != nil {
		h.l.Error("Failed to serialize received TX", slog.String(hashKey, hash.String()), slog.String(errKey, err.Error()))
		return
	}

	h.l.Debug("Received TX", slog.String(hashKey, hash.String()), slog.String("peer", peer.String()))

	h.payloads.Put(iv, buf.Bytes())
	h.scheduler.Complete(iv)
}

func (h *InventoryHandler) handleReceivedBlock(wireMsg wire.Message, peer PeerI) {
	msg, ok := wireMsg.(*wire.MsgBlock)
	if !ok {
		return
	}

	hash := msg.Header.BlockHash()
	iv := wire.InvVect{Type: wire.InvTypeBlock, Hash: hash}

	var buf bytes.Buffer
	err := msg.Serialize(&buf)
	if err != nil {
		h.l.Error("Failed to serialize received block", slog.String(hashKey, hash.String()), slog.String(errKey, err.Error()))
		return
	}

	h.l.Debug("Received block", slog.String(hashKey, hash.String()), slog.String("peer", peer.String()))

	h.payloads.Put(iv, buf.Bytes())
	h.scheduler.Complete(iv)
}

package p2p

import (
	"github.com/libsv/go-p2p/wire"

	"github.com/rebroad/invsched/internal/askfor"
)

type PeerI interface {
	ID() askfor.PeerID
	Restart() (ok bool)
	Shutdown()
	Connected() bool
	Connect() bool
	IsUnhealthyCh() <-chan struct{}
	WriteMsg(msg wire.Message)
	Network() wire.BitcoinNet
	String() string
}

type MessageHandlerI interface {
	// OnReceive handles incoming messages depending on command type
	OnReceive(msg wire.Message, peer PeerI)
	// OnSend handles outgoing messages depending on command type
	OnSend(msg wire.Message, peer PeerI)
}

// RequestSchedulerI is the surface of the inventory-request scheduler driven
// by the p2p layer: the peer manager feeds it connection lifecycle, the
// inventory handler feeds it announcements and deliveries.
type RequestSchedulerI interface {
	Connect(peer askfor.PeerID)
	Disconnect(peer askfor.PeerID)
	Announce(peer askfor.PeerID, handle askfor.OutboundHandle, inv wire.InvVect)
	Complete(inv wire.InvVect)
}

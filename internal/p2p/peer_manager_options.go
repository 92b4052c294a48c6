package p2p

import (
	"time"

	"github.com/libsv/go-p2p/wire"
)

type PeerManagerOptions func(p *PeerManager)

func WithRestartUnhealthyPeers() PeerManagerOptions {
	return func(p *PeerManager) {
		p.restartUnhealthyPeers = true
	}
}

func WithRestartBackoff(d time.Duration) PeerManagerOptions {
	return func(p *PeerManager) {
		p.restartBackoff = d
	}
}

// SetExcessiveBlockSize sets global setting for block size
func SetExcessiveBlockSize(ebs uint64) {
	wire.SetLimits(ebs)
}

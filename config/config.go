package config

import (
	"time"
)

type InvschedConfig struct {
	LogLevel           string         `json:"logLevel" mapstructure:"logLevel"`
	LogFormat          string         `json:"logFormat" mapstructure:"logFormat"`
	ProfilerAddr       string         `json:"profilerAddr" mapstructure:"profilerAddr"`
	PrometheusAddr     string         `json:"prometheusAddr" mapstructure:"prometheusAddr"`
	PrometheusEndpoint string         `json:"prometheusEndpoint" mapstructure:"prometheusEndpoint"`
	Network            string         `json:"network" mapstructure:"network"`
	Peers              []*PeerConfig  `json:"peers" mapstructure:"peers"`
	AskFor             *AskForConfig  `json:"askfor" mapstructure:"askfor"`
	Payload            *PayloadConfig `json:"payload" mapstructure:"payload"`
}

type PeerConfig struct {
	Host string          `json:"host" mapstructure:"host"`
	Port *PeerPortConfig `json:"port" mapstructure:"port"`
}

type PeerPortConfig struct {
	P2P int `json:"p2p" mapstructure:"p2p"`
}

type AskForConfig struct {
	// RequestTimeout is how long a GETDATA may stay unanswered before the
	// item is requested from the next announcing peer.
	RequestTimeout time.Duration `json:"requestTimeout" mapstructure:"requestTimeout"`
	// MaxItemsPerPeer caps the outstanding items associated with one peer.
	MaxItemsPerPeer int `json:"maxItemsPerPeer" mapstructure:"maxItemsPerPeer"`
}

type PayloadConfig struct {
	TTL             time.Duration `json:"ttl" mapstructure:"ttl"`
	CleanupInterval time.Duration `json:"cleanupInterval" mapstructure:"cleanupInterval"`
}

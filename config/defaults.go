package config

import "time"

func getDefaultInvschedConfig() *InvschedConfig {
	return &InvschedConfig{
		LogLevel:           "INFO",
		LogFormat:          "text",
		ProfilerAddr:       "", // optional
		PrometheusAddr:     "", // optional
		PrometheusEndpoint: "/metrics",
		Network:            "regtest",
		Peers:              nil, // no default peers
		AskFor:             getDefaultAskForConfig(),
		Payload:            getDefaultPayloadConfig(),
	}
}

func getDefaultAskForConfig() *AskForConfig {
	return &AskForConfig{
		RequestTimeout:  2 * time.Minute,
		MaxItemsPerPeer: 5000,
	}
}

func getDefaultPayloadConfig() *PayloadConfig {
	return &PayloadConfig{
		TTL:             10 * time.Minute,
		CleanupInterval: 15 * time.Minute,
	}
}

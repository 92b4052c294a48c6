package main

import (
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	_ "net/http/pprof"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	cfg "github.com/rebroad/invsched/config"
	"github.com/rebroad/invsched/internal/askfor"
	"github.com/rebroad/invsched/internal/logger"
	"github.com/rebroad/invsched/internal/p2p"
	"github.com/rebroad/invsched/internal/payload"
)

// Version & commit strings injected at build with -ldflags -X...
var version string
var commit string

var rootCmd = &cobra.Command{
	Use:   "invsched",
	Short: "Inventory-request scheduler daemon for the Bitcoin p2p network",
	RunE: func(cmd *cobra.Command, _ []string) error {
		configDir, err := cmd.Flags().GetString("config")
		if err != nil {
			return err
		}

		return run(configDir)
	},
}

func main() {
	rootCmd.Flags().String("config", ".", "path to the directory holding the configuration yaml file")

	err := rootCmd.Execute()
	if err != nil {
		log.Fatalf("failed to run invsched: %v", err)
	}

	os.Exit(0)
}

func run(configDir string) error {
	invschedConfig, err := cfg.Load(configDir)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.NewLogger(invschedConfig.LogLevel, invschedConfig.LogFormat)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}

	l.Info("Starting invsched", slog.String("version", version), slog.String("commit", commit))

	shutdown, err := startDaemon(l, invschedConfig)
	if err != nil {
		return fmt.Errorf("failed to start daemon: %w", err)
	}

	// setup signal catching
	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, os.Interrupt, syscall.SIGTERM)

	<-signalChan

	l.Info("Shutting down...")
	shutdown()

	return nil
}

func startDaemon(l *slog.Logger, invschedConfig *cfg.InvschedConfig) (shutdownFn func(), err error) {
	network, err := cfg.GetNetwork(invschedConfig.Network)
	if err != nil {
		return nil, err
	}

	if invschedConfig.ProfilerAddr != "" {
		l.Info("Starting profiler", slog.String("addr", fmt.Sprintf("http://%s/debug/pprof", invschedConfig.ProfilerAddr)))

		go func() {
			profilerErr := http.ListenAndServe(invschedConfig.ProfilerAddr, nil)
			if profilerErr != nil {
				l.Error("Profiler stopped", slog.String("err", profilerErr.Error()))
			}
		}()
	}

	if invschedConfig.PrometheusAddr != "" {
		l.Info("Starting prometheus", slog.String("addr", invschedConfig.PrometheusAddr), slog.String("endpoint", invschedConfig.PrometheusEndpoint))

		promMux := http.NewServeMux()
		promMux.Handle(invschedConfig.PrometheusEndpoint, promhttp.Handler())

		go func() {
			promErr := http.ListenAndServe(invschedConfig.PrometheusAddr, promMux)
			if promErr != nil {
				l.Error("Prometheus server stopped", slog.String("err", promErr.Error()))
			}
		}()
	}

	if len(invschedConfig.Peers) == 0 {
		return nil, errors.New("no peers configured")
	}

	payloads := payload.NewStore(
		payload.WithExpiration(invschedConfig.Payload.TTL, invschedConfig.Payload.CleanupInterval),
	)

	scheduler := askfor.New(l,
		askfor.WithRequestTimeout(invschedConfig.AskFor.RequestTimeout),
		askfor.WithMaxItemsPerPeer(invschedConfig.AskFor.MaxItemsPerPeer),
	)
	scheduler.Start()

	invHandler := p2p.NewInventoryHandler(l, scheduler, payloads)
	peerManager := p2p.NewPeerManager(l, scheduler, network, p2p.WithRestartUnhealthyPeers())

	for _, peerCfg := range invschedConfig.Peers {
		peerURL, urlErr := peerCfg.GetP2PUrl()
		if urlErr != nil {
			return nil, urlErr
		}

		peer := p2p.NewPeer(l, invHandler, peerURL, network)
		if ok := peer.Connect(); !ok {
			l.Error("Failed to connect to peer", slog.String("address", peerURL))
		}

		addErr := peerManager.AddPeer(peer)
		if addErr != nil {
			return nil, addErr
		}
	}

	shutdownFn = func() {
		peerManager.Shutdown()
		scheduler.Shutdown()
	}

	return shutdownFn, nil
}

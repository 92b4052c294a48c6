package askfor

import (
	"sync/atomic"

	"github.com/prometheus/client_golang/prometheus"
)

type prometheusCollector struct {
	scheduler   *Scheduler
	requested   *prometheus.Desc
	retried     *prometheus.Desc
	exhausted   *prometheus.Desc
	completed   *prometheus.Desc
	outstanding *prometheus.Desc
	queueLength *prometheus.Desc
	peerCount   *prometheus.Desc
}

var collectorLoaded = atomic.Bool{}

func newPrometheusCollector(s *Scheduler) *prometheusCollector {
	if !collectorLoaded.CompareAndSwap(false, true) {
		return nil
	}

	c := &prometheusCollector{
		scheduler: s,
		requested: prometheus.NewDesc("invsched_askfor_requested",
			"Number of GETDATA requests sent",
			nil, nil,
		),
		retried: prometheus.NewDesc("invsched_askfor_retried",
			"Number of GETDATA requests sent after an earlier request for the item timed out",
			nil, nil,
		),
		exhausted: prometheus.NewDesc("invsched_askfor_exhausted",
			"Number of items given up on because no untried candidate peer remained",
			nil, nil,
		),
		completed: prometheus.NewDesc("invsched_askfor_completed",
			"Number of items whose payload arrived and was accepted",
			nil, nil,
		),
		outstanding: prometheus.NewDesc("invsched_askfor_outstanding",
			"Number of items currently in the request table",
			nil, nil,
		),
		queueLength: prometheus.NewDesc("invsched_askfor_queue_length",
			"Number of entries in the work queue",
			nil, nil,
		),
		peerCount: prometheus.NewDesc("invsched_askfor_peers",
			"Number of peers registered with the scheduler",
			nil, nil,
		),
	}

	prometheus.MustRegister(c)

	return c
}

// Describe writes all descriptors to the prometheus desc channel.
func (c *prometheusCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.requested
	ch <- c.retried
	ch <- c.exhausted
	ch <- c.completed
	ch <- c.outstanding
	ch <- c.queueLength
	ch <- c.peerCount
}

// Collect implements required collect function for all prometheus collectors
func (c *prometheusCollector) Collect(ch chan<- prometheus.Metric) {
	stats := c.scheduler.GetStats()

	ch <- prometheus.MustNewConstMetric(c.requested, prometheus.CounterValue, float64(stats.RequestedCount))
	ch <- prometheus.MustNewConstMetric(c.retried, prometheus.CounterValue, float64(stats.RetriedCount))
	ch <- prometheus.MustNewConstMetric(c.exhausted, prometheus.CounterValue, float64(stats.ExhaustedCount))
	ch <- prometheus.MustNewConstMetric(c.completed, prometheus.CounterValue, float64(stats.CompletedCount))
	ch <- prometheus.MustNewConstMetric(c.outstanding, prometheus.GaugeValue, float64(stats.OutstandingSize))
	ch <- prometheus.MustNewConstMetric(c.queueLength, prometheus.GaugeValue, float64(stats.QueueLength))
	ch <- prometheus.MustNewConstMetric(c.peerCount, prometheus.GaugeValue, float64(stats.PeerCount))
}

package metrics

import (
	"context"
	"math"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/smira/go-statsd"
	"github.com/spf13/viper"

	"github.com/thetatoken/checkpoints/checkpoint"
	"github.com/thetatoken/checkpoints/common"
	"github.com/thetatoken/checkpoints/common/util"
	"github.com/thetatoken/checkpoints/core"
)

const flushDuration time.Duration = time.Second * 10

// progressScale turns the verification progress into basis points, statsd
// gauges being integers.
const progressScale = 10000

var logger *log.Entry = util.GetLoggerForModule("metrics")

// ChainIndex is the chain index the reporter samples.
type ChainIndex interface {
	core.BlockIndex
	Tip() *core.BlockIndexNode
}

type statsdClient interface {
	Incr(stat string, count int64, tags ...statsd.Tag)
	Gauge(stat string, value int64, tags ...statsd.Tag)
	Close() error
}

// Reporter periodically sends checkpoint and sync metrics to a statsd server.
type Reporter struct {
	checker  *checkpoint.Checker
	index    ChainIndex
	client   statsdClient
	interval time.Duration

	// Life cycle
	wg     *sync.WaitGroup
	ctx    context.Context
	cancel context.CancelFunc
}

// NewReporter creates a Reporter for the statsd server configured in
// metrics.server. It returns nil if no server is configured.
func NewReporter(checker *checkpoint.Checker, index ChainIndex) *Reporter {
	mserver := viper.GetString(common.CfgMetricsServer)
	if mserver == "" {
		logger.Info("Metrics server is not configured")
		return nil
	}
	client := statsd.NewClient(mserver, statsd.MetricPrefix("theta."), statsd.FlushInterval(flushDuration))
	interval := time.Duration(viper.GetInt(common.CfgMetricsInterval)) * time.Second
	return newReporter(checker, index, client, interval)
}

func newReporter(checker *checkpoint.Checker, index ChainIndex, client statsdClient, interval time.Duration) *Reporter {
	if interval <= 0 {
		interval = flushDuration
	}
	return &Reporter{
		checker:  checker,
		index:    index,
		client:   client,
		interval: interval,
		wg:       &sync.WaitGroup{},
	}
}

// Start creates the reporting goroutine.
func (r *Reporter) Start(ctx context.Context) {
	c, cancel := context.WithCancel(ctx)
	r.ctx = c
	r.cancel = cancel

	r.wg.Add(1)
	go r.mainLoop()
}

func (r *Reporter) mainLoop() {
	defer r.wg.Done()

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	r.report()
	for {
		select {
		case <-r.ctx.Done():
			if err := r.client.Close(); err != nil {
				logger.WithFields(log.Fields{"err": err}).Warn("Failed to close statsd client")
			}
			return
		case <-ticker.C:
			r.report()
		}
	}
}

func (r *Reporter) report() {
	r.client.Incr(MHeartBeat, 1)
	r.client.Gauge(MCheckpointTotalBlocksEstimate, int64(r.checker.TotalBlocksEstimate()))

	if last := r.checker.LastCheckpoint(r.index); last != nil {
		r.client.Gauge(MCheckpointLastHeight, int64(last.Height))
	}

	tip := r.index.Tip()
	if tip == nil {
		r.client.Gauge(MCheckpointVerificationProgress, 0)
		return
	}
	progress := r.checker.GuessVerificationProgress(tip)
	r.client.Gauge(MChainTipHeight, int64(tip.Height))
	r.client.Gauge(MCheckpointVerificationProgress, int64(math.Round(progress*progressScale)))
}

// Stop notifies the reporting goroutine to stop without blocking.
func (r *Reporter) Stop() {
	r.cancel()
}

// Wait blocks until the reporting goroutine stops.
func (r *Reporter) Wait() {
	r.wg.Wait()
}

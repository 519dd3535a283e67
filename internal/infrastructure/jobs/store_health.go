package jobs

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"team-showcase.backend/pkg/logger"
)

// DefaultStoreHealthInterval is how often the store is pinged.
const DefaultStoreHealthInterval = 30 * time.Second

const pingTimeout = 5 * time.Second

// Pinger is the slice of the store the health job needs.
type Pinger interface {
	Ping(ctx context.Context) error
	Name() string
}

// StoreHealthJob pings the store on a fixed interval, exports the result as the
// team_showcase_store_up gauge and logs every change of connectivity.
type StoreHealthJob struct {
	store    Pinger
	interval time.Duration
	up       *prometheus.GaugeVec
	stop     chan struct{}
	stopOnce sync.Once
	done     chan struct{}
	last     *bool
}

func NewStoreHealthJob(store Pinger, interval time.Duration, reg prometheus.Registerer) *StoreHealthJob {
	if interval <= 0 {
		interval = DefaultStoreHealthInterval
	}
	up := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "team_showcase",
		Subsystem: "store",
		Name:      "up",
		Help:      "Whether the last ping of the configured store succeeded",
	}, []string{"backend"})
	if reg != nil {
		if err := reg.Register(up); err != nil {
			var are prometheus.AlreadyRegisteredError
			if errors.As(err, &are) {
				if existing, ok := are.ExistingCollector.(*prometheus.GaugeVec); ok {
					up = existing
				}
			}
		}
	}
	return &StoreHealthJob{
		store:    store,
		interval: interval,
		up:       up,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// Start blocks until ctx is cancelled or Stop is called. The first check runs
// immediately so the gauge is populated before the first scrape.
func (j *StoreHealthJob) Start(ctx context.Context) {
	defer close(j.done)
	logger.Info(ctx, "Starting store health job",
		zap.String("store", j.store.Name()),
		zap.Duration("interval", j.interval),
	)

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	j.check(ctx)
	for {
		select {
		case <-ctx.Done():
			logger.Info(context.Background(), "Store health job stopped (context cancelled)")
			return
		case <-j.stop:
			logger.Info(ctx, "Store health job stopped")
			return
		case <-ticker.C:
			j.check(ctx)
		}
	}
}

// Stop signals the job and waits until Start has returned, so no ping is in
// flight afterwards. It must only be called once Start has been launched.
func (j *StoreHealthJob) Stop() {
	j.stopOnce.Do(func() { close(j.stop) })
	<-j.done
}

func (j *StoreHealthJob) check(ctx context.Context) {
	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	err := j.store.Ping(pingCtx)
	cancel()
	if ctx.Err() != nil {
		return
	}

	ok := err == nil
	gauge := j.up.WithLabelValues(j.store.Name())
	if ok {
		gauge.Set(1)
	} else {
		gauge.Set(0)
	}

	if j.last != nil && *j.last == ok {
		return
	}
	first := j.last == nil
	j.last = &ok
	switch {
	case !ok:
		logger.Error(ctx, "Store unreachable", zap.String("store", j.store.Name()), zap.Error(err))
	case !first:
		logger.Info(ctx, "Store connection restored", zap.String("store", j.store.Name()))
	}
}

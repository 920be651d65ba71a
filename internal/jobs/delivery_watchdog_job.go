package jobs

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"eda/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const (
	DefaultWatchdogInterval = 10 * time.Second
	DefaultShutdownTimeout  = 15 * time.Second
)

var ErrJobAlreadyStarted = errors.New("job is already started")

type dueOrdersHandler interface {
	Handle(ctx context.Context, cmd commands.DeliverDueOrdersCommand) (commands.DeliverDueOrdersResult, error)
}

// DeliveryWatchdogJob runs the delivery sweep in a loop: one cycle at Start,
// then a full interval of sleep after each cycle ends before the next begins.
// Cycles never overlap.
type DeliveryWatchdogJob struct {
	handler         dueOrdersHandler
	interval        time.Duration
	shutdownTimeout time.Duration
	logger          *slog.Logger
	tracer          trace.Tracer
	chain           cron.Chain

	mu     sync.Mutex
	stop   chan struct{}
	done   chan struct{}
	cancel context.CancelFunc
}

func NewDeliveryWatchdogJob(
	handler dueOrdersHandler,
	interval, shutdownTimeout time.Duration,
	logger *slog.Logger,
) *DeliveryWatchdogJob {
	if interval <= 0 {
		interval = DefaultWatchdogInterval
	}
	if shutdownTimeout <= 0 {
		shutdownTimeout = DefaultShutdownTimeout
	}

	logger = logger.With("component", "delivery_watchdog_job")
	return &DeliveryWatchdogJob{
		handler:         handler,
		interval:        interval,
		shutdownTimeout: shutdownTimeout,
		logger:          logger,
		tracer:          otel.Tracer("eda/jobs"),
		chain:           cron.NewChain(cron.Recover(cronLogger{logger: logger})),
	}
}

// Start launches the loop. The first cycle begins immediately.
func (j *DeliveryWatchdogJob) Start() error {
	j.mu.Lock()
	defer j.mu.Unlock()

	if j.stop != nil {
		return ErrJobAlreadyStarted
	}

	baseCtx, cancel := context.WithCancel(context.Background())
	cycle := j.chain.Then(cron.FuncJob(func() {
		_, _ = j.RunOnce(baseCtx)
	}))

	j.stop, j.done, j.cancel = make(chan struct{}), make(chan struct{}), cancel
	go j.loop(cycle, j.stop, j.done)

	j.logger.Info("Delivery watchdog job started", "interval", j.interval.String())
	return nil
}

// loop runs cycle, then waits interval measured from the end of that cycle.
func (j *DeliveryWatchdogJob) loop(cycle cron.Job, stop <-chan struct{}, done chan<- struct{}) {
	defer close(done)

	timer := time.NewTimer(0)
	defer timer.Stop()

	for {
		select {
		case <-stop:
			return
		case <-timer.C:
		}

		cycle.Run()
		timer.Reset(j.interval)
	}
}

// RunOnce executes a single sweep and logs its outcome. Errors end here so a
// failed cycle never stops the schedule.
func (j *DeliveryWatchdogJob) RunOnce(ctx context.Context) (commands.DeliverDueOrdersResult, error) {
	ctx, span := j.tracer.Start(ctx, "DeliveryWatchdogJob.RunOnce")
	defer span.End()

	result, err := j.handler.Handle(ctx, commands.NewDeliverDueOrdersCommand())
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "delivery sweep failed")
		j.logger.ErrorContext(ctx, "Delivery sweep failed", "error", err)
		return result, err
	}

	span.SetAttributes(
		attribute.Int("orders.scanned", result.Scanned),
		attribute.Int("orders.delivered", result.Delivered),
		attribute.Int("orders.raced", result.Raced),
		attribute.Int("orders.skipped", result.Skipped),
	)

	if result.Delivered > 0 || result.Raced > 0 || result.Skipped > 0 {
		j.logger.InfoContext(ctx, "Delivery sweep finished",
			"delivered", result.Delivered,
			"raced", result.Raced,
			"skipped", result.Skipped,
			"scanned", result.Scanned,
			"now", result.Now,
		)
	} else {
		j.logger.DebugContext(ctx, "Nothing to deliver", "scanned", result.Scanned)
	}

	return result, nil
}

// Stop ends the loop and waits for an in-flight cycle up to the shutdown
// timeout, after which the cycle's context is cancelled.
func (j *DeliveryWatchdogJob) Stop() {
	j.mu.Lock()
	stop, done, cancel := j.stop, j.done, j.cancel
	j.stop, j.done, j.cancel = nil, nil, nil
	j.mu.Unlock()

	if stop == nil {
		return
	}

	close(stop)
	select {
	case <-done:
	case <-time.After(j.shutdownTimeout):
		j.logger.Warn("Delivery sweep did not finish before shutdown timeout", "timeout", j.shutdownTimeout.String())
	}
	cancel()

	j.logger.Info("Delivery watchdog job stopped")
}

// cronLogger routes cron's recovered panics to slog.
type cronLogger struct {
	logger *slog.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...any) {
	l.logger.Debug(msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.logger.Error(msg, append(keysAndValues, "error", err)...)
}

package audit

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/BruksfildServices01/service-marketplace/internal/logger"
)

type Event struct {
	ActorID      *uint
	ActorEmail   string
	Action       string
	ResourceType string
	ResourceID   *uint
	Details      any
}

// Recorder accepts audit events without ever failing the caller.
type Recorder interface {
	Dispatch(ev Event)
}

type writer interface {
	Log(ctx context.Context, ev Event) error
}

type Dispatcher struct {
	logger writer
	queue  chan Event
	done   chan struct{}

	mu     sync.RWMutex
	closed bool
}

func NewDispatcher(l writer) *Dispatcher {
	d := &Dispatcher{
		logger: l,
		queue:  make(chan Event, 100),
		done:   make(chan struct{}),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	defer close(d.done)

	for ev := range d.queue {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := d.logger.Log(ctx, ev); err != nil {
			logger.L().Error("audit write failed",
				slog.String("action", ev.Action),
				slog.Any("error", err),
			)
		}
		cancel()
	}
}

// Dispatch never blocks; a full queue drops the event.
func (d *Dispatcher) Dispatch(ev Event) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.closed {
		return
	}

	select {
	case d.queue <- ev:
	default:
		logger.L().Warn("audit queue full, dropping event", slog.String("action", ev.Action))
	}
}

// Close drains queued events and stops the worker.
func (d *Dispatcher) Close() {
	d.mu.Lock()
	if !d.closed {
		d.closed = true
		close(d.queue)
	}
	d.mu.Unlock()

	<-d.done
}

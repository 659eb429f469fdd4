package worker

import (
	"context"

	"github.com/okian/panelboard/internal/domain/model"
	"github.com/okian/panelboard/pkg/logger"
)

// Option applies a configuration option to the InMemoryWorker.
type Option func(*InMemoryWorker)

// ErrorHandler is told about every record a worker failed to store.
type ErrorHandler func(ctx context.Context, rec model.PanelRecord, err error)

// WithName sets the worker name for identification and logging.
func WithName(name string) Option {
	return func(w *InMemoryWorker) {
		if name != "" {
			w.name = name
		}
	}
}

// WithLogger sets a custom logger for the worker.
func WithLogger(l logger.Logger) Option {
	return func(w *InMemoryWorker) {
		if l != nil {
			w.logger = l
		}
	}
}

// WithErrorHandler registers a callback for records that could not be stored.
func WithErrorHandler(h ErrorHandler) Option {
	return func(w *InMemoryWorker) {
		if h != nil {
			w.onError = h
		}
	}
}

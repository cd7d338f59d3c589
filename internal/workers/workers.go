// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"sync"

	"github.com/MKhiriev/go-gambit/internal/logger"
)

type Workers struct {
	workers []Worker
	wg      sync.WaitGroup

	logger *logger.Logger
}

func NewWorkers(logger *logger.Logger, workers ...Worker) *Workers {
	return &Workers{workers: workers, logger: logger}
}

// Start runs every worker on its own goroutine. Errors are logged; a
// failing worker does not stop the others.
func (w *Workers) Start(ctx context.Context) {
	for _, worker := range w.workers {
		w.wg.Add(1)
		go func() {
			defer w.wg.Done()

			log := w.logger.WithComponent(worker.Name())
			log.Debug().Msg("worker started")

			err := worker.Run(ctx)
			if err != nil && !errors.Is(err, context.Canceled) {
				log.Err(err).Msg("worker stopped with error")
				return
			}
			log.Debug().Msg("worker stopped")
		}()
	}
}

// Wait blocks until every started worker has returned.
func (w *Workers) Wait() {
	w.wg.Wait()
}

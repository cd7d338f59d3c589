// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-gambit/internal/logger"
)

// DefaultReconnectDelay is the pause before the stream is opened again.
const DefaultReconnectDelay = 5 * time.Second

// StreamWorker feeds push notifications into the entitlement state and
// reopens the stream after it drops.
type StreamWorker struct {
	listener Listener
	pump     Pump

	reconnectDelay time.Duration

	logger *logger.Logger
}

func NewStreamWorker(listener Listener, pump Pump, logger *logger.Logger) *StreamWorker {
	return &StreamWorker{
		listener:       listener,
		pump:           pump,
		reconnectDelay: DefaultReconnectDelay,
		logger:         logger,
	}
}

func (s *StreamWorker) Name() string { return "entitlement-stream" }

// Run returns ctx.Err() once ctx is done.
func (s *StreamWorker) Run(ctx context.Context) error {
	for {
		if err := s.pump.Run(ctx, s.listener.Listen(ctx)); err != nil {
			return err
		}

		s.logger.Debug().Dur("delay", s.reconnectDelay).Msg("entitlement stream closed, reconnecting")

		t := time.NewTimer(s.reconnectDelay)
		select {
		case <-ctx.Done():
			t.Stop()
			return ctx.Err()
		case <-t.C:
		}
	}
}

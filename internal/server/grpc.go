// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"net"
	"sync"

	"google.golang.org/grpc"

	"github.com/MKhiriev/go-gambit/internal/config"
	myGRPC "github.com/MKhiriev/go-gambit/internal/handler/grpc"
	"github.com/MKhiriev/go-gambit/internal/logger"
)

type grpcServer struct {
	handler *myGRPC.Handler
	address string

	server *grpc.Server

	mu          sync.Mutex
	listener    net.Listener
	stopWatcher context.CancelFunc

	logger *logger.Logger
}

func newGRPCServer(handler *myGRPC.Handler, cfg config.Server, logger *logger.Logger) *grpcServer {
	server := grpc.NewServer()
	handler.Register(server)

	return &grpcServer{
		handler: handler,
		address: cfg.GRPCAddress,
		server:  server,
		logger:  logger,
	}
}

func (g *grpcServer) RunServer() {
	listener, err := net.Listen("tcp", g.address)
	if err != nil {
		g.logger.Err(err).Str("address", g.address).Msg("gRPC server Listen")
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	g.mu.Lock()
	g.listener = listener
	g.stopWatcher = cancel
	g.mu.Unlock()

	go g.handler.Watch(ctx)

	g.logger.Info().Str("address", listener.Addr().String()).Msg("gRPC server listening")
	if err = g.server.Serve(listener); err != nil {
		g.logger.Err(err).Msg("gRPC server Serve")
	}
}

// Addr is the bound address once RunServer is listening, or nil.
func (g *grpcServer) Addr() net.Addr {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.listener == nil {
		return nil
	}
	return g.listener.Addr()
}

func (g *grpcServer) Shutdown() {
	g.logger.Info().Msg("gRPC server Shutdown")

	g.mu.Lock()
	if g.stopWatcher != nil {
		g.stopWatcher()
	}
	g.mu.Unlock()

	g.server.GracefulStop()
}

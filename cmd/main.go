package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/bedandhome/pedidos/internal/auth"
	"github.com/bedandhome/pedidos/internal/config"
	"github.com/bedandhome/pedidos/internal/kafka"
	"github.com/bedandhome/pedidos/internal/logger"
	"github.com/bedandhome/pedidos/internal/repository"
	"github.com/bedandhome/pedidos/internal/server"
	"github.com/bedandhome/pedidos/internal/storage"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg := config.Load()
	log := logger.New()
	defer func() { _ = log.Sync() }()

	fileStorage := storage.NewFileStorage(cfg.DataFile, log)
	repo := repository.New(fileStorage, log)
	sessions := auth.NewSessions(auth.DefaultUsers())

	sinks := []server.Sink{server.LogSink{Logger: log}}
	var producer kafka.Producer
	if len(cfg.KafkaBrokers) > 0 {
		producer = kafka.NewWriterProducer(cfg.KafkaBrokers)
		sinks = append(sinks, server.KafkaSink{
			Producer: producer,
			Topic:    cfg.AuditTopic,
			Logger:   log,
		})
		log.Info("audit kafka sink enabled",
			zap.Strings("brokers", cfg.KafkaBrokers),
			zap.String("topic", cfg.AuditTopic))
	}

	audit := server.NewAuditManager(log, cfg.AuditWorkers, cfg.AuditBatchSize, cfg.AuditFlush, sinks...)
	srv := server.New(repo, sessions, log, audit)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return srv.Run(gctx, cfg.Port)
	})

	g.Go(func() error {
		<-gctx.Done()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		if producer != nil {
			return producer.Close()
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		log.Fatal("server exited with error", zap.Error(err))
	}
	log.Info("server gracefully stopped")
}

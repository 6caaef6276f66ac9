package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"google.golang.org/grpc"

	"lfss/api/grpcserver"
	pb "lfss/api/pb"
	"lfss/domain/sortedseq"
	"lfss/infra/kafka"
	"lfss/internal/config"
	"lfss/jobs/broadcaster"
	"lfss/service"
)

func main() {
	cfgPath := flag.String("config", "", "path to YAML config")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}

	// ---------------- Core ----------------

	seq := sortedseq.New(
		sortedseq.WithGrace(cfg.Grace()),
		sortedseq.WithPrewarm(cfg.Core.Prewarm),
	)
	defer seq.Close()

	// ---------------- Metrics ----------------

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	metrics := service.NewMetrics(reg, seq)

	// ---------------- Service ----------------

	svc := service.NewSeqService(seq, cfg.Core.OutboxSize, metrics)

	// ---------------- Background Jobs ----------------

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if cfg.Kafka.Enabled {
		bc, err := broadcaster.New(svc, cfg.Kafka.Brokers, cfg.Kafka.EventsTopic)
		if err != nil {
			log.Fatalf("broadcaster init failed: %v", err)
		}
		defer bc.Close()
		bc.Start(ctx)

		stats := kafka.NewProducer(cfg.Kafka.Brokers, cfg.Kafka.StatsTopic)
		defer stats.Close()

		go func() {
			ticker := time.NewTicker(cfg.StatsInterval())
			defer ticker.Stop()
			for {
				select {
				case <-ctx.Done():
					return
				case <-ticker.C:
					st := svc.Stats()
					payload, err := json.Marshal(st)
					if err != nil {
						continue
					}
					key := []byte(strconv.FormatUint(st.Published, 10))
					if err := stats.Send(ctx, key, payload); err != nil {
						log.Printf("[stats] publish failed: %v", err)
					}
				}
			}
		}()
	}

	if cfg.Server.MetricsAddr != "" {
		go func() {
			mux := http.NewServeMux()
			mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
			log.Printf("[metrics] serving on %s", cfg.Server.MetricsAddr)
			if err := http.ListenAndServe(cfg.Server.MetricsAddr, mux); err != nil {
				log.Printf("[metrics] server exited: %v", err)
			}
		}()
	}

	// ---------------- gRPC ----------------

	lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		log.Fatalf("listen failed: %v", err)
	}

	grpcSrv := grpc.NewServer()
	pb.RegisterSeqServiceServer(
		grpcSrv,
		grpcserver.NewServer(svc),
	)

	log.Printf("LFSS engine running on %s", cfg.Server.GRPCAddr)

	if err := grpcSrv.Serve(lis); err != nil {
		log.Fatalf("gRPC server exited: %v", err)
	}
}

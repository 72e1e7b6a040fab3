// Command healthcheck checks the gRPC health of a catalog instance, either at
// a fixed address or at one discovered through Consul.
package main

import (
	"context"
	"errors"
	"flag"
	"moviecatalog/internal/grpcutil"
	"moviecatalog/pkg/discovery/consul"
	"moviecatalog/pkg/logging"
	"os"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

var errNotServing = errors.New("not serving")

func main() {
	addr := flag.String("addr", "", "instance address; skips discovery when set")
	consulAddr := flag.String("consul", "localhost:8500", "Consul address")
	service := flag.String("service", "catalog", "service name")
	cert := flag.String("cert", "", "TLS certificate file")
	key := flag.String("key", "", "TLS key file")
	timeout := flag.Duration("timeout", 5*time.Second, "check timeout")
	flag.Parse()

	log, err := logging.New("healthcheck", true)
	if err != nil {
		panic(err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()
	if err := checkHealth(ctx, log, *addr, *consulAddr, *service, *cert, *key); err != nil {
		log.Error("Health check failed", zap.Error(err))
		cancel()
		os.Exit(1)
	}
}

func checkHealth(ctx context.Context, log *zap.Logger, addr, consulAddr, service, cert, key string) error {
	creds, err := grpcutil.TransportCredentials(cert, key)
	if err != nil {
		return err
	}
	var conn *grpc.ClientConn
	if addr != "" {
		conn, err = grpc.NewClient(addr, grpc.WithTransportCredentials(creds))
	} else {
		registry, rerr := consul.NewRegistry(consulAddr, log)
		if rerr != nil {
			return rerr
		}
		conn, err = grpcutil.ServiceConnection(ctx, service, registry, creds)
	}
	if err != nil {
		return err
	}
	defer conn.Close()

	res, err := healthpb.NewHealthClient(conn).Check(ctx, &healthpb.HealthCheckRequest{Service: service})
	if err != nil {
		return err
	}
	log.Info("Health status", zap.String("target", conn.Target()), zap.Stringer("status", res.Status))
	if res.Status != healthpb.HealthCheckResponse_SERVING {
		return errNotServing
	}
	return nil
}

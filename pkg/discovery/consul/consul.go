package consul

import (
	"context"
	"fmt"
	"moviecatalog/pkg/discovery"
	"moviecatalog/pkg/logging"
	"net"
	"strconv"

	consul "github.com/hashicorp/consul/api"
	"go.opentelemetry.io/otel"
	"go.uber.org/zap"
)

const tracerID = "discovery-consul"

// Registry defines a Consul-based service registry.
type Registry struct {
	client *consul.Client
	logger *zap.Logger
}

// NewRegistry creates a new Consul-based service registry instance.
func NewRegistry(addr string, logger *zap.Logger) (*Registry, error) {
	logger = logger.With(
		zap.String(logging.FieldComponent, "discovery"),
		zap.String(logging.FieldType, "consul"),
	)
	config := consul.DefaultConfig()
	config.Address = addr
	client, err := consul.NewClient(config)
	if err != nil {
		return nil, err
	}
	return &Registry{client: client, logger: logger}, nil
}

// Register creates a service record in the registry with a 5s TTL check.
func (r *Registry) Register(ctx context.Context, instanceID string, serviceName string, hostPort string) error {
	_, span := otel.Tracer(tracerID).Start(ctx, "Register")
	defer span.End()
	host, portStr, err := net.SplitHostPort(hostPort)
	if err != nil {
		return fmt.Errorf("hostPort must be in a form of <host>:<port>: %w", err)
	}
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return err
	}
	r.logger.Info("Registering service instance",
		zap.String("instance", instanceID),
		zap.String("name", serviceName),
		zap.String("address", hostPort),
	)
	return r.client.Agent().ServiceRegister(&consul.AgentServiceRegistration{
		Address: host,
		ID:      instanceID,
		Name:    serviceName,
		Port:    port,
		Check:   &consul.AgentServiceCheck{CheckID: instanceID, TTL: "5s"},
	})
}

// Deregister removes a service record from the registry.
func (r *Registry) Deregister(ctx context.Context, instanceID string, _ string) error {
	_, span := otel.Tracer(tracerID).Start(ctx, "Deregister")
	defer span.End()
	return r.client.Agent().ServiceDeregister(instanceID)
}

// ServiceAddresses returns the list of addresses of passing instances of the given service.
func (r *Registry) ServiceAddresses(ctx context.Context, serviceName string) ([]string, error) {
	_, span := otel.Tracer(tracerID).Start(ctx, "ServiceAddresses")
	defer span.End()
	entries, _, err := r.client.Health().Service(serviceName, "", true, (&consul.QueryOptions{}).WithContext(ctx))
	if err != nil {
		return nil, err
	} else if len(entries) == 0 {
		return nil, discovery.ErrNotFound
	}
	res := make([]string, 0, len(entries))
	for _, e := range entries {
		res = append(res, net.JoinHostPort(e.Service.Address, strconv.Itoa(e.Service.Port)))
	}
	return res, nil
}

// ReportHealthyState passes the TTL check of the instance.
func (r *Registry) ReportHealthyState(instanceID string, _ string) error {
	_, span := otel.Tracer(tracerID).Start(context.Background(), "ReportHealthyState")
	defer span.End()
	return r.client.Agent().UpdateTTL(instanceID, "", consul.HealthPassing)
}

// Acquire tries once to take the Consul lock at key. The returned function releases it.
func (r *Registry) Acquire(ctx context.Context, key string) (bool, func() error, error) {
	lock, err := r.client.LockOpts(&consul.LockOptions{Key: key, LockTryOnce: true})
	if err != nil {
		return false, nil, err
	}
	lost, err := lock.Lock(ctx.Done())
	if err != nil {
		return false, nil, err
	}
	if lost == nil {
		return false, nil, nil
	}
	r.logger.Debug("Acquired lock", zap.String(logging.FieldKey, key))
	return true, lock.Unlock, nil
}

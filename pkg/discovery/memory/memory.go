package memory

import (
	"context"
	"errors"
	"moviecatalog/pkg/discovery"
	"sync"
	"time"
)

// staleAfter is how long an instance stays active without a health report.
const staleAfter = 5 * time.Second

// Registry defines an in-memory service registry used by tests and the integration run.
type Registry struct {
	sync.RWMutex
	serviceAddrs map[string]map[string]*serviceInstance
	now          func() time.Time
}

type serviceInstance struct {
	hostPort   string
	lastActive time.Time
}

// NewRegistry creates a new in-memory service registry instance.
func NewRegistry() *Registry {
	return &Registry{
		serviceAddrs: make(map[string]map[string]*serviceInstance),
		now:          time.Now,
	}
}

// Register creates a service record in the registry.
func (r *Registry) Register(_ context.Context, instanceID string, serviceName string, hostPort string) error {
	r.Lock()
	defer r.Unlock()
	if _, ok := r.serviceAddrs[serviceName]; !ok {
		r.serviceAddrs[serviceName] = make(map[string]*serviceInstance)
	}
	r.serviceAddrs[serviceName][instanceID] = &serviceInstance{hostPort: hostPort, lastActive: r.now()}
	return nil
}

// Deregister removes a service record from the registry.
func (r *Registry) Deregister(_ context.Context, instanceID string, serviceName string) error {
	r.Lock()
	defer r.Unlock()
	delete(r.serviceAddrs[serviceName], instanceID)
	return nil
}

// ReportHealthyState refreshes the last activity time of an instance.
func (r *Registry) ReportHealthyState(instanceID string, serviceName string) error {
	r.Lock()
	defer r.Unlock()
	instances, ok := r.serviceAddrs[serviceName]
	if !ok {
		return errors.New("service is not registered yet")
	}
	i, ok := instances[instanceID]
	if !ok {
		return errors.New("instance " + instanceID + " of service " + serviceName + " is not registered yet")
	}
	i.lastActive = r.now()
	return nil
}

// ServiceAddresses returns addresses of instances that reported within the stale window.
func (r *Registry) ServiceAddresses(_ context.Context, serviceName string) ([]string, error) {
	r.RLock()
	defer r.RUnlock()
	var res []string
	cutoff := r.now().Add(-staleAfter)
	for _, i := range r.serviceAddrs[serviceName] {
		if i.lastActive.Before(cutoff) {
			continue
		}
		res = append(res, i.hostPort)
	}
	if len(res) == 0 {
		return nil, discovery.ErrNotFound
	}
	return res, nil
}

// Package health reports whether the service's backing stores are reachable,
// over HTTP and the standard gRPC health protocol.
package health

import (
	"context"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/bizlink/internal/logger"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// ServiceName is the gRPC service name reported alongside the overall ("") status.
const ServiceName = "bizlink"

// Status values reported per probe.
const (
	StatusUp   = "up"
	StatusDown = "down"
)

// Probe checks one dependency.
type Probe struct {
	Name  string
	Check func(ctx context.Context) error
}

// MongoProbe pings the primary.
func MongoProbe(client *mongo.Client) Probe {
	return Probe{
		Name: "mongo",
		Check: func(ctx context.Context) error {
			return client.Ping(ctx, readpref.Primary())
		},
	}
}

// RedisProbe pings the lock store.
func RedisProbe(client *redis.Client) Probe {
	return Probe{
		Name: "redis",
		Check: func(ctx context.Context) error {
			return client.Ping(ctx).Err()
		},
	}
}

// Checker runs probes and mirrors the result into a gRPC health server.
type Checker struct {
	probes  []Probe
	timeout time.Duration
	server  *health.Server
}

// NewChecker creates a new Checker. Each probe run is bounded by timeout.
func NewChecker(timeout time.Duration, probes ...Probe) *Checker {
	return &Checker{
		probes:  probes,
		timeout: timeout,
		server:  health.NewServer(),
	}
}

// Server returns the gRPC health server kept in step with Check.
func (c *Checker) Server() *health.Server {
	return c.server
}

// Check runs every probe concurrently and reports each one's status.
// ok is false when any probe failed.
func (c *Checker) Check(ctx context.Context) (statuses map[string]string, ok bool) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	statuses = make(map[string]string, len(c.probes))
	ok = true

	var mu sync.Mutex
	var wg sync.WaitGroup
	for _, p := range c.probes {
		wg.Add(1)
		go func(p Probe) {
			defer wg.Done()
			err := p.Check(ctx)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				logger.Log.Warnw("health probe failed", "probe", p.Name, "error", err)
				statuses[p.Name] = StatusDown
				ok = false
				return
			}
			statuses[p.Name] = StatusUp
		}(p)
	}
	wg.Wait()

	serving := healthpb.HealthCheckResponse_SERVING
	if !ok {
		serving = healthpb.HealthCheckResponse_NOT_SERVING
	}
	c.server.SetServingStatus("", serving)
	c.server.SetServingStatus(ServiceName, serving)

	return statuses, ok
}

// Run re-checks every interval until ctx is done, then marks the service as shutting down.
func (c *Checker) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	c.Check(ctx)
	for {
		select {
		case <-ctx.Done():
			c.server.Shutdown()
			return
		case <-ticker.C:
			c.Check(ctx)
		}
	}
}

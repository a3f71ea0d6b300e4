package testutils

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/redis/go-redis/v9"
)

// StartRedis runs a throwaway Redis container for the calling test and
// returns a connected client. The container is purged on test cleanup.
func StartRedis(t *testing.T) *redis.Client {
	t.Helper()

	pool, err := dockertest.NewPool("")
	if err != nil {
		t.Fatalf("could not connect to docker: %v", err)
	}

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "redis",
		Tag:        "7-alpine",
	}, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
		hc.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		t.Fatalf("could not start redis: %v", err)
	}
	t.Cleanup(func() {
		if err := pool.Purge(resource); err != nil {
			t.Logf("WARN: could not purge redis: %v", err)
		}
	})

	client := redis.NewClient(&redis.Options{
		Addr: fmt.Sprintf("127.0.0.1:%s", resource.GetPort("6379/tcp")),
	})

	pool.MaxWait = time.Minute
	if err := pool.Retry(func() error {
		return client.Ping(context.Background()).Err()
	}); err != nil {
		t.Fatalf("redis not ready: %v", err)
	}
	t.Cleanup(func() { _ = client.Close() })

	return client
}

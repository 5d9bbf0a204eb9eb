package discovery

import (
	"context"
	"net"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func listen(t *testing.T) (host string, port int, cleanup func()) {
	t.Helper()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	go func() {
		for {
			conn, err := ln.Accept()
			if err != nil {
				return
			}

			_ = conn.Close()
		}
	}()

	host, portStr, err := net.SplitHostPort(ln.Addr().String())
	require.NoError(t, err)

	port, err = strconv.Atoi(portStr)
	require.NoError(t, err)

	return host, port, func() { _ = ln.Close() }
}

func TestTCPScanner_OpenPort(t *testing.T) {
	host, port, cleanup := listen(t)
	defer cleanup()

	scanner := NewTCPScanner(time.Second, 4, 0)
	defer func() { _ = scanner.Stop() }()

	results, err := scanner.Scan(context.Background(), []Target{{Host: host, Port: port}})
	require.NoError(t, err)

	var got []Result
	for r := range results {
		got = append(got, r)
	}

	require.Len(t, got, 1)
	assert.True(t, got[0].Available)
	assert.NoError(t, got[0].Error)
	assert.Greater(t, got[0].RespTime, time.Duration(0))
}

func TestTCPScanner_ClosedPort(t *testing.T) {
	host, port, cleanup := listen(t)
	cleanup() // Close immediately so the port refuses connections.

	scanner := NewTCPScanner(500*time.Millisecond, 4, 0)
	defer func() { _ = scanner.Stop() }()

	results, err := scanner.Scan(context.Background(), []Target{{Host: host, Port: port}})
	require.NoError(t, err)

	var got []Result
	for r := range results {
		got = append(got, r)
	}

	require.Len(t, got, 1)
	assert.False(t, got[0].Available)
	assert.Error(t, got[0].Error)
}

func TestTCPScanner_StopIsIdempotent(t *testing.T) {
	scanner := NewTCPScanner(time.Second, 4, 0)

	require.NoError(t, scanner.Stop())
	require.NoError(t, scanner.Stop())
}

func TestTCPScanner_ScansAllTargets(t *testing.T) {
	host, port, cleanup := listen(t)
	defer cleanup()

	targets := make([]Target, 0, 10)
	for i := 0; i < 10; i++ {
		targets = append(targets, Target{Host: host, Port: port})
	}

	scanner := NewTCPScanner(time.Second, 3, 100)
	defer func() { _ = scanner.Stop() }()

	results, err := scanner.Scan(context.Background(), targets)
	require.NoError(t, err)

	count := 0
	for range results {
		count++
	}

	assert.Equal(t, len(targets), count)
}

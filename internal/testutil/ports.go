// Package testutil holds helpers shared by integration tests.
package testutil

import (
	"net"
	"strconv"
	"sync"
	"testing"
)

var (
	portMutex sync.Mutex
	usedPorts = make(map[int]struct{})
)

// GetRandomPort returns a free TCP port that no other caller in this test binary has received.
func GetRandomPort(t *testing.T) int {
	t.Helper()

	portMutex.Lock()
	defer portMutex.Unlock()

	for {
		listener, err := net.Listen("tcp", "127.0.0.1:0")
		if err != nil {
			t.Fatalf("Failed to get random port: %v", err)
		}
		p := listener.Addr().(*net.TCPAddr).Port
		if err := listener.Close(); err != nil {
			t.Fatalf("Failed to close listener: %v", err)
		}

		if _, taken := usedPorts[p]; taken {
			continue
		}
		usedPorts[p] = struct{}{}
		return p
	}
}

// GetRandomListeningPort returns "127.0.0.1:<port>" for a free port
func GetRandomListeningPort(t *testing.T) string {
	t.Helper()
	return net.JoinHostPort("127.0.0.1", strconv.Itoa(GetRandomPort(t)))
}

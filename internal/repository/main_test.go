//go:build integration
// +build integration

package repository

import (
	"os"
	"os/signal"
	"syscall"
	"testing"

	"workflow-portal-backend/internal/testutils"
)

// TestMain purges the shared Postgres container when the run ends or is interrupted
func TestMain(m *testing.M) {
	interrupted := make(chan os.Signal, 1)
	signal.Notify(interrupted, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-interrupted
		testutils.CleanupSharedContainer()
		os.Exit(1)
	}()

	code := m.Run()
	testutils.CleanupSharedContainer()
	os.Exit(code)
}

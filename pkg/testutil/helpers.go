// Package testutil provides common utility functions for testing.
package testutil

import (
	"io"
	"os"
	"testing"

	"github.com/structcred/abf-portal/internal/projector"
)

// CaptureOutput redirects stdout while fn runs and returns what was written.
func CaptureOutput(t *testing.T, fn func()) string {
	t.Helper()

	original := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("failed to create pipe: %v", err)
	}
	os.Stdout = w

	done := make(chan string)
	go func() {
		data, _ := io.ReadAll(r)
		done <- string(data)
	}()

	fn()

	_ = w.Close()
	os.Stdout = original
	return <-done
}

// FindResult finds a projection result by scenario name.
// Returns a pointer to the result if found, nil otherwise.
func FindResult(results []projector.Result, name string) *projector.Result {
	for i := range results {
		if results[i].Scenario == name {
			return &results[i]
		}
	}
	return nil
}

// Package baselinetest lets a Go test assert that a fixture corpus still
// matches its baselines.
package baselinetest

import (
	"context"
	"testing"

	"github.com/sqlskim/baseline/internal/application"
)

// Assert runs the whole batch and fails t with the rendered report when any
// fixture failed. A missing fixture directory fails t immediately.
func Assert(t testing.TB, svc *application.BaselineService) {
	t.Helper()

	batch, err := svc.Run(context.Background())
	if err != nil {
		t.Fatalf("running baselines: %v", err)
		return
	}
	if !batch.Passed() {
		t.Fatalf("%d of %d fixtures did not match their baselines:\n%s",
			len(batch.Failures), len(batch.Fixtures), batch.Text)
	}
}

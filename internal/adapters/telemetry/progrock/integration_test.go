package progrock_test

import (
	"context"
	"errors"
	"testing"

	"go.trai.ch/fresh/internal/adapters/telemetry/progrock"
	"go.trai.ch/fresh/internal/core/domain"
)

func TestRecorder_Integration(t *testing.T) {
	// 1. Initialize the Recorder
	recorder := progrock.New()

	// 2. Start an import
	ctx := context.Background()
	_, v := recorder.Record(ctx, "import \"conf/*.yaml\"")
	vertex, ok := v.(*progrock.Vertex)
	if !ok {
		t.Fatalf("unexpected vertex type %T", v)
	}

	// 3. Write to Stdout
	if _, err := vertex.Stdout().Write([]byte("Standard Output\n")); err != nil {
		t.Errorf("failed to write to stdout: %v", err)
	}

	// 4. Log a debug message
	vertex.Log(domain.LogLevelDebug, "debug msg")

	// 5. Complete the vertex with a failure
	vertex.Complete(errors.New("load failed"))

	// 6. Close the recorder
	if err := recorder.Close(); err != nil {
		t.Errorf("failed to close recorder: %v", err)
	}
}

package progrock_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/fresh/internal/adapters/telemetry/progrock"
	"go.trai.ch/fresh/internal/core/ports"
)

func TestNew(t *testing.T) {
	recorder := progrock.New()
	assert.NotNil(t, recorder)
}

func TestRecorder_RecordAttachesVertex(t *testing.T) {
	recorder := progrock.New()

	ctx, vertex := recorder.Record(context.Background(), "import \"app.yaml\"")
	require.NotNil(t, vertex)
	assert.Same(t, vertex, ports.VertexFromContext(ctx))

	_, again := recorder.Record(context.Background(), "import \"app.yaml\"")
	assert.NotSame(t, vertex, again)

	vertex.Complete(nil)
	again.Cached()
	again.Complete(nil)
	require.NoError(t, recorder.Close())
}

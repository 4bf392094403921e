// Package progrock provides the Progrock implementation of the telemetry adapter.
package progrock

import (
	"context"
	"os"

	"github.com/opencontainers/go-digest"
	"github.com/vito/progrock"
	"go.trai.ch/bdroads/internal/core/ports"
)

// Recorder implements the ports.Telemetry interface on a progrock recorder.
type Recorder struct {
	rec *progrock.Recorder
}

// New creates a new Recorder printing a stage summary to stderr on Close.
func New() *Recorder {
	return NewRecorder(NewSummary(os.Stderr))
}

// NewRecorder creates a new Recorder with the given writer.
func NewRecorder(w progrock.Writer) *Recorder {
	return &Recorder{
		rec: progrock.NewRecorder(w),
	}
}

// Record starts recording a new vertex. Vertices are keyed by name, so
// recording the same stage twice updates a single vertex.
func (r *Recorder) Record(ctx context.Context, name string) (context.Context, ports.Vertex) {
	v := &Vertex{
		name:   name,
		vertex: r.rec.Vertex(digest.FromString(name), name),
	}
	return ports.ContextWithVertex(ctx, v), v
}

// Close completes the recording session and closes the writer.
func (r *Recorder) Close() error {
	r.rec.Complete()
	return r.rec.Close()
}

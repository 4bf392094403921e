package progrock

import (
	"bytes"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/muesli/termenv"
	"github.com/vito/progrock"
	"go.trai.ch/bdroads/internal/ui/output"
	"go.trai.ch/bdroads/internal/ui/style"
)

// Summary is a progrock.Writer that collects vertex updates and prints one
// line per stage, followed by the stage's warnings, when it is closed.
type Summary struct {
	mu       sync.Mutex
	out      io.Writer
	order    []string
	vertices map[string]*progrock.Vertex
	warnings map[string]*bytes.Buffer
	closed   bool
}

// NewSummary creates a Summary printing to w.
func NewSummary(w io.Writer) *Summary {
	return &Summary{
		out:      w,
		vertices: make(map[string]*progrock.Vertex),
		warnings: make(map[string]*bytes.Buffer),
	}
}

// WriteStatus records the latest state of every vertex and its stderr output.
func (s *Summary) WriteStatus(u *progrock.StatusUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, v := range u.Vertexes {
		if _, ok := s.vertices[v.Id]; !ok {
			s.order = append(s.order, v.Id)
		}
		s.vertices[v.Id] = v
	}

	for _, l := range u.Logs {
		if l.Stream != progrock.LogStream_STDERR {
			continue
		}
		buf, ok := s.warnings[l.Vertex]
		if !ok {
			buf = &bytes.Buffer{}
			s.warnings[l.Vertex] = buf
		}
		buf.Write(l.Data)
	}

	return nil
}

// Close prints the summary. Nothing is printed when no stage was recorded.
func (s *Summary) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed || len(s.order) == 0 {
		s.closed = true
		return nil
	}
	s.closed = true

	out := output.New(s.out)

	var b strings.Builder
	b.WriteString("\n" + output.Bold(out, "Stages") + "\n")
	for _, id := range s.order {
		b.WriteString("  " + stageLine(out, s.vertices[id]) + "\n")

		buf, ok := s.warnings[id]
		if !ok {
			continue
		}
		for _, line := range strings.Split(strings.TrimRight(buf.String(), "\n"), "\n") {
			b.WriteString("      " + line + "\n")
		}
	}

	_, err := io.WriteString(s.out, b.String())
	return err
}

func stageLine(out *termenv.Output, v *progrock.Vertex) string {
	switch {
	case v.Error != nil:
		return output.Paint(out, style.Cross, style.Red) + " " + v.Name + ": " + *v.Error
	case v.Canceled:
		return output.Paint(out, style.Cross, style.Yellow) + " " + v.Name + " (canceled)"
	case v.Completed == nil:
		return output.Paint(out, style.Circle, style.Slate) + " " + v.Name + " (unfinished)"
	case v.Cached:
		return output.Paint(out, style.Check, style.Teal) + " " + v.Name + " (cached)"
	}

	line := output.Paint(out, style.Check, style.Green) + " " + v.Name
	if v.Started != nil {
		d := v.Completed.AsTime().Sub(v.Started.AsTime()).Round(time.Millisecond)
		line += " " + output.Paint(out, d.String(), style.Slate)
	}
	return line
}

package logger_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/bdroads/internal/adapters/logger"
	"go.trai.ch/zerr"
)

func messages(entries []logger.ErrorEntry) []string {
	var out []string
	for _, e := range entries {
		out = append(out, e.Message)
	}
	return out
}

func TestCollectErrorEntries(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		wantMessages []string
	}{
		{
			name:         "single standard error",
			err:          errors.New("simple error"),
			wantMessages: []string{"simple error"},
		},
		{
			name:         "zerr single error",
			err:          zerr.New("zerr error"),
			wantMessages: []string{"zerr error"},
		},
		{
			name: "zerr wrapped chain",
			err: zerr.Wrap(
				zerr.Wrap(
					errors.New("connection reset by peer"),
					"failed to query overpass",
				),
				"failed to download road network",
			),
			wantMessages: []string{
				"failed to download road network",
				"failed to query overpass",
				"connection reset by peer",
			},
		},
		{
			name: "joined classification",
			err: errors.Join(
				zerr.New("download failed"),
				zerr.Wrap(errors.New("i/o timeout"), "overpass request failed"),
			),
			wantMessages: []string{
				"download failed",
				"overpass request failed",
				"i/o timeout",
			},
		},
		{
			name: "join inside wrap",
			err: zerr.Wrap(
				errors.Join(zerr.New("cache entry is corrupt"), errors.New("unexpected EOF")),
				"failed to load graph",
			),
			wantMessages: []string{
				"failed to load graph",
				"cache entry is corrupt",
				"unexpected EOF",
			},
		},
		{
			name:         "nil error handling",
			err:          nil,
			wantMessages: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries := logger.CollectErrorEntries(tt.err)
			assert.Equal(t, tt.wantMessages, messages(entries))
		})
	}
}

func TestFormatErrorEntries(t *testing.T) {
	tests := []struct {
		name    string
		entries []logger.ErrorEntry
		want    string
	}{
		{
			name:    "single entry",
			entries: []logger.ErrorEntry{{Message: "single error"}},
			want:    "Error: single error",
		},
		{
			name: "two entries with caused by",
			entries: []logger.ErrorEntry{
				{Message: "download failed"},
				{Message: "i/o timeout"},
			},
			want: "Error: download failed\n\n  Caused by:\n    → i/o timeout",
		},
		{
			name: "three entries",
			entries: []logger.ErrorEntry{
				{Message: "first"},
				{Message: "second"},
				{Message: "third"},
			},
			want: "Error: first\n\n  Caused by:\n    → second\n    → third",
		},
		{
			name: "metadata on main error",
			entries: []logger.ErrorEntry{
				{Message: "failed to persist artifact", Metadata: map[string]any{"kind": "graph"}},
			},
			want: "Error: failed to persist artifact\n       kind: graph",
		},
		{
			name: "metadata on cause",
			entries: []logger.ErrorEntry{
				{Message: "main"},
				{Message: "cause", Metadata: map[string]any{"path": "data_cache/road_graph.json.br"}},
			},
			want: "Error: main\n\n  Caused by:\n    → cause\n      path: data_cache/road_graph.json.br",
		},
		{
			name:    "multiline message",
			entries: []logger.ErrorEntry{{Message: "line1\nline2"}},
			want:    "Error: line1\n       line2",
		},
		{
			name: "multiline cause message",
			entries: []logger.ErrorEntry{
				{Message: "main"},
				{Message: "cause line1\ncause line2"},
			},
			want: "Error: main\n\n  Caused by:\n    → cause line1\n      cause line2",
		},
		{
			name:    "empty entries",
			entries: []logger.ErrorEntry{},
			want:    "",
		},
		{
			name: "metadata sorted alphabetically",
			entries: []logger.ErrorEntry{
				{Message: "error", Metadata: map[string]any{"zebra": "z", "alpha": "a", "mike": "m"}},
			},
			want: "Error: error\n       alpha: a\n       mike: m\n       zebra: z",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, logger.FormatErrorEntries(tt.entries))
		})
	}
}

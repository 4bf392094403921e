package cache

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/andybalholm/brotli"
	"github.com/cespare/xxhash/v2"
	"go.trai.ch/bdroads/internal/core/domain"
	"go.trai.ch/zerr"
)

const (
	schemaName    = "bdroads.artifact"
	schemaVersion = 1
)

// envelope is the self-describing wrapper written around every artifact payload.
type envelope struct {
	Schema    string              `json:"schema"`
	Version   int                 `json:"version"`
	Kind      domain.ArtifactKind `json:"kind"`
	CreatedAt time.Time           `json:"created_at"`
	Checksum  string              `json:"checksum"`
	Payload   json.RawMessage     `json:"payload"`
}

func checksum(payload []byte) string {
	return fmt.Sprintf("%016x", xxhash.Sum64(payload))
}

// encode serializes v into a brotli-compressed envelope.
func encode(kind domain.ArtifactKind, v any, createdAt time.Time) ([]byte, error) {
	payload, err := json.Marshal(v)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to marshal artifact payload")
	}

	data, err := json.Marshal(envelope{
		Schema:    schemaName,
		Version:   schemaVersion,
		Kind:      kind,
		CreatedAt: createdAt.UTC(),
		Checksum:  checksum(payload),
		Payload:   payload,
	})
	if err != nil {
		return nil, zerr.Wrap(err, "failed to marshal artifact envelope")
	}

	var buf bytes.Buffer
	w := brotli.NewWriterLevel(&buf, brotli.DefaultCompression)
	if _, err := w.Write(data); err != nil {
		_ = w.Close()
		return nil, zerr.Wrap(err, "failed to compress artifact")
	}
	if err := w.Close(); err != nil {
		return nil, zerr.Wrap(err, "failed to flush compressed artifact")
	}

	return buf.Bytes(), nil
}

// decode validates the envelope in data and unmarshals its payload into out.
// Every failure means the file is not a usable artifact of the given kind.
func decode(kind domain.ArtifactKind, data []byte, out any) error {
	raw, err := io.ReadAll(brotli.NewReader(bytes.NewReader(data)))
	if err != nil {
		return zerr.Wrap(err, "failed to decompress artifact")
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return zerr.Wrap(err, "failed to unmarshal artifact envelope")
	}

	switch {
	case env.Schema != schemaName:
		return zerr.With(zerr.New("unexpected artifact schema"), "schema", env.Schema)
	case env.Version != schemaVersion:
		return zerr.With(zerr.New("unsupported artifact version"), "version", env.Version)
	case env.Kind != kind:
		return zerr.With(zerr.New("artifact kind mismatch"), "kind", string(env.Kind))
	case len(env.Payload) == 0 || bytes.Equal(env.Payload, []byte("null")):
		return zerr.New("artifact payload is empty")
	case env.Checksum != checksum(env.Payload):
		return zerr.With(zerr.New("artifact checksum mismatch"), "checksum", env.Checksum)
	}

	if err := json.Unmarshal(env.Payload, out); err != nil {
		return zerr.Wrap(err, "failed to unmarshal artifact payload")
	}

	return nil
}

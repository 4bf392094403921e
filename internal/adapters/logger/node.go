package logger

import (
	"context"
	"os"
	"strings"

	"github.com/grindlemire/graft"
	"go.trai.ch/bdroads/internal/core/ports"
)

// NodeID is the unique identifier for the logger Graft node.
const NodeID graft.ID = "adapter.logger"

// FormatEnv selects the log format; "json" enables structured output.
const FormatEnv = "BDROADS_LOG_FORMAT"

func init() {
	graft.Register(graft.Node[ports.Logger]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Logger, error) {
			lg := New()
			if strings.EqualFold(os.Getenv(FormatEnv), "json") {
				lg.(*Logger).SetJSON(true)
			}
			return lg, nil
		},
	})
}

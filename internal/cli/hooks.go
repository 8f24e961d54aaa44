package cli

import (
	"github.com/charmbracelet/log"

	"github.com/avendt/policygraph/pkg/graph/op"
)

// logHooks forwards graph evaluation events to a logger at debug level.
// Registered by the simulate command so --verbose exposes exactly which
// nodes recompute on each tick and how far invalidation waves travel.
type logHooks struct {
	logger *log.Logger
}

func (h *logHooks) OnCacheHit(node int) {
	h.logger.Debug("cache hit", "node", node)
}

func (h *logHooks) OnEvaluate(node, opIndex, fanIn int) {
	h.logger.Debug("evaluate", "node", node, "op", op.Kind(opIndex).String(), "fanin", fanIn)
}

func (h *logHooks) OnInvalidate(origin, marked int) {
	h.logger.Debug("invalidate", "origin", origin, "marked", marked)
}

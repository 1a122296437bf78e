package scene

import "time"

// debugStats holds per-frame timing and draw-call metrics.
// Only populated when Scene.debug is true.
type debugStats struct {
	traverseTime time.Duration
	sortTime     time.Duration
	submitTime   time.Duration
	commandCount int
	batchCount   int
	nodeCount    int
}

// debugLog writes timing and draw-call stats to the scene logger.
func (s *Scene) debugLog(stats debugStats) {
	if !s.debug {
		return
	}
	total := stats.traverseTime + stats.sortTime + stats.submitTime
	s.log.Debug("frame",
		"traverse", stats.traverseTime,
		"sort", stats.sortTime,
		"submit", stats.submitTime,
		"total", total,
		"nodes", stats.nodeCount,
		"commands", stats.commandCount,
		"batches", stats.batchCount,
	)
}

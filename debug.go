package twig

import (
	"fmt"
	"os"
	"time"
)

// debugStats holds per-update timing and traversal metrics.
// Only populated when the Ui is in debug mode.
type debugStats struct {
	dispatchTime time.Duration
	hoverTime    time.Duration
	renderTime   time.Duration
	shapeCount   int
	eventCount   int
	visited      int
	chainLen     int
	treeDepth    int
	openGuards   int
}

// debugMaxTreeDepth is the depth past which a warning is printed.
const debugMaxTreeDepth = 32

// debugLog prints timing and traversal stats to stderr.
func (u *Ui[E, C]) debugLog(stats debugStats) {
	if !u.debug {
		return
	}
	total := stats.dispatchTime + stats.hoverTime + stats.renderTime
	_, _ = fmt.Fprintf(os.Stderr,
		"[twig] update %d | dispatch: %v | hover: %v | render: %v | total: %v\n",
		u.updates, stats.dispatchTime, stats.hoverTime, stats.renderTime, total)
	_, _ = fmt.Fprintf(os.Stderr,
		"[twig] shapes: %d | events: %d | visited: %d | hover chain: %d | pointer: (%.3f, %.3f)\n",
		stats.shapeCount, stats.eventCount, stats.visited, stats.chainLen, u.pointer.X, u.pointer.Y)
	debugCheckTreeDepth(stats.treeDepth)
	if stats.openGuards > 0 {
		_, _ = fmt.Fprintf(os.Stderr,
			"[twig] warning: update with %d unreleased MainComponentRef(s)\n", stats.openGuards)
	}
}

// debugCheckTreeDepth warns on stderr if tree depth exceeds the threshold.
func debugCheckTreeDepth(depth int) {
	if depth > debugMaxTreeDepth {
		_, _ = fmt.Fprintf(os.Stderr, "[twig] warning: tree depth %d exceeds %d\n",
			depth, debugMaxTreeDepth)
	}
}

// Package lexsource adapts text buffers to the scan.Source contract.
//
// Rope reads straight out of a rope.View without flattening it. Fixed-width
// reads are served from the single internal chunk that holds the requested
// offset; a window that would cross into the next chunk is reported as
// absent, never assembled. Scanners are expected to retry such reads at a
// narrower width, which keeps the read path free of allocation and copying
// beyond the window itself.
//
// Bytes implements the same contract over contiguous memory.
//
// Both types are small read-only values. They may be copied and shared
// between goroutines freely; a Rope source stays valid for as long as it is
// reachable because ropes are persistent.
package lexsource

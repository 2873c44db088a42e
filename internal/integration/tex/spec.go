package tex

import "time"

const (
	// DefaultEngine is used when neither flag nor config names one.
	DefaultEngine = "pdflatex"

	// Large documents with many included figures can legitimately take a
	// while; the timeout guards against engines stuck at an interactive
	// prompt despite nonstop mode.
	timeout = 120 * time.Second
)

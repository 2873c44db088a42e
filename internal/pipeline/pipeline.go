// Package pipeline feeds merged transcript lines through the ordered category
// chain. Classification is FIRST-MATCH-WINS: several category patterns
// overlap, so only the highest-priority matching handler claims a line.
package pipeline

import (
	"github.com/texsieve/texsieve/internal/logparse"
	"github.com/texsieve/texsieve/internal/rules"
)

// Pipeline owns the handler chain for one classification pass. It is built
// fresh per compiler invocation and never reused.
type Pipeline struct {
	handlers []rules.Handler
	cats     []*rules.Category
	byName   map[string]*rules.Category
}

// New assembles a pipeline over the given categories. Handlers run in the
// order produced by rules.InsertTracker; categories render in their
// configured order, which is deliberate priority grouping, not alphabetical.
func New(handlers []rules.Handler) *Pipeline {
	p := &Pipeline{
		handlers: handlers,
		byName:   make(map[string]*rules.Category),
	}

	for _, h := range handlers {
		if c, ok := h.(*rules.Category); ok {
			p.cats = append(p.cats, c)
			p.byName[c.Name] = c
		}
	}

	return p
}

// Run merges the raw transcript into logical lines and classifies each one.
// A single synchronous pass: the tracker stack and the category lists have
// exactly one writer.
func (p *Pipeline) Run(raw string) {
	lines := logparse.Collect(raw)

	for i, line := range lines {
		for _, h := range p.handlers {
			if h.Handle(line, i, lines) {
				break
			}
		}
	}
}

// Categories returns the renderable categories in configured order.
func (p *Pipeline) Categories() []*rules.Category {
	return p.cats
}

// Category looks a category up by display name, nil if unknown.
func (p *Pipeline) Category(name string) *rules.Category {
	return p.byName[name]
}

// HasDiagnostics reports whether the named category collected anything.
// The compile loop uses this to decide whether another engine run is needed.
func (p *Pipeline) HasDiagnostics(name string) bool {
	c := p.byName[name]

	return c != nil && c.Count() > 0
}

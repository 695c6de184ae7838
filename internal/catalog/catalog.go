// Package catalog holds the immutable per-vertical question registries,
// the sector registry that maps business categories onto them, and the
// business-type suppression rules. Everything here is declarative data
// loaded once at startup; the engine package holds the logic.
package catalog

import (
	"fmt"

	"github.com/alexanderramin/intake/internal/domain"
)

// PathCountry is the profile path the composer reads to resolve
// country-specific option packs.
const PathCountry = "business.country"

// Flow selects and parameterizes the ordering strategy for a vertical.
// FlowOrdered verticals carry curated id lists; FlowCatalogOrder verticals
// use declaration order and leave the lists empty.
type Flow struct {
	Kind                domain.FlowKind
	QuickOrder          []string
	FullAdditionalOrder []string
}

// Catalog is one vertical's question bank. Built once via New and
// read-only afterwards.
type Catalog struct {
	Vertical  string
	Flow      Flow
	questions []domain.Question
	byID      map[string]int
}

// New builds a catalog and indexes its questions. Duplicate ids are a
// programming error in the data tables and panic at startup.
func New(vertical string, flow Flow, questions ...domain.Question) *Catalog {
	byID := make(map[string]int, len(questions))
	for i, q := range questions {
		if _, dup := byID[q.ID]; dup {
			panic(fmt.Sprintf("catalog %s: duplicate question id %q", vertical, q.ID))
		}
		byID[q.ID] = i
	}
	return &Catalog{
		Vertical:  vertical,
		Flow:      flow,
		questions: questions,
		byID:      byID,
	}
}

// Get looks up a question by id.
func (c *Catalog) Get(id string) (domain.Question, bool) {
	i, ok := c.byID[id]
	if !ok {
		return domain.Question{}, false
	}
	return c.questions[i], true
}

// Questions returns the catalog in declaration order. Callers must not
// mutate the returned slice.
func (c *Catalog) Questions() []domain.Question {
	return c.questions
}

// Len returns the number of questions declared in the catalog.
func (c *Catalog) Len() int {
	return len(c.questions)
}

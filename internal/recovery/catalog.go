package recovery

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
)

type procedureCatalogFile struct {
	Version    int         `json:"version"`
	Procedures []Procedure `json:"procedures"`
}

var (
	//go:embed default_procedures.json
	defaultProceduresJSON []byte

	defaultCatalogOnce sync.Once
	defaultCatalog     *Catalog
)

// Catalog is a read-only registry of procedures keyed by id. It is safe to
// share between readers because nothing mutates it after construction.
type Catalog struct {
	procedures []Procedure
	byID       map[string]int
}

// DefaultCatalog returns the process-wide catalog built from the embedded
// registry.
func DefaultCatalog() *Catalog {
	defaultCatalogOnce.Do(func() {
		defaultCatalog = mustParseDefaultCatalog(defaultProceduresJSON)
	})
	return defaultCatalog
}

// NewCatalog validates procedures and builds a catalog that keeps their
// order.
func NewCatalog(procedures []Procedure) (*Catalog, error) {
	if len(procedures) == 0 {
		return nil, fmt.Errorf("catalog has no procedures")
	}
	out := &Catalog{
		procedures: make([]Procedure, 0, len(procedures)),
		byID:       make(map[string]int, len(procedures)),
	}
	for i, proc := range procedures {
		id := NormalizeProcedureID(proc.ID)
		if id == "" {
			return nil, fmt.Errorf("procedure %d: id is required", i)
		}
		if _, dup := out.byID[id]; dup {
			return nil, fmt.Errorf("procedure %q: duplicate id", id)
		}
		if err := validateMilestones(proc.Milestones); err != nil {
			return nil, fmt.Errorf("procedure %q: %w", id, err)
		}
		proc = cloneProcedure(proc)
		proc.ID = id
		proc.Name = strings.TrimSpace(proc.Name)
		if proc.Name == "" {
			proc.Name = id
		}
		out.byID[id] = len(out.procedures)
		out.procedures = append(out.procedures, proc)
	}
	return out, nil
}

func NormalizeProcedureID(id string) string {
	return strings.ToLower(strings.TrimSpace(id))
}

// Lookup returns a copy of the procedure registered under id.
func (c *Catalog) Lookup(id string) (Procedure, error) {
	if c == nil {
		return Procedure{}, unknownProcedureError(id)
	}
	idx, ok := c.byID[NormalizeProcedureID(id)]
	if !ok {
		return Procedure{}, unknownProcedureError(id)
	}
	return cloneProcedure(c.procedures[idx]), nil
}

func (c *Catalog) Has(id string) bool {
	if c == nil {
		return false
	}
	_, ok := c.byID[NormalizeProcedureID(id)]
	return ok
}

// Procedures lists every registered procedure in registry order.
func (c *Catalog) Procedures() []ProcedureSummary {
	if c == nil {
		return nil
	}
	out := make([]ProcedureSummary, 0, len(c.procedures))
	for _, proc := range c.procedures {
		out = append(out, proc.Summary())
	}
	return out
}

func (c *Catalog) IDs() []string {
	if c == nil {
		return nil
	}
	out := make([]string, 0, len(c.procedures))
	for _, proc := range c.procedures {
		out = append(out, proc.ID)
	}
	return out
}

func validateMilestones(milestones []Milestone) error {
	if len(milestones) == 0 {
		return fmt.Errorf("no milestones")
	}
	prev := -1
	for i, ms := range milestones {
		if ms.DayOffset < 0 {
			return fmt.Errorf("milestone %d: negative day %d", i, ms.DayOffset)
		}
		if ms.DayOffset <= prev {
			return fmt.Errorf("milestone %d: day %d does not follow day %d", i, ms.DayOffset, prev)
		}
		if strings.TrimSpace(ms.Title) == "" {
			return fmt.Errorf("milestone %d: title is required", i)
		}
		prev = ms.DayOffset
	}
	return nil
}

func mustParseDefaultCatalog(raw []byte) *Catalog {
	var file procedureCatalogFile
	if err := json.Unmarshal(raw, &file); err != nil {
		panic("recovery: failed to parse default procedures JSON: " + err.Error())
	}
	catalog, err := NewCatalog(file.Procedures)
	if err != nil {
		panic("recovery: invalid default procedures JSON: " + err.Error())
	}
	return catalog
}

package parts

import (
	"fmt"
	"slices"
	"sync"

	"github.com/matzehuels/pipegrid/pkg/errors"
	"github.com/matzehuels/pipegrid/pkg/grid"
)

// Type is a part definition: its routing rules and whether it is a source.
type Type struct {
	Name     string
	IsSource bool
	Routes   grid.RoutingTable
}

// SourceEntry returns the entry angle a source emits from: the single key of
// its unrotated routing table. ok is false for non-sources and for sources
// whose table is empty. With several keys the lowest angle wins.
func (t Type) SourceEntry() (int, bool) {
	if !t.IsSource || len(t.Routes) == 0 {
		return 0, false
	}
	return t.Routes.Entries()[0], true
}

// Validate checks the type name and routing table.
func (t Type) Validate() error {
	if err := errors.ValidateTypeName(t.Name); err != nil {
		return err
	}
	if err := t.Routes.Validate(); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidCatalog, err, "part type %s", t.Name)
	}
	if t.IsSource && len(t.Routes) != 1 {
		return errors.New(errors.ErrCodeInvalidCatalog, "source type %s must declare exactly one entry, has %d", t.Name, len(t.Routes))
	}
	return nil
}

// Registry resolves part types by name.
type Registry interface {
	Lookup(name string) (Type, bool)
}

// Catalog is an in-memory [Registry]. It is safe for concurrent use.
type Catalog struct {
	mu    sync.RWMutex
	types map[string]Type
}

// NewCatalog creates a catalog holding the given types. Later types replace
// earlier ones with the same name.
func NewCatalog(types ...Type) *Catalog {
	c := &Catalog{types: make(map[string]Type, len(types))}
	for _, t := range types {
		c.types[t.Name] = t
	}
	return c
}

// Lookup returns the type registered under name.
func (c *Catalog) Lookup(name string) (Type, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	t, ok := c.types[name]
	return t, ok
}

// Add validates t and registers it, replacing any type with the same name.
func (c *Catalog) Add(t Type) error {
	if err := t.Validate(); err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.types[t.Name] = t
	return nil
}

// Merge adds every type of other to c, replacing same-named types.
func (c *Catalog) Merge(other *Catalog) {
	if other == nil || other == c {
		return
	}
	other.mu.RLock()
	defer other.mu.RUnlock()
	c.mu.Lock()
	defer c.mu.Unlock()
	for name, t := range other.types {
		c.types[name] = t
	}
}

// Names returns the registered type names in sorted order.
func (c *Catalog) Names() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	names := make([]string, 0, len(c.types))
	for name := range c.types {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Len returns the number of registered types.
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.types)
}

// Validate checks every registered type and returns the first problem found,
// in name order.
func (c *Catalog) Validate() error {
	for _, name := range c.Names() {
		t, _ := c.Lookup(name)
		if err := t.Validate(); err != nil {
			return fmt.Errorf("catalog: %w", err)
		}
	}
	return nil
}

// Ensure Catalog implements Registry.
var _ Registry = (*Catalog)(nil)

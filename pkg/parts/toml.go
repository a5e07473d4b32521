package parts

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/pipegrid/pkg/errors"
	"github.com/matzehuels/pipegrid/pkg/grid"
)

type catalogFile struct {
	Types []typeEntry `toml:"type"`
}

type typeEntry struct {
	Name   string       `toml:"name"`
	Source bool         `toml:"source"`
	Routes []routeEntry `toml:"route"`
}

type routeEntry struct {
	In    int         `toml:"in"`
	Exits []grid.Exit `toml:"exits"`
}

// ReadCatalog decodes a TOML catalog from r. Every type is validated; the
// first invalid type aborts decoding. Duplicate names within one file are
// rejected.
func ReadCatalog(r io.Reader) (*Catalog, error) {
	var file catalogFile
	md, err := toml.NewDecoder(r).Decode(&file)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidCatalog, err, "decode catalog")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, errors.New(errors.ErrCodeInvalidCatalog, "unknown catalog keys: %v", undecoded)
	}

	c := NewCatalog()
	for _, entry := range file.Types {
		if _, dup := c.Lookup(entry.Name); dup {
			return nil, errors.New(errors.ErrCodeInvalidCatalog, "duplicate part type %q", entry.Name)
		}
		t, err := entry.toType()
		if err != nil {
			return nil, err
		}
		if err := c.Add(t); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// LoadCatalog reads a TOML catalog file at path.
func LoadCatalog(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "catalog %s", path)
		}
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}
	c, err := ReadCatalog(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// WriteCatalog encodes the types of c as TOML in name order.
func WriteCatalog(w io.Writer, c *Catalog) error {
	var file catalogFile
	for _, name := range c.Names() {
		t, _ := c.Lookup(name)
		entry := typeEntry{Name: t.Name, Source: t.IsSource}
		for _, in := range t.Routes.Entries() {
			entry.Routes = append(entry.Routes, routeEntry{In: in, Exits: t.Routes[in]})
		}
		file.Types = append(file.Types, entry)
	}
	if err := toml.NewEncoder(w).Encode(file); err != nil {
		return fmt.Errorf("encode catalog: %w", err)
	}
	return nil
}

func (e typeEntry) toType() (Type, error) {
	routes := make(grid.RoutingTable, len(e.Routes))
	for _, r := range e.Routes {
		if _, dup := routes[r.In]; dup {
			return Type{}, errors.New(errors.ErrCodeInvalidCatalog, "part type %s: entry %d declared twice", e.Name, r.In)
		}
		routes[r.In] = r.Exits
	}
	return Type{Name: e.Name, IsSource: e.Source, Routes: routes}, nil
}

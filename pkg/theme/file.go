package theme

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/pelletier/go-toml"

	"github.com/StoreStation/restructured/pkg/biome"
	"github.com/StoreStation/restructured/pkg/block"
)

// File is the TOML layout of a theme definition file:
//
//	[[theme]]
//	name = "desert"
//	biomes = ["desert", "mesa"]
//
//	  [[theme.rule]]
//	  from = "planks"
//	  to = "sandstone"
//	  meta = 2
//
//	  [[theme.rule]]
//	  from = "oak_stairs"
//	  to = "sandstone_stairs"
//
// A rule without meta keeps the metadata of the original placement.
type File struct {
	Themes []Definition `toml:"theme"`
}

// Definition describes one theme of a File.
type Definition struct {
	Name   string   `toml:"name"`
	Biomes []string `toml:"biomes"`
	Rules  []Rule   `toml:"rule"`
}

// Rule is a single block replacement of a Definition.
type Rule struct {
	From string `toml:"from"`
	To   string `toml:"to"`
	Meta *int   `toml:"meta"`
}

// Load decodes a theme file from r.
func Load(r io.Reader) (File, error) {
	var f File
	if err := toml.NewDecoder(r).Decode(&f); err != nil {
		return File{}, fmt.Errorf("decode themes: %w", err)
	}
	return f, nil
}

// LoadFile decodes the theme file at path.
func LoadFile(path string) (File, error) {
	fh, err := os.Open(path)
	if err != nil {
		return File{}, err
	}
	defer fh.Close()

	f, err := Load(fh)
	if err != nil {
		return File{}, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// Table builds the rule table of the definition, resolving block names
// through blocks.
func (d Definition) Table(blocks *block.Registry) (*Table, error) {
	t := NewTable()
	for i, rule := range d.Rules {
		from, err := blocks.ByName(rule.From)
		if err != nil {
			return nil, fmt.Errorf("theme %s rule %d: %w", d.Name, i, err)
		}
		to, err := blocks.ByName(rule.To)
		if err != nil {
			return nil, fmt.Errorf("theme %s rule %d: %w", d.Name, i, err)
		}
		if rule.Meta == nil {
			t.Keep(from, to)
			continue
		}
		if *rule.Meta < 0 || *rule.Meta >= NoOverride {
			return nil, fmt.Errorf("theme %s rule %d: meta %d out of range [0, %d)", d.Name, i, *rule.Meta, NoOverride)
		}
		t.Replace(from, to, uint8(*rule.Meta))
	}
	return t, nil
}

// BiomeIDs resolves the biome names of the definition.
func (d Definition) BiomeIDs() ([]biome.ID, error) {
	ids := make([]biome.ID, 0, len(d.Biomes))
	for _, name := range d.Biomes {
		id, err := biome.Parse(name)
		if err != nil {
			return nil, fmt.Errorf("theme %s: %w", d.Name, err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// RegisterFile registers every theme of f with r. Nothing is registered if
// any definition is invalid.
func (r *Registry) RegisterFile(f File) error {
	type pending struct {
		name   string
		table  *Table
		biomes []biome.ID
	}
	all := make([]pending, 0, len(f.Themes))
	for _, d := range f.Themes {
		if d.Name == "" {
			return errors.New("theme without a name")
		}
		t, err := d.Table(r.blocks)
		if err != nil {
			return err
		}
		ids, err := d.BiomeIDs()
		if err != nil {
			return err
		}
		all = append(all, pending{name: d.Name, table: t, biomes: ids})
	}
	for _, p := range all {
		r.Register(p.name, p.table, p.biomes...)
	}
	return nil
}

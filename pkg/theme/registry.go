package theme

import (
	"io"
	"slices"
	"sync"

	"github.com/samber/lo"
	"github.com/sirupsen/logrus"

	"github.com/StoreStation/restructured/pkg/biome"
	"github.com/StoreStation/restructured/pkg/block"
)

// DefaultName is the name of the theme returned for biomes without one.
const DefaultName = "default"

// Registry owns the themes of a world and the hooks they share. Build one at
// startup, register the themes, then hand it to the structure builders.
type Registry struct {
	log      logrus.FieldLogger
	blocks   *block.Registry
	override Override

	mu     sync.RWMutex
	themes map[biome.ID]*Theme
	def    *Theme
}

// Option configures a Registry.
type Option func(r *Registry)

// WithLogger sets the logger registrations are reported to.
func WithLogger(log logrus.FieldLogger) Option {
	return func(r *Registry) { r.log = log }
}

// WithBlocks sets the block registry rule targets are resolved against.
// Rules pointing at unregistered blocks keep the original block.
func WithBlocks(blocks *block.Registry) Option {
	return func(r *Registry) { r.blocks = blocks }
}

// WithOverride sets the hook asked before any theme applies its rules.
func WithOverride(o Override) Option {
	return func(r *Registry) { r.override = o }
}

// NewRegistry returns a Registry holding only the default theme. Without
// options it uses the vanilla block registry, no override and a logger that
// discards everything.
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{themes: make(map[biome.ID]*Theme)}
	for _, opt := range opts {
		opt(r)
	}
	if r.log == nil {
		l := logrus.New()
		l.Out = io.Discard
		r.log = l
	}
	if r.blocks == nil {
		r.blocks = block.Vanilla()
	}
	if r.override == nil {
		r.override = NopOverride{}
	}
	r.def = r.newTheme(DefaultName, biome.Plains, NewTable())
	return r
}

func (r *Registry) newTheme(name string, b biome.ID, t *Table) *Theme {
	return &Theme{
		name:     name,
		biome:    b,
		table:    t,
		blocks:   r.blocks,
		override: r.override,
	}
}

// Register binds a theme built from t to each of the biomes passed. The
// table is copied, so later changes to t do not affect the registered themes.
// A biome that already has a theme gets the new one.
func (r *Registry) Register(name string, t *Table, biomes ...biome.ID) {
	table := t.clone()

	r.mu.Lock()
	defer r.mu.Unlock()
	for _, b := range biomes {
		entry := r.log.WithFields(logrus.Fields{"theme": name, "biome": b.String()})
		if old, ok := r.themes[b]; ok {
			entry.Warnf("replacing village theme %s", old.name)
		}
		r.themes[b] = r.newTheme(name, b, table)
		entry.Debugf("registered village theme with %d rules", table.Len())
	}
}

// Find returns the theme registered for b, or the default theme.
func (r *Registry) Find(b biome.ID) *Theme {
	r.mu.RLock()
	t, ok := r.themes[b]
	r.mu.RUnlock()
	if !ok {
		return r.def
	}
	return t
}

// Default returns the theme used for biomes without a registered theme. It
// replaces nothing.
func (r *Registry) Default() *Theme {
	return r.def
}

// Biomes returns the biomes that have a theme, in ascending order.
func (r *Registry) Biomes() []biome.ID {
	r.mu.RLock()
	ids := lo.Keys(r.themes)
	r.mu.RUnlock()
	slices.Sort(ids)
	return ids
}

// Blocks returns the block registry rule targets are resolved against.
func (r *Registry) Blocks() *block.Registry {
	return r.blocks
}

package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	dfw "github.com/df-mc/dragonfly/server/world"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"

	"github.com/StoreStation/restructured/pkg/biome"
	"github.com/StoreStation/restructured/pkg/block"
	"github.com/StoreStation/restructured/pkg/dfworld"
	"github.com/StoreStation/restructured/pkg/region"
	"github.com/StoreStation/restructured/pkg/theme"
	"github.com/StoreStation/restructured/pkg/world"
)

// options are the command line flags.
type options struct {
	configPath string
	themeFile  string
	save       string
	debug      bool
	seed       int64
	radius     int

	// set holds the names of the flags given on the command line.
	set map[string]bool
}

// parseFlags defines the survey flags on fs and parses args.
func parseFlags(fs *flag.FlagSet, args []string) (options, error) {
	var o options
	fs.StringVar(&o.configPath, "config", "", "TOML config file, created with defaults if missing")
	fs.Int64Var(&o.seed, "seed", 0, "World seed (overrides the config)")
	fs.IntVar(&o.radius, "radius", 0, "Half side of the surveyed square (overrides the config)")
	fs.StringVar(&o.themeFile, "themes", "", "Extra TOML theme file")
	fs.StringVar(&o.save, "save", "", "Survey this Bedrock world save instead of the generated world")
	fs.BoolVar(&o.debug, "debug", false, "Log rejected sites and theme registrations")
	if err := fs.Parse(args); err != nil {
		return o, err
	}
	o.set = make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { o.set[f.Name] = true })
	return o, nil
}

// apply overrides c with the flags that were given.
func (o options) apply(c Config) Config {
	if o.set["seed"] {
		c.Survey.Seed = o.seed
	}
	if o.set["radius"] {
		c.Survey.Radius = o.radius
	}
	if o.themeFile != "" {
		c.Themes.Files = append(c.Themes.Files, o.themeFile)
	}
	return c
}

func main() {
	opts, err := parseFlags(flag.CommandLine, os.Args[1:])
	if err != nil {
		os.Exit(2)
	}

	log := logrus.New()
	log.Formatter = &logrus.TextFormatter{ForceColors: true}
	log.Level = logrus.InfoLevel
	if opts.debug {
		log.Level = logrus.DebugLevel
	}

	conf, err := readConfig(opts.configPath)
	if err != nil {
		log.Fatalf("Failed to read config: %v", err)
	}
	conf = opts.apply(conf)

	themes, err := loadThemes(log, conf)
	if err != nil {
		log.Fatalf("Failed to load themes: %v", err)
	}
	names := lo.Map(themes.Biomes(), func(b biome.ID, _ int) string {
		return b.String() + "=" + themes.Find(b).Name()
	})
	log.Infof("Themed biomes: %s", strings.Join(names, ", "))

	area := region.Centered(0, 0, conf.Survey.Radius)
	if opts.save != "" {
		if err := surveySave(log, conf, themes, opts.save, area); err != nil {
			log.Fatalf("Failed to survey %s: %v", opts.save, err)
		}
		return
	}

	w := world.NewWorld(conf.Survey.Seed)
	sites, err := newPlanner(log, conf, w, w).Plan(area)
	if err != nil {
		log.Fatalf("Failed to plan villages in %v: %v", area, err)
	}
	accepted := lo.Filter(sites, func(s world.Site, _ int) bool { return s.Accepted })
	log.Infof("Seed %d: %d of %d village sites accepted in %v", conf.Survey.Seed, len(accepted), len(sites), area)

	builder := &world.Builder{World: w, Themes: themes}
	placed := 0
	for _, s := range accepted {
		entry := siteEntry(log, themes, s)
		if !conf.Survey.Build {
			entry.Info("Village site")
			continue
		}
		n := builder.Build(s)
		placed += n
		entry.WithField("blocks", n).Info("Village built")
	}
	if conf.Survey.Build {
		log.Infof("Placed %d blocks, %d modified positions", placed, len(w.GetModifications()))
	}
}

// surveySave plans villages in the overworld of the Bedrock save in dir. The
// save is opened read-only, so nothing is built.
func surveySave(log *logrus.Logger, conf Config, themes *theme.Registry, dir string, area region.Box) error {
	w, err := dfworld.OpenSave(log, dir)
	if err != nil {
		return err
	}
	defer w.Close()

	var sites []world.Site
	<-w.Exec(func(tx *dfw.Tx) {
		host := dfworld.New(tx)
		sites, err = newPlanner(log, conf, host, host).Plan(area)
	})
	if err != nil {
		return err
	}
	accepted := lo.Filter(sites, func(s world.Site, _ int) bool { return s.Accepted })
	log.Infof("%s: %d of %d village sites accepted in %v", dir, len(accepted), len(sites), area)
	for _, s := range accepted {
		siteEntry(log, themes, s).Info("Village site")
	}
	return nil
}

func newPlanner(log logrus.FieldLogger, conf Config, w region.World, biomes world.BiomeSource) *world.Planner {
	p := world.NewPlanner(world.NewVillageGrid(conf.Survey.Seed), w, biomes, log)
	p.Radius = conf.Survey.SiteRadius
	p.MaxVariance = conf.Survey.MaxVariance
	return p
}

func siteEntry(log logrus.FieldLogger, themes *theme.Registry, s world.Site) *logrus.Entry {
	th := themes.Find(s.Biome)
	return log.WithFields(logrus.Fields{
		"x":       s.X,
		"z":       s.Z,
		"biome":   s.Biome.String(),
		"theme":   th.Name(),
		"palette": palette(themes.Blocks(), th),
	})
}

// loadThemes builds the theme registry from the built-in themes and the theme
// files of the config.
func loadThemes(log logrus.FieldLogger, conf Config) (*theme.Registry, error) {
	themes := theme.NewRegistry(theme.WithLogger(log), theme.WithBlocks(block.Vanilla()))
	if conf.Themes.Builtin {
		theme.RegisterBuiltins(themes)
	}
	for _, path := range conf.Themes.Files {
		f, err := theme.LoadFile(path)
		if err != nil {
			return nil, err
		}
		if err := themes.RegisterFile(f); err != nil {
			return nil, err
		}
	}
	return themes, nil
}

// paletteBlocks are the village blocks shown for each site.
var paletteBlocks = []block.Selected{
	block.Of(block.Log, block.Oak),
	block.Of(block.Planks, block.Oak),
	block.Of(block.OakStairs, 0),
	block.Of(block.WoodenSlab, block.Oak),
	block.Of(block.MonsterEgg, 2),
}

// palette renders how th remaps the common village blocks.
func palette(blocks *block.Registry, th *theme.Theme) string {
	return strings.Join(lo.Map(paletteBlocks, func(sel block.Selected, _ int) string {
		r := th.FindReplacement(sel.Block, sel.Meta, true)
		return fmt.Sprintf("%s->%s:%d", blockName(blocks, sel.Block), blockName(blocks, r.Block), r.Meta)
	}), " ")
}

func blockName(blocks *block.Registry, id block.ID) string {
	if name, ok := blocks.Name(id); ok {
		return strings.TrimPrefix(name, "minecraft:")
	}
	return fmt.Sprintf("#%d", id)
}

package preset

import (
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	cfg "projctl/internal/config"
	"projctl/internal/devtool"
)

// Catalog holds user overrides for the detected preset list, read from
// presets.yaml in the config dir. Extra entries are appended after the
// detected presets; hidden ids are removed from the result.
type Catalog struct {
	Extra  []CatalogEntry `yaml:"extra"`
	Hidden []string       `yaml:"hidden"`
}

// CatalogEntry mirrors a preset descriptor in YAML shape.
type CatalogEntry struct {
	ID          string   `yaml:"id"`
	Name        string   `yaml:"name"`
	CommandPath string   `yaml:"commandPath"`
	Arguments   []string `yaml:"arguments"`
}

// LoadCatalog reads the overrides file. A missing file yields an empty
// catalog and no error.
func LoadCatalog() (Catalog, error) {
	p, err := cfg.PresetCatalogPath()
	if err != nil {
		return Catalog{}, err
	}
	return loadCatalogFrom(p)
}

func loadCatalogFrom(path string) (Catalog, error) {
	var c Catalog
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return c, nil
		}
		return c, err
	}
	if err := yaml.Unmarshal(b, &c); err != nil {
		return Catalog{}, err
	}
	return c.normalize(), nil
}

func (c Catalog) normalize() Catalog {
	out := Catalog{}
	for _, e := range c.Extra {
		e.ID = strings.TrimSpace(e.ID)
		e.Name = strings.TrimSpace(e.Name)
		e.CommandPath = strings.TrimSpace(e.CommandPath)
		if e.ID == "" || e.CommandPath == "" {
			continue
		}
		if e.Name == "" {
			e.Name = e.ID
		}
		out.Extra = append(out.Extra, e)
	}
	for _, id := range c.Hidden {
		id = strings.TrimSpace(id)
		if id != "" {
			out.Hidden = append(out.Hidden, id)
		}
	}
	return out
}

// Apply filters hidden ids out of presets and appends the extra entries.
// Extra entries never duplicate an already-present id.
func (c Catalog) Apply(presets []devtool.DevToolPreset) []devtool.DevToolPreset {
	hidden := make(map[string]bool, len(c.Hidden))
	for _, id := range c.Hidden {
		hidden[id] = true
	}

	out := make([]devtool.DevToolPreset, 0, len(presets)+len(c.Extra))
	seen := make(map[string]bool, len(presets))
	for _, p := range presets {
		if hidden[p.ID] {
			continue
		}
		out = append(out, p)
		seen[p.ID] = true
	}
	for _, e := range c.Extra {
		if hidden[e.ID] || seen[e.ID] {
			continue
		}
		out = append(out, devtool.DevToolPreset{
			ID:          e.ID,
			Name:        e.Name,
			CommandPath: e.CommandPath,
			Arguments:   append([]string(nil), e.Arguments...),
		})
		seen[e.ID] = true
	}
	return out
}

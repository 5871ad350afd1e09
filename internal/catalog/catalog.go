// Package catalog holds the static list of calculator categories and
// calculators shown on the site, and the URL scheme used to reach them.
package catalog

import (
	_ "embed"
	"fmt"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// FramingCategory is the category the framing estimator is listed under.
const FramingCategory = "Construction and Building"

//go:embed catalog.yaml
var catalogYAML []byte

type Input struct {
	ID       string   `yaml:"id" json:"id"`
	Label    string   `yaml:"label" json:"label"`
	Type     string   `yaml:"type" json:"type"`
	Unit     string   `yaml:"unit,omitempty" json:"unit,omitempty"`
	Required bool     `yaml:"required" json:"required"`
	Min      *float64 `yaml:"min,omitempty" json:"min,omitempty"`
	Max      *float64 `yaml:"max,omitempty" json:"max,omitempty"`
	Step     *float64 `yaml:"step,omitempty" json:"step,omitempty"`
	Options  []string `yaml:"options,omitempty" json:"options,omitempty"`
	Help     string   `yaml:"help,omitempty" json:"help,omitempty"`
}

type Calculator struct {
	ID          string   `yaml:"id" json:"id"`
	Name        string   `yaml:"name" json:"name"`
	Description string   `yaml:"description" json:"description"`
	Category    string   `yaml:"category" json:"category"`
	Slug        string   `yaml:"slug" json:"slug"`
	Endpoint    string   `yaml:"endpoint" json:"endpoint"`
	Formula     string   `yaml:"formula" json:"formula"`
	Units       []string `yaml:"units" json:"units"`
	Inputs      []Input  `yaml:"inputs" json:"inputs"`
	URL         string   `yaml:"-" json:"url"`
}

type Category struct {
	ID          string   `yaml:"id" json:"id"`
	Name        string   `yaml:"name" json:"name"`
	Description string   `yaml:"description" json:"description"`
	Slug        string   `yaml:"slug" json:"slug"`
	Icon        string   `yaml:"icon" json:"icon"`
	Calculators []string `yaml:"calculators" json:"calculators"`
	URL         string   `yaml:"-" json:"url"`
}

type Catalog struct {
	Categories  []Category   `yaml:"categories" json:"categories"`
	Calculators []Calculator `yaml:"calculators" json:"calculators"`
}

// Load parses the embedded catalog.
func Load() (*Catalog, error) {
	return Parse(catalogYAML)
}

// Parse decodes a catalog document and fills in slugs and URLs that the
// document leaves out.
func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("catalog: parse: %w", err)
	}
	seen := make(map[string]bool)
	for i := range c.Categories {
		cat := &c.Categories[i]
		if cat.Slug == "" {
			cat.Slug = Slug(cat.Name)
		}
		if seen[cat.Slug] {
			return nil, fmt.Errorf("catalog: duplicate category %q", cat.Slug)
		}
		seen[cat.Slug] = true
		cat.URL = CategoryURL(cat.Name)
	}
	seen = make(map[string]bool)
	for i := range c.Calculators {
		calc := &c.Calculators[i]
		if calc.Slug == "" {
			calc.Slug = Slug(calc.Name)
		}
		if seen[calc.Slug] {
			return nil, fmt.Errorf("catalog: duplicate calculator %q", calc.Slug)
		}
		seen[calc.Slug] = true
		if _, ok := c.Category(Slug(calc.Category)); !ok {
			return nil, fmt.Errorf("catalog: calculator %q lists unknown category %q", calc.Slug, calc.Category)
		}
		calc.URL = CalculatorURL(calc.Category, calc.Name)
	}
	return &c, nil
}

func (c *Catalog) Category(slug string) (Category, bool) {
	for _, cat := range c.Categories {
		if cat.Slug == slug {
			return cat, true
		}
	}
	return Category{}, false
}

func (c *Catalog) Calculator(slug string) (Calculator, bool) {
	for _, calc := range c.Calculators {
		if calc.Slug == slug {
			return calc, true
		}
	}
	return Calculator{}, false
}

// CalculatorsIn returns the calculators with full definitions in a category.
func (c *Catalog) CalculatorsIn(categorySlug string) []Calculator {
	var out []Calculator
	for _, calc := range c.Calculators {
		if Slug(calc.Category) == categorySlug {
			out = append(out, calc)
		}
	}
	return out
}

// Search matches query case-insensitively against calculator names,
// descriptions and categories. Name matches sort first.
func (c *Catalog) Search(query string) []Calculator {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return append([]Calculator(nil), c.Calculators...)
	}
	type hit struct {
		calc Calculator
		rank int
	}
	var hits []hit
	for _, calc := range c.Calculators {
		switch {
		case strings.Contains(strings.ToLower(calc.Name), q):
			hits = append(hits, hit{calc, 0})
		case strings.Contains(strings.ToLower(calc.Description), q):
			hits = append(hits, hit{calc, 1})
		case strings.Contains(strings.ToLower(calc.Category), q):
			hits = append(hits, hit{calc, 2})
		}
	}
	sort.SliceStable(hits, func(i, j int) bool { return hits[i].rank < hits[j].rank })
	out := make([]Calculator, len(hits))
	for i, h := range hits {
		out[i] = h.calc
	}
	return out
}

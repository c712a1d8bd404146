// Package tariff provides the utility rate table used to price site energy.
// The catalog is an explicit value handed to whoever needs it — never a
// package-level cache — so the engine stays a pure function usable in tests
// without bootstrapping process state.
package tariff

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// Rate is one utility tariff: a volumetric energy rate plus a monthly demand
// charge. Rates are point-in-time business assumptions.
type Rate struct {
	Code             string  `yaml:"code"`
	Name             string  `yaml:"name"`
	EnergyPerKWh     float64 `yaml:"energy_per_kwh"`      // $/kWh
	DemandPerKWMonth float64 `yaml:"demand_per_kw_month"` // $/kW per month
}

type Catalog struct {
	rates map[string]Rate
}

func NewCatalog(rates []Rate) *Catalog {
	c := &Catalog{rates: make(map[string]Rate, len(rates))}
	for _, r := range rates {
		if r.Code == "" {
			continue
		}
		c.rates[r.Code] = r
	}
	return c
}

// DefaultCatalog is the built-in commercial rate table, used when no tariff
// file is configured.
func DefaultCatalog() *Catalog {
	return NewCatalog([]Rate{
		{Code: "GS-S", Name: "General Service Small", EnergyPerKWh: 0.132, DemandPerKWMonth: 0},
		{Code: "GS-M", Name: "General Service Medium", EnergyPerKWh: 0.105, DemandPerKWMonth: 12.50},
		{Code: "GS-L", Name: "General Service Large", EnergyPerKWh: 0.089, DemandPerKWMonth: 15.75},
		{Code: "TOU-C", Name: "Commercial Time-of-Use", EnergyPerKWh: 0.118, DemandPerKWMonth: 9.40},
	})
}

type catalogFile struct {
	Tariffs []Rate `yaml:"tariffs"`
}

// Load reads a tariff table from YAML.
func Load(path string) (*Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var f catalogFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse tariff file %s: %w", path, err)
	}
	return NewCatalog(f.Tariffs), nil
}

// Lookup returns the rate for a tariff code.
func (c *Catalog) Lookup(code string) (Rate, bool) {
	r, ok := c.rates[code]
	return r, ok
}

// All returns every rate, sorted by code for stable output.
func (c *Catalog) All() []Rate {
	out := make([]Rate, 0, len(c.rates))
	for _, r := range c.rates {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out
}

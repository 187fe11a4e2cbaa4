// Package catalog holds the global default configuration of the rule engine:
// the default event list, the per-event default rule sets, and the account-type
// affinity tables used by the mapping suggestion engine. The data ships as
// embedded YAML so it is versioned configuration rather than scattered
// constants, and tests can load it like any deployment does.
package catalog

import (
	_ "embed"
	"fmt"

	"github.com/georgeperezsalinas/siscont-erp-sub001/internal/core/domain"
	"gopkg.in/yaml.v3"
)

//go:embed data/catalog.yaml
var defaultCatalogYAML []byte

// EventDef describes one default event.
type EventDef struct {
	Tipo        string               `yaml:"tipo"`
	Nombre      string               `yaml:"nombre"`
	Descripcion string               `yaml:"descripcion"`
	Categoria   domain.EventCategory `yaml:"categoria"`
}

// AccountTypeDef describes an abstract account type and its affinities used
// for suggestion scoring: expected code prefixes (ordered), name keywords and
// the expected account nature.
type AccountTypeDef struct {
	Tipo       string               `yaml:"tipo"`
	Prefijos   []string             `yaml:"prefijos"`
	Palabras   []string             `yaml:"palabras"`
	Naturaleza domain.AccountNature `yaml:"naturaleza"`
}

// RuleDef describes one default rule within an event's default rule set.
type RuleDef struct {
	Condicion  string            `yaml:"condicion"`
	Lado       domain.EntrySide  `yaml:"lado"`
	TipoCuenta string            `yaml:"tipo_cuenta"`
	TipoMonto  domain.AmountType `yaml:"tipo_monto"`
	Orden      int               `yaml:"orden"`
}

// Catalog is the parsed global default configuration.
type Catalog struct {
	Version       int                  `yaml:"version"`
	Eventos       []EventDef           `yaml:"eventos"`
	TiposCuenta   []AccountTypeDef     `yaml:"tipos_cuenta"`
	ReglasDefecto map[string][]RuleDef `yaml:"reglas_defecto"`

	byTipo map[string]AccountTypeDef
}

// Load parses the embedded default catalog.
func Load() (*Catalog, error) {
	return parse(defaultCatalogYAML)
}

func parse(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}
	c.byTipo = make(map[string]AccountTypeDef, len(c.TiposCuenta))
	for _, def := range c.TiposCuenta {
		if _, exists := c.byTipo[def.Tipo]; exists {
			return nil, fmt.Errorf("duplicate account type %q in catalog", def.Tipo)
		}
		c.byTipo[def.Tipo] = def
	}
	for tipo, rules := range c.ReglasDefecto {
		for i, rule := range rules {
			if !domain.ValidAmountType(rule.TipoMonto) {
				return nil, fmt.Errorf("default rule %d of %s has invalid tipo_monto %q", i+1, tipo, rule.TipoMonto)
			}
			if rule.Lado != domain.Debe && rule.Lado != domain.Haber {
				return nil, fmt.Errorf("default rule %d of %s has invalid lado %q", i+1, tipo, rule.Lado)
			}
			if _, known := c.byTipo[rule.TipoCuenta]; !known {
				return nil, fmt.Errorf("default rule %d of %s references unknown account type %q", i+1, tipo, rule.TipoCuenta)
			}
		}
	}
	return &c, nil
}

// AccountType looks up an account-type definition by its tipo key.
func (c *Catalog) AccountType(tipo string) (AccountTypeDef, bool) {
	def, ok := c.byTipo[tipo]
	return def, ok
}

// KnownAccountTypes returns the tipo keys of every catalogued account type,
// in catalog order. This is the fixed set autoMapAll walks.
func (c *Catalog) KnownAccountTypes() []string {
	tipos := make([]string, len(c.TiposCuenta))
	for i, def := range c.TiposCuenta {
		tipos[i] = def.Tipo
	}
	return tipos
}

// DefaultRules returns the default rule set for an event tipo, if any.
func (c *Catalog) DefaultRules(tipo string) ([]RuleDef, bool) {
	rules, ok := c.ReglasDefecto[tipo]
	return rules, ok
}

package catalog_test

import (
	"testing"

	"github.com/georgeperezsalinas/siscont-erp-sub001/internal/core/domain"
	"github.com/georgeperezsalinas/siscont-erp-sub001/internal/platform/catalog"
	"github.com/georgeperezsalinas/siscont-erp-sub001/internal/utils/expr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEmbeddedCatalog(t *testing.T) {
	c, err := catalog.Load()
	require.NoError(t, err)

	assert.Equal(t, 1, c.Version)
	assert.NotEmpty(t, c.Eventos)
	assert.NotEmpty(t, c.TiposCuenta)

	caja, ok := c.AccountType("CAJA")
	require.True(t, ok)
	assert.Contains(t, caja.Prefijos, "10")
	assert.Contains(t, caja.Palabras, "caja")
	assert.Equal(t, domain.NatureActivo, caja.Naturaleza)

	proveedores, ok := c.AccountType("PROVEEDORES")
	require.True(t, ok)
	assert.Contains(t, proveedores.Prefijos, "42")
	assert.Equal(t, domain.NaturePasivo, proveedores.Naturaleza)
}

func TestKnownAccountTypesStableOrder(t *testing.T) {
	c, err := catalog.Load()
	require.NoError(t, err)

	first := c.KnownAccountTypes()
	second := c.KnownAccountTypes()
	assert.Equal(t, first, second)
	assert.Contains(t, first, "IGV_CREDITO")
}

func TestDefaultEventsHaveDefaultRules(t *testing.T) {
	c, err := catalog.Load()
	require.NoError(t, err)

	for _, ev := range c.Eventos {
		rules, ok := c.DefaultRules(ev.Tipo)
		require.True(t, ok, "event %s has no default rule set", ev.Tipo)
		require.NotEmpty(t, rules)

		for _, rule := range rules {
			_, known := c.AccountType(rule.TipoCuenta)
			assert.True(t, known, "rule of %s references unknown tipo %s", ev.Tipo, rule.TipoCuenta)
		}
	}
}

func TestDefaultRuleConditionsParse(t *testing.T) {
	c, err := catalog.Load()
	require.NoError(t, err)

	for tipo, rules := range c.ReglasDefecto {
		for _, rule := range rules {
			if rule.Condicion == "" {
				continue
			}
			_, err := expr.Parse(rule.Condicion)
			assert.NoError(t, err, "condition %q of %s does not parse", rule.Condicion, tipo)
		}
	}
}

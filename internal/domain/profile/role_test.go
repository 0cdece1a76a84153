package profile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/cesta-amigo/internal/httperr"
)

func TestCanCreate(t *testing.T) {
	assert.NoError(t, CanCreate(RoleAdmin, RoleAdmin))
	assert.NoError(t, CanCreate(RoleAdmin, RoleVendedor))
	assert.NoError(t, CanCreate(RoleVendedor, RoleVendedor))

	err := CanCreate(RoleVendedor, RoleAdmin)
	assert.True(t, httperr.IsBusiness(err, "forbidden_role"))

	err = CanCreate(Role(""), RoleVendedor)
	assert.True(t, httperr.IsBusiness(err, "no_permission"))
}

func TestParseRole(t *testing.T) {
	r, err := ParseRole("")
	require.NoError(t, err)
	assert.Equal(t, RoleVendedor, r)

	r, err = ParseRole("admin")
	require.NoError(t, err)
	assert.Equal(t, RoleAdmin, r)

	_, err = ParseRole("gerente")
	assert.True(t, httperr.IsBusiness(err, "invalid_role"))
}

func TestMenu(t *testing.T) {
	admin := Menu(RoleAdmin)
	seller := Menu(RoleVendedor)

	assert.Len(t, admin, 7)
	assert.Len(t, seller, 5)
	assert.Equal(t, "Meus Clientes", seller[1].Label)

	for _, item := range seller {
		assert.NotEqual(t, "vendedores", item.ID)
		assert.NotEqual(t, "configuracoes", item.ID)
	}
}

func TestPreferences(t *testing.T) {
	p := DecodePreferences(nil)
	assert.True(t, p.Notifications.Email)
	assert.False(t, p.Notifications.Push)
	assert.Equal(t, "system", p.Theme)

	p = DecodePreferences([]byte(`{"theme":"dark","notifications":{"push":true}}`))
	assert.Equal(t, "dark", p.Theme)
	assert.True(t, p.Notifications.Push)
	assert.NoError(t, p.Validate())

	p.Theme = "neon"
	assert.True(t, httperr.IsBusiness(p.Validate(), "invalid_theme"))
}

package profile

import "github.com/BruksfildServices01/cesta-amigo/internal/httperr"

// ===============================
// Roles
// ===============================

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleVendedor Role = "vendedor"
)

func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleAdmin, RoleVendedor:
		return Role(s), nil
	case "":
		return RoleVendedor, nil
	}
	return "", httperr.ErrBusiness("invalid_role")
}

func (r Role) Label() string {
	if r == RoleAdmin {
		return "Administrador"
	}
	return "Vendedor"
}

// ===============================
// Permissions
// ===============================

// CanCreate define quem pode cadastrar qual perfil:
// admin cria admin e vendedor; vendedor cria apenas vendedor.
func CanCreate(creator Role, target Role) error {
	switch creator {
	case RoleAdmin:
		return nil
	case RoleVendedor:
		if target == RoleAdmin {
			return httperr.ErrBusiness("forbidden_role")
		}
		return nil
	}
	return httperr.ErrBusiness("no_permission")
}

// ===============================
// Navigation
// ===============================

type MenuItem struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

func Menu(r Role) []MenuItem {
	if r == RoleAdmin {
		return []MenuItem{
			{ID: "dashboard", Label: "Dashboard"},
			{ID: "clientes", Label: "Clientes"},
			{ID: "vendedores", Label: "Vendedores"},
			{ID: "cestas", Label: "Cestas Básicas"},
			{ID: "agenda", Label: "Agenda"},
			{ID: "relatorios", Label: "Relatórios"},
			{ID: "configuracoes", Label: "Configurações"},
		}
	}

	return []MenuItem{
		{ID: "dashboard", Label: "Dashboard"},
		{ID: "clientes", Label: "Meus Clientes"},
		{ID: "cestas", Label: "Cestas Básicas"},
		{ID: "agenda", Label: "Agenda"},
		{ID: "relatorios", Label: "Relatórios"},
	}
}

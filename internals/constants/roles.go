package constants

import "fmt"

// Papéis suportados
const (
	RoleAdmin  = "admin"
	RoleLeader = "leader"
	RoleMember = "member"
)

// Template de mensagens de erro por papel
const (
	ErrOnlyAdminsCanAccess  = "❌ Apenas admin pode acessar %s."
	ErrOnlyLeadersCanAccess = "❌ Apenas líder ou admin pode acessar %s."
)

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

func RoleErrorLeader(feature string) string {
	return fmt.Sprintf(ErrOnlyLeadersCanAccess, feature)
}

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleAdmin,
		RoleLeader,
		RoleMember,
	}

	AdminOnly        = []string{RoleAdmin}
	AdminAndLeader   = []string{RoleAdmin, RoleLeader}
	AuthenticatedAny = AllRoles
)

package constants

import "fmt"

// Role yang dikenal sistem
const (
	RoleAdmin    = "admin"
	RoleTeacher  = "teacher"
	RoleBendahara = "bendahara"
	RoleSantri   = "santri"
	RoleUser     = "user"
)

// Template pesan error role
const (
	ErrOnlyTeachersCanAccess = "❌ Hanya teacher atau admin yang boleh mengakses fitur %s."
	ErrOnlyAdminsCanAccess   = "❌ Hanya admin yang boleh mengakses fitur %s."
	ErrOnlyBendaharaCanAccess = "❌ Hanya bendahara atau admin yang boleh mengakses fitur %s."
)

// Fungsi helper untuk menghasilkan pesan error dinamis
func RoleErrorTeacher(feature string) string {
	return fmt.Sprintf(ErrOnlyTeachersCanAccess, feature)
}

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

func RoleErrorBendahara(feature string) string {
	return fmt.Sprintf(ErrOnlyBendaharaCanAccess, feature)
}

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleUser,
		RoleSantri,
		RoleTeacher,
		RoleBendahara,
		RoleAdmin,
	}

	TeacherAndAbove = []string{
		RoleTeacher,
		RoleAdmin,
	}

	BendaharaAndAbove = []string{
		RoleBendahara,
		RoleAdmin,
	}

	AdminOnly = []string{
		RoleAdmin,
	}
)

package role

// Role — роль пользователя в системе
type Role string

const (
	User  Role = "USER"
	Admin Role = "ADMIN"
)

// Valid проверяет, что роль одна из поддерживаемых
func (r Role) Valid() bool {
	return r == User || r == Admin
}

package ds

import "ads/internal/app/role"

// Caller — идентификация текущего авторизованного пользователя.
// Передается в сервисы явным параметром, сервисы не лезут в контекст запроса.
type Caller struct {
	UserID uint
	Email  string
	Role   role.Role
}

func (c Caller) IsAdmin() bool {
	return c.Role == role.Admin
}

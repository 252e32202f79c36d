package service

import "ads/internal/app/ds"

// canModify — проверка "владелец или админ" перед мутирующей операцией.
// Вызывается только после загрузки целевой сущности: несуществующая цель
// дает "не найдено" раньше, чем проверку прав.
func canModify(caller ds.Caller, ownerID uint) bool {
	return caller.IsAdmin() || caller.UserID == ownerID
}

package ds

import "errors"

// Ошибки предметной области. Репозитории переводят в них ошибки gorm,
// сервисы пробрасывают наверх, обработчики отображают в HTTP-статусы.
var (
	ErrUserNotFound    = errors.New("пользователь не найден")
	ErrAdNotFound      = errors.New("объявление не найдено")
	ErrCommentNotFound = errors.New("комментарий не найден")
	ErrForbidden       = errors.New("нет прав на операцию")
	ErrWrongPassword   = errors.New("неверный текущий пароль")
)

package storage

import "errors"

// ErrFileNotFound возвращается из Load для отсутствующего файла.
// Отсутствие файла — не ошибка ввода-вывода, обработчики отвечают на него 204.
var ErrFileNotFound = errors.New("файл не найден")

// FileStorage — хранилище картинок. Отдельный экземпляр на аватары и на фото
// объявлений, с одинаковой дисциплиной имен: базовое имя задает вызывающий,
// расширение берется из исходного имени файла, повторная запись затирает файл.
type FileStorage interface {
	// Store сохраняет данные под именем baseName+расширение исходного файла
	// и возвращает итоговое имя файла (не полный путь)
	Store(data []byte, originalFilename, baseName string) (string, error)
	// Load возвращает содержимое файла, ErrFileNotFound если его нет
	Load(filename string) ([]byte, error)
	// Remove удаляет файл; отсутствие файла не считается ошибкой
	Remove(filename string) error
}

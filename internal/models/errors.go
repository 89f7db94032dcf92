package models

import "errors"

// Error categories. Every DomainError unwraps to exactly one of them.
var (
	ErrValidation   = errors.New("ошибка валидации")
	ErrUnauthorized = errors.New("требуется авторизация")
	ErrNotFound     = errors.New("не найдено")
	ErrConflict     = errors.New("конфликт")
	ErrUnavailable  = errors.New("сервис недоступен")
)

// DomainError is an error whose Message is safe to show to the client.
type DomainError struct {
	Kind    error
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Kind
}

func NewValidationError(message string) *DomainError {
	return &DomainError{Kind: ErrValidation, Message: message}
}

var (
	ErrMissingPostFields  = NewValidationError("Заголовок, slug и текст обязательны")
	ErrInvalidSlug        = NewValidationError("Slug может содержать только строчные латинские буквы, цифры и дефисы")
	ErrMissingCredentials = NewValidationError("Имя пользователя и пароль обязательны")
	ErrUnsupportedImage   = NewValidationError("Неподдерживаемый тип файла. Разрешены: JPEG, PNG, GIF, WebP")

	ErrInvalidCredentials = &DomainError{Kind: ErrUnauthorized, Message: "Неверное имя пользователя или пароль"}
	ErrInvalidSession     = &DomainError{Kind: ErrUnauthorized, Message: "Требуется авторизация"}

	ErrPostNotFound  = &DomainError{Kind: ErrNotFound, Message: "Пост не найден"}
	ErrAdminNotFound = &DomainError{Kind: ErrNotFound, Message: "Администратор не найден"}

	ErrSlugTaken     = &DomainError{Kind: ErrConflict, Message: "Пост с таким slug уже существует"}
	ErrUsernameTaken = &DomainError{Kind: ErrConflict, Message: "Администратор с таким именем уже существует"}

	ErrImageStorageDisabled = &DomainError{Kind: ErrUnavailable, Message: "Хранилище изображений не настроено"}
)

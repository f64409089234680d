package card

import (
	"errors"
	"fmt"
)

// User-facing messages
const (
	msgValidationTitle = "Заполните поля"
	msgValidation      = "Укажите название и категорию товара"
	msgSuccessTitle    = "Готово!"
	msgSuccess         = "Карточка товара сгенерирована с помощью ИИ"
	msgFailureTitle    = "Ошибка"
	msgInFlight        = "Генерация уже выполняется"

	// GenericRemoteMessage is used when a failed response carries no error field
	GenericRemoteMessage = "Ошибка генерации"
	// GenericFailureMessage is shown for transport failures and unreadable replies
	GenericFailureMessage = "Не удалось сгенерировать карточку"
)

// ErrInFlight is returned when a dispatch is attempted while another one is unresolved
var ErrInFlight = errors.New("generation already in flight")

// ValidationError means a required field was empty; no request was sent
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("required fields are empty: %v", e.Fields)
}

// NetworkError wraps a transport-level failure (DNS, refused connection, abort)
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("generation request failed: %v", e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// RemoteError means the endpoint answered with a failure status or an unreadable body
type RemoteError struct {
	StatusCode int
	Message    string
	Err        error
}

func (e *RemoteError) Error() string {
	return e.Message
}

func (e *RemoteError) Unwrap() error {
	return e.Err
}

// userMessage picks the text shown in the failure notification
func userMessage(err error) string {
	var remote *RemoteError
	if errors.As(err, &remote) && remote.Message != "" {
		return remote.Message
	}
	if errors.Is(err, ErrInFlight) {
		return msgInFlight
	}
	return GenericFailureMessage
}

package ai

import (
	"errors"
	"fmt"
)

// ErrMalformedResponse — модель ответила успешно, но в ответе нет ожидаемых полей.
var ErrMalformedResponse = errors.New("malformed generation response")

// RemoteServiceError — модель ответила не 200 или запрос не удалось выполнить.
type RemoteServiceError struct {
	Provider   string
	StatusCode int // 0, если ответа не было
	Body       string
	Err        error
}

func (e *RemoteServiceError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("%s: request failed: %v", e.Provider, e.Err)
	}
	switch {
	case e.Body != "":
		return fmt.Sprintf("%s: upstream error: status=%d, body=%s", e.Provider, e.StatusCode, e.Body)
	case e.Err != nil:
		return fmt.Sprintf("%s: upstream error: status=%d: %v", e.Provider, e.StatusCode, e.Err)
	default:
		return fmt.Sprintf("%s: upstream error: status=%d", e.Provider, e.StatusCode)
	}
}

func (e *RemoteServiceError) Unwrap() error { return e.Err }

// IsUpstream сообщает, что ошибка пришла от удалённого сервиса генерации.
func IsUpstream(err error) bool {
	var re *RemoteServiceError
	return errors.Is(err, ErrMalformedResponse) || errors.As(err, &re)
}

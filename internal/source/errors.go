package source

import (
	"errors"
	"fmt"
)

var (
	// ErrNetwork - транспортная ошибка или ответ не 2xx
	ErrNetwork = errors.New("network error")
	// ErrShape - JSON не соответствует ожидаемой структуре
	ErrShape = errors.New("unexpected response shape")
	// ErrParse - некорректная дата в записи
	ErrParse = errors.New("malformed date")
)

// NetworkError описывает неудачный HTTP запрос
type NetworkError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *NetworkError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("request %s failed with status code %d", e.URL, e.StatusCode)
	}
	return fmt.Sprintf("request %s failed: %v", e.URL, e.Err)
}

func (e *NetworkError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrNetwork}
	}
	return []error{ErrNetwork, e.Err}
}

// ShapeError описывает ответ, который не удалось разобрать
type ShapeError struct {
	URL    string
	Reason string
	Err    error
}

func (e *ShapeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("response from %s has unexpected shape: %s: %v", e.URL, e.Reason, e.Err)
	}
	return fmt.Sprintf("response from %s has unexpected shape: %s", e.URL, e.Reason)
}

func (e *ShapeError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrShape}
	}
	return []error{ErrShape, e.Err}
}

// ParseError описывает дату, которую не удалось разобрать
type ParseError struct {
	Value string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("could not parse date %q: %v", e.Value, e.Err)
}

func (e *ParseError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrParse}
	}
	return []error{ErrParse, e.Err}
}

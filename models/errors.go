package models

import (
	"fmt"

	"github.com/pkg/errors"
)

// Типизированные ошибки движка согласования.
// Контроллеры мапят их в коды ответа, не разбирая текст.

type NotFoundError struct {
	Entity string
	ID     string
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("%v не найден: %v", e.Entity, e.ID)
}

func NewNotFoundError(entity, id string) error {
	return NotFoundError{Entity: entity, ID: id}
}

func IsNotFound(err error) bool {
	var target NotFoundError
	return errors.As(err, &target)
}

type InvalidStateError struct {
	Msg string
}

func (e InvalidStateError) Error() string {
	return e.Msg
}

func NewInvalidStateError(format string, args ...interface{}) error {
	return InvalidStateError{Msg: fmt.Sprintf(format, args...)}
}

func IsInvalidState(err error) bool {
	var target InvalidStateError
	return errors.As(err, &target)
}

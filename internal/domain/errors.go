package domain

import "errors"

// GenerationError ошибка генерации карты, текст которой показывается пользователю на странице
type GenerationError struct {
	Err error
}

func (e *GenerationError) Error() string {
	return e.Err.Error()
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}

func WrapGenerationError(err error) error {
	if err == nil {
		return nil
	}
	return &GenerationError{Err: err}
}

func IsGenerationError(err error) bool {
	var genErr *GenerationError
	return errors.As(err, &genErr)
}

package i18n

import "errors"

var (
	ErrNilStore    = errors.New("i18n: store cannot be nil")
	ErrEmptyLocale = errors.New("i18n: locale cannot be empty")
	ErrEmptySource = errors.New("i18n: source name cannot be empty")
)

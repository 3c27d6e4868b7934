package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyEmail      = errors.New("email is required")
	ErrInvalidEmail    = errors.New("invalid email")
	ErrEmptyPassword   = errors.New("password is required")
	ErrPasswordTooLong = errors.New("password is too long")
	ErrEmptyVanity     = errors.New("vanity is required")
	ErrInvalidVanity   = errors.New("invalid vanity name")
	ErrReservedVanity  = errors.New("vanity name is reserved")
	ErrFieldTooLong    = errors.New("field is too long")
	ErrInvalidCardSize = errors.New("invalid card size")
	ErrInvalidURL      = errors.New("invalid url")
)

package render

import "errors"

var (
	ErrUnsupportedType       = errors.New("type has no constant representation")
	ErrUnregisteredInterface = errors.New("interface type is not registered as an enum")
	ErrUnknownVariant        = errors.New("value is not a registered variant of its enum")
	ErrNilValue              = errors.New("nil value has no constant representation")
	ErrNotArray              = errors.New("value has no fixed-size array representation")
	ErrRecursiveType         = errors.New("type contains itself without indirection")
	ErrInvalidRegistration   = errors.New("invalid registration")
	ErrInvalidFieldName      = errors.New("field name cannot be a target identifier")
)

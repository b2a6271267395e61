package mrs

import "errors"

// Error kinds returned by constructors and parsers, to be tested with
// errors.Is. Every returned error wraps exactly one of them.
var (
	ErrMissingArgument       = errors.New("missing argument")
	ErrInvalidArgumentType   = errors.New("invalid argument type")
	ErrInvalidArgumentValue  = errors.New("invalid argument value")
	ErrInvalidArgumentCount  = errors.New("invalid argument count")
	ErrInvalidVariableFormat = errors.New("invalid variable format")
)

package registry

import "errors"

var (
	ErrDuplicateContract = errors.New("duplicate contract name")
	ErrUnknownContract   = errors.New("unknown contract")
	ErrInvalidDefinition = errors.New("invalid contract definition")
	ErrFailedToParseYAML = errors.New("failed to parse contract definitions")
	ErrFailedToReadFile  = errors.New("failed to read contract definitions file")
)

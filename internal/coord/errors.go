package coord

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrInvalidDomain   = errors.New("value outside function domain")
	ErrUnknownCompass  = fmt.Errorf("unknown compass direction: %w", ErrInvalidDomain)
)

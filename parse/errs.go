package parse

import (
	"errors"
	"fmt"
)

var (
	ErrParse      = errors.New("parse error")
	ErrUnbalanced = fmt.Errorf("%w: unbalanced element", ErrParse)
	ErrNoRoot     = fmt.Errorf("%w: more than one root element", ErrParse)
)

package keys

import "errors"

var (
	ErrNoKey = errors.New("record has no identity")
	ErrExpr  = errors.New("key expression error")
)

package ruleset

import "errors"

var (
	ErrUnknownLane          = errors.New("unknown lane")
	ErrUnknownOverridePath  = errors.New("unknown override path")
	ErrInvalidOverrideOp    = errors.New("invalid override op")
	ErrInvalidOverrideValue = errors.New("invalid override value")
)

package quest

import "errors"

var (
	ErrInvalidGoal  = errors.New("invalid goal")
	ErrInvalidIndex = errors.New("invalid goal index")
	ErrNotFound     = errors.New("save not found")
)

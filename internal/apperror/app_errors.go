package apperror

import "errors"

var (
	ErrGameFinished      = errors.New("game is already finished")
	ErrNotYourTurn       = errors.New("it's not your turn")
	ErrInvalidMove       = errors.New("invalid divisor")
	ErrInvalidValue      = errors.New("value can not be divided")
	ErrInvalidStartValue = errors.New("start value must be at least 2")
	ErrInputClosed       = errors.New("input closed")
)

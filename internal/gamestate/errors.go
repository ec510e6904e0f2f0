package gamestate

import "errors"

// Rejections. A mutator that returns one of these left the state untouched;
// callers that do not care may ignore the error.
var (
	ErrInvalidAmount     = errors.New("gamestate: amount must be positive")
	ErrInsufficientFunds = errors.New("gamestate: not enough biscuits")
	ErrOutOfStock        = errors.New("gamestate: nothing left to eat")
	ErrHealthFull        = errors.New("gamestate: cat is already full")
	ErrAlreadyOwned      = errors.New("gamestate: decoration already owned")
	ErrNotOwned          = errors.New("gamestate: decoration not owned")
	ErrSlotEmpty         = errors.New("gamestate: nothing placed in that slot")
	ErrBlankText         = errors.New("gamestate: todo text is blank")
	ErrTodoNotFound      = errors.New("gamestate: todo not found")
	ErrUnknownSkin       = errors.New("gamestate: unknown cat skin")
	ErrSkinRetired       = errors.New("gamestate: that cat has passed away")
	ErrTimerRunning      = errors.New("gamestate: timer is running")
	ErrTimerNotRunning   = errors.New("gamestate: timer is not running")
	ErrTimerEmpty        = errors.New("gamestate: timer has no time left")
	ErrInvalidDuration   = errors.New("gamestate: duration must be positive")
)

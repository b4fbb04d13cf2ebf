package game

import "errors"

// Define errors
var (
	ErrSessionAlreadyRunning = errors.New("a game is already running in this guild")
	ErrNoActiveSession       = errors.New("no game is currently running in this guild")
)

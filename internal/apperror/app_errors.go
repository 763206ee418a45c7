package apperror

import "errors"

var (
	ErrInvalidMove     = errors.New("invalid move")
	ErrInvalidCell     = errors.New("invalid cell index")
	ErrCellOccupied    = errors.New("cell is already occupied")
	ErrInvalidToken    = errors.New("invalid token")
	ErrInvalidPlayers  = errors.New("invalid players")
	ErrNoMove          = errors.New("no move available")
	ErrGameNotFinished = errors.New("game is not finished")
	ErrGameNotFound    = errors.New("game not found")
)

package common

import (
	"errors"
	"fmt"
)

// Validation and policy failures returned by the service layer. All of them
// are caller-facing and recoverable; handlers translate them into 4xx
// responses.
var (
	ErrEmptyName           = errors.New("bettor name is required")
	ErrPoolClosed          = errors.New("pool is closed")
	ErrPoolOpen            = errors.New("pool is still open")
	ErrNotPaid             = errors.New("wager has not been marked as paid")
	ErrWagerAlreadyPaid    = errors.New("wager has already been marked as paid")
	ErrInvalidResultFormat = errors.New("result must be six hyphen-separated numbers, e.g. 4-17-22-35-48-59")
	ErrNoResult            = errors.New("no draw result has been recorded")
	ErrNotFound            = errors.New("record not found")
)

// InvalidGameSizeError reports a game that does not contain exactly GameSize
// numbers.
type InvalidGameSizeError struct {
	Game int
}

func (e *InvalidGameSizeError) Error() string {
	return fmt.Sprintf("game %d must contain exactly %d numbers", e.Game, GameSize)
}

// InvalidGameNumbersError reports a game with duplicate numbers or numbers
// outside the 1..MaxNumber board.
type InvalidGameNumbersError struct {
	Game int
}

func (e *InvalidGameNumbersError) Error() string {
	return fmt.Sprintf("game %d must be distinct numbers between 1 and %d", e.Game, MaxNumber)
}

// UnregisteredWagersError is returned when a pool cannot be closed because
// some wagers have not reached the registered status yet.
type UnregisteredWagersError struct {
	Count int
}

func (e *UnregisteredWagersError) Error() string {
	return fmt.Sprintf("%d wager(s) are not registered yet", e.Count)
}

package game

import "errors"

// Symbols a prefix can be extended with, in action iteration order
const Alphabet = "abcdefghijklmnopqrstuvwxyz'"

var (
	ErrTerminalState   = errors.New("cannot expand a terminal state")
	ErrNotTerminal     = errors.New("not a terminal state")
	ErrInvalidAction   = errors.New("invalid action")
	ErrInvalidWord     = errors.New("invalid dictionary word")
	ErrEmptyDictionary = errors.New("dictionary has no words")
)

// State should be immutable - operations on State always return a new copy.
// Player 0 wants the final value as large as possible, player 1 as small as possible.
type State interface {
	Player() int
	IsTerminal() bool
	Actions() ([]Action, error)
	Successor(action Action) (State, error)
	Value() (float64, error)
}

// meta/meta.go
package meta

// DICTIONARY_FILE is the word list used when none is configured.
const DICTIONARY_FILE = "dictionary.txt"

// STARTING_PREFIX is the default starting prefix.
const STARTING_PREFIX = "ou"

// GAMES is the default number of games per match up.
const GAMES = 10000

// GO_ROUTINES defines the number of concurrent games.
const GO_ROUTINES = 8

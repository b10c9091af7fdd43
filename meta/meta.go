// meta/meta.go
package meta

// DEFAULT_DEPTH defines the number of plies searched per move.
const DEFAULT_DEPTH = 3

// GO_ROUTINES defines the number of goroutines scoring root successors.
const GO_ROUTINES = 1

// MAX_TURNS caps the number of turns in a game before it is called a draw.
const MAX_TURNS = 300

// NUM_GAMES defines the number of games played per experiment matchup.
const NUM_GAMES = 10

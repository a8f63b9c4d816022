// meta/meta.go
package meta

// PLAYOUTS defines the default playout budget of a search per move.
const PLAYOUTS = 1000

// GAMES defines the number of games per match up.
const GAMES = 100

// WORKERS defines the number of games played at once.
const WORKERS = 8

// OUTPUT_DIR defines where experiment results are written.
const OUTPUT_DIR = "experiments/results"

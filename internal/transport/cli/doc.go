// Package cli defines the playground command tree.
//
// Commands
//
//   - play      Replay moves given as arguments, from a file or from stdin
//   - simulate  Generate and replay a random game
//
// Both commands print the board followed by the runs of each player that reach
// the configured minimum length. Moves use the "<mark>:<x>,<y>" notation, e.g. X:0,0 O:1,-1.
package cli

// Package command implements the checkpoints command layer: it takes a
// subcommand from a sender, resolves the sender's position when needed and
// calls into a checkpoint.Store. The host decides how senders and actors are
// backed (players, the console, tests).
package command

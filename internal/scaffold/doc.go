// Package scaffold brings a project directory to its planned state. It powers
// the root "asforge [directory]" run: each planned artifact is ensured in
// order (directories before their contents), existing user content is
// preserved, and per-artifact failures are recorded without aborting the rest
// of the run.
package scaffold

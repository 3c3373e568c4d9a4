// Package puzzle keeps the registry of daily solvers and runs them against a puzzle input.
// Solvers register themselves from their package's init function; the runner takes care of
// timing, caching and checking answers against the known answers file.
package puzzle

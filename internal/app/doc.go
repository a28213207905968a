// Package app wires the collection planner together: it builds the isolated
// logger, loads the configured plan into a fresh registry and writes the
// session summary. It is decoupled from any specific entrypoint.
package app

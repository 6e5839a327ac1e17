// Package cluster implements the coordinator role: it starts a fixed number of
// worker processes and then steps aside.
//
// Workers are copies of the running executable told apart by an environment
// marker. The coordinator neither waits for them nor restarts them, and it
// forwards no signals.
package cluster

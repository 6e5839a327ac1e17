// Package app wires configuration, logging and the two process roles into a
// runnable application. The role is chosen once at startup: a process without
// the worker marker is the coordinator, any other process is a worker.
package app

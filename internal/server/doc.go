// Package server implements the worker role: an HTTP/1.x server that answers
// every request with the decimal value of F(34), recomputed each time.
//
// Several worker processes listen on the same port. Where the platform allows
// it the listening socket is opened with SO_REUSEPORT and the kernel spreads
// incoming connections across the workers; there is no coordination between
// them at the application level.
package server

// Package lock reads and writes the integration record kept in the sandbox
// (.podws.lock.yaml). The record notes which workspace and targets the last
// successful integration touched, so status can report it later.
package lock

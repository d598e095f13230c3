// Package memory provides in-memory implementations of driven port interfaces.
// They hold no state across processes and are used by tests and when
// persistent storage is unavailable.
package memory

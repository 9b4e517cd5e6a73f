// Package store is a minimal Redux-style state container: state changes only
// through actions dispatched into a single pure reducer, and subscribers are
// notified with each new state. The generic parameters pin the state and
// action types at compile time.
package store

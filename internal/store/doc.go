// Package store defines the storage interfaces for the clinic's entities
// and provides the in-memory implementations backing them. The clinic
// model is memory-resident for the lifetime of the process; nothing is
// persisted across restarts.
package store

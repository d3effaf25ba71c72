// Package mocks provides in-memory fakes of the store and service
// interfaces for testing. Each fake keeps its state in plain maps and
// assigns IDs sequentially, with per-method function fields to override
// behavior and call counters for interaction assertions.
package mocks

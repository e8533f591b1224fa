// Package events publishes task lifecycle events.
//
// The task service emits a TaskEvent after every successful write. Handlers
// registered on the emitter decide what to do with it: the server registers
// one that logs the event and one that counts it in Prometheus.
//
// The primary components are:
// - TaskEvent: a created, updated, status_changed or deleted record
// - EventHandler: Interface for components that can handle events
// - EventEmitter: Interface for components that can emit events
package events

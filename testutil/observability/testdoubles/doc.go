// Package testdoubles provides test doubles (spies) for the observability interfaces.
//
// LoggerSpy captures every call made through observability.Logger so tests can
// verify which messages a component logged, at which level, and in which order.
package testdoubles

// Package types defines the task, criterion, and application-state entities,
// the derived-metrics computation, the store configuration, and the standard
// error types for the Abacus estimator.
package types

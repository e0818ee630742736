// Package store defines the data access contract used by the services and
// handlers. A Table is one remote table of rows; implementations live under
// internal/platform.
package store

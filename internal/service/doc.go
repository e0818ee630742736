// Package service holds the operations that take more than one gateway call:
// deleting a skill category (with migration of its skills), assembling the
// admin stats, accepting contact submissions and storing uploads. Single-call
// reads and writes go straight from the handlers to the store.
//
// Services receive their dependencies through constructor injection and
// return errors that the api package maps to HTTP status codes with
// errors.Is and errors.As.
package service

// Package domain contains the portfolio records served by the API and the
// shapes used to create and update them. Create shapes are validated with
// struct tags; singleton update shapes use Optional fields so that a field the
// client omitted is never written.
package domain

// Package api handles incoming HTTP requests, request validation and
// response formatting. It adapts the portfolio's public and admin routes to
// the store gateways and services, and translates their errors into status
// codes and safe client messages.
package api

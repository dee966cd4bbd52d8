// Package api handles incoming HTTP requests, request validation and response
// formatting. It acts as an adapter between HTTP clients and the README
// service, translating HTTP concerns to service calls and service errors to
// status codes.
//
// Generation outcomes are always answered with 200, including fallbacks; only
// requests that cannot be served at all receive an error status.
package api

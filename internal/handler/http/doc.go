// Package http implements the registry server's HTTP transport layer.
//
// It exposes route wiring, request handlers, and middleware for the REST
// API consumed by access-control devices and operators. Cross-cutting
// concerns such as request tracing, access logging, and panic recovery are
// handled in this package before requests are delegated to the service
// layer.
package http

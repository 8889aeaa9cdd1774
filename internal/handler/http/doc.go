// Package http implements the HTTP transport layer of the CPF validation
// service.
//
// It exposes route wiring, request handlers, and middleware. Request tracing,
// access logging with masked CPFs, panic recovery and response compression
// are handled in this package before requests are delegated to the service
// layer. Every CPF response, including transport failures, uses the
// models.CPFValidationResult body.
package http

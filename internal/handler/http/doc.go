// Package http implements the REST transport of the logbook server.
//
// It wires chi routes to the service layer and carries the cross-cutting
// middleware: trace ids, access logging, bearer authentication and the role
// gate for administrative routes. Every response body is JSON; errors are
// written as {"error": "..."}.
package http

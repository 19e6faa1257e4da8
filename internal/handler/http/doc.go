// Package http implements the HTTP transport layer of the journal server.
//
// It exposes route wiring, request handlers, and middleware used by the REST
// API. Request tracing, access logging and response compression are handled
// in this package before requests are delegated to the service layer; error
// values coming back from it are translated to status codes here and nowhere
// else.
package http

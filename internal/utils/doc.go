// Package utils holds small helpers shared by the journal server and client:
// JSON and document responses, the resty-based HTTP client and record id
// generation.
package utils

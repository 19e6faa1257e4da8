package models

// IDResponse is returned by the HTTP API for operations that address a single
// record: create answers with the new id, delete with the removed one.
type IDResponse struct {
	ID string `json:"id"`
}

package models

// Note is the domain resource exposed by the CRUD endpoints.
type Note struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

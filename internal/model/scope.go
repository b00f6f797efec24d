package model

// Scope carries per-request identity through the usecase layer.
type Scope struct {
	RequestID string // correlation id, generated at the delivery boundary
	UserID    string // caller identity (e.g. "telegram_12345"), may be empty
	Username  string
}

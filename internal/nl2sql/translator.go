package nl2sql

import "context"

// Request is a natural-language question handed to a provider. The question
// is the normalized English form; Language records what the user wrote in so
// the provider can tailor its response template.
type Request struct {
	Question string `json:"question"`
	Language string `json:"language"`
}

// Result is the provider's structured answer.
type Result struct {
	SQL              string `json:"sql"`
	Explanation      string `json:"explanation"`
	ResponseTemplate string `json:"response_template"`
	Provider         string `json:"provider"`
	Model            string `json:"model"`
}

// Translator converts a question into a SQL query plus presentation hints.
// Implementations must return read-only queries; callers fall back to the
// built-in rule compiler when translation fails.
type Translator interface {
	Translate(ctx context.Context, req Request) (Result, error)
}

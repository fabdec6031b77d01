package library

import (
	"fmt"

	jsoniter "github.com/json-iterator/go"
)

// MarshalBooks renders books as a JSON array of {"title","author","year"} objects.
// A nil or empty slice is rendered as [].
func MarshalBooks(books []Book) ([]byte, error) {
	if books == nil {
		books = []Book{}
	}

	data, err := jsoniter.ConfigFastest.Marshal(books)
	if err != nil {
		return nil, fmt.Errorf("marshal books: %w", err)
	}

	return data, nil
}

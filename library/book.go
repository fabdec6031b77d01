package library

import "fmt"

// Book is an immutable catalog entry. Year is kept as given and never parsed.
type Book struct {
	Title  string `json:"title"`
	Author string `json:"author"`
	Year   string `json:"year"`
}

// BuildBook creates a new Book.
func BuildBook(title, author, year string) Book {
	return Book{
		Title:  title,
		Author: author,
		Year:   year,
	}
}

// String renders the book as "Title: T, Author: A, Year: Y".
func (b Book) String() string {
	return fmt.Sprintf("Title: %s, Author: %s, Year: %s", b.Title, b.Author, b.Year)
}

package library

import "slices"

// Catalog is the capability set a Manager needs from a book collection.
type Catalog interface {
	// AddBook appends the book. Duplicates are allowed.
	AddBook(book Book)

	// RemoveBook removes every book with exactly this title. No match is a no-op.
	RemoveBook(title string)

	// Books returns the current books in insertion order.
	Books() []Book
}

// Library is an in-memory Catalog backed by an ordered slice.
// It is not safe for concurrent use.
type Library struct {
	books []Book
}

// NewLibrary creates an empty Library.
func NewLibrary() *Library {
	return &Library{}
}

// AddBook appends the book to the end of the collection.
func (l *Library) AddBook(book Book) {
	l.books = append(l.books, book)
}

// RemoveBook removes all books whose title equals title.
func (l *Library) RemoveBook(title string) {
	l.books = slices.DeleteFunc(l.books, func(b Book) bool {
		return b.Title == title
	})
}

// Books returns a copy of the collection; changing it does not affect the Library.
func (l *Library) Books() []Book {
	return slices.Clone(l.books)
}

// ExtendedLibrary is a Library that can also look books up by author.
type ExtendedLibrary struct {
	*Library
}

// NewExtendedLibrary creates an empty ExtendedLibrary.
func NewExtendedLibrary() *ExtendedLibrary {
	return &ExtendedLibrary{Library: NewLibrary()}
}

// FindBooksByAuthor returns the books whose author equals author, in catalog order.
// The result is empty, not nil, when nothing matches.
func (l *ExtendedLibrary) FindBooksByAuthor(author string) []Book {
	found := make([]Book, 0)
	for _, book := range l.books {
		if book.Author == author {
			found = append(found, book)
		}
	}

	return found
}

var (
	_ Catalog = (*Library)(nil)
	_ Catalog = (*ExtendedLibrary)(nil)
)

package library

import (
	"fmt"

	"github.com/oopdemos/patterns-go/observability"
)

const (
	logMsgBooksHeader  = "Books in the library:"
	logMsgLibraryEmpty = "The library is empty."
)

// Manager is a logging facade over a Catalog. It does not own any books.
type Manager struct {
	catalog Catalog
	logger  observability.Logger
}

// NewManager creates a Manager for the given catalog. The logger may be nil.
func NewManager(catalog Catalog, logger observability.Logger) Manager {
	return Manager{
		catalog: catalog,
		logger:  logger,
	}
}

// AddBook builds a Book, adds it to the catalog and logs a confirmation.
func (m Manager) AddBook(title, author, year string) {
	m.catalog.AddBook(BuildBook(title, author, year))

	m.logInfo(
		fmt.Sprintf(`Book "%s" added successfully.`, title),
		observability.LogAttrTitle, title,
		observability.LogAttrAuthor, author,
		observability.LogAttrYear, year,
	)
}

// RemoveBook removes all books with the title and logs a confirmation,
// whether or not anything matched.
func (m Manager) RemoveBook(title string) {
	m.catalog.RemoveBook(title)

	m.logInfo(fmt.Sprintf(`Book "%s" removed successfully.`, title), observability.LogAttrTitle, title)
}

// ShowBooks logs a header followed by one line per book, or a single line if the catalog is empty.
func (m Manager) ShowBooks() {
	books := m.catalog.Books()
	if len(books) == 0 {
		m.logInfo(logMsgLibraryEmpty)
		return
	}

	m.logInfo(logMsgBooksHeader, observability.LogAttrCount, len(books))
	for _, book := range books {
		m.logInfo(book.String())
	}
}

// ExportBooks returns the catalog's current books as a JSON array.
func (m Manager) ExportBooks() ([]byte, error) {
	data, err := MarshalBooks(m.catalog.Books())
	if err != nil {
		m.logError("exporting books failed", err)
		return nil, err
	}

	return data, nil
}

// logInfo logs at info level if the logger is configured.
func (m Manager) logInfo(msg string, args ...any) {
	if m.logger != nil {
		m.logger.Info(msg, args...)
	}
}

// logError logs at error level if the logger is configured.
func (m Manager) logError(msg string, err error) {
	if m.logger != nil {
		m.logger.Error(msg, observability.LogAttrError, err.Error())
	}
}

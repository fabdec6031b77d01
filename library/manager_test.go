package library_test

import (
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oopdemos/patterns-go/library"
	"github.com/oopdemos/patterns-go/testutil/observability/testdoubles"
)

// catalogSpy records the calls a Manager makes to its collaborator.
type catalogSpy struct {
	added   []library.Book
	removed []string
	books   []library.Book
}

func (c *catalogSpy) AddBook(book library.Book) { c.added = append(c.added, book) }
func (c *catalogSpy) RemoveBook(title string) { c.removed = append(c.removed, title) }
func (c *catalogSpy) Books() []library.Book { return c.books }

func Test_Manager_DelegatesToCatalog(t *testing.T) {
	// arrange
	catalog := &catalogSpy{}
	manager := library.NewManager(catalog, nil)

	// act
	manager.AddBook("The Forest Song", "Lesya Ukrainka", "1912")
	manager.RemoveBook("Mina Mazailo")

	// assert
	assert.Equal(t, []library.Book{library.BuildBook("The Forest Song", "Lesya Ukrainka", "1912")}, catalog.added)
	assert.Equal(t, []string{"Mina Mazailo"}, catalog.removed)
}

func Test_Manager_AddAndRemove_LogConfirmations(t *testing.T) {
	// arrange
	logger := testdoubles.NewLoggerSpy()
	manager := library.NewManager(library.NewLibrary(), logger)

	// act
	manager.AddBook("The Forest Song", "Lesya Ukrainka", "1912")
	manager.RemoveBook("Nonexistent")

	// assert
	assert.Equal(t, []string{
		`Book "The Forest Song" added successfully.`,
		`Book "Nonexistent" removed successfully.`,
	}, logger.GetInfoMessages())

	title, ok := logger.GetRecords()[0].Attr("title")
	assert.True(t, ok)
	assert.Equal(t, "The Forest Song", title)
}

func Test_Manager_ShowBooks_EmptyCatalog(t *testing.T) {
	// arrange
	logger := testdoubles.NewLoggerSpy()
	manager := library.NewManager(library.NewLibrary(), logger)

	// act
	manager.ShowBooks()

	// assert
	assert.Equal(t, []string{"The library is empty."}, logger.GetInfoMessages())
}

func Test_Manager_Scenario_AddShowRemoveShow(t *testing.T) {
	// arrange
	logger := testdoubles.NewLoggerSpy()
	lib := library.NewExtendedLibrary()
	manager := library.NewManager(lib, logger)

	// act
	manager.AddBook("The Forest Song", "Lesya Ukrainka", "1912")
	manager.AddBook("Mina Mazailo", "Mykhailo Kotsiubynsky", "1910")
	manager.ShowBooks()
	manager.RemoveBook("Mina Mazailo")
	manager.ShowBooks()

	// assert
	assert.Equal(t, []library.Book{library.BuildBook("The Forest Song", "Lesya Ukrainka", "1912")}, lib.Books())
	assert.Equal(t, []string{
		`Book "The Forest Song" added successfully.`,
		`Book "Mina Mazailo" added successfully.`,
		"Books in the library:",
		"Title: The Forest Song, Author: Lesya Ukrainka, Year: 1912",
		"Title: Mina Mazailo, Author: Mykhailo Kotsiubynsky, Year: 1910",
		`Book "Mina Mazailo" removed successfully.`,
		"Books in the library:",
		"Title: The Forest Song, Author: Lesya Ukrainka, Year: 1912",
	}, logger.GetInfoMessages())
}

func Test_Manager_RemoveBook_OnEmptyCatalogIsSilentNoOp(t *testing.T) {
	// arrange
	lib := library.NewLibrary()
	manager := library.NewManager(lib, nil)

	// act + assert
	assert.NotPanics(t, func() { manager.RemoveBook("Nonexistent") })
	assert.Empty(t, lib.Books())
}

func Test_Manager_ExportBooks(t *testing.T) {
	// arrange
	manager := library.NewManager(library.NewLibrary(), nil)
	manager.AddBook("The Forest Song", "Lesya Ukrainka", "1912")

	// act
	data, err := manager.ExportBooks()

	// assert
	require.NoError(t, err)
	assert.True(t, jsoniter.ConfigFastest.Valid(data))
	assert.JSONEq(t, `[{"title":"The Forest Song","author":"Lesya Ukrainka","year":"1912"}]`, string(data))
}

func Test_MarshalBooks_EmptyCatalogIsEmptyArray(t *testing.T) {
	// act
	data, err := library.MarshalBooks(nil)

	// assert
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
}

func Test_Manager_ExportBooks_KeepsNonASCIIText(t *testing.T) {
	// arrange
	manager := library.NewManager(library.NewLibrary(), nil)
	manager.AddBook("Лісова пісня", "Леся Українка", "1912")

	// act
	data, err := manager.ExportBooks()

	// assert
	require.NoError(t, err)

	var books []library.Book
	require.NoError(t, jsoniter.ConfigFastest.Unmarshal(data, &books))
	assert.Equal(t, []library.Book{library.BuildBook("Лісова пісня", "Леся Українка", "1912")}, books)
}

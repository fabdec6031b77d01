// Package library contains an in-memory book catalog and a logging facade over it.
//
// Catalog is the add/remove/list contract. Library implements it with an ordered
// slice that preserves insertion order, and ExtendedLibrary adds lookup by author.
// Manager coordinates a Catalog and logs every operation, without knowing which
// implementation it talks to.
//
// All operations are total: removing an absent title, listing an empty catalog,
// and adding duplicate titles are all valid and never report an error.
package library

// Package store persists recipe documents in SQLite.
//
// Each row holds one recipe document: its identifier, revision, title, a
// case-folded title key used as the title index, the description and notes,
// the ingredients and steps as JSON, and an optional image attachment.
// Revisions follow the "N-<hex>" convention of document databases; writers
// must present the current revision when replacing or deleting a document,
// otherwise ErrConflict is returned.
//
// Schema changes bump the version in schema.go; users delete the database to
// adopt the new schema.
package store

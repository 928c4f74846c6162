// Package manifest holds the declarative tables of the server toolkit: the
// environment variables, directories, files, modules, native binaries, game
// content and databases a server tree must contain, and what the extractor
// takes from a client installation.
//
// The built-in table is embedded from manifest.yaml; manifest.path points to
// a replacement file with the same layout.
package manifest

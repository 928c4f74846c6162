// Package database inspects the SQLite database files of the game server.
//
// The server keeps its state in plain SQLite files (master.db, character.db
// and the per-world world.db). The verifier only needs to know whether a
// present file is a readable database, so this package opens files read-only
// through GORM and lists their tables.
//
// # Open
//
// Open never creates a file: the DSN carries mode=ro, so probing a missing
// path fails instead of leaving an empty database behind.
//
// # Usage
//
//	db, err := database.Open("master.db", cfg.Database)
//	if err != nil {
//	    return err
//	}
//	defer database.Close(db)
//
//	tables, err := database.ListTables(db)
package database

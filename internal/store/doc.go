// Package store provides SQLite-backed storage for emogo journal records.
//
// A Store owns exactly one database handle for the lifetime of the process.
// It is built uninitialized by New and becomes usable after Init; every other
// operation called before Init fails with ErrUninitialized.
//
// # Operations
//
//   - Insert: append one record, returning the assigned id
//   - ListAll: every record, newest date first
//   - Delete: remove a record by id (missing ids are a no-op)
//
// There is no update operation and no transaction spanning several calls.
//
// # Schema Migrations
//
// Migrations are additive and safe to run on every start. Instead of issuing
// ALTER TABLE and ignoring "duplicate column" failures, the store reads
// PRAGMA table_info and only adds columns that are missing. Failures during the
// migration step are logged and do not abort Init.
//
// # Database Configuration
//
//   - WAL mode: concurrent reads during writes
//   - synchronous=NORMAL: balance durability/performance
//   - busy_timeout=5000: wait for locks up to 5 seconds
package store

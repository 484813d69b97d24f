// Package models defines the data types shared by the store backends and the
// directory engine.
package models

// User is the single record kept by the directory.
//
// The id is opaque to callers: the relational backends expose their
// auto-increment integer key formatted as a string, the serialized backend
// assigns a time-ordered UUID. It is assigned once at creation and never
// reused within a running process.
type User struct {
	// ID uniquely identifies the record.
	ID string `json:"id"`

	// Name is the display name. Never empty for a committed record.
	Name string `json:"name"`

	// Email is unique across the whole record set.
	Email string `json:"email"`

	// Phone is stored in its canonical masked form, e.g. "(11) 99999-8888".
	// May be empty.
	Phone string `json:"phone"`

	// Password is stored and compared as plain text, matching the system
	// this directory replaces. Known weakness; do not log it.
	Password string `json:"password"`
}

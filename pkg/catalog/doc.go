// Package catalog defines the Store and Table interfaces, the field
// schemas for media records, and the standard error values for the
// Tracknest catalog system.
package catalog

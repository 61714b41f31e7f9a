package storage

import "gpfinder-backend/services/surgeries"

// Writer is the interface any merged-table backend must satisfy.
type Writer interface {
	Write(rows []surgeries.MergedRow) error
	Close() error
}

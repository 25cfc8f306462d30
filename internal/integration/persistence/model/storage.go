// Package model defines database models for persistence layer.
package model

import "time"

// StorageEntryModel represents the storage table: a key/value store where
// each value is a JSON document. The transaction ledger lives under a single
// key and is rewritten whole on every mutation.
type StorageEntryModel struct {
	Key       string    `gorm:"type:varchar(64);primaryKey"`
	Value     string    `gorm:"type:text;not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for the StorageEntryModel.
func (StorageEntryModel) TableName() string {
	return "storage"
}

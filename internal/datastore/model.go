// model.go this code defines the data model for the application
package datastore

import "time"

// SiteStatus marks whether a site is live or soft deleted.
// Soft delete is reversible; there is no terminal state.
type SiteStatus bool

const (
	SiteActive  SiteStatus = false
	SiteDeleted SiteStatus = true
)

// Site represents a single field location record.
type Site struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	Name        string     `json:"name"`
	JobNumber   string     `json:"job_number"`
	Customer    string     `json:"customer"`
	Description string     `json:"description"`
	Latitude    float64    `json:"latitude"`
	Longitude   float64    `json:"longitude"`
	Status      SiteStatus `gorm:"column:deleted;default:false" json:"deleted"`
	CreatedAt   time.Time  `gorm:"index:idx_sites_created_at" json:"created_at"`
	Photos      []Photo    `gorm:"foreignKey:SiteID;constraint:OnDelete:CASCADE" json:"-"`
	Notes       []Note     `gorm:"foreignKey:SiteID;constraint:OnDelete:CASCADE" json:"-"`
}

// Photo is the metadata row for an uploaded image; the binary payload lives
// in the flat file store under Filename.
type Photo struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	SiteID    uint      `gorm:"index;not null" json:"site_id"`
	Filename  string    `gorm:"uniqueIndex;not null" json:"filename"`
	Caption   string    `json:"caption"`
	CreatedAt time.Time `json:"created_at"`
}

// Note is an append only text entry attached to a site. Notes are immutable
// once created.
type Note struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	SiteID    uint      `gorm:"index;not null" json:"site_id"`
	Body      string    `gorm:"type:text;not null" json:"body"`
	CreatedAt time.Time `json:"created_at"`
}

// Setting is a key/value row for display preferences.
type Setting struct {
	Key   string `gorm:"primaryKey"`
	Value string
}

package datastore

import (
	"fmt"
	"strings"
)

// SaveNote appends a note to a site. A body that is blank after trimming is
// rejected with ErrEmptyNote and nothing is stored. Notes have no update or
// delete path.
func (ds *DataStore) SaveNote(note *Note) error {
	note.Body = strings.TrimSpace(note.Body)
	if note.Body == "" {
		return ErrEmptyNote
	}
	if err := ds.DB.Create(note).Error; err != nil {
		return fmt.Errorf("saving note: %w", err)
	}
	return nil
}

// GetNotes returns all notes for a site, newest first.
func (ds *DataStore) GetNotes(siteID uint) ([]Note, error) {
	var notes []Note
	err := ds.DB.Where("site_id = ?", siteID).
		Order("created_at DESC, id DESC").Find(&notes).Error
	if err != nil {
		return nil, fmt.Errorf("getting notes for site %d: %w", siteID, err)
	}
	return notes, nil
}

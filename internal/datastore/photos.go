package datastore

import "fmt"

// SavePhoto inserts a photo metadata row. The binary payload must already be
// on disk under photo.Filename before this is called.
func (ds *DataStore) SavePhoto(photo *Photo) error {
	if err := ds.DB.Create(photo).Error; err != nil {
		return fmt.Errorf("saving photo: %w", err)
	}
	return nil
}

// GetPhotos returns all photo rows for a site, newest first.
func (ds *DataStore) GetPhotos(siteID uint) ([]Photo, error) {
	var photos []Photo
	err := ds.DB.Where("site_id = ?", siteID).
		Order("created_at DESC, id DESC").Find(&photos).Error
	if err != nil {
		return nil, fmt.Errorf("getting photos for site %d: %w", siteID, err)
	}
	return photos, nil
}

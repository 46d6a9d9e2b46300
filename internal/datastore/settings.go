package datastore

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GetSetting returns the stored value for key, or defaultValue when the key
// is absent.
func (ds *DataStore) GetSetting(key, defaultValue string) (string, error) {
	var setting Setting
	err := ds.DB.First(&setting, "key = ?", key).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return defaultValue, nil
		}
		return defaultValue, fmt.Errorf("getting setting %q: %w", key, err)
	}
	return setting.Value, nil
}

// SetSetting upserts a key/value pair. Last writer wins.
func (ds *DataStore) SetSetting(key, value string) error {
	err := ds.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&Setting{Key: key, Value: value}).Error
	if err != nil {
		return fmt.Errorf("setting %q: %w", key, err)
	}
	return nil
}

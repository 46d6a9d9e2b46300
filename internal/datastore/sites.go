package datastore

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// SaveSite inserts a new site record. The ID and CreatedAt fields are filled
// in by the database layer.
func (ds *DataStore) SaveSite(site *Site) error {
	if err := ds.DB.Create(site).Error; err != nil {
		return fmt.Errorf("saving site: %w", err)
	}
	return nil
}

// UpdateSite overwrites the mutable fields of an existing site. The deleted
// flag and creation timestamp are never touched. Updating an id that does
// not exist is a silent no-op.
func (ds *DataStore) UpdateSite(site *Site) error {
	err := ds.DB.Model(&Site{}).Where("id = ?", site.ID).
		Updates(map[string]any{
			"name":        site.Name,
			"job_number":  site.JobNumber,
			"customer":    site.Customer,
			"description": site.Description,
			"latitude":    site.Latitude,
			"longitude":   site.Longitude,
		}).Error
	if err != nil {
		return fmt.Errorf("updating site %d: %w", site.ID, err)
	}
	return nil
}

// SoftDeleteSite marks a site as deleted. The record stays queryable by id
// and can be restored.
func (ds *DataStore) SoftDeleteSite(id uint) error {
	return ds.setSiteStatus(id, SiteDeleted)
}

// RestoreSite clears the deleted flag.
func (ds *DataStore) RestoreSite(id uint) error {
	return ds.setSiteStatus(id, SiteActive)
}

func (ds *DataStore) setSiteStatus(id uint, status SiteStatus) error {
	err := ds.DB.Model(&Site{}).Where("id = ?", id).
		Update("deleted", bool(status)).Error
	if err != nil {
		return fmt.Errorf("setting site %d status: %w", id, err)
	}
	return nil
}

// GetSite fetches a site by id regardless of its deleted state.
func (ds *DataStore) GetSite(id uint) (Site, error) {
	var site Site
	err := ds.DB.First(&site, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Site{}, ErrSiteNotFound
		}
		return Site{}, fmt.Errorf("getting site %d: %w", id, err)
	}
	return site, nil
}

// SearchSites returns sites in the given state ordered most recent first,
// ties broken by insertion order. A non-blank query is matched
// case-insensitively as a substring against name, job number, customer and
// description; a blank query matches everything.
func (ds *DataStore) SearchSites(status SiteStatus, query string) ([]Site, error) {
	tx := ds.DB.Where("deleted = ?", bool(status))

	if q := strings.TrimSpace(query); q != "" {
		like := "%" + strings.ToLower(q) + "%"
		tx = tx.Where(
			"LOWER(name) LIKE ? OR LOWER(job_number) LIKE ? OR LOWER(customer) LIKE ? OR LOWER(description) LIKE ?",
			like, like, like, like,
		)
	}

	var sites []Site
	if err := tx.Order("created_at DESC, id DESC").Find(&sites).Error; err != nil {
		return nil, fmt.Errorf("searching sites: %w", err)
	}
	return sites, nil
}

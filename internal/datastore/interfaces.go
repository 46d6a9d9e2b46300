// interfaces.go: this code defines the interface for the database operations
package datastore

import (
	"errors"

	"github.com/RustycyberShackleford/WellAtlas2.7.2/internal/conf"
	"gorm.io/gorm"
)

// Sentinel errors callers branch on at the HTTP boundary.
var (
	ErrSiteNotFound = errors.New("site not found")
	ErrEmptyNote    = errors.New("note body is empty")
)

// Interface abstracts the underlying database implementation and defines the
// operations the rest of the application may perform.
type Interface interface {
	Open() error
	Close() error

	// sites
	SaveSite(site *Site) error
	UpdateSite(site *Site) error
	SoftDeleteSite(id uint) error
	RestoreSite(id uint) error
	GetSite(id uint) (Site, error)
	SearchSites(status SiteStatus, query string) ([]Site, error)

	// photos
	SavePhoto(photo *Photo) error
	GetPhotos(siteID uint) ([]Photo, error)

	// notes
	SaveNote(note *Note) error
	GetNotes(siteID uint) ([]Note, error)

	// settings
	GetSetting(key, defaultValue string) (string, error)
	SetSetting(key, value string) error
}

// DataStore implements Interface using a GORM database.
type DataStore struct {
	DB *gorm.DB // GORM database instance
}

// New creates a datastore instance for the configured backend.
func New(settings *conf.Settings) Interface {
	return &SQLiteStore{Settings: settings}
}

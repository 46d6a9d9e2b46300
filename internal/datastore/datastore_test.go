package datastore

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RustycyberShackleford/WellAtlas2.7.2/internal/conf"
)

// createDatabase initializes a temporary database for testing purposes.
func createDatabase(t *testing.T) Interface {
	t.Helper()

	settings := &conf.Settings{
		DataPath:    t.TempDir(),
		MaxUploadMB: 64,
	}

	store := New(settings)
	require.NoError(t, store.Open(), "Failed to open database")

	t.Cleanup(func() {
		assert.NoError(t, store.Close(), "Failed to close datastore")
	})

	return store
}

func TestSaveSiteAssignsIdentityAndTimestamp(t *testing.T) {
	store := createDatabase(t)

	site := Site{Name: "North Pad", JobNumber: "J-100", Customer: "Acme Water"}
	require.NoError(t, store.SaveSite(&site))

	assert.NotZero(t, site.ID)
	assert.False(t, site.CreatedAt.IsZero())

	got, err := store.GetSite(site.ID)
	require.NoError(t, err)
	assert.Equal(t, "North Pad", got.Name)
	assert.Equal(t, SiteActive, got.Status)
}

func TestGetSiteNotFound(t *testing.T) {
	store := createDatabase(t)

	_, err := store.GetSite(12345)
	assert.ErrorIs(t, err, ErrSiteNotFound)
}

func TestUpdateSiteOverwritesMutableFields(t *testing.T) {
	store := createDatabase(t)

	site := Site{Name: "Old Name", Latitude: 1.0, Longitude: 2.0}
	require.NoError(t, store.SaveSite(&site))
	created := site.CreatedAt

	updated := Site{
		ID:          site.ID,
		Name:        "New Name",
		JobNumber:   "J-200",
		Customer:    "New Customer",
		Description: "updated",
		Latitude:    33.3,
		Longitude:   -44.4,
	}
	require.NoError(t, store.UpdateSite(&updated))

	got, err := store.GetSite(site.ID)
	require.NoError(t, err)
	assert.Equal(t, "New Name", got.Name)
	assert.Equal(t, "J-200", got.JobNumber)
	assert.InDelta(t, 33.3, got.Latitude, 1e-9)
	assert.InDelta(t, -44.4, got.Longitude, 1e-9)
	assert.WithinDuration(t, created, got.CreatedAt, time.Second, "created_at must be immutable")
}

func TestUpdateSiteMissingIdIsNoOp(t *testing.T) {
	store := createDatabase(t)

	err := store.UpdateSite(&Site{ID: 9999, Name: "Ghost"})
	require.NoError(t, err)

	sites, err := store.SearchSites(SiteActive, "")
	require.NoError(t, err)
	assert.Empty(t, sites)
}

func TestSoftDeleteAndRestore(t *testing.T) {
	store := createDatabase(t)

	site := Site{Name: "Transient"}
	require.NoError(t, store.SaveSite(&site))

	require.NoError(t, store.SoftDeleteSite(site.ID))

	active, err := store.SearchSites(SiteActive, "")
	require.NoError(t, err)
	assert.Empty(t, active, "deleted site must not appear in default listing")

	deleted, err := store.SearchSites(SiteDeleted, "")
	require.NoError(t, err)
	require.Len(t, deleted, 1)
	assert.Equal(t, SiteDeleted, deleted[0].Status)

	// Still fully queryable by id while deleted.
	got, err := store.GetSite(site.ID)
	require.NoError(t, err)
	assert.Equal(t, SiteDeleted, got.Status)

	require.NoError(t, store.RestoreSite(site.ID))
	// A second restore is harmless.
	require.NoError(t, store.RestoreSite(site.ID))

	active, err = store.SearchSites(SiteActive, "")
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, site.ID, active[0].ID)
}

func TestSearchSitesSubstringAcrossFields(t *testing.T) {
	store := createDatabase(t)

	sites := []Site{
		{Name: "Ranch Well", JobNumber: "24-001", Customer: "Suden Farms", Description: "east pasture"},
		{Name: "Town Tank", JobNumber: "24-002", Customer: "City of Alta", Description: "water storage"},
		{Name: "Hilltop", JobNumber: "RANCH-9", Customer: "Other", Description: "backup"},
	}
	for i := range sites {
		require.NoError(t, store.SaveSite(&sites[i]))
	}

	// Case-insensitive, OR across name/job_number/customer/description.
	got, err := store.SearchSites(SiteActive, "ranch")
	require.NoError(t, err)
	require.Len(t, got, 2)

	got, err = store.SearchSites(SiteActive, "WATER")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Town Tank", got[0].Name)

	// Blank and whitespace-only queries return everything.
	got, err = store.SearchSites(SiteActive, "   ")
	require.NoError(t, err)
	assert.Len(t, got, 3)

	got, err = store.SearchSites(SiteActive, "no such text")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestSearchSitesOrderingNewestFirst(t *testing.T) {
	store := createDatabase(t)

	first := Site{Name: "First"}
	require.NoError(t, store.SaveSite(&first))
	second := Site{Name: "Second"}
	require.NoError(t, store.SaveSite(&second))
	third := Site{Name: "Third"}
	require.NoError(t, store.SaveSite(&third))

	got, err := store.SearchSites(SiteActive, "")
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "Third", got[0].Name)
	assert.Equal(t, "Second", got[1].Name)
	assert.Equal(t, "First", got[2].Name)

	// Delete then restore keeps the site in its original sort position.
	require.NoError(t, store.SoftDeleteSite(second.ID))
	require.NoError(t, store.RestoreSite(second.ID))

	got, err = store.SearchSites(SiteActive, "")
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "Second", got[1].Name)
}

func TestSaveNoteRejectsBlankBody(t *testing.T) {
	store := createDatabase(t)

	site := Site{Name: "Notes Site"}
	require.NoError(t, store.SaveSite(&site))

	err := store.SaveNote(&Note{SiteID: site.ID, Body: "   \n\t "})
	assert.ErrorIs(t, err, ErrEmptyNote)

	notes, err := store.GetNotes(site.ID)
	require.NoError(t, err)
	assert.Empty(t, notes)
}

func TestNotesNewestFirst(t *testing.T) {
	store := createDatabase(t)

	site := Site{Name: "Notes Site"}
	require.NoError(t, store.SaveSite(&site))

	require.NoError(t, store.SaveNote(&Note{SiteID: site.ID, Body: "first entry"}))
	require.NoError(t, store.SaveNote(&Note{SiteID: site.ID, Body: "second entry"}))

	notes, err := store.GetNotes(site.ID)
	require.NoError(t, err)
	require.Len(t, notes, 2)
	assert.Equal(t, "second entry", notes[0].Body)
	assert.Equal(t, "first entry", notes[1].Body)
}

func TestPhotosNewestFirstAndScopedToSite(t *testing.T) {
	store := createDatabase(t)

	siteA := Site{Name: "A"}
	require.NoError(t, store.SaveSite(&siteA))
	siteB := Site{Name: "B"}
	require.NoError(t, store.SaveSite(&siteB))

	require.NoError(t, store.SavePhoto(&Photo{SiteID: siteA.ID, Filename: "a_1.jpg"}))
	require.NoError(t, store.SavePhoto(&Photo{SiteID: siteA.ID, Filename: "a_2.jpg", Caption: "pump"}))
	require.NoError(t, store.SavePhoto(&Photo{SiteID: siteB.ID, Filename: "b_1.jpg"}))

	photos, err := store.GetPhotos(siteA.ID)
	require.NoError(t, err)
	require.Len(t, photos, 2)
	assert.Equal(t, "a_2.jpg", photos[0].Filename)
	assert.Equal(t, "a_1.jpg", photos[1].Filename)
}

func TestSettingsDefaultAndUpsert(t *testing.T) {
	store := createDatabase(t)

	// Seeded on open.
	title, err := store.GetSetting("header_title", "fallback")
	require.NoError(t, err)
	assert.Equal(t, conf.DefaultHeaderTitle, title)

	value, err := store.GetSetting("missing_key", "the default")
	require.NoError(t, err)
	assert.Equal(t, "the default", value)

	require.NoError(t, store.SetSetting("header_title", "Custom Title"))
	require.NoError(t, store.SetSetting("header_title", "Newer Title"))

	title, err = store.GetSetting("header_title", "fallback")
	require.NoError(t, err)
	assert.Equal(t, "Newer Title", title, "last writer wins")
}

func TestCreatedAtCloseToNow(t *testing.T) {
	store := createDatabase(t)

	site := Site{Name: "Clock Check"}
	require.NoError(t, store.SaveSite(&site))
	assert.WithinDuration(t, time.Now(), site.CreatedAt, 5*time.Second)
}

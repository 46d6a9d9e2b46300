// httpcontroller/routes.go
package httpcontroller

// initRoutes registers every route of the application.
func (s *Server) initRoutes() {
	h := s.Handlers

	s.Echo.GET("/", h.Home)
	s.Echo.GET("/settings", h.SettingsPage)
	s.Echo.POST("/settings", h.UpdateSettings)

	s.Echo.GET("/api/sites", h.APISites)

	s.Echo.POST("/sites/create", h.CreateSite)
	s.Echo.GET("/sites/:id", h.SiteDetail)
	s.Echo.POST("/sites/:id/edit", h.EditSite)
	s.Echo.POST("/sites/:id/delete", h.DeleteSite)
	s.Echo.GET("/deleted", h.DeletedSites)
	s.Echo.POST("/sites/:id/restore", h.RestoreSite)

	s.Echo.POST("/sites/:id/upload", h.UploadPhoto)
	s.Echo.GET("/uploads/:filename", h.ServeUpload)

	s.Echo.POST("/sites/:id/note", h.AddNote)

	s.Echo.POST("/import/kml", h.ImportKML)
}

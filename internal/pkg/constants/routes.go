package constants

// Static route constants
const (
	UploadsRoute = "/uploads"
	APIRoute     = "/api"
	NewsPreview  = "/news/:slug"
	// Upload path without leading slash for directory construction
	UploadsPath = "uploads"
)

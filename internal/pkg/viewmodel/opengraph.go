package viewmodel

// OpenGraph carries the meta-tag values for the crawler-facing preview
// documents. All URL fields are absolute.
type OpenGraph struct {
	SiteName      string
	Title         string
	Description   string
	URL           string
	Image         string
	ImageWidth    int
	ImageHeight   int
	Author        string
	Section       string
	PublishedTime string
	TwitterSite   string
	Lang          string
	RedirectURL   string
}

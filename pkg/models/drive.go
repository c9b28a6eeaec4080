package models

// DriveFile is one downloadable file extracted from the public
// certificate folder. Never persisted; recomputed on every scrape.
type DriveFile struct {
	ID          string `json:"id"`
	Name        string `json:"name"` // display name, trailing ".pdf" stripped
	DownloadURL string `json:"downloadUrl"`
}

package utils

import (
	"os"
	"strconv"
	"time"
)

type AuthConfig struct {
	JWTSecret   string
	JWTIssuer   string
	JWTDuration time.Duration
}

func LoadAuthConfig() AuthConfig {
	secret := os.Getenv("FESTHUB_JWT_SECRET")
	if secret == "" {
		// dev default (change for demo / production)
		secret = "dev-secret-change-me"
	}

	issuer := os.Getenv("FESTHUB_JWT_ISSUER")
	if issuer == "" {
		issuer = "festhub"
	}

	dur := 24 * time.Hour
	if ttl := os.Getenv("FESTHUB_JWT_TTL_HOURS"); ttl != "" {
		if h, err := strconv.Atoi(ttl); err == nil && h > 0 {
			dur = time.Duration(h) * time.Hour
		}
	}

	return AuthConfig{
		JWTSecret:   secret,
		JWTIssuer:   issuer,
		JWTDuration: dur,
	}
}

// MailConfig configures the transactional-email provider client.
// An empty APIKey is reported in-band by the send handler; the server
// still starts.
type MailConfig struct {
	APIKey  string
	BaseURL string
	From    string
}

func LoadMailConfig() MailConfig {
	base := os.Getenv("FESTHUB_RESEND_BASE_URL")
	if base == "" {
		base = "https://api.resend.com"
	}

	from := os.Getenv("FESTHUB_MAIL_FROM")
	if from == "" {
		from = "Kapricious 2026 <onboarding@resend.dev>"
	}

	return MailConfig{
		APIKey:  os.Getenv("FESTHUB_RESEND_API_KEY"),
		BaseURL: base,
		From:    from,
	}
}

// DriveConfig points the certificate scraper at the public folder.
type DriveConfig struct {
	FolderID string
	BaseURL  string
}

func LoadDriveConfig() DriveConfig {
	folder := os.Getenv("FESTHUB_DRIVE_FOLDER_ID")
	if folder == "" {
		folder = "1pRrkzxKU5sEajPvqXq7eUtDDGcTHYk1j"
	}

	base := os.Getenv("FESTHUB_DRIVE_BASE_URL")
	if base == "" {
		base = "https://drive.google.com"
	}

	return DriveConfig{FolderID: folder, BaseURL: base}
}

// StorageConfig configures the object-storage endpoint used for
// payment screenshots.
type StorageConfig struct {
	BaseURL string
	Bucket  string
}

func LoadStorageConfig() StorageConfig {
	bucket := os.Getenv("FESTHUB_STORAGE_BUCKET")
	if bucket == "" {
		bucket = "payment-screenshots"
	}

	return StorageConfig{
		BaseURL: os.Getenv("FESTHUB_STORAGE_URL"),
		Bucket:  bucket,
	}
}

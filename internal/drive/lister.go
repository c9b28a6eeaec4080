package drive

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"sort"
	"strings"
	"time"

	"festhub/pkg/models"
	"festhub/pkg/utils"
)

// Drive serves different markup to non-browser clients, so both fetches
// present a browser User-Agent.
const userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"

// Lister scrapes the public certificate folder. The folder id and base
// URL are injected so tests can point it at fixture servers.
type Lister struct {
	FolderID string
	BaseURL  string
	Client   *http.Client

	primary  []Strategy
	embedded []Strategy
}

func NewLister(cfg utils.DriveConfig) *Lister {
	return &Lister{
		FolderID: cfg.FolderID,
		BaseURL:  strings.TrimRight(cfg.BaseURL, "/"),
		Client:   &http.Client{Timeout: 12 * time.Second},
		primary:  PrimaryStrategies(),
		embedded: EmbeddedStrategies(),
	}
}

// ListFiles fetches the folder listing and extracts PDF descriptors,
// trying each strategy in order until one yields results. A reachable
// folder with no recognizable entries is an empty list, not an error;
// only the primary fetch failing is reported to the caller.
func (l *Lister) ListFiles(ctx context.Context) ([]models.DriveFile, error) {
	html, err := l.fetch(ctx, l.BaseURL+"/drive/folders/"+l.FolderID)
	if err != nil {
		return nil, fmt.Errorf("fetch folder: %w", err)
	}

	matches := l.runChain(l.primary, html)

	if len(matches) == 0 {
		// Secondary endpoint: the embedded folder view sometimes exposes
		// the list when the main page does not. Its failure degrades to
		// an empty result instead of propagating.
		embedHTML, err := l.fetch(ctx, l.BaseURL+"/embeddedfolderview?id="+l.FolderID)
		if err != nil {
			log.Printf("[drive] embedded view fetch failed: %v", err)
		} else {
			matches = l.runChain(l.embedded, embedHTML)
		}
	}

	return normalize(matches, l.BaseURL), nil
}

func (l *Lister) runChain(strategies []Strategy, source string) []Match {
	for _, s := range strategies {
		matches := s.Extract(source)
		if len(matches) > 0 {
			log.Printf("[drive] strategy %s matched %d entries", s.Name, len(matches))
			return matches
		}
	}
	return nil
}

func (l *Lister) fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := l.Client.Do(req)
	if err != nil {
		return "", fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("status %d", resp.StatusCode)
	}
	return string(body), nil
}

// normalize dedups by id (first occurrence wins), strips one trailing
// ".pdf" from the name and sorts case-insensitively by display name.
func normalize(matches []Match, baseURL string) []models.DriveFile {
	seen := make(map[string]struct{}, len(matches))
	files := make([]models.DriveFile, 0, len(matches))

	for _, m := range matches {
		if _, ok := seen[m.ID]; ok {
			continue
		}
		seen[m.ID] = struct{}{}
		files = append(files, models.DriveFile{
			ID:          m.ID,
			Name:        stripPDFSuffix(m.Name),
			DownloadURL: baseURL + "/uc?export=download&id=" + m.ID,
		})
	}

	sort.SliceStable(files, func(i, j int) bool {
		return strings.ToLower(files[i].Name) < strings.ToLower(files[j].Name)
	})
	return files
}

func stripPDFSuffix(name string) string {
	if strings.HasSuffix(strings.ToLower(name), ".pdf") {
		return name[:len(name)-len(".pdf")]
	}
	return name
}

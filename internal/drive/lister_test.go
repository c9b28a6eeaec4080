package drive

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/go-cmp/cmp"

	"festhub/pkg/models"
	"festhub/pkg/utils"
)

const testFolderID = "folder123"

// fixtureServer serves canned bodies for the folder page and the
// embedded view so the strategy chain can be exercised end to end.
func fixtureServer(t *testing.T, folderStatus int, folderBody string, embedStatus int, embedBody string) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/drive/folders/"+testFolderID, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(folderStatus)
		_, _ = w.Write([]byte(folderBody))
	})
	mux.HandleFunc("/embeddedfolderview", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("id") != testFolderID {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.WriteHeader(embedStatus)
		_, _ = w.Write([]byte(embedBody))
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func newTestLister(baseURL string) *Lister {
	return NewLister(utils.DriveConfig{FolderID: testFolderID, BaseURL: baseURL})
}

const (
	idA = "1AaaaAaaaAaaaAaaaAaaaAaaaA"
	idB = "1BbbbBbbbBbbbBbbbBbbbBbbbB"
	idC = "1CcccCcccCcccCcccCcccCcccC"
)

func TestListFilesSortAndDedup(t *testing.T) {
	body := `["` + idA + `","Zeta.pdf" ["` + idB + `","alpha.pdf" ` +
		`["` + idC + `","Beta.pdf" ["` + idA + `","ZETA.PDF"`

	srv := fixtureServer(t, http.StatusOK, body, http.StatusOK, "")
	l := newTestLister(srv.URL)

	files, err := l.ListFiles(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []models.DriveFile{
		{ID: idB, Name: "alpha", DownloadURL: srv.URL + "/uc?export=download&id=" + idB},
		{ID: idC, Name: "Beta", DownloadURL: srv.URL + "/uc?export=download&id=" + idC},
		{ID: idA, Name: "Zeta", DownloadURL: srv.URL + "/uc?export=download&id=" + idA},
	}
	if diff := cmp.Diff(want, files); diff != "" {
		t.Errorf("files mismatch (-want +got):\n%s", diff)
	}
}

func TestListFilesStrategyFallthrough(t *testing.T) {
	// No inline manifest; only data-id markup, so strategy B must fire.
	body := `<div data-id="` + idA + `" class="entry"><div class="name">First.pdf</div></div>` +
		`<div data-id="` + idB + `" class="entry"><div class="name">Second.pdf</div></div>`

	srv := fixtureServer(t, http.StatusOK, body, http.StatusOK, "")
	l := newTestLister(srv.URL)

	files, err := l.ListFiles(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(files) != 2 {
		t.Fatalf("want 2 files, got %d", len(files))
	}
	if files[0].Name != "First" || files[1].Name != "Second" {
		t.Errorf("unexpected names: %q, %q", files[0].Name, files[1].Name)
	}
}

func TestListFilesEmbeddedFallback(t *testing.T) {
	embed := `["` + idA + `","Winner","x","application/pdf"`

	srv := fixtureServer(t, http.StatusOK, "<html>nothing here</html>", http.StatusOK, embed)
	l := newTestLister(srv.URL)

	files, err := l.ListFiles(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(files) != 1 || files[0].ID != idA || files[0].Name != "Winner" {
		t.Fatalf("unexpected result: %+v", files)
	}
}

func TestListFilesEmptyVsError(t *testing.T) {
	t.Run("empty folder is not an error", func(t *testing.T) {
		srv := fixtureServer(t, http.StatusOK, "<html></html>", http.StatusOK, "<html></html>")
		l := newTestLister(srv.URL)

		files, err := l.ListFiles(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(files) != 0 {
			t.Errorf("want empty list, got %d files", len(files))
		}
	})

	t.Run("primary fetch failure is an error", func(t *testing.T) {
		srv := fixtureServer(t, http.StatusServiceUnavailable, "down", http.StatusOK, "")
		l := newTestLister(srv.URL)

		if _, err := l.ListFiles(context.Background()); err == nil {
			t.Fatal("expected error, got nil")
		}
	})

	t.Run("embedded fetch failure degrades to empty", func(t *testing.T) {
		srv := fixtureServer(t, http.StatusOK, "<html></html>", http.StatusInternalServerError, "")
		l := newTestLister(srv.URL)

		files, err := l.ListFiles(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(files) != 0 {
			t.Errorf("want empty list, got %d files", len(files))
		}
	})
}

func TestStripPDFSuffix(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Alice.pdf", "Alice"},
		{"Alice.PDF", "Alice"},
		{"Alice.pdf.pdf", "Alice.pdf"}, // stripped exactly once
		{"Alice", "Alice"},
		{"report.txt", "report.txt"},
	}

	for _, tt := range tests {
		if got := stripPDFSuffix(tt.in); got != tt.want {
			t.Errorf("stripPDFSuffix(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

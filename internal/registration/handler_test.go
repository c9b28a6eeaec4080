package registration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/gin-gonic/gin"

	"festhub/internal/storage"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()

	storageSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(storageSrv.Close)

	store := &storage.Client{BaseURL: storageSrv.URL, Bucket: "payment-screenshots", HTTP: storageSrv.Client()}
	h := NewHandler(NewRepo(testDB(t)), store, nil)

	gin.SetMode(gin.TestMode)
	r := gin.New()
	h.RegisterRoutes(r.Group("/registrations"))
	return r
}

func registrationForm(t *testing.T, fields map[string]string) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			t.Fatalf("write field %s: %v", k, err)
		}
	}

	hdr := make(textproto.MIMEHeader)
	hdr.Set("Content-Disposition", fmt.Sprintf(`form-data; name="screenshot"; filename=%q`, "shot.png"))
	hdr.Set("Content-Type", "image/png")
	part, err := w.CreatePart(hdr)
	if err != nil {
		t.Fatalf("create file part: %v", err)
	}
	if _, err := part.Write([]byte("pngbytes")); err != nil {
		t.Fatalf("write file part: %v", err)
	}

	if err := w.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}
	return &buf, w.FormDataContentType()
}

func postRegistration(t *testing.T, r *gin.Engine, fields map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	body, contentType := registrationForm(t, fields)
	req := httptest.NewRequest(http.MethodPost, "/registrations", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func validForm() map[string]string {
	return map[string]string{
		"name":           "Asha Kumar",
		"email":          "asha@college.edu",
		"phone":          "9876543210",
		"college":        "Govt Engineering College",
		"transaction_id": "TXN42",
		"department_id":  "dept-1",
		"event_id":       "event-1",
	}
}

func TestCreateRegistrationHandler(t *testing.T) {
	r := newTestRouter(t)

	w := postRegistration(t, r, validForm())
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201: %s", w.Code, w.Body.String())
	}

	var created struct {
		ID            string `json:"id"`
		EventTitle    string `json:"event_title"`
		PaymentStatus string `json:"payment_status"`
		ScreenshotURL string `json:"screenshot_url"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("bad body: %v", err)
	}
	if created.ID == "" {
		t.Error("response missing id")
	}
	if created.EventTitle != "AI Hackathon" {
		t.Errorf("event_title = %q, want joined title", created.EventTitle)
	}
	if created.PaymentStatus != "pending" {
		t.Errorf("payment_status = %q", created.PaymentStatus)
	}
	if created.ScreenshotURL == "" {
		t.Error("response missing screenshot_url")
	}
}

func TestCreateRegistrationDuplicateConflict(t *testing.T) {
	r := newTestRouter(t)

	if w := postRegistration(t, r, validForm()); w.Code != http.StatusCreated {
		t.Fatalf("first submit: status = %d: %s", w.Code, w.Body.String())
	}

	w := postRegistration(t, r, validForm())
	if w.Code != http.StatusConflict {
		t.Fatalf("second submit: status = %d, want 409: %s", w.Code, w.Body.String())
	}

	var out map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("bad body: %v", err)
	}
	if out["error"] != "You have already registered for this event." {
		t.Errorf("error = %q", out["error"])
	}
}

func TestCreateRegistrationValidationErrors(t *testing.T) {
	r := newTestRouter(t)

	fields := validForm()
	fields["email"] = "not-an-email"
	delete(fields, "name")

	w := postRegistration(t, r, fields)
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422: %s", w.Code, w.Body.String())
	}

	var out struct {
		Errors map[string]string `json:"errors"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("bad body: %v", err)
	}
	if out.Errors["name"] != "Name is required" || out.Errors["email"] != "Invalid email" {
		t.Errorf("unexpected errors: %v", out.Errors)
	}
}

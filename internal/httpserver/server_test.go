package httpserver

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/Skotchmaster/boutiquechat/internal/repo"
	"github.com/Skotchmaster/boutiquechat/internal/repo/repotest"
	"github.com/Skotchmaster/boutiquechat/internal/service"
	"github.com/Skotchmaster/boutiquechat/internal/upload"
	"github.com/Skotchmaster/boutiquechat/pkg/logging"
	"github.com/Skotchmaster/boutiquechat/pkg/tokens"
)

const (
	testAdmin    = "owner"
	testPassword = "s3cret"
)

type fakeUploader struct {
	url  string
	err  error
	name string
	body []byte
}

func (f *fakeUploader) Upload(_ context.Context, filename string, r io.Reader) (string, error) {
	f.name = filename
	b, _ := io.ReadAll(r)
	f.body = b
	if f.err != nil {
		return "", f.err
	}
	return f.url, nil
}

type testEnv struct {
	e        *echo.Echo
	repo     *repo.GormRepo
	uploader *fakeUploader
	csrf     string
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	return newTestEnvWith(t, nil)
}

// newTestEnvWith lets a test adjust the dependencies before the server is built.
func newTestEnvWith(t *testing.T, adjust func(*Deps)) *testEnv {
	t.Helper()

	r := repotest.New(t)
	catalog := &service.CatalogService{Repo: r}
	settings := &service.SettingsService{Repo: r}
	auth := &service.AuthService{Repo: r, JWTSecret: []byte("test-secret")}
	require.NoError(t, auth.EnsureAdmin(context.Background(), testAdmin, testPassword))

	up := &fakeUploader{url: "https://i.ibb.co/abc/photo.jpg"}

	deps := &Deps{
		CatalogHandler:  &CatalogHTTP{Svc: catalog, Settings: settings},
		SettingsHandler: &SettingsHTTP{Svc: settings},
		AuthHandler:     &AuthHTTP{Svc: auth},
		UploadHandler:   &UploadHTTP{Uploader: up, MaxBytes: 1024},
		Auth:            auth,
	}
	if adjust != nil {
		adjust(deps)
	}

	e := New(logging.NewWithWriter(io.Discard, "error"), deps)
	return &testEnv{e: e, repo: r, uploader: up}
}

func (env *testEnv) do(t *testing.T, method, path string, body any, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		rdr = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, rdr)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	env.attachCSRF(req)

	rec := httptest.NewRecorder()
	env.e.ServeHTTP(rec, req)
	return rec
}

// attachCSRF echoes the token issued at login, as a browser client would.
func (env *testEnv) attachCSRF(req *http.Request) {
	if env.csrf == "" {
		return
	}
	req.AddCookie(&http.Cookie{Name: "XSRF-TOKEN", Value: env.csrf})
	req.Header.Set("X-CSRF-Token", env.csrf)
}

func (env *testEnv) login(t *testing.T) *http.Cookie {
	t.Helper()

	rec := env.do(t, http.MethodPost, "/admin/login", map[string]string{
		"username": testAdmin,
		"password": testPassword,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	env.csrf = decode[map[string]any](t, rec)["csrf_token"].(string)

	for _, ck := range rec.Result().Cookies() {
		if ck.Name == tokens.AccessCookieName {
			return &http.Cookie{Name: ck.Name, Value: ck.Value}
		}
	}
	t.Fatal("login did not set the access cookie")
	return nil
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func multipartImage(t *testing.T, field, filename, contentType string, data []byte) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	h := make(map[string][]string)
	h["Content-Disposition"] = []string{`form-data; name="` + field + `"; filename="` + filename + `"`}
	h["Content-Type"] = []string{contentType}
	part, err := w.CreatePart(h)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return &buf, w.FormDataContentType()
}

var errHostDown = errors.New("connection refused")

func serve(env *testEnv, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	env.e.ServeHTTP(rec, req)
	return rec
}

package server

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"crud-tutorials/config"
	"crud-tutorials/internal/repository"
	"crud-tutorials/internal/security"
	"crud-tutorials/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

func testConfig(t *testing.T, app string) *config.Config {
	t.Helper()
	return &config.Config{
		App:      config.AppConfig{Name: app},
		Server:   config.ServerConfig{Host: "127.0.0.1", Port: 1},
		HTTP:     config.HTTPConfig{RequestTimeout: 3 * time.Second, BodyLimit: 1 << 20},
		Database: config.DatabaseConfig{Driver: config.DriverSQLite, Path: filepath.Join(t.TempDir(), app+".db")},
		Session:  config.SessionConfig{Secret: "some_random_key", CookieName: "session", MaxAge: time.Hour},
		Auth:     config.AuthConfig{BcryptCost: bcrypt.MinCost, LoginRedirect: "/"},
		Upload:   config.UploadConfig{Dir: t.TempDir()},
	}
}

func newTestServer(t *testing.T, app string) *fiber.App {
	t.Helper()
	ctx := context.Background()
	log := zap.NewNop().Sugar()
	cfg := testConfig(t, app)

	deps := Deps{Log: log, Config: cfg}
	if cfg.NeedsStore() {
		repo, err := repository.New(ctx, cfg.Database.Driver, log, cfg)
		require.NoError(t, err)
		require.NoError(t, repo.OnStart(ctx))
		t.Cleanup(func() { _ = repo.OnStop(ctx) })
		deps.Usecase = usecase.New(log, ctx, repo, cfg.HTTP.RequestTimeout, security.NewHasher(cfg.Auth.BcryptCost))
	}

	serv, err := New(deps)
	require.NoError(t, err)
	return serv
}

// client carries cookies between requests like a browser would.
type client struct {
	t       *testing.T
	app     *fiber.App
	cookies map[string]string
}

func newClient(t *testing.T, app *fiber.App) *client {
	return &client{t: t, app: app, cookies: map[string]string{}}
}

func (c *client) do(req *http.Request) (*http.Response, string) {
	c.t.Helper()
	for k, v := range c.cookies {
		req.AddCookie(&http.Cookie{Name: k, Value: v})
	}
	resp, err := c.app.Test(req)
	require.NoError(c.t, err)
	defer resp.Body.Close()

	for _, ck := range resp.Cookies() {
		if ck.Value == "" || (!ck.Expires.IsZero() && ck.Expires.Before(time.Now())) {
			delete(c.cookies, ck.Name)
			continue
		}
		c.cookies[ck.Name] = ck.Value
	}
	body, err := io.ReadAll(resp.Body)
	require.NoError(c.t, err)
	return resp, string(body)
}

func (c *client) get(path string) (*http.Response, string) {
	return c.do(httptest.NewRequest(http.MethodGet, path, nil))
}

func (c *client) postForm(path string, form url.Values) (*http.Response, string) {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationForm)
	return c.do(req)
}

func (c *client) sendJSON(method, path, body string) (*http.Response, string) {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.do(req)
}

func TestNewRequiresUsecaseForStoredApps(t *testing.T) {
	_, err := New(Deps{Log: zap.NewNop().Sugar(), Config: testConfig(t, config.AppContacts)})
	require.Error(t, err)
}

func TestHealthAndMetrics(t *testing.T) {
	c := newClient(t, newTestServer(t, config.AppFirst))

	resp, _ := c.get("/healthz")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	_, _ = c.get("/greet/Sam")
	resp, body := c.get("/metrics")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Contains(t, body, `http_requests_total{app="firstapp",method="GET",route="/greet/:name",status="200"} 1`)
}

func TestFirstApp(t *testing.T) {
	c := newClient(t, newTestServer(t, config.AppFirst))

	_, body := c.get("/greet/Sam")
	require.Equal(t, "Hello Sam", body)

	_, body = c.get("/add/2/3")
	require.Equal(t, "2 + 3 = 5", body)

	resp, _ := c.get("/add/2/x")
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestSessionsRoundTrip(t *testing.T) {
	c := newClient(t, newTestServer(t, config.AppSessions))

	_, body := c.get("/set_data?name=Sam&color=blue")
	require.Equal(t, "Session data set.", body)

	_, body = c.get("/get_data")
	require.JSONEq(t, `{"name":"Sam","color":"blue"}`, body)

	_, body = c.get("/get_data/color")
	require.Equal(t, "blue", body)

	_, body = c.get("/clear_session")
	require.Equal(t, "Session cleared.", body)
	require.NotContains(t, c.cookies, "session")

	_, body = c.get("/get_data")
	require.Equal(t, "No session found.", body)
}

func TestBlueprintsTodos(t *testing.T) {
	c := newClient(t, newTestServer(t, config.AppBlueprints))

	resp, body := c.postForm("/todos/create", url.Values{"title": {"   "}})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	require.Contains(t, body, "title is required")

	_, body = c.get("/todos/")
	require.Contains(t, body, "Nothing to do.")

	resp, _ = c.postForm("/todos/create", url.Values{"title": {"Buy milk"}, "description": {"2 litres"}})
	require.Equal(t, http.StatusFound, resp.StatusCode)

	_, body = c.get("/todos/1")
	require.Contains(t, body, "&lt;TODO Buy milk Done: False&gt;")

	resp, _ = c.postForm("/todos/1/done", nil)
	require.Equal(t, http.StatusFound, resp.StatusCode)
	_, body = c.get("/todos/1")
	require.Contains(t, body, "Done: true")
	require.Contains(t, body, "&lt;TODO Buy milk Done: True&gt;")

	resp, _ = c.postForm("/todos/1/delete", nil)
	require.Equal(t, http.StatusFound, resp.StatusCode)
	resp, _ = c.get("/todos/1")
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestBlueprintsPeople(t *testing.T) {
	c := newClient(t, newTestServer(t, config.AppBlueprints))

	resp, _ := c.postForm("/people/create", url.Values{"name": {"Ann"}, "job": {"Dev"}})
	require.Equal(t, http.StatusFound, resp.StatusCode)

	_, body := c.get("/people/1")
	require.Contains(t, body, "&lt;PERSON Ann Age: None&gt;")

	resp, _ = c.postForm("/people/1/update", url.Values{"name": {"Ann"}, "age": {"31"}, "job": {"CTO"}})
	require.Equal(t, http.StatusFound, resp.StatusCode)
	_, body = c.get("/people/1")
	require.Contains(t, body, "&lt;PERSON Ann Age: 31&gt;")

	resp, _ = c.postForm("/people/1/update", url.Values{"name": {""}, "job": {"CTO"}})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, _ = c.postForm("/people/1/delete", nil)
	require.Equal(t, http.StatusFound, resp.StatusCode)
	_, body = c.get("/people/")
	require.Contains(t, body, "Nobody here yet.")
}

func TestAuthFlow(t *testing.T) {
	c := newClient(t, newTestServer(t, config.AppAuth))

	resp, _ := c.get("/secret")
	require.Equal(t, http.StatusFound, resp.StatusCode)
	require.Equal(t, "/", resp.Header.Get(fiber.HeaderLocation))

	resp, _ = c.postForm("/signup", url.Values{"username": {"sam"}})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, _ = c.postForm("/signup", url.Values{"username": {"sam"}, "password": {"pw"}, "role": {"admin"}})
	require.Equal(t, http.StatusFound, resp.StatusCode)

	resp, _ = c.postForm("/signup", url.Values{"username": {"sam"}, "password": {"other"}})
	require.Equal(t, http.StatusConflict, resp.StatusCode)

	resp, body := c.postForm("/login", url.Values{"username": {"sam"}, "password": {"nope"}})
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	require.Contains(t, body, "Invalid credentials")
	require.NotContains(t, c.cookies, "session")

	resp, _ = c.postForm("/login", url.Values{"username": {"sam"}, "password": {"pw"}})
	require.Equal(t, http.StatusFound, resp.StatusCode)
	require.Contains(t, c.cookies, "session")

	resp, body = c.get("/secret")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Contains(t, body, "Only sam can see this.")

	_, body = c.get("/")
	require.Contains(t, body, "Logged in as sam (admin).")

	resp, _ = c.get("/logout")
	require.Equal(t, http.StatusFound, resp.StatusCode)
	resp, _ = c.get("/secret")
	require.Equal(t, http.StatusFound, resp.StatusCode)
}

func TestContactsAPI(t *testing.T) {
	c := newClient(t, newTestServer(t, config.AppContacts))

	resp, body := c.sendJSON(http.MethodPost, "/create_contact", `{"firstName":"Ann","lastName":"Lee"}`)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	require.JSONEq(t, `{"message":"You must include a first name, last name and email"}`, body)

	resp, _ = c.sendJSON(http.MethodPost, "/create_contact", `{"firstName":"Ann","lastName":"Lee","email":"not-an-email"}`)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, body = c.sendJSON(http.MethodPost, "/create_contact", `{"firstName":"Ann","lastName":"Lee","email":"ann@example.com"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	require.JSONEq(t, `{"message":"User created!"}`, body)

	resp, _ = c.sendJSON(http.MethodPost, "/create_contact", `{"firstName":"Other","lastName":"Lee","email":"ann@example.com"}`)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	_, body = c.get("/contacts")
	require.JSONEq(t, `{"contacts":[{"id":1,"firstName":"Ann","lastName":"Lee","email":"ann@example.com"}]}`, body)

	resp, body = c.sendJSON(http.MethodPatch, "/update_contact/1", `{"lastName":"Park"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.JSONEq(t, `{"message":"User updated."}`, body)

	_, body = c.get("/contacts")
	require.JSONEq(t, `{"contacts":[{"id":1,"firstName":"Ann","lastName":"Park","email":"ann@example.com"}]}`, body)

	resp, body = c.sendJSON(http.MethodPatch, "/update_contact/42", `{"lastName":"Park"}`)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	require.JSONEq(t, `{"message":"User not found"}`, body)

	resp, body = c.do(httptest.NewRequest(http.MethodDelete, "/delete_contact/1", nil))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.JSONEq(t, `{"message":"User deleted!"}`, body)

	resp, _ = c.do(httptest.NewRequest(http.MethodDelete, "/delete_contact/1", nil))
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestContactsCORS(t *testing.T) {
	c := newClient(t, newTestServer(t, config.AppContacts))

	req := httptest.NewRequest(http.MethodGet, "/contacts", nil)
	req.Header.Set(fiber.HeaderOrigin, "http://localhost:5173")
	resp, _ := c.do(req)
	require.Equal(t, "*", resp.Header.Get(fiber.HeaderAccessControlAllowOrigin))
}

func TestContactsMetricsKeepMethodLabels(t *testing.T) {
	c := newClient(t, newTestServer(t, config.AppContacts))

	_, _ = c.get("/contacts")
	_, _ = c.sendJSON(http.MethodPost, "/create_contact", `{"firstName":"Ann","lastName":"Lee","email":"ann@example.com"}`)
	_, _ = c.get("/contacts")
	_, _ = c.sendJSON(http.MethodPatch, "/update_contact/1", `{"lastName":"Park"}`)
	_, _ = c.get("/nope")

	_, body := c.get("/metrics")
	require.Contains(t, body, `http_requests_total{app="contacts",method="GET",route="/contacts",status="200"} 2`)
	require.Contains(t, body, `http_requests_total{app="contacts",method="POST",route="/create_contact",status="201"} 1`)
	require.Contains(t, body, `http_requests_total{app="contacts",method="PATCH",route="/update_contact/:user_id",status="200"} 1`)
	require.Contains(t, body, `http_requests_total{app="contacts",method="GET",route="unmatched",status="404"} 1`)
	require.NotContains(t, body, `method="GETC`)
}

package middleware

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"crud-tutorials/config"
	"crud-tutorials/internal/entities"
	"crud-tutorials/internal/transport/http/session"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestRequestLoggerRecordsErrorStatus(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	app := fiber.New()
	app.Use(RequestLogger(zap.New(core).Sugar()))
	app.Get("/missing", func(c *fiber.Ctx) error {
		return fiber.ErrNotFound
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/missing", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, 1, logs.Len())
	fields := logs.All()[0].ContextMap()
	require.EqualValues(t, http.StatusNotFound, fields["status"])
	require.Equal(t, "/missing", fields["path"])
}

func TestMetricsCountsByRoute(t *testing.T) {
	reg := prometheus.NewRegistry()
	app := fiber.New()
	app.Use(NewMetrics(reg, "firstapp").Handler())
	app.Get("/greet/:name", func(c *fiber.Ctx) error {
		return c.SendString("Hello " + c.Params("name"))
	})
	app.Get("/metrics", MetricsEndpoint(reg))

	for _, name := range []string{"a", "b"} {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/greet/"+name, nil))
		require.NoError(t, err)
		resp.Body.Close()
	}

	count, err := testutil.GatherAndCount(reg, "http_requests_total")
	require.NoError(t, err)
	require.Equal(t, 1, count)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.Contains(t, string(body), `http_requests_total{app="firstapp",method="GET",route="/greet/:name",status="200"} 2`)
}

func TestMetricsLabelsEachMethod(t *testing.T) {
	m := NewMetrics(prometheus.NewRegistry(), "contacts")
	app := fiber.New()
	app.Use(m.Handler())
	ok := func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) }
	app.Get("/a", ok)
	app.Post("/a", ok)
	app.Patch("/a", ok)
	app.Delete("/a", ok)

	for _, method := range []string{
		http.MethodGet, http.MethodPost, http.MethodGet, http.MethodPatch, http.MethodDelete, http.MethodGet,
	} {
		resp, err := app.Test(httptest.NewRequest(method, "/a", nil))
		require.NoError(t, err)
		resp.Body.Close()
	}

	require.Equal(t, 3.0, testutil.ToFloat64(m.requests.WithLabelValues(http.MethodGet, "/a", "200")))
	require.Equal(t, 1.0, testutil.ToFloat64(m.requests.WithLabelValues(http.MethodPost, "/a", "200")))
	require.Equal(t, 1.0, testutil.ToFloat64(m.requests.WithLabelValues(http.MethodPatch, "/a", "200")))
	require.Equal(t, 1.0, testutil.ToFloat64(m.requests.WithLabelValues(http.MethodDelete, "/a", "200")))
}

func TestMetricsLabelsUnmatchedRequests(t *testing.T) {
	m := NewMetrics(prometheus.NewRegistry(), "blueprints")
	app := fiber.New()
	app.Use(m.Handler())
	app.Get("/", func(c *fiber.Ctx) error { return c.SendString("index") })
	app.Get("/gone", func(c *fiber.Ctx) error { return fiber.ErrNotFound })

	for _, req := range []struct{ method, path string }{
		{http.MethodGet, "/"},
		{http.MethodGet, "/nope"},
		{http.MethodPost, "/"},
		{http.MethodGet, "/gone"},
	} {
		resp, err := app.Test(httptest.NewRequest(req.method, req.path, nil))
		require.NoError(t, err)
		resp.Body.Close()
	}

	require.Equal(t, 1.0, testutil.ToFloat64(m.requests.WithLabelValues(http.MethodGet, "/", "200")))
	require.Equal(t, 0.0, testutil.ToFloat64(m.requests.WithLabelValues(http.MethodGet, "/", "404")))
	require.Equal(t, 1.0, testutil.ToFloat64(m.requests.WithLabelValues(http.MethodGet, unmatchedRoute, "404")))
	require.Equal(t, 1.0, testutil.ToFloat64(m.requests.WithLabelValues(http.MethodPost, unmatchedRoute, "405")))
	require.Equal(t, 1.0, testutil.ToFloat64(m.requests.WithLabelValues(http.MethodGet, "/gone", "404")))
}

type stubLoader struct {
	users map[int64]*entities.User
	err   error
}

func (s stubLoader) LoadUser(_ context.Context, id int64) (*entities.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	u, ok := s.users[id]
	if !ok {
		return nil, entities.ErrUserNotFound
	}
	return u, nil
}

func newAuthApp(t *testing.T, loader UserLoader) (*fiber.App, *session.Manager) {
	t.Helper()
	sessions, err := session.NewManager(zap.NewNop().Sugar(), config.SessionConfig{Secret: "k", CookieName: "session"})
	require.NoError(t, err)

	app := fiber.New()
	app.Use(sessions.Middleware())
	app.Use(LoadUser(zap.NewNop().Sugar(), loader))
	app.Get("/", func(c *fiber.Ctx) error {
		if u := CurrentUser(c); u != nil {
			return c.SendString(u.Username)
		}
		return c.SendString("anonymous")
	})
	app.Get("/secret", RequireLogin("/"), func(c *fiber.Ctx) error {
		return c.SendString("secret")
	})
	return app, sessions
}

func call(t *testing.T, app *fiber.App, path, cookie string) (*http.Response, string) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if cookie != "" {
		req.Header.Set(fiber.HeaderCookie, "session="+cookie)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(body)
}

func TestRequireLoginRedirectsAnonymous(t *testing.T) {
	app, _ := newAuthApp(t, stubLoader{})

	resp, _ := call(t, app, "/secret", "")
	require.Equal(t, http.StatusFound, resp.StatusCode)
	require.Equal(t, "/", resp.Header.Get(fiber.HeaderLocation))
}

func TestLoadUserFromSession(t *testing.T) {
	app, sessions := newAuthApp(t, stubLoader{users: map[int64]*entities.User{7: {ID: 7, Username: "sam"}}})
	token, err := sessions.Encode(map[string]string{SessionUserKey: strconv.Itoa(7)})
	require.NoError(t, err)

	_, body := call(t, app, "/", token)
	require.Equal(t, "sam", body)

	resp, body := call(t, app, "/secret", token)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "secret", body)
}

func TestLoadUserDropsUnknownAccount(t *testing.T) {
	app, sessions := newAuthApp(t, stubLoader{})
	token, err := sessions.Encode(map[string]string{SessionUserKey: "42"})
	require.NoError(t, err)

	resp, body := call(t, app, "/", token)
	require.Equal(t, "anonymous", body)

	var cleared bool
	for _, ck := range resp.Cookies() {
		cleared = cleared || (ck.Name == "session" && ck.Value == "")
	}
	require.True(t, cleared)
}

func TestLoadUserKeepsSessionOnStoreError(t *testing.T) {
	app, sessions := newAuthApp(t, stubLoader{err: errors.New("db down")})
	token, err := sessions.Encode(map[string]string{SessionUserKey: "1"})
	require.NoError(t, err)

	resp, body := call(t, app, "/", token)
	require.Equal(t, "anonymous", body)
	require.False(t, strings.Contains(resp.Header.Get(fiber.HeaderSetCookie), "session="))
}

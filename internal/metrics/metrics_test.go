package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

func scrape(t *testing.T, m *Metrics) string {
	t.Helper()
	w := httptest.NewRecorder()
	m.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	return w.Body.String()
}

func expectLine(t *testing.T, out, line string) {
	t.Helper()
	if !strings.Contains(out, line) {
		t.Fatalf("missing %q in:\n%s", line, out)
	}
}

func init() {
	gin.SetMode(gin.TestMode)
}

func TestMiddlewareLabelsByRouteTemplate(t *testing.T) {
	m := New(prometheus.NewRegistry(), "test")

	r := gin.New()
	r.Use(m.Middleware())
	r.GET("/houses/:id", func(c *gin.Context) { c.Status(http.StatusOK) })

	for _, id := range []string{"a", "b", "c"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/houses/"+id, nil))
	}
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/nope", nil))

	out := scrape(t, m)
	expectLine(t, out, `test_http_requests_total{method="GET",route="/houses/:id",status="200"} 3`)
	expectLine(t, out, `test_http_requests_total{method="GET",route="unmatched",status="404"} 1`)
}

func TestEventCounters(t *testing.T) {
	m := New(prometheus.NewRegistry(), "test")

	m.AuthEvent("login", true)
	m.AuthEvent("login", false)
	m.AuthEvent("login", false)
	m.JobFailed("house.view_count", errors.New("boom"))

	out := scrape(t, m)
	expectLine(t, out, `test_auth_events_total{event="login",outcome="failure"} 2`)
	expectLine(t, out, `test_auth_events_total{event="login",outcome="success"} 1`)
	expectLine(t, out, `test_background_job_failures_total{job="house.view_count"} 1`)
}

func TestHandlerExposesSeries(t *testing.T) {
	m := New(prometheus.NewRegistry(), "test")
	m.JobFailed("audit.signup", nil)

	expectLine(t, scrape(t, m), `test_background_job_failures_total{job="audit.signup"} 1`)
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	m.AuthEvent("login", true)
	m.JobFailed("x", nil)

	r := gin.New()
	r.Use(m.Middleware())
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	if w.Code != http.StatusNoContent {
		t.Fatalf("status = %d", w.Code)
	}
}

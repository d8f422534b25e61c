package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerrors "textura/internal/domain/errors"
	"textura/internal/domain/service"
)

func TestCollector_RecordTransition(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)

	c.RecordTransition(true)
	c.RecordTransition(false)
	c.RecordTransition(true)

	assert.Equal(t, float64(2), testutil.ToFloat64(c.transitions.WithLabelValues("authenticated")))
	assert.Equal(t, float64(1), testutil.ToFloat64(c.transitions.WithLabelValues("unauthenticated")))
}

func TestCollector_RecordFailure(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)

	c.RecordFailure("sign_in", domainerrors.KindInvalidCredentials)
	c.RecordFailure("sign_in", domainerrors.KindInvalidCredentials)
	c.RecordFailure("sign_out", domainerrors.KindNetwork)

	assert.Equal(t, float64(2), testutil.ToFloat64(c.failures.WithLabelValues("sign_in", "invalid_credentials")))
	assert.Equal(t, float64(1), testutil.ToFloat64(c.failures.WithLabelValues("sign_out", "network")))
	assert.Equal(t, 2, testutil.CollectAndCount(c.failures))
}

func TestCollector_RecordSessionEvent(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)

	c.RecordSessionEvent(service.AuthEventSignedIn)
	c.RecordSessionEvent(service.AuthEventTokenRefreshed)
	c.RecordSessionEvent(service.AuthEventSignedIn)

	assert.Equal(t, float64(2), testutil.ToFloat64(c.sessionEvents.WithLabelValues("signed_in")))
	assert.Equal(t, float64(1), testutil.ToFloat64(c.sessionEvents.WithLabelValues("token_refreshed")))
}

func TestHandler_ServesMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)
	c.RecordTransition(true)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	w := httptest.NewRecorder()
	Handler(reg).ServeHTTP(w, req)

	resp := w.Result()
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(body), `textura_auth_state_transitions_total{state="authenticated"} 1`))
}

func TestNewRegistry_IncludesRuntimeCollectors(t *testing.T) {
	reg := NewRegistry()
	_ = NewAuthMetrics(reg)

	families, err := reg.Gather()
	require.NoError(t, err)

	names := make(map[string]bool, len(families))
	for _, mf := range families {
		names[mf.GetName()] = true
	}
	assert.True(t, names["go_goroutines"])
}

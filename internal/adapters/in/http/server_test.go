package http_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	statushttp "github.com/catx1/Medi-Drone-Delivery-System/internal/adapters/in/http"
	"github.com/catx1/Medi-Drone-Delivery-System/internal/core/domain/model/session"
)

type stubSnapshot struct {
	state       session.State
	orderNumber string
}

func (s *stubSnapshot) State() session.State { return s.state }
func (s *stubSnapshot) OrderNumber() string  { return s.orderNumber }

func request(t *testing.T, snapshot *stubSnapshot, path string) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	statushttp.NewServer(snapshot).Register(e)

	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestGetHealth(t *testing.T) {
	rec := request(t, &stubSnapshot{state: session.Initial}, "/health")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestGetSessionInitial(t *testing.T) {
	rec := request(t, &stubSnapshot{state: session.Initial}, "/session")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"state":"INITIAL"}`, rec.Body.String())
}

func TestGetSessionInTransit(t *testing.T) {
	rec := request(t, &stubSnapshot{
		state:       session.InTransit,
		orderNumber: "ORD-2026-0001",
	}, "/session")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"state":"IN_TRANSIT","orderNumber":"ORD-2026-0001"}`, rec.Body.String())
}

package api

import (
	"context"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/greenmarket/agridash/internal/domain"
	"github.com/greenmarket/agridash/internal/pkg/constants"
	"github.com/greenmarket/agridash/internal/pkg/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubStore struct {
	store.Store
	movers []domain.PriceMover
	rate   *domain.RegionRate
	err    error
}

func (s *stubStore) ListRegions(context.Context) ([]string, error) {
	if s.err != nil {
		return nil, s.err
	}
	return []string{"서울", "부산"}, nil
}

func (s *stubStore) PriceMovers(context.Context, store.MoverDirection, *string) ([]domain.PriceMover, error) {
	return s.movers, nil
}

func (s *stubStore) RegionRate(context.Context, *string) (*domain.RegionRate, error) {
	return s.rate, nil
}

func newTestAPI(t *testing.T, st store.Store) *APIService {
	t.Helper()

	svc, err := NewAPIService(st, nil)
	require.NoError(t, err)
	return svc
}

func TestGetRegionsRoute(t *testing.T) {
	svc := newTestAPI(t, &stubStore{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/regions/list", nil)
	rec := httptest.NewRecorder()
	svc.router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Regions []string `json:"regions"`
		Default string   `json:"default"`
	}
	require.NoError(t, sonic.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, []string{"부산", "서울"}, body.Regions)
	assert.Equal(t, "서울", body.Default)
}

func TestOverviewRequiresRegion(t *testing.T) {
	svc := newTestAPI(t, &stubStore{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/prices/overview", nil)
	rec := httptest.NewRecorder()
	svc.router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body domain.ErrorResponse
	require.NoError(t, sonic.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, http.StatusBadRequest, body.Code)
}

func TestCodedErrorsKeepTheirStatus(t *testing.T) {
	svc := newTestAPI(t, &stubStore{err: constants.ErrQueryTimeout})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/regions/list", nil)
	rec := httptest.NewRecorder()
	svc.router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusGatewayTimeout, rec.Code)
}

func TestServeReturnsAfterShutdown(t *testing.T) {
	svc := newTestAPI(t, &stubStore{})

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	svc.router.Listener = ln

	done := make(chan struct{})
	go func() {
		svc.Serve(ln.Addr().String())
		close(done)
	}()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + ln.Addr().String() + "/api/v1/regions/list")
		if err != nil {
			return false
		}
		_ = resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 2*time.Second, 20*time.Millisecond)

	require.NoError(t, svc.Shutdown(context.Background()))

	// Serve must come back cleanly, a fatal exit would kill the test
	// process before this select runs
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Serve did not return after Shutdown")
	}
}

func TestRequestIDHeaderIsSet(t *testing.T) {
	svc := newTestAPI(t, &stubStore{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/prices/rate", nil)
	rec := httptest.NewRecorder()
	svc.router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))
}

package tests

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	httpapi "minima-order/agg-svc/internal/api/http"
	"minima-order/agg-svc/internal/domain"
	"minima-order/agg-svc/internal/mocks"
)

func setupTestRouter(mockStore *mocks.StoreInterface) *mux.Router {
	r := mux.NewRouter()
	httpapi.NewHandler(mockStore).RegisterRoutes(r)
	return r
}

func TestHandler_getPopular(t *testing.T) {
	mockStore := mocks.NewStoreInterface(t)
	router := setupTestRouter(mockStore)

	mockStore.On("TopToday", 10).Return([]domain.PopularItem{
		{ItemID: 1, Name: "Margherita Pizza", Score: 12},
		{ItemID: 7, Name: "Cola", Score: 8},
	}, nil).Once()

	req := httptest.NewRequest("GET", "/api/analytics/popular", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "Margherita Pizza")
	assert.Contains(t, recorder.Body.String(), `"score":12`)
}

func TestHandler_getPopular_customLimit(t *testing.T) {
	mockStore := mocks.NewStoreInterface(t)
	router := setupTestRouter(mockStore)

	mockStore.On("TopToday", 3).Return([]domain.PopularItem{}, nil).Once()

	req := httptest.NewRequest("GET", "/api/analytics/popular?limit=3", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "[]\n", recorder.Body.String())
}

func TestHandler_getTableRevenue(t *testing.T) {
	mockStore := mocks.NewStoreInterface(t)
	router := setupTestRouter(mockStore)

	mockStore.On("TableRevenueToday", 5).Return(&domain.TableRevenue{
		TableNumber: 5,
		Date:        "2025-06-01",
		Revenue:     4200,
	}, nil).Once()

	req := httptest.NewRequest("GET", "/api/analytics/tables/5/revenue", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"revenue":4200`)
}

func TestHandler_getTableRevenue_invalidTable(t *testing.T) {
	mockStore := mocks.NewStoreInterface(t)
	router := setupTestRouter(mockStore)

	req := httptest.NewRequest("GET", "/api/analytics/tables/0/revenue", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

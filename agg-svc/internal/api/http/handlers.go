package httpapi

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"minima-order/agg-svc/internal/domain"
	"minima-order/agg-svc/internal/service"
)

type Handler struct {
	Store service.StoreInterface
}

func NewHandler(store service.StoreInterface) *Handler {
	return &Handler{Store: store}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")
	r.HandleFunc("/api/analytics/popular", h.getPopular).Methods("GET")
	r.HandleFunc("/api/analytics/tables/{tableNumber}/revenue", h.getTableRevenue).Methods("GET")
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"status":    "healthy",
		"service":   "agg-svc",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func (h *Handler) getPopular(w http.ResponseWriter, r *http.Request) {
	limit := 10
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		limit, _ = strconv.Atoi(limitStr)
	}

	items, err := h.Store.TopToday(limit)
	if err != nil {
		http.Error(w, "Failed to load popularity data", http.StatusInternalServerError)
		return
	}
	if items == nil {
		items = []domain.PopularItem{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(items)
}

func (h *Handler) getTableRevenue(w http.ResponseWriter, r *http.Request) {
	tableNumber, _ := strconv.Atoi(mux.Vars(r)["tableNumber"])
	if tableNumber <= 0 {
		http.Error(w, "Invalid table number", http.StatusBadRequest)
		return
	}

	revenue, err := h.Store.TableRevenueToday(tableNumber)
	if err != nil {
		http.Error(w, "Failed to load revenue", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(revenue)
}

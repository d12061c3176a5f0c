package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"minima-order/order-svc/internal/domain"
	"minima-order/order-svc/internal/menu"
	"minima-order/order-svc/internal/service"
	"minima-order/order-svc/internal/session"

	"github.com/gorilla/mux"
)

type Handler struct {
	Orders   service.OrderServiceInterface
	Sessions *session.Manager
	Catalog  *menu.Catalog
}

func NewHandler(orders service.OrderServiceInterface, sessions *session.Manager, catalog *menu.Catalog) *Handler {
	return &Handler{
		Orders:   orders,
		Sessions: sessions,
		Catalog:  catalog,
	}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/api/menu", h.getMenu).Methods("GET")
	r.HandleFunc("/api/table", h.checkTable).Methods("POST")

	r.HandleFunc("/api/orders", h.createOrder).Methods("POST")
	r.HandleFunc("/api/orders/{id}", h.getOrder).Methods("GET")

	r.HandleFunc("/api/tables/{tableNumber}/orders", h.getTableBill).Methods("GET")
	r.HandleFunc("/api/tables/{tableNumber}/receipt", h.getReceipt).Methods("GET")
	r.HandleFunc("/api/tables/{tableNumber}/checkout", h.getCheckout).Methods("GET")
	r.HandleFunc("/api/tables/{tableNumber}/qrcode", h.getCheckoutQR).Methods("GET")

	r.HandleFunc("/api/sessions", h.createSession).Methods("POST")
	r.HandleFunc("/api/sessions/{id}", h.getSession).Methods("GET")
	r.HandleFunc("/api/sessions/{id}/people", h.setSessionPeople).Methods("PUT")
	r.HandleFunc("/api/sessions/{id}/tab", h.switchSessionTab).Methods("POST")
	r.HandleFunc("/api/sessions/{id}/cart", h.addToCart).Methods("POST")
	r.HandleFunc("/api/sessions/{id}/cart/{itemId}", h.adjustCartLine).Methods("PATCH")
	r.HandleFunc("/api/sessions/{id}/cart/{itemId}", h.removeCartLine).Methods("DELETE")
	r.HandleFunc("/api/sessions/{id}/submit", h.submitSession).Methods("POST")
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	response := map[string]interface{}{
		"status":    "healthy",
		"service":   "order-svc",
		"timestamp": time.Now().Format(time.RFC3339),
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

func (h *Handler) getMenu(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(h.Catalog.Items())
}

// checkTable validates a scanned or typed table number and echoes it back.
func (h *Handler) checkTable(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		TableNumber int `json:"table_number"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if payload.TableNumber <= 0 {
		http.Error(w, "Table number is required", http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"message":      "Table number received",
		"table_number": payload.TableNumber,
	})
}

func (h *Handler) createOrder(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Cart        []domain.CartLine `json:"cart"`
		TableNumber int               `json:"table_number"`
		People      int               `json:"people"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Invalid JSON format: "+err.Error(), http.StatusBadRequest)
		return
	}

	order, err := h.Orders.Submit(r.Context(), payload.Cart, payload.TableNumber, payload.People)
	if err != nil {
		h.writeOrderError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"message":      "Order confirmed",
		"order_id":     order.ID,
		"table_number": order.TableNumber,
	})
}

func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request) {
	order, err := h.Orders.Order(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Order not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(order)
}

func (h *Handler) getTableBill(w http.ResponseWriter, r *http.Request) {
	tableNumber, _ := strconv.Atoi(mux.Vars(r)["tableNumber"])

	bill, err := h.Orders.BillForTable(tableNumber)
	if err != nil {
		h.writeOrderError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(bill)
}

func (h *Handler) getReceipt(w http.ResponseWriter, r *http.Request) {
	tableNumber, _ := strconv.Atoi(mux.Vars(r)["tableNumber"])

	pdf, url, err := h.Orders.Receipt(r.Context(), tableNumber)
	if err != nil {
		h.writeOrderError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("inline; filename=receipt-table-%d.pdf", tableNumber))
	w.Header().Set("X-Receipt-URL", url)
	w.WriteHeader(http.StatusOK)
	w.Write(pdf)
}

func (h *Handler) getCheckout(w http.ResponseWriter, r *http.Request) {
	tableNumber, _ := strconv.Atoi(mux.Vars(r)["tableNumber"])
	if tableNumber <= 0 {
		http.Error(w, service.ErrInvalidTableNumber.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"table_number": tableNumber,
		"code":         h.Orders.CheckoutCode(tableNumber),
		"qrcode_url":   fmt.Sprintf("/api/tables/%d/qrcode", tableNumber),
	})
}

func (h *Handler) getCheckoutQR(w http.ResponseWriter, r *http.Request) {
	tableNumber, _ := strconv.Atoi(mux.Vars(r)["tableNumber"])
	if tableNumber <= 0 {
		http.Error(w, service.ErrInvalidTableNumber.Error(), http.StatusBadRequest)
		return
	}

	png, err := h.Orders.CheckoutQR(tableNumber)
	if err != nil {
		http.Error(w, "Failed to generate QR code", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}

func (h *Handler) createSession(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		TableNumber int `json:"table_number"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	s, err := h.Sessions.Open(payload.TableNumber)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(sessionView(s))
}

func (h *Handler) getSession(w http.ResponseWriter, r *http.Request) {
	s, err := h.Sessions.Get(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Session not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(sessionView(s))
}

func (h *Handler) setSessionPeople(w http.ResponseWriter, r *http.Request) {
	s, err := h.Sessions.Get(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Session not found", http.StatusNotFound)
		return
	}

	var payload struct {
		People int `json:"people"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := s.SetPeople(payload.People); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(sessionView(s))
}

func (h *Handler) switchSessionTab(w http.ResponseWriter, r *http.Request) {
	s, err := h.Sessions.Get(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Session not found", http.StatusNotFound)
		return
	}

	var payload struct {
		Tab session.Tab `json:"tab"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := s.SwitchTab(payload.Tab); err != nil {
		http.Error(w, err.Error(), http.StatusConflict)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(sessionView(s))
}

func (h *Handler) addToCart(w http.ResponseWriter, r *http.Request) {
	s, err := h.Sessions.Get(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Session not found", http.StatusNotFound)
		return
	}

	var payload struct {
		ItemID   int `json:"item_id"`
		Quantity int `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if payload.Quantity > 0 {
		err = s.Cart.AddItemQuantity(payload.ItemID, payload.Quantity)
	} else {
		err = s.Cart.AddItem(payload.ItemID)
	}
	if err != nil {
		h.writeOrderError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(sessionView(s))
}

func (h *Handler) adjustCartLine(w http.ResponseWriter, r *http.Request) {
	s, err := h.Sessions.Get(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Session not found", http.StatusNotFound)
		return
	}
	itemID, _ := strconv.Atoi(mux.Vars(r)["itemId"])

	var payload struct {
		Delta int `json:"delta"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	s.Cart.Adjust(itemID, payload.Delta)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(sessionView(s))
}

func (h *Handler) removeCartLine(w http.ResponseWriter, r *http.Request) {
	s, err := h.Sessions.Get(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Session not found", http.StatusNotFound)
		return
	}
	itemID, _ := strconv.Atoi(mux.Vars(r)["itemId"])

	s.Cart.Remove(itemID)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(sessionView(s))
}

// submitSession turns the session cart into a persisted order and clears the
// cart so the table can keep ordering.
func (h *Handler) submitSession(w http.ResponseWriter, r *http.Request) {
	s, err := h.Sessions.Get(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Session not found", http.StatusNotFound)
		return
	}

	order, err := h.Orders.Submit(r.Context(), s.Cart.SubmitLines(), s.TableNumber, s.People)
	if err != nil {
		h.writeOrderError(w, err)
		return
	}

	s.Cart.Clear()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"message":      "Order confirmed",
		"order_id":     order.ID,
		"table_number": order.TableNumber,
	})
}

func (h *Handler) writeOrderError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, menu.ErrItemNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, service.ErrEmptyCart),
		errors.Is(err, service.ErrInvalidTableNumber),
		errors.Is(err, service.ErrInvalidPeople):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, service.ErrNoOrders):
		http.Error(w, err.Error(), http.StatusNotFound)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func sessionView(s *session.Session) map[string]interface{} {
	return map[string]interface{}{
		"session_id":   s.ID,
		"table_number": s.TableNumber,
		"people":       s.People,
		"active_tab":   s.ActiveTab,
		"cart": map[string]interface{}{
			"lines":      s.Cart.Lines(),
			"total":      s.Cart.Total(),
			"item_count": s.Cart.ItemCount(),
		},
	}
}

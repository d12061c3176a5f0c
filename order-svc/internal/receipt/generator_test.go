package receipt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"minima-order/order-svc/internal/domain"
)

func sampleBill() *domain.TableBill {
	created := time.Date(2025, 6, 1, 19, 30, 0, 0, time.UTC)
	return &domain.TableBill{
		TableNumber: 5,
		People:      2,
		Orders: []domain.Order{
			{
				ID:          "a1b2c3",
				TableNumber: 5,
				People:      2,
				Total:       2700,
				Status:      domain.StatusPending,
				CreatedAt:   created,
			},
			{
				ID:          "d4e5f6",
				TableNumber: 5,
				People:      2,
				Total:       1500,
				Status:      domain.StatusPending,
				CreatedAt:   created.Add(-10 * time.Minute),
			},
		},
		Lines: []domain.CartLine{
			{ID: 1, Name: "Margherita Pizza", Price: 1200, Quantity: 2},
			{ID: 7, Name: "Cola", Price: 300, Quantity: 1},
			{ID: 5, Name: "Hamburg Steak", Price: 1500, Quantity: 1},
		},
		GrandTotal: 4200,
	}
}

func TestGenerator_Render_emptyBill(t *testing.T) {
	g := NewGenerator("Minima Order", "")

	_, err := g.Render(&domain.TableBill{TableNumber: 5})
	assert.ErrorIs(t, err, ErrNoOrders)

	_, err = g.Render(nil)
	assert.ErrorIs(t, err, ErrNoOrders)
}

func TestGenerator_Render(t *testing.T) {
	g := NewGenerator("Minima Order", "")

	pdf, err := g.Render(sampleBill())
	require.NoError(t, err)
	assert.NotEmpty(t, pdf)
	assert.Equal(t, "%PDF", string(pdf[:4]))
}

func TestGenerator_Render_badFontFallsBack(t *testing.T) {
	g := NewGenerator("Minima Order", "/nonexistent/font.ttf")

	pdf, err := g.Render(sampleBill())
	require.NoError(t, err)
	assert.NotEmpty(t, pdf)
	assert.Equal(t, "%PDF", string(pdf[:4]))
}

func TestBodyLines(t *testing.T) {
	lines := BodyLines(sampleBill())
	body := ""
	for _, line := range lines {
		body += line + "\n"
	}

	assert.Contains(t, body, "Table 5")
	assert.Contains(t, body, "2 guests")
	assert.Contains(t, body, "Total  4200")
	assert.Contains(t, body, "Ref: a1b2c3")
	assert.Contains(t, body, "Margherita Pizza")
	assert.Contains(t, body, "x2")
	assert.Contains(t, body, "2025/06/01")
}

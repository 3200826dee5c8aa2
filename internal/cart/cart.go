// Package cart keeps one shopping cart per signed-in user. A cart holds at
// most one line per product id; quantities start at 1 and dropping to 0
// removes the line.
package cart

import (
	"time"

	"GlowBeauty/internal/catalog"
)

type Line struct {
	catalog.Product
	Quantity int `json:"quantity"`
}

// Order is the checkout summary handed back to the client. Orders are not
// stored; checkout empties the cart and that is the end of it.
type Order struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Lines     []Line    `json:"lines"`
	Subtotal  int64     `json:"subtotal"`
	CreatedAt time.Time `json:"created_at"`
}

func addLine(lines []Line, p catalog.Product) []Line {
	for i := range lines {
		if lines[i].ID == p.ID {
			lines[i].Quantity++
			return lines
		}
	}
	return append(lines, Line{Product: p, Quantity: 1})
}

func removeLine(lines []Line, productID int64) []Line {
	out := lines[:0:0]
	for _, l := range lines {
		if l.ID != productID {
			out = append(out, l)
		}
	}
	return out
}

func setQuantity(lines []Line, productID int64, qty int) []Line {
	if qty <= 0 {
		return removeLine(lines, productID)
	}
	for i := range lines {
		if lines[i].ID == productID {
			lines[i].Quantity = qty
		}
	}
	return lines
}

func subtotal(lines []Line) int64 {
	var sum int64
	for _, l := range lines {
		sum += l.Price * int64(l.Quantity)
	}
	return sum
}

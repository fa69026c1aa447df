package entity

import "time"

// Categorías de notificación (coinciden con los contadores del badge del menú).
const (
	CategoryQuotes    = "quotes"
	CategoryOrders    = "orders"
	CategoryMessages  = "messages"
	CategoryJobs      = "jobs"
	CategoryInventory = "inventory"
)

// Notification una notificación in-app. La lista del store se mantiene
// ordenada de más reciente a más antigua (prepend en cada alta).
type Notification struct {
	ID        string    `json:"id"`
	Category  string    `json:"category"` // ver constantes Category*
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}

// UnreadCounts contadores de no leídas por categoría. Siempre se derivan de la
// lista de notificaciones; nunca se almacenan por separado.
type UnreadCounts struct {
	Quotes    int `json:"quotes"`
	Orders    int `json:"orders"`
	Messages  int `json:"messages"`
	Jobs      int `json:"jobs"`
	Inventory int `json:"inventory"`
}

// Total suma de todos los contadores.
func (c UnreadCounts) Total() int {
	return c.Quotes + c.Orders + c.Messages + c.Jobs + c.Inventory
}

// CountUnread deriva los contadores a partir de la lista. Categorías fuera del
// vocabulario conocido no suman a ningún contador (el servidor es dueño del vocabulario).
func CountUnread(list []Notification) UnreadCounts {
	var c UnreadCounts
	for _, n := range list {
		if n.IsRead {
			continue
		}
		switch n.Category {
		case CategoryQuotes:
			c.Quotes++
		case CategoryOrders:
			c.Orders++
		case CategoryMessages:
			c.Messages++
		case CategoryJobs:
			c.Jobs++
		case CategoryInventory:
			c.Inventory++
		}
	}
	return c
}

package report

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleRow fila aplanada del reporte: una venta con su libro y tienda.
type SaleRow struct {
	Title    string          `json:"title" db:"title"`
	ShopName string          `json:"shop_name" db:"shop_name"`
	Price    decimal.Decimal `json:"price" db:"price"`
	DateSale time.Time       `json:"date_sale" db:"date_sale"`
	Count    int             `json:"count" db:"count"`
}

// SalesReport resultado de una consulta: filas ordenadas por fecha descendente
// y, si hubo filas, el nombre de la primera editorial que cumple el predicado.
//
// Limitación conocida: cuando el predicado por nombre coincide con varias editoriales,
// PublisherName muestra solo la primera (menor id) aunque las filas incluyan ventas de todas.
type SalesReport struct {
	Rows          []SaleRow `json:"rows"`
	PublisherName string    `json:"publisher_name,omitempty"`
	HasPublisher  bool      `json:"has_publisher"`
}

// Empty indica que no hay ventas para el predicado. No es un error.
func (r *SalesReport) Empty() bool {
	return r == nil || len(r.Rows) == 0
}

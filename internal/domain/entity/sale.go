package entity

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// DefaultSaleCount cantidad vendida por defecto en una venta.
const DefaultSaleCount = 1

// PriceScale dígitos decimales del precio (NUMERIC(10,2)).
const PriceScale = 2

// Sale representa una transacción de venta sobre una posición de stock.
type Sale struct {
	ID       int64           `json:"id" db:"id"`
	Price    decimal.Decimal `json:"price" db:"price"`
	DateSale time.Time       `json:"date_sale" db:"date_sale"`
	StockID  int64           `json:"stock_id" db:"id_stock"`
	Count    int             `json:"count" db:"count"`
}

// NewSale construye una venta aplicando los valores por defecto:
// fecha actual (UTC) si date es cero y cantidad 1 si count es cero.
// El precio se redondea a dos decimales.
func NewSale(stockID int64, price decimal.Decimal, date time.Time, count int) (*Sale, error) {
	if price.IsNegative() {
		return nil, fmt.Errorf("precio negativo: %s", price.String())
	}
	if date.IsZero() {
		date = time.Now().UTC()
	}
	if count == 0 {
		count = DefaultSaleCount
	}
	return &Sale{
		Price:    price.Round(PriceScale),
		DateSale: date,
		StockID:  stockID,
		Count:    count,
	}, nil
}

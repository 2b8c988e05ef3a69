package dto

import "time"

// SaleRowDTO fila del reporte lista para presentar. El precio va con dos decimales.
type SaleRowDTO struct {
	Title    string    `json:"title"`
	ShopName string    `json:"shop_name"`
	Price    string    `json:"price"`
	DateSale time.Time `json:"date_sale"`
	Count    int       `json:"count"`
}

// SalesReportResponse salida del reporte de ventas por editorial.
//
// Publisher es una etiqueta de mejor esfuerzo: la primera editorial que coincide.
// Si el fragmento coincide con varias, Rows puede incluir ventas de todas ellas.
type SalesReportResponse struct {
	Identifier string       `json:"identifier"`
	MatchedBy  string       `json:"matched_by"` // id | name
	Publisher  *string      `json:"publisher,omitempty"`
	Found      bool         `json:"found"`
	Rows       []SaleRowDTO `json:"rows"`
}

// SeedStats conteo de registros tras el poblado.
type SeedStats struct {
	Publishers int `json:"publishers"`
	Books      int `json:"books"`
	Shops      int `json:"shops"`
	Stock      int `json:"stock"`
	Sales      int `json:"sales"`
}

// SeedResult resultado del poblado inicial. Seeded es false si la base ya tenía datos.
type SeedResult struct {
	Seeded bool      `json:"seeded"`
	Stats  SeedStats `json:"stats"`
}

package entity

// Stock representa la existencia de un libro en una tienda concreta.
// El par (BookID, ShopID) identifica una única posición; Count >= 0 se espera pero no se valida.
type Stock struct {
	ID     int64 `json:"id" db:"id"`
	BookID int64 `json:"book_id" db:"id_book"`
	ShopID int64 `json:"shop_id" db:"id_shop"`
	Count  int   `json:"count" db:"count"`
}

// DefaultStockCount cantidad inicial cuando no se indica otra.
const DefaultStockCount = 0

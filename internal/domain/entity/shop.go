package entity

// Shop representa una tienda que mantiene existencias de libros.
type Shop struct {
	ID   int64  `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
}

package entity

// Publisher representa una editorial; es dueña de un conjunto de libros.
// El nombre no es único.
type Publisher struct {
	ID   int64  `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
}

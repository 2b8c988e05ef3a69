package entity

// Book representa un título publicado por exactamente una editorial.
type Book struct {
	ID          int64  `json:"id" db:"id"`
	Title       string `json:"title" db:"title"`
	PublisherID int64  `json:"publisher_id" db:"id_publisher"`
}

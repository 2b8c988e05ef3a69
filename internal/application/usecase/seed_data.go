package usecase

import (
	"time"

	"github.com/shopspring/decimal"
)

// SeedStockCount existencias iniciales por cada par libro-tienda.
const SeedStockCount = 10

// SeedBook libro a insertar.
type SeedBook struct {
	Title     string
	Publisher int // índice en SeedData.Publishers
}

// SeedSale venta a insertar; el stock se resuelve por el par libro-tienda.
type SeedSale struct {
	Book  int // índice en SeedData.Books
	Shop  int // índice en SeedData.Shops
	Price decimal.Decimal
	Date  time.Time
}

// SeedData catálogo de ejemplo. Los índices se traducen a IDs reales al insertar.
type SeedData struct {
	Publishers []string
	Shops      []string
	Books      []SeedBook
	Sales      []SeedSale
}

func seedDate(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DefaultSeedData devuelve el catálogo de demostración.
func DefaultSeedData() SeedData {
	return SeedData{
		Publishers: []string{"Пушкин", "Толстой", "Достоевский", "Чехов"},
		Shops:      []string{"Буквоед", "Лабиринт", "Книжный дом", "Читай-город"},
		Books: []SeedBook{
			{Title: "Капитанская дочка", Publisher: 0},
			{Title: "Руслан и Людмила", Publisher: 0},
			{Title: "Евгений Онегин", Publisher: 0},
			{Title: "Война и мир", Publisher: 1},
			{Title: "Анна Каренина", Publisher: 1},
			{Title: "Преступление и наказание", Publisher: 2},
			{Title: "Братья Карамазовы", Publisher: 2},
			{Title: "Вишневый сад", Publisher: 3},
			{Title: "Чайка", Publisher: 3},
		},
		Sales: []SeedSale{
			{Book: 0, Shop: 0, Price: decimal.NewFromInt(600), Date: seedDate(2022, time.November, 9)},
			{Book: 1, Shop: 0, Price: decimal.NewFromInt(500), Date: seedDate(2022, time.November, 8)},
			{Book: 0, Shop: 1, Price: decimal.NewFromInt(580), Date: seedDate(2022, time.November, 5)},
			{Book: 2, Shop: 2, Price: decimal.NewFromInt(490), Date: seedDate(2022, time.November, 2)},
			{Book: 0, Shop: 0, Price: decimal.NewFromInt(600), Date: seedDate(2022, time.October, 26)},
			{Book: 3, Shop: 1, Price: decimal.NewFromInt(800), Date: seedDate(2022, time.November, 10)},
			{Book: 4, Shop: 0, Price: decimal.NewFromInt(750), Date: seedDate(2022, time.November, 7)},
			{Book: 5, Shop: 3, Price: decimal.NewFromInt(650), Date: seedDate(2022, time.November, 3)},
		},
	}
}

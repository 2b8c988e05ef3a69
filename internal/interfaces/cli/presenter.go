package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/jhoicas/bookstore-ledger/internal/application/dto"
	"github.com/jhoicas/bookstore-ledger/internal/infrastructure/pdf"
)

const ruleWidth = 80

// Mensajes de consola.
const (
	msgPrompt      = "Поиск продаж книг по издателю\nВведите имя или ID издателя:"
	msgEmptyInput  = "Пустой ввод. Программа завершена."
	msgNoSales     = "Не найдено продаж для издателя: %s"
	msgHeader      = "Продажи книг издателя: %s"
	msgQueryFailed = "Ошибка при выполнении запроса: %v"
)

// Presenter escribe los resultados en texto (tabla de ancho fijo) o JSON.
type Presenter struct {
	Format string
	Out    io.Writer
}

// SalesReport imprime el reporte. Sin filas imprime el aviso con la entrada original.
func (p *Presenter) SalesReport(rep *dto.SalesReportResponse) error {
	if p.Format == FormatJSON {
		return p.json(rep)
	}
	if !rep.Found {
		_, err := fmt.Fprintf(p.Out, msgNoSales+"\n", rep.Identifier)
		return err
	}

	label := rep.Identifier
	if rep.Publisher != nil {
		label = *rep.Publisher
	}

	var b strings.Builder
	fmt.Fprintf(&b, "\n"+msgHeader+"\n", label)
	b.WriteString(strings.Repeat("=", ruleWidth) + "\n")
	fmt.Fprintf(&b, "%-30s | %-15s | %-8s | %-12s | %s\n", "Название книги", "Магазин", "Цена", "Дата", "Кол-во")
	b.WriteString(strings.Repeat("-", ruleWidth) + "\n")
	for _, r := range rep.Rows {
		fmt.Fprintf(&b, "%-30s | %-15s | %-8s | %-12s | %d\n",
			r.Title, r.ShopName, r.Price, r.DateSale.Format(pdf.DateLayout), r.Count)
	}
	_, err := io.WriteString(p.Out, b.String())
	return err
}

// Seed imprime el resultado del poblado y los conteos.
func (p *Presenter) Seed(res *dto.SeedResult) error {
	if p.Format == FormatJSON {
		return p.json(res)
	}
	var b strings.Builder
	if res.Seeded {
		b.WriteString("Тестовые данные добавлены успешно!\n")
	} else {
		b.WriteString("База данных уже содержит данные. Пропускаем заполнение.\n")
	}
	b.WriteString("\nСтатистика:\n")
	fmt.Fprintf(&b, "Издателей: %d\n", res.Stats.Publishers)
	fmt.Fprintf(&b, "Книг: %d\n", res.Stats.Books)
	fmt.Fprintf(&b, "Магазинов: %d\n", res.Stats.Shops)
	fmt.Fprintf(&b, "Продаж: %d\n", res.Stats.Sales)
	_, err := io.WriteString(p.Out, b.String())
	return err
}

// Line imprime un mensaje simple (solo en formato texto).
func (p *Presenter) Line(msg string) error {
	if p.Format == FormatJSON {
		return nil
	}
	_, err := fmt.Fprintln(p.Out, msg)
	return err
}

func (p *Presenter) json(v any) error {
	enc := json.NewEncoder(p.Out)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

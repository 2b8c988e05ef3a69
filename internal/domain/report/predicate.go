// Package report contiene el modelo del reporte de ventas por editorial:
// la resolución del identificador ingresado a un predicado y la forma de las filas.
package report

import (
	"errors"
	"strconv"
	"strings"

	"golang.org/x/text/cases"

	"github.com/jhoicas/bookstore-ledger/internal/domain/entity"
)

// Kind etiqueta la variante del predicado.
type Kind int

const (
	// KindExactID coincide por Publisher.id exacto.
	KindExactID Kind = iota + 1
	// KindNameContains coincide por subcadena de Publisher.name sin distinguir mayúsculas.
	KindNameContains
)

// String devuelve el nombre de la variante (útil para logs y métricas).
func (k Kind) String() string {
	switch k {
	case KindExactID:
		return "id"
	case KindNameContains:
		return "name"
	default:
		return "unknown"
	}
}

// Predicate regla de selección de editoriales: ByExactID(id) | ByNameContains(fragmento).
// No accede al almacenamiento; los repositorios ramifican una sola vez sobre Kind.
type Predicate struct {
	kind     Kind
	id       int64
	fragment string
}

// ByExactID predicado por identificador exacto.
func ByExactID(id int64) Predicate {
	return Predicate{kind: KindExactID, id: id}
}

// ByNameContains predicado por subcadena del nombre (insensible a mayúsculas).
func ByNameContains(fragment string) Predicate {
	return Predicate{kind: KindNameContains, fragment: fragment}
}

// Resolve clasifica la entrada: si es un entero en base 10 produce ByExactID,
// en otro caso ByNameContains con el texto tal cual.
// Un numeral fuera de rango sigue siendo un id: ParseInt lo satura y no coincidirá con ninguna fila.
// La entrada no debe estar vacía; validarlo es responsabilidad del llamador.
func Resolve(input string) Predicate {
	id, err := strconv.ParseInt(input, 10, 64)
	if err == nil || errors.Is(err, strconv.ErrRange) {
		return ByExactID(id)
	}
	return ByNameContains(input)
}

// Kind devuelve la variante.
func (p Predicate) Kind() Kind { return p.kind }

// ID devuelve el identificador; solo significativo para KindExactID.
func (p Predicate) ID() int64 { return p.id }

// Fragment devuelve el fragmento de nombre; solo significativo para KindNameContains.
func (p Predicate) Fragment() string { return p.fragment }

// Matches evalúa el predicado en memoria contra una editorial.
// La comparación por nombre usa case folding Unicode ("пушк" coincide con "Пушкин").
func (p Predicate) Matches(pub entity.Publisher) bool {
	switch p.kind {
	case KindExactID:
		return pub.ID == p.id
	case KindNameContains:
		return strings.Contains(fold(pub.Name), fold(p.fragment))
	default:
		return false
	}
}

// Key clave estable del predicado, usada por la caché de reportes.
func (p Predicate) Key() string {
	switch p.kind {
	case KindExactID:
		return "id:" + strconv.FormatInt(p.id, 10)
	case KindNameContains:
		return "name:" + fold(p.fragment)
	default:
		return "unknown"
	}
}

// String representación legible para logs.
func (p Predicate) String() string {
	return p.Key()
}

// fold crea un Caser por llamada: cases.Caser guarda estado y no es seguro entre goroutines.
func fold(s string) string {
	return cases.Fold().String(s)
}

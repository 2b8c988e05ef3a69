package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/bookstore-ledger/internal/domain"
	"github.com/jhoicas/bookstore-ledger/internal/domain/report"
)

func TestContainsPattern(t *testing.T) {
	cases := map[string]string{
		"пушк":   "%пушк%",
		"50%":    `%50\%%`,
		"a_b":    `%a\_b%`,
		`c:\dir`: `%c:\\dir%`,
		"":       "%%",
	}
	for in, want := range cases {
		assert.Equal(t, want, containsPattern(in), "entrada %q", in)
	}
}

func TestPublisherFilter(t *testing.T) {
	cond, arg, err := publisherFilter(report.Resolve("7"))
	assert.NoError(t, err)
	assert.Equal(t, "p.id = $1::bigint", cond)
	assert.Equal(t, int64(7), arg)

	cond, arg, err = publisherFilter(report.Resolve("Пуш_"))
	assert.NoError(t, err)
	assert.Contains(t, cond, "ILIKE")
	assert.Equal(t, `%Пуш\_%`, arg)

	_, _, err = publisherFilter(report.Predicate{})
	assert.Error(t, err)
}

func TestWrapWriteErr(t *testing.T) {
	fk := fmt.Errorf("exec: %w", &pgconn.PgError{Code: "23503"})
	assert.ErrorIs(t, wrapWriteErr("insert book", fk), domain.ErrDanglingRef)

	other := wrapWriteErr("insert book", errors.New("timeout"))
	assert.NotErrorIs(t, other, domain.ErrDanglingRef)
	assert.EqualError(t, other, "insert book: timeout")
}

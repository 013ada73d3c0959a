package duckdb

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fridacisneros/panorama-sub001/pkg/models/domain"
)

func intp(v int) *int { return &v }

func TestFilterConditions(t *testing.T) {
	t.Run("empty filter yields no clauses", func(t *testing.T) {
		clauses, args := FilterConditions(domain.Filter{}, MatchExact)
		assert.Empty(t, clauses)
		assert.Empty(t, args)
	})

	t.Run("single year equality", func(t *testing.T) {
		clauses, args := FilterConditions(domain.Filter{Anio: intp(2022)}, MatchExact)
		assert.Equal(t, []string{"anio_corte = ?"}, clauses)
		assert.Equal(t, []any{2022}, args)
	})

	t.Run("year range wins over single year", func(t *testing.T) {
		f := domain.Filter{Anio: intp(2019), AnioInicio: intp(2020), AnioFin: intp(2022)}
		clauses, args := FilterConditions(f, MatchExact)
		assert.Equal(t, []string{"anio_corte >= ?", "anio_corte <= ?"}, clauses)
		assert.Equal(t, []any{2020, 2022}, args)
	})

	t.Run("open-ended range bounds apply alone", func(t *testing.T) {
		clauses, args := FilterConditions(domain.Filter{AnioInicio: intp(2020)}, MatchExact)
		assert.Equal(t, []string{"anio_corte >= ?"}, clauses)
		assert.Equal(t, []any{2020}, args)
	})

	t.Run("string dimensions bind values, never splice them", func(t *testing.T) {
		f := domain.Filter{Estado: "Sinaloa'; DROP TABLE avisos_arribo; --"}
		clauses, args := FilterConditions(f, MatchExact)
		assert.Equal(t, []string{"estado = ?"}, clauses)
		assert.Equal(t, []any{"Sinaloa'; DROP TABLE avisos_arribo; --"}, args)
	})

	t.Run("contains mode uses parameterized ILIKE", func(t *testing.T) {
		clauses, args := FilterConditions(domain.Filter{Especie: "cama"}, MatchContains)
		assert.Equal(t, []string{"nombre_principal ILIKE '%' || ? || '%'"}, clauses)
		assert.Equal(t, []any{"cama"}, args)
	})

	t.Run("conjunction of all dimensions", func(t *testing.T) {
		f := domain.Filter{
			Anio:     intp(2023),
			Especie:  "camaron",
			Estado:   "Sinaloa",
			Litoral:  "Pacífico",
			TipoZona: "Bahía",
		}
		clauses, args := FilterConditions(f, MatchExact)
		assert.Len(t, clauses, 5)
		assert.Len(t, args, 5)
	})
}

func TestWhereClause(t *testing.T) {
	assert.Equal(t, "", WhereClause())
	assert.Equal(t, "WHERE a = ?", WhereClause("a = ?"))
	assert.Equal(t, "WHERE a = ? AND b IS NOT NULL", WhereClause("a = ?", "b IS NOT NULL"))
}

func TestPlaceholders(t *testing.T) {
	assert.Equal(t, "", Placeholders(0))
	assert.Equal(t, "?", Placeholders(1))
	assert.Equal(t, "?, ?, ?", Placeholders(3))
}

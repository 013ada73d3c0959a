package records

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/fridacisneros/panorama-sub001/pkg/models/domain"
	storemodel "github.com/fridacisneros/panorama-sub001/pkg/models/store"
	"github.com/fridacisneros/panorama-sub001/pkg/store/duckdb"
)

const selectColumns = `id, anio_corte, mes_corte, nombre_principal, nombre_especie,
	estado, litoral, tipo_zona, peso_desembarcado, peso_vivo, precio, valor,
	embarcaciones, dias_efectivos, duracion, rnpa, unidad_economica,
	sitio_desembarque, oficina, tipo_aviso, origen, created_at`

// Store serves raw landing records for the listing endpoint. String
// dimensions match on substrings here, unlike the exact matching used by
// reports; both styles share the same filter model.
type Store interface {
	List(ctx context.Context, f domain.Filter, limit, offset int) ([]storemodel.LandingRecord, error)
	Count(ctx context.Context, f domain.Filter) (int, error)
}

type recordStore struct {
	db *sql.DB
}

func NewStore(db *sql.DB) (Store, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}
	return &recordStore{db: db}, nil
}

func (s *recordStore) List(ctx context.Context, f domain.Filter, limit, offset int) ([]storemodel.LandingRecord, error) {
	logger := zerolog.Ctx(ctx)
	clauses, args := duckdb.FilterConditions(f, duckdb.MatchContains)

	// Recent cut years first; id breaks ties so pagination stays stable
	// across requests.
	query := fmt.Sprintf("SELECT %s FROM avisos_arribo %s ORDER BY anio_corte DESC NULLS LAST, id DESC LIMIT ? OFFSET ?",
		selectColumns, duckdb.WhereClause(clauses...))
	args = append(args, limit, offset)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}
	defer func(rows *sql.Rows) {
		if err := rows.Close(); err != nil {
			logger.Warn().Err(err).Msg("failed to close listing rows")
		}
	}(rows)

	return scanRecords(rows)
}

// Count runs independently of List on purpose: the two queries share no
// snapshot, so a write landing between them can skew the total by a few
// rows. Acceptable for a read-mostly reporting workload.
func (s *recordStore) Count(ctx context.Context, f domain.Filter) (int, error) {
	clauses, args := duckdb.FilterConditions(f, duckdb.MatchContains)
	query := fmt.Sprintf("SELECT COUNT(*) FROM avisos_arribo %s", duckdb.WhereClause(clauses...))

	var total int
	if err := s.db.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("count records: %w", err)
	}
	return total, nil
}

func scanRecords(rows *sql.Rows) ([]storemodel.LandingRecord, error) {
	records := make([]storemodel.LandingRecord, 0)
	for rows.Next() {
		var (
			r                        storemodel.LandingRecord
			anio, emb, dias, dur     sql.NullInt64
			mes, nomP, nomE          sql.NullString
			estado, litoral, zona    sql.NullString
			rnpa, unidad, sitio      sql.NullString
			oficina, tipoAv, origen  sql.NullString
			peso, vivo, precio, valr sql.NullFloat64
			created                  sql.NullTime
		)
		err := rows.Scan(&r.ID, &anio, &mes, &nomP, &nomE, &estado, &litoral,
			&zona, &peso, &vivo, &precio, &valr, &emb, &dias, &dur, &rnpa,
			&unidad, &sitio, &oficina, &tipoAv, &origen, &created)
		if err != nil {
			return nil, err
		}

		r.AnioCorte = nullInt(anio)
		r.MesCorte = nullStr(mes)
		r.NombrePrincipal = nullStr(nomP)
		r.NombreEspecie = nullStr(nomE)
		r.Estado = nullStr(estado)
		r.Litoral = nullStr(litoral)
		r.TipoZona = nullStr(zona)
		r.PesoDesembarcado = nullFloat(peso)
		r.PesoVivo = nullFloat(vivo)
		r.Precio = nullFloat(precio)
		r.Valor = nullFloat(valr)
		r.Embarcaciones = nullInt(emb)
		r.DiasEfectivos = nullInt(dias)
		r.Duracion = nullInt(dur)
		r.RNPA = nullStr(rnpa)
		r.UnidadEconomica = nullStr(unidad)
		r.SitioDesembarque = nullStr(sitio)
		r.Oficina = nullStr(oficina)
		r.TipoAviso = nullStr(tipoAv)
		r.Origen = nullStr(origen)
		if created.Valid {
			t := created.Time
			r.CreatedAt = &t
		}

		records = append(records, r)
	}
	return records, rows.Err()
}

func nullStr(v sql.NullString) *string {
	if !v.Valid {
		return nil
	}
	s := v.String
	return &s
}

func nullInt(v sql.NullInt64) *int64 {
	if !v.Valid {
		return nil
	}
	n := v.Int64
	return &n
}

func nullFloat(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	f := v.Float64
	return &f
}

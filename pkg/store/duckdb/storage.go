package duckdb

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"fmt"

	"github.com/marcboeker/go-duckdb/v2"
)

// FactTableSchema holds the avisos_arribo fact table: one row per landing
// report. Dimensions and measures are nullable because notices are filed
// with partial data; aggregates exclude nulls at query time instead of
// coercing them to sentinels.
const FactTableSchema = `
	CREATE TABLE IF NOT EXISTS avisos_arribo (
		id INTEGER NOT NULL PRIMARY KEY,
		anio_corte INTEGER,
		mes_corte VARCHAR,
		nombre_principal VARCHAR,
		nombre_especie VARCHAR,
		estado VARCHAR,
		litoral VARCHAR,
		tipo_zona VARCHAR,
		peso_desembarcado DOUBLE,
		peso_vivo DOUBLE,
		precio DOUBLE,
		valor DOUBLE,
		embarcaciones INTEGER,
		dias_efectivos INTEGER,
		duracion INTEGER,
		rnpa VARCHAR,
		unidad_economica VARCHAR,
		sitio_desembarque VARCHAR,
		oficina VARCHAR,
		tipo_aviso VARCHAR,
		origen VARCHAR,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	);
`

var bootQueries = []string{
	FactTableSchema,
}

type Settings struct {
	DbPath string
}

func NewDB(settings Settings) (*sql.DB, error) {
	c, err := duckdb.NewConnector(fmt.Sprintf("%s?threads=4", settings.DbPath), func(exec driver.ExecerContext) error {
		for _, query := range bootQueries {
			_, err := exec.ExecContext(context.Background(), query, nil)
			if err != nil {
				return err
			}
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	db := sql.OpenDB(c)
	return db, nil
}

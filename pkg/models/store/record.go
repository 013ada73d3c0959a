package store

import "time"

// LandingRecord is one row of the avisos_arribo fact table. Every dimension
// and measure is optional: arrival notices are frequently filed with partial
// data, so pointer fields distinguish "absent" from zero.
type LandingRecord struct {
	ID               int64      `json:"id"`
	AnioCorte        *int64     `json:"anioCorte"`
	MesCorte         *string    `json:"mesCorte"`
	NombrePrincipal  *string    `json:"nombrePrincipal"`
	NombreEspecie    *string    `json:"nombreEspecie"`
	Estado           *string    `json:"estado"`
	Litoral          *string    `json:"litoral"`
	TipoZona         *string    `json:"tipoZona"`
	PesoDesembarcado *float64   `json:"pesoDesembarcado"`
	PesoVivo         *float64   `json:"pesoVivo"`
	Precio           *float64   `json:"precio"`
	Valor            *float64   `json:"valor"`
	Embarcaciones    *int64     `json:"embarcaciones"`
	DiasEfectivos    *int64     `json:"diasEfectivos"`
	Duracion         *int64     `json:"duracion"`
	RNPA             *string    `json:"rnpa"`
	UnidadEconomica  *string    `json:"unidadEconomica"`
	SitioDesembarque *string    `json:"sitioDesembarque"`
	Oficina          *string    `json:"oficina"`
	TipoAviso        *string    `json:"tipoAviso"`
	Origen           *string    `json:"origen"`
	CreatedAt        *time.Time `json:"createdAt"`
}

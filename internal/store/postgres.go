package store

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rotisserie/eris"

	"github.com/edafy/ingest-cli/internal/db"
)

// PoolConfig holds optional connection pool tuning parameters.
type PoolConfig struct {
	MaxConns int32 `yaml:"max_conns" mapstructure:"max_conns"`
	MinConns int32 `yaml:"min_conns" mapstructure:"min_conns"`
}

// NewPool creates a pgx connection pool for the ingestion store.
func NewPool(ctx context.Context, connString string, poolCfg *PoolConfig) (db.Pool, error) {
	pgxCfg, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, eris.Wrap(err, "store: parse config")
	}

	maxConns := int32(10)
	minConns := int32(2)
	if poolCfg != nil {
		if poolCfg.MaxConns > 0 {
			maxConns = poolCfg.MaxConns
		}
		if poolCfg.MinConns > 0 {
			minConns = poolCfg.MinConns
		}
	}
	pgxCfg.MaxConns = maxConns
	pgxCfg.MinConns = minConns
	pgxCfg.MaxConnLifetime = 30 * time.Minute
	pgxCfg.MaxConnIdleTime = 5 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, pgxCfg)
	if err != nil {
		return nil, eris.Wrap(err, "store: create pool")
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, eris.Wrap(err, "store: ping")
	}
	return pool, nil
}

const migration = `
CREATE TABLE IF NOT EXISTS seismic_surveys (
	id                TEXT PRIMARY KEY DEFAULT gen_random_uuid()::text,
	name              TEXT NOT NULL UNIQUE,
	block             TEXT NOT NULL DEFAULT '',
	dimension         TEXT NOT NULL DEFAULT '',
	acq_start_date    TEXT NOT NULL DEFAULT '',
	acq_end_date      TEXT NOT NULL DEFAULT '',
	survey_year       TEXT NOT NULL DEFAULT '',
	area              TEXT NOT NULL DEFAULT '',
	country           TEXT NOT NULL DEFAULT '',
	survey_area       TEXT NOT NULL DEFAULT '',
	survey_area_uom   TEXT NOT NULL DEFAULT '',
	record_length     DOUBLE PRECISION,
	record_length_uom TEXT NOT NULL DEFAULT '',
	sample_rate       DOUBLE PRECISION,
	sample_rate_uom   TEXT NOT NULL DEFAULT '',
	energy_type       INTEGER,
	vessel_name       TEXT NOT NULL DEFAULT '',
	created_at        TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at        TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS seismic_lines (
	id                         TEXT PRIMARY KEY DEFAULT gen_random_uuid()::text,
	name                       TEXT NOT NULL DEFAULT '',
	composite_name             TEXT NOT NULL UNIQUE,
	line_type                  TEXT NOT NULL DEFAULT '',
	first_cdp                  DOUBLE PRECISION,
	last_cdp                   DOUBLE PRECISION,
	first_shot                 DOUBLE PRECISION,
	last_shot                  DOUBLE PRECISION,
	length_metres              DOUBLE PRECISION,
	northernmost_latitude      DOUBLE PRECISION,
	southernmost_latitude      DOUBLE PRECISION,
	westernmost_longitude      DOUBLE PRECISION,
	easternmost_longitude      DOUBLE PRECISION,
	country                    TEXT NOT NULL DEFAULT '',
	area                       TEXT NOT NULL DEFAULT '',
	block                      TEXT NOT NULL DEFAULT '',
	survey_area                TEXT NOT NULL DEFAULT '',
	vintage_year               INTEGER,
	operator                   TEXT NOT NULL DEFAULT '',
	contractor                 TEXT NOT NULL DEFAULT '',
	shot_by                    TEXT NOT NULL DEFAULT '',
	raw_data_format_type       TEXT NOT NULL DEFAULT '',
	processed_data_format_type TEXT NOT NULL DEFAULT '',
	data_processed_coverage    TEXT NOT NULL DEFAULT '',
	created_at                 TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at                 TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS seismic_data (
	id                  TEXT PRIMARY KEY DEFAULT gen_random_uuid()::text,
	dataset_type_id     TEXT NOT NULL DEFAULT '',
	sub_dataset_type_id TEXT NOT NULL DEFAULT '',
	status              TEXT NOT NULL DEFAULT '',
	file_name           TEXT NOT NULL UNIQUE,
	file_format         TEXT NOT NULL DEFAULT '',
	file_size           BIGINT,
	title               TEXT NOT NULL DEFAULT '',
	description         TEXT NOT NULL DEFAULT '',
	created_by          TEXT NOT NULL DEFAULT '',
	created_for         TEXT NOT NULL DEFAULT '',
	recorded_by         TEXT NOT NULL DEFAULT '',
	remarks             TEXT NOT NULL DEFAULT '',
	file_location       TEXT NOT NULL DEFAULT '',
	s3_file_path        TEXT NOT NULL DEFAULT '',
	record_length       DOUBLE PRECISION,
	record_length_uom   TEXT NOT NULL DEFAULT '',
	sample_rate         DOUBLE PRECISION,
	sample_rate_uom     TEXT NOT NULL DEFAULT '',
	seismic_line_id     TEXT NOT NULL DEFAULT '',
	created_at          TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at          TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS well_metadata (
	id                  TEXT PRIMARY KEY DEFAULT gen_random_uuid()::text,
	dataset_type_id     TEXT NOT NULL DEFAULT '',
	sub_dataset_type_id TEXT NOT NULL DEFAULT '',
	status              TEXT NOT NULL DEFAULT '',
	file_name           TEXT NOT NULL UNIQUE,
	file_format         TEXT NOT NULL DEFAULT '',
	file_size           BIGINT,
	title               TEXT NOT NULL DEFAULT '',
	description         TEXT NOT NULL DEFAULT '',
	created_by          TEXT NOT NULL DEFAULT '',
	created_for         TEXT NOT NULL DEFAULT '',
	remarks             TEXT NOT NULL DEFAULT '',
	file_location       TEXT NOT NULL DEFAULT '',
	s3_file_path        TEXT NOT NULL DEFAULT '',
	spud_date           TEXT NOT NULL DEFAULT '',
	completion_date     TEXT NOT NULL DEFAULT '',
	top_depth           DOUBLE PRECISION,
	top_depth_uom       TEXT NOT NULL DEFAULT '',
	base_depth          DOUBLE PRECISION,
	base_depth_uom      TEXT NOT NULL DEFAULT '',
	created_at          TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at          TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS seismic_coordinates (
	id        BIGSERIAL PRIMARY KEY,
	latitude  DOUBLE PRECISION NOT NULL,
	longitude DOUBLE PRECISION NOT NULL,
	survey_id TEXT NOT NULL,
	line_id   TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_seismic_coordinates_line ON seismic_coordinates(line_id);

CREATE TABLE IF NOT EXISTS survey_line_pivots (
	id         TEXT PRIMARY KEY DEFAULT gen_random_uuid()::text,
	survey_id  TEXT NOT NULL,
	line_id    TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	UNIQUE (survey_id, line_id)
);

CREATE TABLE IF NOT EXISTS line_data_pivots (
	id              TEXT PRIMARY KEY DEFAULT gen_random_uuid()::text,
	line_id         TEXT NOT NULL,
	seismic_data_id TEXT NOT NULL,
	created_at      TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at      TIMESTAMPTZ NOT NULL DEFAULT now(),
	UNIQUE (line_id, seismic_data_id)
);

CREATE TABLE IF NOT EXISTS well_metadata_pivots (
	id           TEXT PRIMARY KEY DEFAULT gen_random_uuid()::text,
	well_id      TEXT NOT NULL,
	well_data_id TEXT NOT NULL,
	created_at   TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at   TIMESTAMPTZ NOT NULL DEFAULT now(),
	UNIQUE (well_id, well_data_id)
);

CREATE TABLE IF NOT EXISTS line_well_metadata_pivots (
	id               TEXT PRIMARY KEY DEFAULT gen_random_uuid()::text,
	seismic_line_id  TEXT NOT NULL,
	well_metadata_id TEXT NOT NULL,
	created_at       TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at       TIMESTAMPTZ NOT NULL DEFAULT now(),
	UNIQUE (seismic_line_id, well_metadata_id)
);

CREATE TABLE IF NOT EXISTS well_seismic_data_pivots (
	id              TEXT PRIMARY KEY DEFAULT gen_random_uuid()::text,
	well_id         TEXT NOT NULL,
	seismic_data_id TEXT NOT NULL,
	created_at      TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at      TIMESTAMPTZ NOT NULL DEFAULT now(),
	UNIQUE (well_id, seismic_data_id)
);

CREATE INDEX IF NOT EXISTS idx_seismic_data_line ON seismic_data(seismic_line_id);
CREATE INDEX IF NOT EXISTS idx_well_metadata_pivot_well ON well_metadata_pivots(well_id);
`

// Migrate applies the ingestion store DDL.
func (s *Store) Migrate(ctx context.Context) error {
	_, err := s.q.Exec(ctx, migration)
	return eris.Wrap(err, "store: migrate")
}

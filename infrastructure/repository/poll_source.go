// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"context"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/vfg2006/store-monitor-api/infrastructure/database/postgres"
	"github.com/vfg2006/store-monitor-api/internal/domain"
	"github.com/vfg2006/store-monitor-api/internal/usecases/normalizing"
)

const (
	storeStatusTable   = "store_status ss"
	businessHoursTable = "business_hours bh"
	timezonesTable     = "store_timezones tz"
)

// PollSourceRepository expõe as tabelas de entrada do pipeline quando os
// dados brutos moram no PostgreSQL em vez de CSVs
type PollSourceRepository interface {
	normalizing.DataSource
}

type pollSourceRepository struct {
	conn *postgres.Connection
}

func NewPollSourceRepository(conn *postgres.Connection) PollSourceRepository {
	return &pollSourceRepository{
		conn: conn,
	}
}

func (r *pollSourceRepository) PollRecords(ctx context.Context) ([]domain.PollRecord, error) {
	query, args, err := squirrel.
		Select("ss.store_id", "ss.timestamp_utc", "ss.status").
		From(storeStatusTable).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query de polls")
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao executar a query de polls")
	}
	defer rows.Close()

	records := make([]domain.PollRecord, 0)

	for rows.Next() {
		var rec domain.PollRecord
		var ts time.Time

		if err := rows.Scan(&rec.StoreID, &ts, &rec.Status); err != nil {
			return nil, errors.Wrap(err, "erro ao escanear poll")
		}

		rec.TimestampUTC = ts.UTC()
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "erro durante a iteração de polls")
	}

	return records, nil
}

func (r *pollSourceRepository) BusinessHours(ctx context.Context) ([]domain.BusinessHourEntry, error) {
	query, args, err := squirrel.
		Select("bh.store_id", "bh.day", "bh.start_time_local", "bh.end_time_local").
		From(businessHoursTable).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query de horário comercial")
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao executar a query de horário comercial")
	}
	defer rows.Close()

	entries := make([]domain.BusinessHourEntry, 0)

	for rows.Next() {
		var entry domain.BusinessHourEntry

		if err := rows.Scan(&entry.StoreID, &entry.Day, &entry.StartTimeLocal, &entry.EndTimeLocal); err != nil {
			return nil, errors.Wrap(err, "erro ao escanear horário comercial")
		}

		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "erro durante a iteração de horário comercial")
	}

	return entries, nil
}

func (r *pollSourceRepository) StoreTimezones(ctx context.Context) ([]domain.StoreTimezone, error) {
	query, args, err := squirrel.
		Select("tz.store_id", "tz.timezone_str").
		From(timezonesTable).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query de fusos")
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao executar a query de fusos")
	}
	defer rows.Close()

	zones := make([]domain.StoreTimezone, 0)

	for rows.Next() {
		var zone domain.StoreTimezone

		if err := rows.Scan(&zone.StoreID, &zone.TimezoneName); err != nil {
			return nil, errors.Wrap(err, "erro ao escanear fuso horário")
		}

		zones = append(zones, zone)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "erro durante a iteração de fusos")
	}

	return zones, nil
}

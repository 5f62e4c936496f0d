package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/vfg2006/store-monitor-api/infrastructure/database/postgres"
	"github.com/vfg2006/store-monitor-api/internal/domain"
	"github.com/vfg2006/store-monitor-api/internal/usecases/jobtracking"
)

const reportJobsTable = "report_jobs rj"

// ReportJobRepository implementa o rastreamento de jobs sobre o PostgreSQL;
// a disciplina de escritor único por chave fica a cargo das garantias
// transacionais do banco
type ReportJobRepository interface {
	jobtracking.Store
}

type reportJobRepository struct {
	conn *postgres.Connection
}

func NewReportJobRepository(conn *postgres.Connection) ReportJobRepository {
	return &reportJobRepository{
		conn: conn,
	}
}

func (r *reportJobRepository) Create(ctx context.Context, requestID string) error {
	query, args, err := squirrel.
		Insert("report_jobs").
		Columns("request_id", "state", "created_at").
		Values(requestID, string(domain.JobPending), time.Now().UTC()).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return errors.Wrap(err, "erro ao construir a query de criação de job")
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		return errors.Wrap(err, "erro ao criar o job")
	}

	return nil
}

func (r *reportJobRepository) MarkDone(ctx context.Context, requestID string) error {
	query, args, err := squirrel.
		Update("report_jobs").
		Set("state", string(domain.JobDone)).
		Set("completed_at", time.Now().UTC()).
		Where(squirrel.Eq{"request_id": requestID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return errors.Wrap(err, "erro ao construir a query de conclusão de job")
	}

	result, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return errors.Wrap(err, "erro ao concluir o job")
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return errors.Wrap(err, "erro ao verificar a conclusão do job")
	}
	if affected == 0 {
		return errors.Errorf("job desconhecido: %s", requestID)
	}

	return nil
}

func (r *reportJobRepository) Get(ctx context.Context, requestID string) (*domain.ReportJob, error) {
	query, args, err := squirrel.
		Select("rj.request_id", "rj.state", "rj.created_at", "rj.completed_at").
		From(reportJobsTable).
		Where(squirrel.Eq{"rj.request_id": requestID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query de consulta de job")
	}

	row := r.conn.QueryRowContext(ctx, query, args...)

	job := &domain.ReportJob{}
	var state string
	var completedAt sql.NullTime

	if err := row.Scan(&job.RequestID, &state, &job.CreatedAt, &completedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, errors.Wrap(err, "erro ao escanear job")
	}

	job.State = domain.JobState(state)
	if completedAt.Valid {
		t := completedAt.Time
		job.CompletedAt = &t
	}

	return job, nil
}

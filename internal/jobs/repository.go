package jobs

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository persists generation jobs.
type Repository interface {
	Create(ctx context.Context, job Job) error
	ListByTelegramID(ctx context.Context, telegramID string, limit int) ([]Job, error)
}

// PostgresRepository implements Repository using PostgreSQL.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository builds a Postgres-backed job repository.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// EnsureSchema creates the jobs table and its index when they do not exist
// yet. This is deliberately migrate-lite; there is no migration framework.
func (r *PostgresRepository) EnsureSchema(ctx context.Context) error {
	_, err := r.db.Exec(ctx, `CREATE TABLE IF NOT EXISTS jobs (
        id UUID PRIMARY KEY,
        telegram_id VARCHAR(32) NOT NULL,
        status VARCHAR(16) NOT NULL DEFAULT 'queued',
        prompt TEXT NOT NULL,
        result_text TEXT,
        created_at TIMESTAMPTZ NOT NULL
    )`)
	if err != nil {
		return err
	}
	_, err = r.db.Exec(ctx, `CREATE INDEX IF NOT EXISTS idx_jobs_telegram_id ON jobs (telegram_id)`)
	return err
}

// Create inserts a new job record.
func (r *PostgresRepository) Create(ctx context.Context, job Job) error {
	jobID, err := uuid.Parse(job.ID)
	if err != nil {
		return err
	}
	_, err = r.db.Exec(ctx, `INSERT INTO jobs (id, telegram_id, status, prompt, result_text, created_at)
        VALUES ($1, $2, $3, $4, $5, $6)`,
		jobID, job.TelegramID, job.Status, job.Prompt, job.ResultText, job.CreatedAt.UTC())
	return err
}

// ListByTelegramID fetches the newest jobs for a user, newest first.
func (r *PostgresRepository) ListByTelegramID(ctx context.Context, telegramID string, limit int) ([]Job, error) {
	rows, err := r.db.Query(ctx, `SELECT id, telegram_id, status, prompt, result_text, created_at
        FROM jobs WHERE telegram_id = $1 ORDER BY created_at DESC LIMIT $2`, telegramID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Job
	for rows.Next() {
		var (
			id  uuid.UUID
			job Job
		)
		if err := rows.Scan(&id, &job.TelegramID, &job.Status, &job.Prompt, &job.ResultText, &job.CreatedAt); err != nil {
			return nil, err
		}
		job.ID = id.String()
		job.CreatedAt = job.CreatedAt.UTC()
		out = append(out, job)
	}
	return out, rows.Err()
}

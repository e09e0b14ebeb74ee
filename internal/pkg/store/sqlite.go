package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/ougirez/constituency/internal/domain"
	"github.com/ougirez/constituency/internal/pkg/constants"
	"github.com/ougirez/constituency/internal/pkg/logger"

	_ "modernc.org/sqlite"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS complaints (
	complaint_id          INTEGER PRIMARY KEY,
	pincode               TEXT NOT NULL,
	vs_id                 TEXT NOT NULL,
	complainant_name      TEXT NOT NULL,
	complainant_email     TEXT NOT NULL,
	complainant_phone     TEXT NOT NULL DEFAULT '',
	complaint_description TEXT NOT NULL,
	complaint_category    TEXT NOT NULL DEFAULT '',
	complaint_status      TEXT NOT NULL DEFAULT 'NEW',
	submitted_date        TEXT NOT NULL
);`

type sqliteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens (or creates) the SQLite database at path.
// ":memory:" gives a private in-process database.
func NewSQLiteStore(ctx context.Context, path string) (Store, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("os.MkdirAll: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("sql.Open: %w", err)
	}
	// One connection: writes are serialized and ":memory:" stays a single database.
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, sqliteSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create complaints table: %w", err)
	}

	return &sqliteStore{db: db}, nil
}

func sqliteBuilder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question)
}

func (s *sqliteStore) InsertComplaint(ctx context.Context, complaint *domain.Complaint) error {
	values := complaintValues(complaint)
	values[len(values)-1] = formatSubmitted(complaint)

	query, args, err := sqliteBuilder().Insert(tableComplaints).
		Columns(complaintColumns...).
		Values(values...).
		ToSql()
	if err != nil {
		return fmt.Errorf("query.ToSql: %w", err)
	}

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		logger.Errorf(ctx, "insert complaint %d: %s", complaint.ID, err.Error())
		return wrapErr(err)
	}

	return nil
}

func (s *sqliteStore) ListComplaints(ctx context.Context) ([]*domain.Complaint, error) {
	query, args, err := sqliteBuilder().Select(complaintColumns...).
		From(tableComplaints).
		OrderBy("complaint_id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("query.ToSql: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, wrapErr(err)
	}
	defer rows.Close()

	complaints := make([]*domain.Complaint, 0, 64)
	for rows.Next() {
		var (
			c         domain.Complaint
			status    string
			submitted string
		)
		err := rows.Scan(
			&c.ID,
			&c.Pincode,
			&c.VSID,
			&c.ComplainantName,
			&c.ComplainantEmail,
			&c.ComplainantPhone,
			&c.Description,
			&c.Category,
			&status,
			&submitted,
		)
		if err != nil {
			return nil, fmt.Errorf("rows.Scan: %w", err)
		}

		c.Status = domain.ComplaintStatus(status)
		if submitted != "" {
			c.SubmittedAt, err = time.ParseInLocation(constants.SubmittedDateLayout, submitted, time.Local)
			if err != nil {
				return nil, fmt.Errorf("%w: complaint %d submitted_date %q", constants.ErrMalformedRecord, c.ID, submitted)
			}
		}
		warnUnknownStatus(ctx, "sqlite", &c)
		complaints = append(complaints, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows.Err: %w", err)
	}

	return complaints, nil
}

func (s *sqliteStore) Close() error {
	return s.db.Close()
}

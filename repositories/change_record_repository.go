package repositories

import (
	"context"
	"database/sql"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/blogem/asset-tracker/models"
)

const (
	// DefaultSubjectHistoryLimit bounds per-subject history when no limit is given
	DefaultSubjectHistoryLimit = 10
	// DefaultTrailLimit bounds the global trail when no limit is given
	DefaultTrailLimit = 500
	// MaxQueryLimit caps every change record query
	MaxQueryLimit = 1000
)

// ChangeRecordRepository is the append-only change history store.
// It exposes no way to modify or remove a stored record.
type ChangeRecordRepository interface {
	Append(ctx context.Context, record *models.ChangeRecord) error
	QueryBySubject(ctx context.Context, subjectID string, limit int) ([]models.ChangeRecordDetails, error)
	QueryAll(ctx context.Context, filter models.ChangeRecordFilter, limit int) ([]models.ChangeRecordDetails, error)
}

// ChangeRecordRetentionRepository is the administrative cleanup path for old history
type ChangeRecordRetentionRepository interface {
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

type changeRecordRepository struct {
	db    *sql.DB
	now   func() time.Time
	newID func() string
}

// NewChangeRecordRepository creates a new change record repository
func NewChangeRecordRepository(db *sql.DB) ChangeRecordRepository {
	return &changeRecordRepository{
		db:    db,
		now:   time.Now,
		newID: uuid.NewString,
	}
}

// Append validates and inserts one record, assigning ID and OccurredAt when unset
func (r *changeRecordRepository) Append(ctx context.Context, record *models.ChangeRecord) error {
	if err := record.Validate(); err != nil {
		return err
	}

	stored := *record
	if stored.ID == "" {
		stored.ID = r.newID()
	}
	if stored.OccurredAt.IsZero() {
		stored.OccurredAt = r.now()
	}
	stored.OccurredAt = stored.OccurredAt.UTC()

	before, err := encodeState(stored.BeforeState)
	if err != nil {
		return err
	}
	after, err := encodeState(stored.AfterState)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO change_records (id, subject_id, action, before_state, after_state, actor_id, notes, occurred_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err = r.db.ExecContext(ctx, query,
		stored.ID,
		stored.SubjectID,
		string(stored.Action),
		before,
		after,
		stored.ActorID,
		stored.Notes,
		stored.OccurredAt,
	)
	if err != nil {
		return models.NewPersistenceError("failed to append change record", err)
	}

	*record = stored
	return nil
}

// QueryBySubject returns the newest records for one subject
func (r *changeRecordRepository) QueryBySubject(ctx context.Context, subjectID string, limit int) ([]models.ChangeRecordDetails, error) {
	query := selectChangeRecords().
		Where(sq.Eq{"r.subject_id": subjectID}).
		Limit(uint64(clampLimit(limit, DefaultSubjectHistoryLimit)))

	return r.list(ctx, query, "failed to query subject history")
}

// QueryAll returns the newest records across all subjects matching filter
func (r *changeRecordRepository) QueryAll(ctx context.Context, filter models.ChangeRecordFilter, limit int) ([]models.ChangeRecordDetails, error) {
	query := selectChangeRecords().
		Limit(uint64(clampLimit(limit, DefaultTrailLimit)))

	if filter.Action != "" {
		query = query.Where(sq.Eq{"r.action": string(filter.Action)})
	}

	if search := strings.TrimSpace(filter.Search); search != "" {
		pattern := "%" + escapeLike(search) + "%"
		var matches sq.Or
		for _, column := range []string{"a.name", "a.asset_tag", "r.action", "p.first_name", "p.last_name", "p.email", "r.notes"} {
			matches = append(matches, sq.Expr(column+` LIKE ? ESCAPE '\'`, pattern))
		}
		query = query.Where(matches)
	}

	if since, ok := filter.Range.Since(r.now()); ok {
		query = query.Where(sq.GtOrEq{"r.occurred_at": since.UTC()})
	}

	return r.list(ctx, query, "failed to query change records")
}

func (r *changeRecordRepository) list(ctx context.Context, builder sq.SelectBuilder, op string) ([]models.ChangeRecordDetails, error) {
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, models.NewPersistenceError(op, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, models.NewPersistenceError(op, err)
	}
	defer rows.Close()

	records := []models.ChangeRecordDetails{}
	for rows.Next() {
		var (
			record models.ChangeRecordDetails
			action string
			before sql.NullString
			after  sql.NullString
		)

		err := rows.Scan(
			&record.ID,
			&record.SubjectID,
			&action,
			&before,
			&after,
			&record.ActorID,
			&record.Notes,
			&record.OccurredAt,
			&record.SubjectName,
			&record.SubjectTag,
			&record.ActorFirstName,
			&record.ActorLastName,
			&record.ActorEmail,
		)
		if err != nil {
			return nil, models.NewPersistenceError("failed to scan change record", err)
		}

		record.Action = models.Action(action)
		if record.BeforeState, err = models.DecodeFieldMap(before.String); err != nil {
			return nil, models.NewPersistenceError("failed to decode before state", err)
		}
		if record.AfterState, err = models.DecodeFieldMap(after.String); err != nil {
			return nil, models.NewPersistenceError("failed to decode after state", err)
		}

		records = append(records, record)
	}

	if err = rows.Err(); err != nil {
		return nil, models.NewPersistenceError("error iterating change records", err)
	}

	return records, nil
}

func selectChangeRecords() sq.SelectBuilder {
	return sq.Select(
		"r.id", "r.subject_id", "r.action", "r.before_state", "r.after_state",
		"r.actor_id", "r.notes", "r.occurred_at",
		"a.name", "a.asset_tag",
		"p.first_name", "p.last_name", "p.email",
	).
		From("change_records r").
		LeftJoin("assets a ON a.id = r.subject_id").
		LeftJoin("profiles p ON p.id = r.actor_id").
		OrderBy("r.occurred_at DESC", "r.seq DESC")
}

func encodeState(state models.FieldMap) (sql.NullString, error) {
	if state == nil {
		return sql.NullString{}, nil
	}
	encoded, err := state.Encode()
	if err != nil {
		return sql.NullString{}, err
	}
	return sql.NullString{String: encoded, Valid: true}, nil
}

func clampLimit(limit, def int) int {
	if limit <= 0 {
		return def
	}
	if limit > MaxQueryLimit {
		return MaxQueryLimit
	}
	return limit
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

type changeRecordRetentionRepository struct {
	db *sql.DB
}

// NewChangeRecordRetentionRepository creates the administrative retention repository
func NewChangeRecordRetentionRepository(db *sql.DB) ChangeRecordRetentionRepository {
	return &changeRecordRetentionRepository{db: db}
}

// DeleteOlderThan removes records that occurred strictly before cutoff
func (r *changeRecordRetentionRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM change_records WHERE occurred_at < ?`, cutoff.UTC())
	if err != nil {
		return 0, models.NewPersistenceError("failed to delete old change records", err)
	}

	removed, err := result.RowsAffected()
	if err != nil {
		return 0, models.NewPersistenceError("failed to get rows affected", err)
	}

	return removed, nil
}

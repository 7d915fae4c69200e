package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/sethvargo/go-retry"

	"github.com/MKhiriev/founder-directory/internal/logger"
	"github.com/MKhiriev/founder-directory/models"
)

const (
	maxExecAttempts = 3
	execRetryDelay  = 50 * time.Millisecond
)

// founderRepository is the SQLite-backed implementation of
// [FounderRepository]. Every mutation is a single statement and publishes a
// [models.ChangeEvent] once it has been committed.
type founderRepository struct {
	*DB
	feed   *changeFeed
	logger *logger.Logger
}

// NewFounderRepository constructs a [FounderRepository] on top of db.
func NewFounderRepository(db *DB, logger *logger.Logger) FounderRepository {
	return &founderRepository{
		DB:     db,
		feed:   newChangeFeed(),
		logger: logger,
	}
}

func (r *founderRepository) MaxVersion(ctx context.Context) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildMaxVersionQuery()
	if err != nil {
		return 0, err
	}

	var maxVersion int64
	if err := r.DB.QueryRowContext(ctx, query, args...).Scan(&maxVersion); err != nil {
		log.Err(err).
			Str("func", "founderRepository.MaxVersion").
			Msg("failed to query max version")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return maxVersion, nil
}

func (r *founderRepository) ListDeleted(ctx context.Context) ([]models.Founder, error) {
	return r.list(ctx, "founderRepository.ListDeleted", whereDeleted)
}

func (r *founderRepository) ListNew(ctx context.Context) ([]models.Founder, error) {
	return r.list(ctx, "founderRepository.ListNew", whereNew)
}

func (r *founderRepository) ListDirty(ctx context.Context) ([]models.Founder, error) {
	return r.list(ctx, "founderRepository.ListDirty", whereDirty)
}

func (r *founderRepository) GetAllFounders(ctx context.Context) ([]models.Founder, error) {
	return r.list(ctx, "founderRepository.GetAllFounders", whereVisible)
}

func (r *founderRepository) GetFounder(ctx context.Context, id string) (models.Founder, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectFoundersQuery(sq.Eq{models.FieldID: id})
	if err != nil {
		return models.Founder{}, err
	}

	founder, err := scanFounder(r.DB.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Founder{}, fmt.Errorf("%w: id=%s", ErrFounderNotFound, id)
	}
	if err != nil {
		log.Err(err).
			Str("func", "founderRepository.GetFounder").
			Str("id", id).
			Msg("failed to scan founder row")
		return models.Founder{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return founder, nil
}

func (r *founderRepository) InsertFounder(ctx context.Context, f models.Founder) error {
	query, args, err := buildInsertFounderQuery(f)
	if err != nil {
		return err
	}

	if _, err := r.exec(ctx, "founderRepository.InsertFounder", f.ID, query, args); err != nil {
		return err
	}

	r.feed.publish(models.ChangeEvent{Op: models.ChangeInsert, ID: f.ID})
	return nil
}

// UpdateFounder writes a server snapshot over the record with f.ID and
// returns the number of rows affected. Zero means no record with that id exists.
func (r *founderRepository) UpdateFounder(ctx context.Context, f models.Founder) (int64, error) {
	query, args, err := buildReplaceFounderQuery(f)
	if err != nil {
		return 0, err
	}

	affected, err := r.exec(ctx, "founderRepository.UpdateFounder", f.ID, query, args)
	if err != nil {
		return 0, err
	}

	if affected > 0 {
		r.feed.publish(models.ChangeEvent{Op: models.ChangeUpdate, ID: f.ID})
	}
	return affected, nil
}

func (r *founderRepository) AcknowledgeFounder(ctx context.Context, oldID string, f models.Founder) error {
	query, args, err := buildAcknowledgeFounderQuery(oldID, f)
	if err != nil {
		return err
	}

	return r.execSingle(ctx, "founderRepository.AcknowledgeFounder", oldID, query, args, models.ChangeUpdate, f.ID)
}

func (r *founderRepository) EditFounder(ctx context.Context, f models.Founder) error {
	query, args, err := buildEditFounderQuery(f)
	if err != nil {
		return err
	}

	return r.execSingle(ctx, "founderRepository.EditFounder", f.ID, query, args, models.ChangeUpdate, f.ID)
}

func (r *founderRepository) MarkDirty(ctx context.Context, id string) error {
	query, args, err := buildSetFlagQuery(id, models.FieldDirty)
	if err != nil {
		return err
	}

	return r.execSingle(ctx, "founderRepository.MarkDirty", id, query, args, models.ChangeUpdate, id)
}

func (r *founderRepository) MarkDeleted(ctx context.Context, id string) error {
	query, args, err := buildSetFlagQuery(id, models.FieldDeleted)
	if err != nil {
		return err
	}

	return r.execSingle(ctx, "founderRepository.MarkDeleted", id, query, args, models.ChangeDelete, id)
}

// DeleteFounder removes the record with id and returns the number of rows
// affected. Removing an absent record is not an error.
func (r *founderRepository) DeleteFounder(ctx context.Context, id string) (int64, error) {
	query, args, err := buildDeleteFounderQuery(id)
	if err != nil {
		return 0, err
	}

	affected, err := r.exec(ctx, "founderRepository.DeleteFounder", id, query, args)
	if err != nil {
		return 0, err
	}

	if affected > 0 {
		r.feed.publish(models.ChangeEvent{Op: models.ChangeDelete, ID: id})
	}
	return affected, nil
}

func (r *founderRepository) Subscribe() (<-chan models.ChangeEvent, func()) {
	return r.feed.subscribe()
}

func (r *founderRepository) list(ctx context.Context, funcName string, where sq.Sqlizer) ([]models.Founder, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectFoundersQuery(where)
	if err != nil {
		return nil, err
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to execute query for founders")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	founders := make([]models.Founder, 0, 16)
	for rows.Next() {
		founder, scanErr := scanFounder(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", funcName).Msg("failed to scan founder row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		founders = append(founders, founder)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", funcName).Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return founders, nil
}

// execSingle runs a statement that must touch exactly the record with id and
// publishes op for eventID on success.
func (r *founderRepository) execSingle(ctx context.Context, funcName, id, query string, args []any, op models.ChangeOp, eventID string) error {
	affected, err := r.exec(ctx, funcName, id, query, args)
	if err != nil {
		return err
	}

	if affected == 0 {
		logger.FromContext(ctx).Warn().
			Str("func", funcName).
			Str("id", id).
			Msg("no rows affected: record not found")
		return fmt.Errorf("%w: id=%s", ErrFounderNotFound, id)
	}

	r.feed.publish(models.ChangeEvent{Op: op, ID: eventID})
	return nil
}

// exec runs a DML statement, retrying with exponential backoff while the
// database reports itself busy.
func (r *founderRepository) exec(ctx context.Context, funcName, id, query string, args []any) (int64, error) {
	log := logger.FromContext(ctx)

	backoff := retry.WithMaxRetries(maxExecAttempts-1, retry.NewExponential(execRetryDelay))

	var (
		result  sql.Result
		attempt int
	)
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		attempt++

		var execErr error
		result, execErr = r.DB.ExecContext(ctx, query, args...)
		if execErr != nil && r.classify(execErr) == Retryable {
			log.Warn().Err(execErr).
				Str("func", funcName).
				Str("id", id).
				Int("attempt", attempt).
				Msg("database busy")
			return retry.RetryableError(execErr)
		}
		return execErr
	})
	if ctxErr := ctx.Err(); ctxErr != nil && errors.Is(err, ctxErr) {
		return 0, ctxErr
	}

	if err != nil {
		log.Err(err).
			Str("func", funcName).
			Str("id", id).
			Msg("failed to execute statement")
		if r.classify(err) == Duplicate {
			return 0, fmt.Errorf("%w: id=%s: %w", ErrFounderExists, id, err)
		}
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).
			Str("func", funcName).
			Str("id", id).
			Msg("failed to get rows affected")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return affected, nil
}

func (r *founderRepository) classify(err error) ErrorClassification {
	if r.errorClassificator == nil {
		return NonRetryable
	}
	return r.errorClassificator.Classify(err)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanFounder(row rowScanner) (models.Founder, error) {
	var (
		founder             models.Founder
		isNew, dirty, isDel int64
	)

	values := make([]sql.NullString, len(models.FounderFields))
	dest := make([]any, 0, len(founderColumns))
	dest = append(dest, &founder.ID, &founder.Version, &isNew, &dirty, &isDel)
	for i := range values {
		dest = append(dest, &values[i])
	}

	if err := row.Scan(dest...); err != nil {
		return models.Founder{}, err
	}

	founder.New = isNew != 0
	founder.Dirty = dirty != 0
	founder.Deleted = isDel != 0
	founder.Fields = make(map[string]string, len(models.FounderFields))
	for i, name := range models.FounderFields {
		founder.Fields[name] = models.NormalizeValue(values[i].String)
	}

	return founder, nil
}

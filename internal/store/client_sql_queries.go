package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/founder-directory/models"
)

const foundersTable = "founders"

// founderColumns is the scan order of every founder SELECT: identity,
// version, flags, then the content fields in wire order.
var founderColumns = append([]string{
	models.FieldID,
	models.FieldVersion,
	models.FieldNew,
	models.FieldDirty,
	models.FieldDeleted,
}, models.FounderFields...)

// sqlite binds with '?', which is the squirrel default.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Question)

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func contentValues(f models.Founder) map[string]any {
	values := make(map[string]any, len(models.FounderFields))
	for _, name := range models.FounderFields {
		values[name] = models.NormalizeValue(f.Field(name))
	}
	return values
}

func buildMaxVersionQuery() (string, []any, error) {
	query, args, err := psql.
		Select("COALESCE(MAX(" + models.FieldVersion + "), 0)").
		From(foundersTable).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildSelectFoundersQuery selects founders matching where, ordered by
// version so that uploads happen oldest change first.
func buildSelectFoundersQuery(where sq.Sqlizer) (string, []any, error) {
	builder := psql.Select(founderColumns...).From(foundersTable)
	if where != nil {
		builder = builder.Where(where)
	}

	query, args, err := builder.OrderBy(models.FieldVersion, models.FieldID).ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildInsertFounderQuery(f models.Founder) (string, []any, error) {
	values := make([]any, 0, len(founderColumns))
	values = append(values, f.ID, f.Version, boolToInt(f.New), boolToInt(f.Dirty), boolToInt(f.Deleted))
	for _, v := range f.Values() {
		values = append(values, v)
	}

	query, args, err := psql.
		Insert(foundersTable).
		Columns(founderColumns...).
		Values(values...).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildReplaceFounderQuery writes a pulled snapshot over the record with the
// given id: content fields and version are replaced and dirty is cleared.
// new and deleted are left alone so a pending local deletion survives the
// pull and is retried on the next pass.
func buildReplaceFounderQuery(f models.Founder) (string, []any, error) {
	set := contentValues(f)
	set[models.FieldVersion] = f.Version
	set[models.FieldDirty] = 0

	query, args, err := psql.
		Update(foundersTable).
		SetMap(set).
		Where(sq.Eq{models.FieldID: f.ID}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildAcknowledgeFounderQuery applies a server acknowledgement to the
// record held under oldID in one statement: the id may change, fields and
// version are taken from f, new and dirty are cleared and deleted is left
// as it is.
func buildAcknowledgeFounderQuery(oldID string, f models.Founder) (string, []any, error) {
	set := contentValues(f)
	set[models.FieldID] = f.ID
	set[models.FieldVersion] = f.Version
	set[models.FieldNew] = 0
	set[models.FieldDirty] = 0

	query, args, err := psql.
		Update(foundersTable).
		SetMap(set).
		Where(sq.Eq{models.FieldID: oldID}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildEditFounderQuery stores a local edit: content fields are replaced and
// the record is flagged dirty. Version and the other flags are untouched.
func buildEditFounderQuery(f models.Founder) (string, []any, error) {
	set := contentValues(f)
	set[models.FieldDirty] = 1

	query, args, err := psql.
		Update(foundersTable).
		SetMap(set).
		Where(sq.Eq{models.FieldID: f.ID}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildSetFlagQuery(id, flag string) (string, []any, error) {
	query, args, err := psql.
		Update(foundersTable).
		Set(flag, 1).
		Where(sq.Eq{models.FieldID: id}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildDeleteFounderQuery(id string) (string, []any, error) {
	query, args, err := psql.
		Delete(foundersTable).
		Where(sq.Eq{models.FieldID: id}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

var (
	whereDeleted = sq.Eq{models.FieldDeleted: 1}
	whereNew     = sq.Eq{models.FieldNew: 1, models.FieldDeleted: 0}
	whereDirty   = sq.Eq{models.FieldDirty: 1, models.FieldNew: 0, models.FieldDeleted: 0}
	whereVisible = sq.Eq{models.FieldDeleted: 0}
)

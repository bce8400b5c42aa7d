package store

import (
	"encoding/json"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-notes-keeper/models"
)

const (
	usersTable = "users"
	notesTable = "notes"
)

var (
	userColumns = []string{
		"id",
		"email",
		"provider_id",
		"first_name",
		"last_name",
		"picture",
		"created_at",
		"updated_at",
	}

	noteColumns = []string{
		"id",
		"title",
		"content",
		"tags",
		"owner_id",
		"created_at",
		"updated_at",
	}
)

func buildInsertUserQuery(sb sq.StatementBuilderType, user models.User) (string, []any, error) {
	return sb.Insert(usersTable).
		Columns(userColumns...).
		Values(
			user.UserID,
			user.Email,
			user.ProviderID,
			user.FirstName,
			user.LastName,
			user.Picture,
			user.CreatedAt,
			user.UpdatedAt,
		).
		ToSql()
}

// buildFindUserQuery selects a single user where column equals value.
func buildFindUserQuery(sb sq.StatementBuilderType, column, value string) (string, []any, error) {
	return sb.Select(userColumns...).
		From(usersTable).
		Where(sq.Eq{column: value}).
		Limit(1).
		ToSql()
}

// buildLinkProviderIDQuery sets provider_id only while it is still NULL, so
// the first writer wins.
func buildLinkProviderIDQuery(sb sq.StatementBuilderType, userID, providerID string, now time.Time) (string, []any, error) {
	return sb.Update(usersTable).
		Set("provider_id", providerID).
		Set("updated_at", now).
		Where(sq.Eq{"id": userID}).
		Where(sq.Eq{"provider_id": nil}).
		ToSql()
}

func buildFindNoteByIDQuery(sb sq.StatementBuilderType, noteID string) (string, []any, error) {
	return sb.Select(noteColumns...).
		From(notesTable).
		Where(sq.Eq{"id": noteID}).
		Limit(1).
		ToSql()
}

func buildFindNotesByOwnerQuery(sb sq.StatementBuilderType, ownerID string, offset, limit int) (string, []any, error) {
	if offset < 0 || limit < 1 {
		return "", nil, fmt.Errorf("%w: invalid offset %d or limit %d", ErrBuildingSQLQuery, offset, limit)
	}

	return sb.Select(noteColumns...).
		From(notesTable).
		Where(sq.Eq{"owner_id": ownerID}).
		OrderBy("created_at DESC", "id DESC").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		ToSql()
}

func buildCountNotesByOwnerQuery(sb sq.StatementBuilderType, ownerID string) (string, []any, error) {
	return sb.Select("COUNT(*)").
		From(notesTable).
		Where(sq.Eq{"owner_id": ownerID}).
		ToSql()
}

func buildInsertNoteQuery(sb sq.StatementBuilderType, note models.Note) (string, []any, error) {
	tags, err := encodeTags(note.Tags)
	if err != nil {
		return "", nil, err
	}

	return sb.Insert(notesTable).
		Columns(noteColumns...).
		Values(
			note.ID,
			note.Title,
			note.Content,
			tags,
			note.Owner,
			note.CreatedAt,
			note.UpdatedAt,
		).
		ToSql()
}

// buildUpdateNoteQuery writes only the non-nil fields of update plus
// updated_at. owner_id is never part of the SET list.
func buildUpdateNoteQuery(sb sq.StatementBuilderType, noteID string, update models.NoteUpdate, now time.Time) (string, []any, error) {
	query := sb.Update(notesTable)

	if update.Title != nil {
		query = query.Set("title", *update.Title)
	}
	if update.Content != nil {
		query = query.Set("content", *update.Content)
	}
	if update.Tags != nil {
		tags, err := encodeTags(*update.Tags)
		if err != nil {
			return "", nil, err
		}
		query = query.Set("tags", tags)
	}

	return query.
		Set("updated_at", now).
		Where(sq.Eq{"id": noteID}).
		ToSql()
}

func buildDeleteNoteQuery(sb sq.StatementBuilderType, noteID string) (string, []any, error) {
	return sb.Delete(notesTable).
		Where(sq.Eq{"id": noteID}).
		ToSql()
}

// encodeTags stores tags as a JSON array. A nil slice is stored as "[]".
func encodeTags(tags []string) (string, error) {
	if tags == nil {
		tags = []string{}
	}

	raw, err := json.Marshal(tags)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrEncodingTags, err)
	}

	return string(raw), nil
}

func decodeTags(raw string) ([]string, error) {
	tags := make([]string, 0)
	if raw == "" {
		return tags, nil
	}

	if err := json.Unmarshal([]byte(raw), &tags); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncodingTags, err)
	}
	if tags == nil {
		tags = make([]string, 0)
	}

	return tags, nil
}

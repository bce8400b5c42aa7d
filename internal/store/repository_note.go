package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/models"
)

// noteRepository is the SQL implementation of [NoteRepository] over the
// "notes" table.
type noteRepository struct {
	*DB
	logger *logger.Logger
}

// NewNoteRepository constructs a [NoteRepository] backed by the provided
// database connection and logger.
func NewNoteRepository(db *DB, logger *logger.Logger) NoteRepository {
	logger.Debug().Msg("creating note repository")
	return &noteRepository{
		DB:     db,
		logger: logger,
	}
}

func (n *noteRepository) FindNoteByID(ctx context.Context, noteID string) (models.Note, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindNoteByIDQuery(n.builder, noteID)
	if err != nil {
		log.Err(err).Str("func", "noteRepository.FindNoteByID").Msg("failed to build query")
		return models.Note{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	note, err := scanNote(n.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Note{}, ErrNoteNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "noteRepository.FindNoteByID").
			Str("note_id", noteID).
			Stringer("classification", n.errorClassificator.Classify(err)).
			Msg("failed to scan note row")
		return models.Note{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return note, nil
}

// FindNotesByOwner returns the requested page (newest first) and the total
// number of notes owned by ownerID.
func (n *noteRepository) FindNotesByOwner(ctx context.Context, ownerID string, offset, limit int) ([]models.Note, int, error) {
	log := logger.FromContext(ctx)

	countQuery, countArgs, err := buildCountNotesByOwnerQuery(n.builder, ownerID)
	if err != nil {
		log.Err(err).Str("func", "noteRepository.FindNotesByOwner").Msg("failed to build count query")
		return nil, 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var total int
	if err = n.QueryRowContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		log.Err(err).
			Str("func", "noteRepository.FindNotesByOwner").
			Str("owner_id", ownerID).
			Msg("failed to count notes")
		return nil, 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	query, args, err := buildFindNotesByOwnerQuery(n.builder, ownerID, offset, limit)
	if err != nil {
		log.Err(err).Str("func", "noteRepository.FindNotesByOwner").Msg("failed to build query")
		return nil, 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := n.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "noteRepository.FindNotesByOwner").
			Str("owner_id", ownerID).
			Stringer("classification", n.errorClassificator.Classify(err)).
			Msg("failed to execute query for getting notes")
		return nil, 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	notes := make([]models.Note, 0, limit)
	for rows.Next() {
		note, scanErr := scanNote(rows)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "noteRepository.FindNotesByOwner").
				Str("owner_id", ownerID).
				Msg("failed to scan note row")
			return nil, 0, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		notes = append(notes, note)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "noteRepository.FindNotesByOwner").
			Str("owner_id", ownerID).
			Msg("error occurred during rows iteration")
		return nil, 0, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return notes, total, nil
}

func (n *noteRepository) InsertNote(ctx context.Context, note models.Note) (models.Note, error) {
	log := logger.FromContext(ctx)

	if note.Tags == nil {
		note.Tags = make([]string, 0)
	}

	query, args, err := buildInsertNoteQuery(n.builder, note)
	if err != nil {
		log.Err(err).Str("func", "noteRepository.InsertNote").Msg("failed to build query")
		return models.Note{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = n.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "noteRepository.InsertNote").
			Str("owner_id", note.Owner).
			Stringer("classification", n.errorClassificator.Classify(err)).
			Msg("failed to insert note")
		return models.Note{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return note, nil
}

// UpdateNoteByID applies update and returns the stored note afterwards.
// Returns [ErrNoteNotFound] when no row matches noteID.
func (n *noteRepository) UpdateNoteByID(ctx context.Context, noteID string, update models.NoteUpdate) (models.Note, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateNoteQuery(n.builder, noteID, update, n.now())
	if err != nil {
		log.Err(err).Str("func", "noteRepository.UpdateNoteByID").Msg("failed to build query")
		return models.Note{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = n.execAffectingOne(ctx, query, args...); err != nil {
		if !errors.Is(err, ErrNoteNotFound) {
			log.Err(err).Str("func", "noteRepository.UpdateNoteByID").Str("note_id", noteID).Msg("failed to update note")
		}
		return models.Note{}, err
	}

	return n.FindNoteByID(ctx, noteID)
}

// DeleteNoteByID removes the note. Returns [ErrNoteNotFound] when no row
// matches noteID.
func (n *noteRepository) DeleteNoteByID(ctx context.Context, noteID string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteNoteQuery(n.builder, noteID)
	if err != nil {
		log.Err(err).Str("func", "noteRepository.DeleteNoteByID").Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = n.execAffectingOne(ctx, query, args...); err != nil {
		if !errors.Is(err, ErrNoteNotFound) {
			log.Err(err).Str("func", "noteRepository.DeleteNoteByID").Str("note_id", noteID).Msg("failed to delete note")
		}
		return err
	}

	return nil
}

func (n *noteRepository) execAffectingOne(ctx context.Context, query string, args ...any) error {
	result, err := n.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrNoteNotFound
	}

	return nil
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanNote(row rowScanner) (models.Note, error) {
	var (
		note models.Note
		tags string
	)

	if err := row.Scan(
		&note.ID,
		&note.Title,
		&note.Content,
		&tags,
		&note.Owner,
		&note.CreatedAt,
		&note.UpdatedAt,
	); err != nil {
		return models.Note{}, err
	}

	decoded, err := decodeTags(tags)
	if err != nil {
		return models.Note{}, err
	}
	note.Tags = decoded

	return note, nil
}

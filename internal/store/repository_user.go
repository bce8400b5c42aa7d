package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/models"
)

// userRepository is the SQL implementation of [UserRepository] over the
// "users" table. It works unchanged on Postgres and SQLite.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new user record and returns it.
//
// Error handling:
//   - unique violation (email or provider id) → [ErrEmailAlreadyExists].
//   - Any other driver-level error → wrapped [ErrExecutingStatement].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertUserQuery(r.db.builder, user)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("failed to build query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		if r.db.errorClassificator.IsUniqueViolation(err) {
			log.Warn().Str("func", "*userRepository.CreateUser").Str("email", user.Email).Msg("user already exists")
			return models.User{}, ErrEmailAlreadyExists
		}

		log.Err(err).
			Str("func", "*userRepository.CreateUser").
			Stringer("classification", r.db.errorClassificator.Classify(err)).
			Msg("error inserting user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return user, nil
}

func (r *userRepository) FindUserByID(ctx context.Context, userID string) (models.User, error) {
	return r.findUserBy(ctx, "id", userID)
}

func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	return r.findUserBy(ctx, "email", email)
}

func (r *userRepository) FindUserByProviderID(ctx context.Context, providerID string) (models.User, error) {
	return r.findUserBy(ctx, "provider_id", providerID)
}

// LinkProviderID attaches providerID to userID if the user has none yet.
//
// The conditional UPDATE makes the first writer win. When no row changes,
// the user is re-read: if it exists it is returned unchanged, otherwise
// [ErrNoUserWasFound] is returned.
func (r *userRepository) LinkProviderID(ctx context.Context, userID, providerID string) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildLinkProviderIDQuery(r.db.builder, userID, providerID, r.db.now())
	if err != nil {
		log.Err(err).Str("func", "*userRepository.LinkProviderID").Msg("failed to build query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		if r.db.errorClassificator.IsUniqueViolation(err) {
			log.Warn().Str("func", "*userRepository.LinkProviderID").Str("user_id", userID).Msg("provider id is linked to another user")
			return models.User{}, ErrProviderIDAlreadyExists
		}

		log.Err(err).
			Str("func", "*userRepository.LinkProviderID").
			Str("user_id", userID).
			Stringer("classification", r.db.errorClassificator.Classify(err)).
			Msg("error linking provider id")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", "*userRepository.LinkProviderID").Msg("error reading affected rows")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		log.Debug().Str("func", "*userRepository.LinkProviderID").Str("user_id", userID).Msg("provider id already set, keeping stored value")
	}

	return r.FindUserByID(ctx, userID)
}

func (r *userRepository) findUserBy(ctx context.Context, column, value string) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindUserQuery(r.db.builder, column, value)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.findUserBy").Msg("failed to build query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var (
		user       models.User
		providerID sql.NullString
	)
	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&user.UserID,
		&user.Email,
		&providerID,
		&user.FirstName,
		&user.LastName,
		&user.Picture,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrNoUserWasFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "*userRepository.findUserBy").
			Str("by", column).
			Stringer("classification", r.db.errorClassificator.Classify(err)).
			Msg("error: scanning error")
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	if providerID.Valid {
		user.ProviderID = &providerID.String
	}

	return user, nil
}

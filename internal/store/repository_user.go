package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/crrd/internal/logger"
	"github.com/MKhiriev/crrd/models"
)

// userColumns is the canonical column order scanned by [scanUser].
var userColumns = []string{
	"id", "email", "password_hash", "vanity",
	"display_name", "avatar_url", "bio", "card_size", "twitter", "github", "website",
	"created_at", "updated_at",
}

// userRepository is the SQL implementation of [UserRepository].
// It works on PostgreSQL and SQLite through the dialect-aware builder of [DB].
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
	now    func() time.Time
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// CreateUser persists a new user record and returns it with the
// server-assigned UserID and timestamps.
//
// Uniqueness of email and vanity is enforced by the UNIQUE constraints;
// of two concurrent registrations only one succeeds.
//
// Error handling:
//   - unique violation on email → [ErrEmailAlreadyExists].
//   - unique violation on vanity → [ErrVanityAlreadyExists].
//   - any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	now := r.now()
	query, args, err := r.db.builder.
		Insert("users").
		Columns(userColumns[1:]...).
		Values(
			user.Email, user.PasswordHash, nullableString(user.Vanity),
			user.Profile.DisplayName, user.Profile.AvatarURL, user.Profile.Bio, user.Profile.CardSize,
			user.Profile.Twitter, user.Profile.GitHub, user.Profile.Website,
			now, now,
		).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&user.UserID); err != nil {
		if conflict, ok := r.db.conflictError(err); ok {
			log.Debug().Str("func", "*userRepository.CreateUser").Err(conflict).Msg("registration conflict")
			return models.User{}, conflict
		}
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error inserting user")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	user.CreatedAt, user.UpdatedAt = now, now
	return user, nil
}

// FindUserByEmail retrieves the user registered with email (exact match).
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	return r.findUser(ctx, "*userRepository.FindUserByEmail", sq.Eq{"email": email})
}

// FindUserByID retrieves the user with the given id.
func (r *userRepository) FindUserByID(ctx context.Context, userID int64) (models.User, error) {
	return r.findUser(ctx, "*userRepository.FindUserByID", sq.Eq{"id": userID})
}

// FindUserByVanity retrieves the user who claimed vanity. The caller is
// expected to pass an already normalised slug.
func (r *userRepository) FindUserByVanity(ctx context.Context, vanity string) (models.User, error) {
	return r.findUser(ctx, "*userRepository.FindUserByVanity", sq.Eq{"vanity": vanity})
}

func (r *userRepository) findUser(ctx context.Context, funcName string, where sq.Eq) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Select(userColumns...).
		From("users").
		Where(where).
		ToSql()
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	user, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrNoUserWasFound
	}
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error querying user")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return user, nil
}

// UpdateProfile overwrites all profile attributes of the user. The WHERE
// clause is bound to userID only, so one account can never touch another.
func (r *userRepository) UpdateProfile(ctx context.Context, userID int64, profile models.Profile) error {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Update("users").
		SetMap(map[string]any{
			"display_name": profile.DisplayName,
			"avatar_url":   profile.AvatarURL,
			"bio":          profile.Bio,
			"card_size":    profile.CardSize,
			"twitter":      profile.Twitter,
			"github":       profile.GitHub,
			"website":      profile.Website,
			"updated_at":   r.now(),
		}).
		Where(sq.Eq{"id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	affected, err := r.exec(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateProfile").Msg("error updating profile")
		return err
	}
	if affected == 0 {
		return ErrNoUserWasFound
	}

	return nil
}

// ClaimVanity sets the vanity of a user who has not claimed one yet.
//
// The "vanity IS NULL" guard makes the claim one-time without a separate
// read, and the UNIQUE constraint settles races between two users.
func (r *userRepository) ClaimVanity(ctx context.Context, userID int64, vanity string) error {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Update("users").
		Set("vanity", vanity).
		Set("updated_at", r.now()).
		Where(sq.Eq{"id": userID, "vanity": nil}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	affected, err := r.exec(ctx, query, args...)
	if err != nil {
		if conflict, ok := r.db.conflictError(err); ok {
			return conflict
		}
		log.Err(err).Str("func", "*userRepository.ClaimVanity").Msg("error claiming vanity")
		return err
	}
	if affected == 0 {
		return ErrVanityAlreadyClaimed
	}

	return nil
}

// UpdatePasswordHash swaps the password hash of userID from oldHash to
// newHash. The swap only happens while the stored hash still equals oldHash;
// otherwise nothing changes and ErrNoUserWasFound is returned.
func (r *userRepository) UpdatePasswordHash(ctx context.Context, userID int64, oldHash, newHash string) error {
	query, args, err := r.db.builder.
		Update("users").
		Set("password_hash", newHash).
		Set("updated_at", r.now()).
		Where(sq.Eq{"id": userID, "password_hash": oldHash}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	affected, err := r.exec(ctx, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*userRepository.UpdatePasswordHash").Msg("error updating password hash")
		return err
	}
	if affected == 0 {
		return ErrNoUserWasFound
	}

	return nil
}

// Ping verifies the database connection is alive.
func (r *userRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

func (r *userRepository) exec(ctx context.Context, query string, args ...any) (int64, error) {
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return affected, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (models.User, error) {
	var user models.User
	var vanity sql.NullString

	err := row.Scan(
		&user.UserID, &user.Email, &user.PasswordHash, &vanity,
		&user.Profile.DisplayName, &user.Profile.AvatarURL, &user.Profile.Bio, &user.Profile.CardSize,
		&user.Profile.Twitter, &user.Profile.GitHub, &user.Profile.Website,
		&user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		return models.User{}, err
	}

	user.Vanity = vanity.String
	return user, nil
}

// nullableString stores "" as NULL so that many users can be without a
// vanity under the UNIQUE constraint.
func nullableString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

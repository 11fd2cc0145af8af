package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kaan/edusphere/internal/app/models"
	"github.com/kaan/edusphere/internal/pkg/dberrors"
	"github.com/kaan/edusphere/internal/pkg/logger"
)

// University error types
var (
	// ErrUniversityNotFound is returned when a university is not found.
	ErrUniversityNotFound = ErrNotFound
	// ErrUniversityAlreadyExists is returned when a university with the same name exists.
	ErrUniversityAlreadyExists = errors.New("university with this name already exists")
)

// UniversityRepository handles university database operations
type UniversityRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewUniversityRepository creates a new UniversityRepository
func NewUniversityRepository(db *pgxpool.Pool) *UniversityRepository {
	return &UniversityRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

var universityColumns = []string{
	"id", "name", "logo_url", "chairman_name", "chairman_photo_url",
	"contact_numbers", "created_at", "updated_at", "deleted_at",
}

func scanUniversity(row pgx.Row) (*models.University, error) {
	u := &models.University{}
	err := row.Scan(&u.ID, &u.Name, &u.LogoURL, &u.ChairmanName, &u.ChairmanPhotoURL,
		&u.ContactNumbers, &u.CreatedAt, &u.UpdatedAt, &u.DeletedAt)
	if err != nil {
		return nil, err
	}
	return u, nil
}

// Create inserts a new university and returns its generated id
func (r *UniversityRepository) Create(ctx context.Context, university *models.University) (int64, error) {
	sql, args, err := r.sb.Insert("universities").
		Columns("name", "logo_url", "chairman_name", "chairman_photo_url", "contact_numbers").
		Values(university.Name, university.LogoURL, university.ChairmanName,
			university.ChairmanPhotoURL, university.ContactNumbers).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create university SQL")
		return 0, fmt.Errorf("failed to build create university query: %w", err)
	}

	var id int64
	err = r.db.QueryRow(ctx, sql, args...).Scan(&id)
	if err != nil {
		if dberrors.IsDuplicateKeyError(err) {
			return 0, ErrUniversityAlreadyExists
		}
		logger.Error().Err(err).Msg("Error executing create university query")
		return 0, fmt.Errorf("error creating university: %w", err)
	}

	return id, nil
}

// GetByID retrieves a university by ID. Soft-deleted rows are excluded.
func (r *UniversityRepository) GetByID(ctx context.Context, id int64) (*models.University, error) {
	sql, args, err := r.sb.Select(universityColumns...).
		From("universities").
		Where(squirrel.Eq{"id": id, "deleted_at": nil}).
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get university by ID SQL")
		return nil, fmt.Errorf("failed to build get university query: %w", err)
	}

	university, err := scanUniversity(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUniversityNotFound
		}
		logger.Error().Err(err).Int64("universityID", id).Msg("Error scanning university row")
		return nil, fmt.Errorf("error getting university by ID: %w", err)
	}

	return university, nil
}

// GetAll retrieves non-deleted universities ordered by name, paginated.
func (r *UniversityRepository) GetAll(ctx context.Context, offset uint64, limit int) ([]*models.University, error) {
	sql, args, err := r.sb.Select(universityColumns...).
		From("universities").
		Where(squirrel.Eq{"deleted_at": nil}).
		OrderBy("name ASC").
		Offset(offset).
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get all universities SQL")
		return nil, fmt.Errorf("failed to build get all universities query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get all universities query")
		return nil, fmt.Errorf("error querying universities: %w", err)
	}
	defer rows.Close()

	universities := []*models.University{}
	for rows.Next() {
		university, err := scanUniversity(rows)
		if err != nil {
			logger.Error().Err(err).Msg("Error scanning university row during get all")
			return nil, fmt.Errorf("error scanning university row: %w", err)
		}
		universities = append(universities, university)
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating university rows")
		return nil, fmt.Errorf("error iterating university rows: %w", err)
	}

	return universities, nil
}

// Update updates an existing university
func (r *UniversityRepository) Update(ctx context.Context, university *models.University) error {
	sql, args, err := r.sb.Update("universities").
		SetMap(map[string]interface{}{
			"name":               university.Name,
			"logo_url":           university.LogoURL,
			"chairman_name":      university.ChairmanName,
			"chairman_photo_url": university.ChairmanPhotoURL,
			"contact_numbers":    university.ContactNumbers,
			"updated_at":         time.Now(),
		}).
		Where(squirrel.Eq{"id": university.ID, "deleted_at": nil}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building update university SQL")
		return fmt.Errorf("failed to build update university query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsDuplicateKeyError(err) {
			return ErrUniversityAlreadyExists
		}
		logger.Error().Err(err).Int64("universityID", university.ID).Msg("Error executing update university query")
		return fmt.Errorf("error updating university: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrUniversityNotFound
	}

	return nil
}

// SoftDelete marks a university as deleted without removing the row, so
// historical branch/college/progress references stay resolvable.
func (r *UniversityRepository) SoftDelete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Update("universities").
		Set("deleted_at", time.Now()).
		Where(squirrel.Eq{"id": id, "deleted_at": nil}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building soft delete university SQL")
		return fmt.Errorf("failed to build soft delete university query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("universityID", id).Msg("Error executing soft delete university query")
		return fmt.Errorf("error deleting university: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrUniversityNotFound
	}

	return nil
}

// Count returns the number of non-deleted universities
func (r *UniversityRepository) Count(ctx context.Context) (int64, error) {
	sql, args, err := r.sb.Select("COUNT(*)").
		From("universities").
		Where(squirrel.Eq{"deleted_at": nil}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build count universities query: %w", err)
	}

	var count int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		logger.Error().Err(err).Msg("Error counting universities")
		return 0, fmt.Errorf("error counting universities: %w", err)
	}

	return count, nil
}

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

// College error types
var (
	// ErrCollegeNotFound is returned when a college is not found.
	ErrCollegeNotFound = ErrNotFound
	// ErrCollegeAlreadyExists is returned when a college with the same name exists for the university.
	ErrCollegeAlreadyExists = errors.New("college with this name already exists for the university")
)

// CollegeRepository handles college database operations
type CollegeRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewCollegeRepository creates a new CollegeRepository
func NewCollegeRepository(db *pgxpool.Pool) *CollegeRepository {
	return &CollegeRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

var collegeColumns = []string{
	"id", "university_id", "name", "logo_url", "chairman_name", "chairman_photo_url",
	"contact_numbers", "offered_branches", "is_partnered", "created_at", "updated_at",
}

func scanCollege(row pgx.Row) (*models.College, error) {
	c := &models.College{}
	err := row.Scan(&c.ID, &c.UniversityID, &c.Name, &c.LogoURL, &c.ChairmanName,
		&c.ChairmanPhotoURL, &c.ContactNumbers, &c.OfferedBranches, &c.IsPartnered,
		&c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// Create inserts a new college and returns its generated id
func (r *CollegeRepository) Create(ctx context.Context, college *models.College) (int64, error) {
	sql, args, err := r.sb.Insert("colleges").
		Columns("university_id", "name", "logo_url", "chairman_name", "chairman_photo_url",
			"contact_numbers", "offered_branches", "is_partnered").
		Values(college.UniversityID, college.Name, college.LogoURL, college.ChairmanName,
			college.ChairmanPhotoURL, college.ContactNumbers, college.OfferedBranches, college.IsPartnered).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create college SQL")
		return 0, fmt.Errorf("failed to build create college query: %w", err)
	}

	var id int64
	err = r.db.QueryRow(ctx, sql, args...).Scan(&id)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "colleges_university_name_key") {
			return 0, ErrCollegeAlreadyExists
		}
		logger.Error().Err(err).Msg("Error executing create college query")
		return 0, fmt.Errorf("error creating college: %w", err)
	}

	return id, nil
}

// GetByID retrieves a college by ID
func (r *CollegeRepository) GetByID(ctx context.Context, id int64) (*models.College, error) {
	sql, args, err := r.sb.Select(collegeColumns...).
		From("colleges").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get college by ID SQL")
		return nil, fmt.Errorf("failed to build get college query: %w", err)
	}

	college, err := scanCollege(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCollegeNotFound
		}
		logger.Error().Err(err).Int64("collegeID", id).Msg("Error scanning college row")
		return nil, fmt.Errorf("error getting college by ID: %w", err)
	}

	return college, nil
}

// FindByUniversity retrieves all colleges of a university ordered by name
func (r *CollegeRepository) FindByUniversity(ctx context.Context, universityID int64) ([]*models.College, error) {
	return r.find(ctx, squirrel.Eq{"university_id": universityID})
}

// FindPartnered retrieves all colleges with partner mode enabled. This is
// the white-label catalog query the client uses to offer branded entry points.
func (r *CollegeRepository) FindPartnered(ctx context.Context) ([]*models.College, error) {
	return r.find(ctx, squirrel.Eq{"is_partnered": true})
}

func (r *CollegeRepository) find(ctx context.Context, pred interface{}) ([]*models.College, error) {
	sql, args, err := r.sb.Select(collegeColumns...).
		From("colleges").
		Where(pred).
		OrderBy("name ASC", "id ASC").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building find colleges SQL")
		return nil, fmt.Errorf("failed to build find colleges query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing find colleges query")
		return nil, fmt.Errorf("error querying colleges: %w", err)
	}
	defer rows.Close()

	colleges := []*models.College{}
	for rows.Next() {
		college, err := scanCollege(rows)
		if err != nil {
			logger.Error().Err(err).Msg("Error scanning college row")
			return nil, fmt.Errorf("error scanning college row: %w", err)
		}
		colleges = append(colleges, college)
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating college rows")
		return nil, fmt.Errorf("error iterating college rows: %w", err)
	}

	return colleges, nil
}

// Update updates a college's mutable fields
func (r *CollegeRepository) Update(ctx context.Context, college *models.College) error {
	sql, args, err := r.sb.Update("colleges").
		SetMap(map[string]interface{}{
			"name":               college.Name,
			"logo_url":           college.LogoURL,
			"chairman_name":      college.ChairmanName,
			"chairman_photo_url": college.ChairmanPhotoURL,
			"contact_numbers":    college.ContactNumbers,
			"offered_branches":   college.OfferedBranches,
			"is_partnered":       college.IsPartnered,
			"updated_at":         time.Now(),
		}).
		Where(squirrel.Eq{"id": college.ID}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building update college SQL")
		return fmt.Errorf("failed to build update college query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "colleges_university_name_key") {
			return ErrCollegeAlreadyExists
		}
		logger.Error().Err(err).Int64("collegeID", college.ID).Msg("Error executing update college query")
		return fmt.Errorf("error updating college: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrCollegeNotFound
	}

	return nil
}

// Delete removes a college. Colleges own no progress records, so a hard
// delete does not break historical references.
func (r *CollegeRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("colleges").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building delete college SQL")
		return fmt.Errorf("failed to build delete college query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("collegeID", id).Msg("Error executing delete college query")
		return fmt.Errorf("error deleting college: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrCollegeNotFound
	}

	return nil
}

// Count returns the number of colleges; partneredOnly restricts to partner-enabled ones.
func (r *CollegeRepository) Count(ctx context.Context, partneredOnly bool) (int64, error) {
	builder := r.sb.Select("COUNT(*)").From("colleges")
	if partneredOnly {
		builder = builder.Where(squirrel.Eq{"is_partnered": true})
	}
	sql, args, err := builder.ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build count colleges query: %w", err)
	}

	var count int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		logger.Error().Err(err).Msg("Error counting colleges")
		return 0, fmt.Errorf("error counting colleges: %w", err)
	}

	return count, nil
}

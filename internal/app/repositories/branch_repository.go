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

// Branch error types
var (
	// ErrBranchNotFound is returned when a branch is not found.
	ErrBranchNotFound = ErrNotFound
	// ErrBranchAlreadyExists is returned when a branch with the same code exists for the university.
	ErrBranchAlreadyExists = errors.New("branch with this code already exists for the university")
)

// BranchRepository handles branch database operations
type BranchRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewBranchRepository creates a new BranchRepository
func NewBranchRepository(db *pgxpool.Pool) *BranchRepository {
	return &BranchRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

var branchColumns = []string{
	"id", "university_id", "name", "code", "description", "status", "created_at", "updated_at",
}

func scanBranch(row pgx.Row) (*models.Branch, error) {
	b := &models.Branch{}
	err := row.Scan(&b.ID, &b.UniversityID, &b.Name, &b.Code, &b.Description,
		&b.Status, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return b, nil
}

// Create inserts a new branch and returns its generated id
func (r *BranchRepository) Create(ctx context.Context, branch *models.Branch) (int64, error) {
	sql, args, err := r.sb.Insert("branches").
		Columns("university_id", "name", "code", "description", "status").
		Values(branch.UniversityID, branch.Name, branch.Code, branch.Description, branch.Status).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create branch SQL")
		return 0, fmt.Errorf("failed to build create branch query: %w", err)
	}

	var id int64
	err = r.db.QueryRow(ctx, sql, args...).Scan(&id)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "branches_university_code_key") {
			return 0, ErrBranchAlreadyExists
		}
		logger.Error().Err(err).Msg("Error executing create branch query")
		return 0, fmt.Errorf("error creating branch: %w", err)
	}

	return id, nil
}

// GetByID retrieves a branch by ID
func (r *BranchRepository) GetByID(ctx context.Context, id int64) (*models.Branch, error) {
	sql, args, err := r.sb.Select(branchColumns...).
		From("branches").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get branch by ID SQL")
		return nil, fmt.Errorf("failed to build get branch query: %w", err)
	}

	branch, err := scanBranch(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrBranchNotFound
		}
		logger.Error().Err(err).Int64("branchID", id).Msg("Error scanning branch row")
		return nil, fmt.Errorf("error getting branch by ID: %w", err)
	}

	return branch, nil
}

// FindByUniversity retrieves all branches of a university. Order is the
// university's listing order (name) and is what partner resolution
// preserves, so it must stay deterministic.
func (r *BranchRepository) FindByUniversity(ctx context.Context, universityID int64) ([]*models.Branch, error) {
	sql, args, err := r.sb.Select(branchColumns...).
		From("branches").
		Where(squirrel.Eq{"university_id": universityID}).
		OrderBy("name ASC", "id ASC").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building find branches by university SQL")
		return nil, fmt.Errorf("failed to build find branches query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing find branches by university query")
		return nil, fmt.Errorf("error querying branches: %w", err)
	}
	defer rows.Close()

	branches := []*models.Branch{}
	for rows.Next() {
		branch, err := scanBranch(rows)
		if err != nil {
			logger.Error().Err(err).Msg("Error scanning branch row")
			return nil, fmt.Errorf("error scanning branch row: %w", err)
		}
		branches = append(branches, branch)
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating branch rows")
		return nil, fmt.Errorf("error iterating branch rows: %w", err)
	}

	return branches, nil
}

// Update updates a branch's mutable fields. university_id is immutable
// once created and is deliberately absent from the SET list.
func (r *BranchRepository) Update(ctx context.Context, branch *models.Branch) error {
	sql, args, err := r.sb.Update("branches").
		SetMap(map[string]interface{}{
			"name":        branch.Name,
			"code":        branch.Code,
			"description": branch.Description,
			"updated_at":  time.Now(),
		}).
		Where(squirrel.Eq{"id": branch.ID}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building update branch SQL")
		return fmt.Errorf("failed to build update branch query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "branches_university_code_key") {
			return ErrBranchAlreadyExists
		}
		logger.Error().Err(err).Int64("branchID", branch.ID).Msg("Error executing update branch query")
		return fmt.Errorf("error updating branch: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrBranchNotFound
	}

	return nil
}

// UpdateStatus toggles a branch between active and inactive
func (r *BranchRepository) UpdateStatus(ctx context.Context, id int64, status models.BranchStatus) error {
	sql, args, err := r.sb.Update("branches").
		SetMap(map[string]interface{}{
			"status":     status,
			"updated_at": time.Now(),
		}).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building update branch status SQL")
		return fmt.Errorf("failed to build update branch status query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("branchID", id).Msg("Error executing update branch status query")
		return fmt.Errorf("error updating branch status: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrBranchNotFound
	}

	return nil
}

// Count returns the number of branches
func (r *BranchRepository) Count(ctx context.Context) (int64, error) {
	sql, args, err := r.sb.Select("COUNT(*)").From("branches").ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build count branches query: %w", err)
	}

	var count int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		logger.Error().Err(err).Msg("Error counting branches")
		return 0, fmt.Errorf("error counting branches: %w", err)
	}

	return count, nil
}

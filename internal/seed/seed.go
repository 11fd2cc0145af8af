package seed

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	appModels "github.com/kaan/edusphere/internal/app/models"
	appRepos "github.com/kaan/edusphere/internal/app/repositories"
)

// CreateDefaultData creates a demo university with branches, colleges and
// a couple of catalog courses if they don't exist yet.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	universityRepo := appRepos.NewUniversityRepository(dbPool)
	branchRepo := appRepos.NewBranchRepository(dbPool)
	collegeRepo := appRepos.NewCollegeRepository(dbPool)
	courseRepo := appRepos.NewCourseRepository(dbPool)

	lgr.Info().Msg("Checking/Creating default data...")
	var finalErr error

	// --- Demo university --- //
	university := &appModels.University{
		Name:           "Horizon State University",
		ChairmanName:   "A. Demir",
		ContactNumbers: []string{"+905551112233"},
	}
	universityID, err := universityRepo.Create(ctx, university)
	if err != nil && !errors.Is(err, appRepos.ErrUniversityAlreadyExists) {
		lgr.Error().Err(err).Msg("Error creating demo university")
		finalErr = errors.Join(finalErr, err)
	} else if errors.Is(err, appRepos.ErrUniversityAlreadyExists) {
		// Find existing ID if needed
		universities, errGet := universityRepo.GetAll(ctx, 0, 100)
		if errGet == nil {
			for _, u := range universities {
				if u.Name == university.Name {
					universityID = u.ID
					break
				}
			}
		} else {
			lgr.Error().Err(errGet).Msg("Error getting existing universities to find demo ID")
			finalErr = errors.Join(finalErr, errGet)
		}
	}

	if universityID > 0 {
		// --- Branches --- //
		branchIDs := map[string]int64{}
		for _, b := range []appModels.Branch{
			{UniversityID: universityID, Name: "Computer Science", Code: "CSE", Status: appModels.BranchStatusActive},
			{UniversityID: universityID, Name: "Electronics", Code: "ECE", Status: appModels.BranchStatusActive},
			{UniversityID: universityID, Name: "Mechanical", Code: "MECH", Status: appModels.BranchStatusActive},
		} {
			branch := b
			id, err := branchRepo.Create(ctx, &branch)
			if err != nil && !errors.Is(err, appRepos.ErrBranchAlreadyExists) {
				lgr.Error().Err(err).Str("code", branch.Code).Msg("Error creating demo branch")
				finalErr = errors.Join(finalErr, err)
				continue
			}
			if errors.Is(err, appRepos.ErrBranchAlreadyExists) {
				existing, errGet := branchRepo.FindByUniversity(ctx, universityID)
				if errGet != nil {
					lgr.Error().Err(errGet).Msg("Error listing existing branches")
					finalErr = errors.Join(finalErr, errGet)
					continue
				}
				for _, eb := range existing {
					if eb.Code == branch.Code {
						id = eb.ID
						break
					}
				}
			}
			branchIDs[branch.Code] = id
		}

		// --- Partnered college offering a subset of branches --- //
		if branchIDs["CSE"] > 0 {
			college := &appModels.College{
				UniversityID:    universityID,
				Name:            "Horizon Institute of Technology",
				ChairmanName:    "B. Yilmaz",
				ContactNumbers:  []string{"+905554445566"},
				OfferedBranches: []int64{branchIDs["CSE"]},
				IsPartnered:     true,
			}
			if _, err := collegeRepo.Create(ctx, college); err != nil && !errors.Is(err, appRepos.ErrCollegeAlreadyExists) {
				lgr.Error().Err(err).Msg("Error creating demo college")
				finalErr = errors.Join(finalErr, err)
			}
		}
	}

	// --- Catalog courses --- //
	for _, c := range []appModels.Course{
		{ID: uuid.MustParse("7f5f54f0-47e3-4f2e-9a1b-3f4f9b1f0c01"), Title: "Introduction to Databases", TotalLectures: 4},
		{ID: uuid.MustParse("7f5f54f0-47e3-4f2e-9a1b-3f4f9b1f0c02"), Title: "Distributed Systems", TotalLectures: 12},
	} {
		course := c
		if err := courseRepo.Upsert(ctx, &course); err != nil {
			lgr.Error().Err(err).Str("title", course.Title).Msg("Error upserting demo course")
			finalErr = errors.Join(finalErr, err)
		}
	}

	if finalErr == nil {
		lgr.Info().Msg("Default data check complete.")
	}
	return finalErr
}

package services

import (
	"context"
	"fmt"

	"github.com/kaan/edusphere/internal/app/models/dto"
	"github.com/kaan/edusphere/internal/app/repositories"
)

// StatsService aggregates entity counts for the admin dashboard
type StatsService interface {
	GetStats(ctx context.Context) (*dto.StatsResponse, error)
}

type statsServiceImpl struct {
	repos *repositories.Repositories
}

// NewStatsService creates a new stats service instance
func NewStatsService(repos *repositories.Repositories) StatsService {
	return &statsServiceImpl{repos: repos}
}

// GetStats returns current entity counts
func (s *statsServiceImpl) GetStats(ctx context.Context) (*dto.StatsResponse, error) {
	universities, err := s.repos.UniversityRepository.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("error counting universities: %w", err)
	}
	branches, err := s.repos.BranchRepository.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("error counting branches: %w", err)
	}
	colleges, err := s.repos.CollegeRepository.Count(ctx, false)
	if err != nil {
		return nil, fmt.Errorf("error counting colleges: %w", err)
	}
	partnered, err := s.repos.CollegeRepository.Count(ctx, true)
	if err != nil {
		return nil, fmt.Errorf("error counting partnered colleges: %w", err)
	}
	courses, err := s.repos.CourseRepository.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("error counting courses: %w", err)
	}

	return &dto.StatsResponse{
		Universities:      universities,
		Branches:          branches,
		Colleges:          colleges,
		PartneredColleges: partnered,
		Courses:           courses,
	}, nil
}

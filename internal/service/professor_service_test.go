package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/S4vi0r17/teacher-ranker-backend/config"
	"github.com/S4vi0r17/teacher-ranker-backend/internal/dto"
	"github.com/S4vi0r17/teacher-ranker-backend/internal/model"
	"github.com/S4vi0r17/teacher-ranker-backend/internal/repository"
)

// ── 测试辅助 ──

func setupTestProfessorService() (ProfessorService, *mockProfessorRepo) {
	profRepo := newMockProfessorRepo()
	repo := &repository.Repository{
		Professor: profRepo,
		Catalog:   newMockCatalogRepo(),
	}
	cfg := &config.Config{}
	svc := NewProfessorService(cfg, repo, nil, zap.NewNop())
	return svc, profRepo
}

func uintPtr(v uint) *uint        { return &v }
func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }

func makeProfessor(id uint, name string, rating float64, reviewCount int) model.Professor {
	return model.Professor{
		ID:            id,
		FullName:      name,
		AverageRating: rating,
		ReviewCount:   reviewCount,
	}
}

// ── Search：默认分页与排序 ──

func TestProfessorService_Search_Defaults(t *testing.T) {
	svc, repo := setupTestProfessorService()
	repo.professors = []model.Professor{
		makeProfessor(1, "María García", 3.5, 10),
		makeProfessor(2, "Juan Pérez", 4.8, 25),
		makeProfessor(3, "Ana López", 4.1, 7),
	}

	result, err := svc.Search(context.Background(), &dto.ProfessorSearchRequest{})
	if err != nil {
		t.Fatalf("Search 应成功: %v", err)
	}

	if result.Meta.Page != 1 || result.Meta.Limit != 20 {
		t.Errorf("期望默认 page=1 limit=20，实际 page=%d limit=%d", result.Meta.Page, result.Meta.Limit)
	}
	if result.Meta.Total != 3 || result.Meta.LastPage != 1 {
		t.Errorf("期望 total=3 last_page=1，实际 total=%d last_page=%d", result.Meta.Total, result.Meta.LastPage)
	}
	if len(result.Data) != 3 {
		t.Fatalf("期望返回 3 条，实际 %d 条", len(result.Data))
	}
	// 按 average_rating 降序
	if result.Data[0].ID != 2 || result.Data[1].ID != 3 || result.Data[2].ID != 1 {
		t.Errorf("期望按评分降序 [2,3,1]，实际 [%d,%d,%d]",
			result.Data[0].ID, result.Data[1].ID, result.Data[2].ID)
	}
}

func TestProfessorService_Search_Pagination(t *testing.T) {
	svc, repo := setupTestProfessorService()
	// 25 位教授，评分从 5.0 递减
	for i := 1; i <= 25; i++ {
		repo.professors = append(repo.professors,
			makeProfessor(uint(i), fmt.Sprintf("Profesor %02d", i), 5.0-float64(i)*0.1, i))
	}

	req := &dto.ProfessorSearchRequest{
		PaginationRequest: dto.PaginationRequest{Page: 2, Limit: 10},
	}
	result, err := svc.Search(context.Background(), req)
	if err != nil {
		t.Fatalf("Search 应成功: %v", err)
	}

	if len(result.Data) != 10 {
		t.Errorf("期望第 2 页返回 10 条，实际 %d 条", len(result.Data))
	}
	if result.Meta.Total != 25 || result.Meta.LastPage != 3 {
		t.Errorf("期望 total=25 last_page=3，实际 total=%d last_page=%d", result.Meta.Total, result.Meta.LastPage)
	}
	// 第 2 页第一条应为全局第 11 名（ID=11）
	if result.Data[0].ID != 11 {
		t.Errorf("期望第 2 页首条 ID=11，实际 ID=%d", result.Data[0].ID)
	}
}

func TestProfessorService_Search_PageBeyondLastPage(t *testing.T) {
	svc, repo := setupTestProfessorService()
	repo.professors = []model.Professor{
		makeProfessor(1, "María García", 3.5, 10),
		makeProfessor(2, "Juan Pérez", 4.8, 25),
	}

	req := &dto.ProfessorSearchRequest{
		PaginationRequest: dto.PaginationRequest{Page: 5, Limit: 10},
	}
	result, err := svc.Search(context.Background(), req)
	if err != nil {
		t.Fatalf("页码超出范围不应报错: %v", err)
	}

	if len(result.Data) != 0 {
		t.Errorf("期望空页，实际返回 %d 条", len(result.Data))
	}
	if result.Data == nil {
		t.Error("空页应为空数组而非 nil")
	}
	if result.Meta.Total != 2 || result.Meta.LastPage != 1 {
		t.Errorf("空页的 meta 仍应反映真实总数：total=%d last_page=%d", result.Meta.Total, result.Meta.LastPage)
	}
}

// ── Search：过滤条件 ──

func TestProfessorService_Search_NameCaseInsensitive(t *testing.T) {
	svc, repo := setupTestProfessorService()
	repo.professors = []model.Professor{
		makeProfessor(1, "María García", 4.0, 5),
		makeProfessor(2, "Juan Pérez", 4.5, 8),
	}

	result, err := svc.Search(context.Background(), &dto.ProfessorSearchRequest{Name: "garcía"})
	if err != nil {
		t.Fatalf("Search 应成功: %v", err)
	}

	if len(result.Data) != 1 || result.Data[0].FullName != "María García" {
		t.Errorf("期望命中 María García，实际 %+v", result.Data)
	}
}

func TestProfessorService_Search_RatingRange(t *testing.T) {
	svc, repo := setupTestProfessorService()
	repo.professors = []model.Professor{
		makeProfessor(1, "A", 2.9, 1),
		makeProfessor(2, "B", 3.0, 1),
		makeProfessor(3, "C", 4.5, 1),
		makeProfessor(4, "D", 4.6, 1),
	}

	req := &dto.ProfessorSearchRequest{MinRating: floatPtr(3), MaxRating: floatPtr(4.5)}
	result, err := svc.Search(context.Background(), req)
	if err != nil {
		t.Fatalf("Search 应成功: %v", err)
	}

	if len(result.Data) != 2 {
		t.Fatalf("期望 [3,4.5] 区间命中 2 条，实际 %d 条", len(result.Data))
	}
	for _, p := range result.Data {
		if p.AverageRating < 3 || p.AverageRating > 4.5 {
			t.Errorf("评分 %f 超出 [3,4.5]", p.AverageRating)
		}
	}
}

func TestProfessorService_Search_MinRatingAboveMaxRating(t *testing.T) {
	svc, repo := setupTestProfessorService()
	repo.professors = []model.Professor{
		makeProfessor(1, "A", 3.5, 1),
	}

	// min > max：两个边界同时生效，确定性地返回空集，不报错
	req := &dto.ProfessorSearchRequest{MinRating: floatPtr(4), MaxRating: floatPtr(3)}
	result, err := svc.Search(context.Background(), req)
	if err != nil {
		t.Fatalf("min>max 不应报错: %v", err)
	}
	if len(result.Data) != 0 || result.Meta.Total != 0 {
		t.Errorf("期望空集，实际 %d 条 total=%d", len(result.Data), result.Meta.Total)
	}
	if result.Meta.LastPage != 0 {
		t.Errorf("total=0 时期望 last_page=0，实际 %d", result.Meta.LastPage)
	}
}

func TestProfessorService_Search_MinReviews(t *testing.T) {
	svc, repo := setupTestProfessorService()
	repo.professors = []model.Professor{
		makeProfessor(1, "A", 4.0, 3),
		makeProfessor(2, "B", 4.0, 10),
	}

	result, err := svc.Search(context.Background(), &dto.ProfessorSearchRequest{MinReviews: intPtr(5)})
	if err != nil {
		t.Fatalf("Search 应成功: %v", err)
	}
	if len(result.Data) != 1 || result.Data[0].ID != 2 {
		t.Errorf("期望仅命中评价数>=5 的教授，实际 %+v", result.Data)
	}
}

func TestProfessorService_Search_UniversityAndDepartmentSameRow(t *testing.T) {
	svc, repo := setupTestProfessorService()

	uniMath := &model.University{ID: 1, Name: "Universidad A", Acronym: "UA", Department: "Math"}
	uniPhysics := &model.University{ID: 2, Name: "Universidad B", Acronym: "UB", Department: "Physics"}

	// P 同时关联 (大学1, Math) 与 (大学2, Physics)
	p := makeProfessor(1, "María García", 4.0, 5)
	p.Universities = []model.ProfessorUniversity{
		{ID: 1, ProfessorID: 1, UniversityID: 1, University: uniMath},
		{ID: 2, ProfessorID: 1, UniversityID: 2, University: uniPhysics},
	}
	repo.professors = []model.Professor{p}

	// university_id=1 + department=Physics：不存在同时满足两者的单条关联行，必须排除 P
	req := &dto.ProfessorSearchRequest{UniversityID: uintPtr(1), Department: "Physics"}
	result, err := svc.Search(context.Background(), req)
	if err != nil {
		t.Fatalf("Search 应成功: %v", err)
	}
	if len(result.Data) != 0 {
		t.Errorf("两个条件被不同关联行分别满足时不应命中，实际返回 %d 条", len(result.Data))
	}

	// university_id=1 + department=Math：同一行满足，应命中
	req = &dto.ProfessorSearchRequest{UniversityID: uintPtr(1), Department: "math"}
	result, err = svc.Search(context.Background(), req)
	if err != nil {
		t.Fatalf("Search 应成功: %v", err)
	}
	if len(result.Data) != 1 {
		t.Errorf("同一关联行满足两个条件时应命中，实际返回 %d 条", len(result.Data))
	}
}

func TestProfessorService_Search_FacultyFilter(t *testing.T) {
	svc, repo := setupTestProfessorService()

	p1 := makeProfessor(1, "A", 4.0, 1)
	p1.Faculties = []model.ProfessorFaculty{{ID: 1, ProfessorID: 1, FacultyID: 7}}
	p2 := makeProfessor(2, "B", 4.0, 1)
	repo.professors = []model.Professor{p1, p2}

	result, err := svc.Search(context.Background(), &dto.ProfessorSearchRequest{FacultyID: uintPtr(7)})
	if err != nil {
		t.Fatalf("Search 应成功: %v", err)
	}
	if len(result.Data) != 1 || result.Data[0].ID != 1 {
		t.Errorf("期望仅命中关联学院 7 的教授，实际 %+v", result.Data)
	}
}

// ── GetByID ──

func TestProfessorService_GetByID_VisibleReviewsOnly(t *testing.T) {
	svc, repo := setupTestProfessorService()

	course := &model.Course{ID: 11, Name: "Cálculo I"}
	t1 := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)
	t2 := time.Date(2025, 3, 20, 0, 0, 0, 0, time.UTC)

	p := makeProfessor(1, "María García", 4.0, 2)
	p.Reviews = []model.Review{
		{ID: 1, ProfessorID: 1, CourseID: 11, OverallRating: 2.0, VisibilityStatus: model.ReviewHidden, CreatedAt: t1, Course: course},
		{ID: 2, ProfessorID: 1, CourseID: 11, OverallRating: 4.5, VisibilityStatus: model.ReviewVisible, CreatedAt: t2, Course: course},
	}
	repo.professors = []model.Professor{p}

	detail, err := svc.GetByID(context.Background(), 1)
	if err != nil {
		t.Fatalf("GetByID 应成功: %v", err)
	}

	if len(detail.Reviews) != 1 {
		t.Fatalf("期望仅返回 1 条 visible 评价，实际 %d 条", len(detail.Reviews))
	}
	if detail.Reviews[0].ID != 2 {
		t.Errorf("期望返回 visible 评价 ID=2，实际 ID=%d", detail.Reviews[0].ID)
	}
	if detail.Reviews[0].Course.ID != 11 || detail.Reviews[0].Course.Name != "Cálculo I" {
		t.Errorf("期望评价内嵌课程 {11, Cálculo I}，实际 %+v", detail.Reviews[0].Course)
	}
}

func TestProfessorService_GetByID_ReviewsOrderedByCreatedAtDesc(t *testing.T) {
	svc, repo := setupTestProfessorService()

	course := &model.Course{ID: 11, Name: "Cálculo I"}
	p := makeProfessor(1, "A", 4.0, 3)
	for i := 1; i <= 3; i++ {
		p.Reviews = append(p.Reviews, model.Review{
			ID:               uint(i),
			ProfessorID:      1,
			CourseID:         11,
			VisibilityStatus: model.ReviewVisible,
			CreatedAt:        time.Date(2025, time.Month(i), 1, 0, 0, 0, 0, time.UTC),
			Course:           course,
		})
	}
	repo.professors = []model.Professor{p}

	detail, err := svc.GetByID(context.Background(), 1)
	if err != nil {
		t.Fatalf("GetByID 应成功: %v", err)
	}
	if len(detail.Reviews) != 3 {
		t.Fatalf("期望 3 条评价，实际 %d", len(detail.Reviews))
	}
	// 时间倒序：3 月 → 2 月 → 1 月
	if detail.Reviews[0].ID != 3 || detail.Reviews[1].ID != 2 || detail.Reviews[2].ID != 1 {
		t.Errorf("期望评价按时间倒序 [3,2,1]，实际 [%d,%d,%d]",
			detail.Reviews[0].ID, detail.Reviews[1].ID, detail.Reviews[2].ID)
	}
}

func TestProfessorService_GetByID_NotFound(t *testing.T) {
	svc, _ := setupTestProfessorService()

	_, err := svc.GetByID(context.Background(), 999)
	if !errors.Is(err, ErrProfessorNotFound) {
		t.Errorf("期望 ErrProfessorNotFound，实际: %v", err)
	}
}

func TestProfessorService_GetByID_EmptyRelationsProjectToEmptyArrays(t *testing.T) {
	svc, repo := setupTestProfessorService()
	repo.professors = []model.Professor{makeProfessor(1, "Sin Relaciones", 0, 0)}

	detail, err := svc.GetByID(context.Background(), 1)
	if err != nil {
		t.Fatalf("GetByID 应成功: %v", err)
	}

	// 关联缺失时应投影为空数组而非 nil（JSON 中为 [] 而非 null）
	if detail.Universities == nil || detail.Faculties == nil ||
		detail.Courses == nil || detail.Tags == nil || detail.Reviews == nil {
		t.Error("缺失的关联应投影为空数组而非 nil")
	}
	if len(detail.Universities)+len(detail.Faculties)+len(detail.Courses)+len(detail.Tags)+len(detail.Reviews) != 0 {
		t.Error("无关联教授的各数组应为空")
	}
}

func TestProfessorService_Summary_OmitsDetailRelations(t *testing.T) {
	svc, repo := setupTestProfessorService()

	uni := &model.University{ID: 1, Name: "Universidad A", Acronym: "UA"}
	fac := &model.Faculty{ID: 2, Name: "Ingeniería"}
	p := makeProfessor(1, "María García", 4.0, 5)
	p.Universities = []model.ProfessorUniversity{{ID: 1, ProfessorID: 1, UniversityID: 1, University: uni}}
	p.Faculties = []model.ProfessorFaculty{{ID: 1, ProfessorID: 1, FacultyID: 2, Faculty: fac}}
	repo.professors = []model.Professor{p}

	result, err := svc.Search(context.Background(), &dto.ProfessorSearchRequest{})
	if err != nil {
		t.Fatalf("Search 应成功: %v", err)
	}
	if len(result.Data) != 1 {
		t.Fatalf("期望 1 条，实际 %d", len(result.Data))
	}

	item := result.Data[0]
	if len(item.Universities) != 1 || item.Universities[0].Acronym != "UA" {
		t.Errorf("期望大学投影 {1, Universidad A, UA}，实际 %+v", item.Universities)
	}
	if len(item.Faculties) != 1 || item.Faculties[0].Name != "Ingeniería" {
		t.Errorf("期望学院投影 {2, Ingeniería}，实际 %+v", item.Faculties)
	}
}

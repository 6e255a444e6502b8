package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/S4vi0r17/teacher-ranker-backend/internal/dto"
	"github.com/S4vi0r17/teacher-ranker-backend/internal/model"
	"github.com/S4vi0r17/teacher-ranker-backend/internal/repository"
)

func setupTestExportService() (ExportService, *mockProfessorRepo) {
	profRepo := newMockProfessorRepo()
	repo := &repository.Repository{
		Professor: profRepo,
		Catalog:   newMockCatalogRepo(),
	}
	svc := NewExportService(repo, zap.NewNop())
	return svc, profRepo
}

func TestExportService_ExportProfessors(t *testing.T) {
	svc, repo := setupTestExportService()
	p1 := makeProfessor(1, "María García", 4.5, 12)
	p1.Universities = []model.ProfessorUniversity{
		{ID: 1, ProfessorID: 1, UniversityID: 1, University: &model.University{ID: 1, Name: "UNI"}},
	}
	p1.Faculties = []model.ProfessorFaculty{
		{ID: 1, ProfessorID: 1, FacultyID: 1, Faculty: &model.Faculty{ID: 1, Name: "Ciencias"}},
	}
	repo.professors = []model.Professor{
		p1,
		makeProfessor(2, "Juan Pérez", 3.2, 5),
	}

	buf, filename, err := svc.ExportProfessors(context.Background(), &dto.ProfessorSearchRequest{})
	if err != nil {
		t.Fatalf("导出应成功: %v", err)
	}
	if !strings.HasPrefix(filename, "教授检索结果_") || !strings.HasSuffix(filename, ".xlsx") {
		t.Errorf("文件名格式不正确: %s", filename)
	}

	f, err := excelize.OpenReader(buf)
	if err != nil {
		t.Fatalf("导出内容应为合法 Excel 文件: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("教授列表")
	if err != nil {
		t.Fatalf("读取工作表失败: %v", err)
	}
	// 表头 + 2 条数据行
	if len(rows) != 3 {
		t.Fatalf("期望 3 行，实际 %d", len(rows))
	}
	if rows[0][1] != "姓名" || rows[0][4] != "所属大学" {
		t.Errorf("表头不符合预期: %v", rows[0])
	}
	// 按平均评分降序
	if rows[1][1] != "María García" || rows[2][1] != "Juan Pérez" {
		t.Errorf("期望按评分降序，实际 [%s, %s]", rows[1][1], rows[2][1])
	}
	if rows[1][4] != "UNI" || rows[1][5] != "Ciencias" {
		t.Errorf("关联列不符合预期: %v", rows[1])
	}
}

func TestExportService_ExportProfessors_FiltersApplied(t *testing.T) {
	svc, repo := setupTestExportService()
	repo.professors = []model.Professor{
		makeProfessor(1, "María García", 4.5, 12),
		makeProfessor(2, "Juan Pérez", 3.2, 5),
	}

	req := &dto.ProfessorSearchRequest{MinRating: floatPtr(4.0)}
	buf, _, err := svc.ExportProfessors(context.Background(), req)
	if err != nil {
		t.Fatalf("导出应成功: %v", err)
	}

	f, err := excelize.OpenReader(buf)
	if err != nil {
		t.Fatalf("导出内容应为合法 Excel 文件: %v", err)
	}
	defer f.Close()

	rows, _ := f.GetRows("教授列表")
	if len(rows) != 2 {
		t.Fatalf("应用过滤后期望 1 条数据行，实际 %d 行（含表头）", len(rows))
	}
	if rows[1][1] != "María García" {
		t.Errorf("期望仅导出符合过滤条件的教授，实际 %s", rows[1][1])
	}
}

func TestExportService_ExportProfessors_NoMatch(t *testing.T) {
	svc, repo := setupTestExportService()
	repo.professors = []model.Professor{
		makeProfessor(1, "María García", 4.5, 12),
	}

	req := &dto.ProfessorSearchRequest{Name: "不存在的教授"}
	_, _, err := svc.ExportProfessors(context.Background(), req)
	if !errors.Is(err, ErrExportNoProfessors) {
		t.Errorf("无匹配结果应返回 ErrExportNoProfessors，实际 %v", err)
	}
}

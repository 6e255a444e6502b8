package dto

// ── 目录模块 DTO（检索筛选项下拉数据）──

// UniversityOptionResponse 大学筛选项（含院系标签）
type UniversityOptionResponse struct {
	ID         uint   `json:"id"`
	Name       string `json:"name"`
	Acronym    string `json:"acronym"`
	Department string `json:"department,omitempty"`
}

// FacultyOptionResponse 学院筛选项
type FacultyOptionResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// TagOptionResponse 标签筛选项
type TagOptionResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
}

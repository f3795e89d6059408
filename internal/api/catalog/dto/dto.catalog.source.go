package catalogdto

// CatalogSourceCreateInput dữ liệu đầu vào khi khai báo nguồn import.
type CatalogSourceCreateInput struct {
	Name      string            `json:"name" validate:"required,no_xss"`
	URL       string            `json:"url" validate:"required,url"`
	Selectors map[string]string `json:"selectors,omitempty"`
}

// CatalogSourceUpdateInput dữ liệu đầu vào khi cập nhật nguồn import.
type CatalogSourceUpdateInput struct {
	Name      string            `json:"name,omitempty" validate:"omitempty,no_xss"`
	URL       string            `json:"url,omitempty" validate:"omitempty,url"`
	Selectors map[string]string `json:"selectors,omitempty"`
	Status    string            `json:"status,omitempty" validate:"omitempty,oneof=pending success failed"`
}

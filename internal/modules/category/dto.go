package category

type CreateRequest struct {
	Name        string `json:"name" binding:"required"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Image       string `json:"image"`
	Type        string `json:"type" binding:"required,oneof=SERVICE PRODUCT"`
	Featured    bool   `json:"featured"`
	Active      *bool  `json:"active"`
	SortOrder   int    `json:"order"`
}

type UpdateRequest struct {
	Name        *string `json:"name"`
	Slug        *string `json:"slug"`
	Description *string `json:"description"`
	Icon        *string `json:"icon"`
	Image       *string `json:"image"`
	Type        *string `json:"type" binding:"omitempty,oneof=SERVICE PRODUCT"`
	Featured    *bool   `json:"featured"`
	Active      *bool   `json:"active"`
	SortOrder   *int    `json:"order"`
}

type SetFlagRequest struct {
	Value bool `json:"value"`
}

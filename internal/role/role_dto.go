package role

type CreateRoleRequest struct {
	Name        string  `json:"name" binding:"required"`
	AccessLevel string  `json:"access_level" binding:"required,oneof=admin supervisor worker"`
	Description *string `json:"description"`
}

type UpdateRoleRequest struct {
	Name        string  `json:"name" binding:"required"`
	AccessLevel string  `json:"access_level" binding:"required,oneof=admin supervisor worker"`
	Description *string `json:"description"`
}

type RoleResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	AccessLevel string  `json:"access_level"`
	Description *string `json:"description,omitempty"`
}

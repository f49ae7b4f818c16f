package employee

type CreateEmployeeRequest struct {
	FullName         string  `json:"full_name" binding:"required"`
	Email            string  `json:"email" binding:"required,email"`
	RoleID           string  `json:"role_id" binding:"required,uuid"`
	SiteID           *string `json:"site_id" binding:"omitempty,uuid"`
	EmployeeNumber   string  `json:"employee_number"`
	Phone            string  `json:"phone"`
	HireDate         string  `json:"hire_date" binding:"required"`
	EmploymentStatus string  `json:"employment_status" binding:"omitempty,oneof=ACTIVE INACTIVE TERMINATED"`
}

type UpdateEmployeeRequest struct {
	FullName         string  `json:"full_name" binding:"required"`
	Email            string  `json:"email" binding:"required,email"`
	RoleID           string  `json:"role_id" binding:"required,uuid"`
	SiteID           *string `json:"site_id" binding:"omitempty,uuid"`
	EmployeeNumber   string  `json:"employee_number"`
	Phone            string  `json:"phone"`
	HireDate         string  `json:"hire_date" binding:"required"`
	EmploymentStatus string  `json:"employment_status" binding:"required,oneof=ACTIVE INACTIVE TERMINATED"`
}

type AssignSiteRequest struct {
	SiteID *string `json:"site_id" binding:"omitempty,uuid"`
}

type EmployeeRoleResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	AccessLevel string `json:"access_level"`
}

type EmployeeResponse struct {
	ID               string                `json:"id"`
	FullName         string                `json:"full_name"`
	Email            string                `json:"email"`
	EmployeeNumber   string                `json:"employee_number"`
	Phone            string                `json:"phone,omitempty"`
	HireDate         string                `json:"hire_date"`
	EmploymentStatus string                `json:"employment_status"`
	RoleID           string                `json:"role_id"`
	SiteID           string                `json:"site_id,omitempty"`
	Role             *EmployeeRoleResponse `json:"role,omitempty"`
}

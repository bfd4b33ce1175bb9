package request

type CreateTenantRequest struct {
	FirstName  string `json:"first_name" binding:"required"`
	LastName   string `json:"last_name"`
	Email      string `json:"email" binding:"required,email"`
	Phone      string `json:"phone"`
	Document   string `json:"document" binding:"required"`
	AvatarURL  string `json:"avatar_url"`
	PropertyID string `json:"property_id"`
}

type UpdateTenantRequest struct {
	FirstName  *string `json:"first_name"`
	LastName   *string `json:"last_name"`
	Email      *string `json:"email"`
	Phone      *string `json:"phone"`
	Document   *string `json:"document"`
	AvatarURL  *string `json:"avatar_url"`
	PropertyID *string `json:"property_id"`
}

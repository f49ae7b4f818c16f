package site

type CreateSiteRequest struct {
	Name            string   `json:"name" binding:"required"`
	Address         string   `json:"address" binding:"required"`
	Latitude        *float64 `json:"latitude"`
	Longitude       *float64 `json:"longitude"`
	GeofenceRadiusM *float64 `json:"geofence_radius_m"`
	StartDate       string   `json:"start_date" binding:"required"`
	EndDate         *string  `json:"end_date"`
}

type UpdateSiteRequest struct {
	Name            string   `json:"name" binding:"required"`
	Address         string   `json:"address" binding:"required"`
	Latitude        *float64 `json:"latitude"`
	Longitude       *float64 `json:"longitude"`
	GeofenceRadiusM *float64 `json:"geofence_radius_m"`
	StartDate       string   `json:"start_date" binding:"required"`
	EndDate         *string  `json:"end_date"`
	Status          string   `json:"status" binding:"required,oneof=ACTIVE PAUSED COMPLETED"`
}

type SiteResponse struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Address         string   `json:"address"`
	Latitude        *float64 `json:"latitude,omitempty"`
	Longitude       *float64 `json:"longitude,omitempty"`
	GeofenceRadiusM *float64 `json:"geofence_radius_m,omitempty"`
	StartDate       string   `json:"start_date"`
	EndDate         *string  `json:"end_date,omitempty"`
	Status          string   `json:"status"`
}

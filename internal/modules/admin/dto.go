package admin

// UpdateAccessRequest rewrites every access field at once; pointer
// fields distinguish "absent" from zero values so a partial payload is
// rejected, matching the all-fields-required contract.
type UpdateAccessRequest struct {
	Role    *string `json:"role" binding:"required"`
	Status  *string `json:"status" binding:"required"`
	CanBook *bool   `json:"can_book" binding:"required"`
	CanHost *bool   `json:"can_host" binding:"required"`
}

type DashboardStats struct {
	TotalUsers      int64 `json:"totalUsers"`
	TotalHosts      int64 `json:"totalHosts"`
	TotalListings   int64 `json:"totalListings"`
	PendingListings int64 `json:"pendingListings"`
}

// Package dto defines the v1 API request and response models.
package dto

// AccountInfo is the authenticated account's own profile.
type AccountInfo struct {
	Username string   `json:"username"`
	Email    string   `json:"email"`
	Name     string   `json:"name"`
	Type     string   `json:"type" binding:"oneof=personal group"`
	Groups   []string `json:"groups"`
}

// PaperQuota is the remaining print quota for one user.
type PaperQuota struct {
	User       string `json:"user"`
	Daily      int    `json:"daily"`
	Semesterly int    `json:"semesterly"`
}

// RegisterAccountInput requests creation of a new OCF account.
type RegisterAccountInput struct {
	// AccountAssociation is the CalNet UID or CalLink OID to create the
	// account for.
	AccountAssociation int    `json:"account_association" binding:"required"`
	Username           string `json:"username" binding:"required"`
	Password           string `json:"password" binding:"required"`
	ContactEmail       string `json:"contact_email" binding:"required,email"`
}

// RegisterAccountOutput reports a submitted creation task.
type RegisterAccountOutput struct {
	Status string `json:"status"`
	TaskID string `json:"task_id"`
}

// RegisterStatusOutput reports creation task progress.
type RegisterStatusOutput struct {
	State   string   `json:"state"`
	Status  []string `json:"status,omitempty"`
	Message string   `json:"message,omitempty"`
}

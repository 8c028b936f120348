package dto

// LogSessionInput is one workstation heartbeat.
type LogSessionInput struct {
	State string `json:"state" binding:"required,oneof=active cleanup"`
	User  string `json:"user"`
}

// DesktopUsage summarizes current workstation usage.
type DesktopUsage struct {
	DesktopsInUse []string `json:"desktops_in_use"`
	DesktopsNum   int      `json:"desktops_num"`
}

// LabNumUsers is the number of distinct users in the lab right now.
type LabNumUsers struct {
	Count int `json:"num_users"`
}

// HoursOutput is the lab's hours for one date.
type HoursOutput struct {
	Date   string  `json:"date"`
	Open   *string `json:"open"`
	Close  *string `json:"close"`
	Closed bool    `json:"closed"`
}

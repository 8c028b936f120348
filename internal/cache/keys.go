package cache

import "time"

// Cache keys and TTLs. Directory lookups are expensive and change rarely;
// usage stats are cheap but hammered by the lab map frontend.
const (
	KeyDesktopRegistry = "desktops:registry"
	KeyDesktopsInUse   = "desktops:in_use"

	DesktopRegistryTTL = 10 * time.Minute
	DesktopsInUseTTL   = 5 * time.Second
)

// internal/pkg/device/device.go

// Package device collects best-effort client device information for the
// checkout audit trail.
package device

// Info describes the client device as reported at checkout time
type Info struct {
	UserAgent        string `json:"user_agent"`
	Platform         string `json:"platform"`
	Language         string `json:"language"`
	ScreenResolution string `json:"screen_resolution"`
	Timezone         string `json:"timezone"`
}

// Unknown is the placeholder for fields the client did not report
const Unknown = "Unknown"

// Normalize fills empty fields with the Unknown placeholder
func (i Info) Normalize() Info {
	if i.UserAgent == "" {
		i.UserAgent = Unknown
	}
	if i.Platform == "" {
		i.Platform = Unknown
	}
	if i.Language == "" {
		i.Language = Unknown
	}
	if i.ScreenResolution == "" {
		i.ScreenResolution = Unknown
	}
	if i.Timezone == "" {
		i.Timezone = Unknown
	}
	return i
}

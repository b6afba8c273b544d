package model

import "time"

// Setting keys used by the application.
const (
	SettingEvdsAPIKey = "evds_api_key"
)

// Setting is one key/value pair from the settings table. Sensitive values
// (such as the EVDS API key) are stored fernet-encrypted.
type Setting struct {
	Key       string
	Value     string
	UpdatedAt time.Time
}

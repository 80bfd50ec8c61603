package dto

// SettingsBody is the preferences object nested in settings responses.
type SettingsBody struct {
	Theme         string `json:"theme"`
	Notifications bool   `json:"notifications"`
}

// UpdateSettingsRequest replaces all preferences. Notifications is a pointer
// so an omitted field is rejected instead of silently becoming false.
type UpdateSettingsRequest struct {
	Theme         string `json:"theme" validate:"required,oneof=light dark system"`
	Notifications *bool  `json:"notifications" validate:"required"`
}

// SettingsResponse is returned by every settings endpoint.
type SettingsResponse struct {
	IDUser   string       `json:"idUser"`
	Settings SettingsBody `json:"settings"`
}

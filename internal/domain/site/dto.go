package site

// SettingsRequest replaces the settings document wholesale
type SettingsRequest struct {
	HeroTitle    string `json:"hero_title" validate:"required,max=200"`
	HeroSubtitle string `json:"hero_subtitle" validate:"omitempty,max=500"`
	ContactTitle string `json:"contact_title" validate:"omitempty,max=200"`
	ContactText  string `json:"contact_text" validate:"omitempty,max=2000"`
	ContactEmail string `json:"contact_email" validate:"omitempty,email"`
}

// HeroImageRequest points the hero background at a stored media URL
type HeroImageRequest struct {
	URL string `json:"url" validate:"required,max=500"`
}

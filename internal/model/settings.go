package model

// SiteSettingsID is the primary key of the singleton site_settings row.
const SiteSettingsID = 1

// SiteSettings holds the home-page hero content. A single row exists.
type SiteSettings struct {
	BackgroundURL string `json:"backgroundUrl" db:"background_url"`
	HeroText      string `json:"heroText" db:"hero_text"`
	SubText       string `json:"subText" db:"sub_text"`
}

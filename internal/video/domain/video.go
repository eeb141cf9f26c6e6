package domain

import "time"

// Defaults applied server-side on create; the stored transformation always
// carries the fixed portrait dimensions.
const (
	TransformationHeight = 1920
	TransformationWidth  = 1080
	DefaultQuality       = 100
)

type Transformation struct {
	Height  int `json:"height"`
	Width   int `json:"width"`
	Quality int `json:"quality"`
}

type Video struct {
	ID             string         `json:"id"`
	Title          string         `json:"title"`
	Description    string         `json:"description"`
	VideoURL       string         `json:"video_url"`
	ThumbnailURL   string         `json:"thumbnail_url"`
	Controls       bool           `json:"controls"`
	Transformation Transformation `json:"transformation" gorm:"embedded;embeddedPrefix:transformation_"`
	CreatedAt      time.Time      `json:"created_at"`
}

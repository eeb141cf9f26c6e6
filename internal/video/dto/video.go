package dto

// CreateVideoRequest carries the client-supplied fields. Controls and
// transformation.quality are pointers so "absent" is distinguishable from
// zero values when applying server-side defaults.
type CreateVideoRequest struct {
	Title          string               `json:"title"`
	Description    string               `json:"description"`
	VideoURL       string               `json:"video_url"`
	ThumbnailURL   string               `json:"thumbnail_url"`
	Controls       *bool                `json:"controls"`
	Transformation *TransformationInput `json:"transformation"`
}

type TransformationInput struct {
	Quality *int `json:"quality"`
}

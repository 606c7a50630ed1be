package entity

import "time"

// Photo is one entry of the proxied photo catalog. URL points at the
// original image on the upstream provider, ThumbURL at a smaller rendition.
type Photo struct {
	ID          string    `json:"id"`
	Author      string    `json:"author"`
	Description string    `json:"description,omitempty"`
	URL         string    `json:"url"`
	ThumbURL    string    `json:"thumb_url"`
	Orientation string    `json:"orientation"` // landscape or portrait
	CreatedAt   time.Time `json:"created_at"`
}

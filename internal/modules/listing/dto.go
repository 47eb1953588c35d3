package listing

import (
	"connecthub/internal/domain"
	"connecthub/internal/pkg/jsonfield"
)

// MaxImages caps the image set on a listing.
const MaxImages = 5

type CreateRequest struct {
	CategoryID  int64    `json:"categoryId" binding:"required"`
	Kind        string   `json:"kind" binding:"required,oneof=SERVICE PRODUCT"`
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description"`
	Price       float64  `json:"price" binding:"gte=0"`
	Images      []string `json:"images"`
	Tags        []string `json:"tags"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
	Address     string   `json:"address"`
	City        string   `json:"city"`
}

// UpdateRequest carries the surviving remote image URLs plus any newly
// uploaded ones; the service merges the two sets.
type UpdateRequest struct {
	Title       *string   `json:"title"`
	Description *string   `json:"description"`
	Price       *float64  `json:"price" binding:"omitempty,gte=0"`
	KeepImages  []string  `json:"keepImages"`
	NewImages   []string  `json:"newImages"`
	Tags        *[]string `json:"tags"`
	Latitude    *float64  `json:"latitude"`
	Longitude   *float64  `json:"longitude"`
	Address     *string   `json:"address"`
	City        *string   `json:"city"`
	Active      *bool     `json:"active"`
}

// View exposes decoded images and tags. Malformed stored values surface in
// dataWarnings instead of silently becoming empty lists.
type View struct {
	domain.Listing
	Images       []string `json:"images"`
	Tags         []string `json:"tags"`
	DataWarnings []string `json:"dataWarnings,omitempty"`
}

func NewView(l domain.Listing) View {
	v := View{Listing: l}

	images := jsonfield.Decode(l.Images)
	v.Images = images.Values
	if images.Malformed {
		v.DataWarnings = append(v.DataWarnings, "images field could not be parsed")
	}

	tags := jsonfield.Decode(l.Tags)
	v.Tags = tags.Values
	if tags.Malformed {
		v.DataWarnings = append(v.DataWarnings, "tags field could not be parsed")
	}

	return v
}

func NewViews(listings []domain.Listing) []View {
	out := make([]View, 0, len(listings))
	for _, l := range listings {
		out = append(out, NewView(l))
	}
	return out
}

package review

import (
	"connecthub/internal/domain"
	"connecthub/internal/pkg/jsonfield"
)

type CreateRequest struct {
	ListingID int64    `json:"listingId" binding:"required"`
	OrderID   *int64   `json:"orderId"`
	Rating    int      `json:"rating" binding:"required"`
	Comment   string   `json:"comment"`
	Images    []string `json:"images"`
}

// UpdateRequest edits the two user-editable fields. The reviewId+userId pair
// is the authorization key: the caller must be the author.
type UpdateRequest struct {
	ReviewID int64  `json:"reviewId" binding:"required"`
	UserID   int64  `json:"userId" binding:"required"`
	Rating   int    `json:"rating" binding:"required"`
	Comment  string `json:"comment"`
}

// View exposes the decoded image list and flags malformed stored data
// instead of silently dropping it.
type View struct {
	domain.Review
	Images       []string `json:"images"`
	DataWarnings []string `json:"dataWarnings,omitempty"`
}

func NewView(r domain.Review) View {
	v := View{Review: r}
	images := jsonfield.Decode(r.Images)
	v.Images = images.Values
	if images.Malformed {
		v.DataWarnings = append(v.DataWarnings, "images field could not be parsed")
	}
	return v
}

func NewViews(reviews []domain.Review) []View {
	out := make([]View, 0, len(reviews))
	for _, r := range reviews {
		out = append(out, NewView(r))
	}
	return out
}

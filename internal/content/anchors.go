package content

// Section anchors shared by the navigation links and the sections they target.
const (
	AnchorFeatures     = "features"
	AnchorTestimonials = "testimonials"
	AnchorPricing      = "pricing"
)

// NavLink is a same-page navigation target.
type NavLink struct {
	Name   string
	Anchor string
}

// Href returns the fragment link for the anchor.
func (l NavLink) Href() string {
	return "#" + l.Anchor
}

// Metadata is the document-level title and description.
type Metadata struct {
	Title       string
	Description string
	Language    string
}

package enums

// MediaKind mirrors the media_kind postgres enum.
type MediaKind string

const (
	MediaKindProductImage     MediaKind = "product_image"
	MediaKindTestimonialImage MediaKind = "testimonial_image"
)

func (k MediaKind) String() string { return string(k) }

// IsValid reports whether the value matches a known media kind.
func (k MediaKind) IsValid() bool {
	switch k {
	case MediaKindProductImage, MediaKindTestimonialImage:
		return true
	}
	return false
}

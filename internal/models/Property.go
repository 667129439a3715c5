package models

const DefaultPropertyImage = "/images/default-property.jpg"

// Property.Rented mirrors the existence of an ACTIVE lease. Only the
// workflow package may flip it, inside the same transaction that writes
// the lease.
type Property struct {
	Document
	OwnerID       string   `json:"ownerId" gorm:"index"`
	TenantID      *string  `json:"tenantId,omitempty"`
	Title         string   `json:"title"`
	Location      string   `json:"location"`
	Price         string   `json:"price"` // decimal-as-string
	LeaseDuration string   `json:"leaseDuration"`
	Bedrooms      int      `json:"bedrooms"`
	Bathrooms     int      `json:"bathrooms"`
	Garages       int      `json:"garages"`
	Rented        bool     `json:"rented"`
	ImageURL      string   `json:"imageUrl"`
	ImageURLs     []string `json:"imageUrls" gorm:"serializer:json"`
}

// DisplayImage picks the first gallery image, falling back to the single
// legacy image field and then the stock picture.
func (p Property) DisplayImage() string {
	if len(p.ImageURLs) > 0 {
		return p.ImageURLs[0]
	}
	if p.ImageURL != "" {
		return p.ImageURL
	}
	return DefaultPropertyImage
}

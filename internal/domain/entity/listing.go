// Package entity contains the core business objects of the project.
package entity

// Seller identifies the party offering a listing. It is denormalized into
// the listing itself; the catalog keeps no separate seller table.
type Seller struct {
	ID       string `json:"id"`       // Opaque identity string.
	Name     string `json:"name"`     // Display name.
	Avatar   string `json:"avatar"`   // Avatar image reference.
	Verified bool   `json:"verified"` // Whether the seller identity has been verified.
}

// Listing is a single catalog entry offered by a seller.
//
// Identity is immutable once created. A listing never changes after
// creation except for the Promoted flag, which may flip exactly once
// from false to true. The viewer-relative distance is deliberately not
// part of the entity; it is attached at ranking time (ranking.Ranked).
type Listing struct {
	ID           string       `json:"id"`           // Opaque identity, unique within the store.
	Seller       Seller       `json:"seller"`       // The offering party, by value.
	Title        string       `json:"title"`        // Short display title.
	Description  string       `json:"description"`  // Free-text description.
	Price        int64        `json:"price"`        // Non-negative, whole currency units.
	Currency     string       `json:"currency"`     // ISO currency code, e.g. "MXN".
	Image        string       `json:"image"`        // Primary image reference.
	Category     Category     `json:"category"`     // One of the fixed category keys.
	Delivery     DeliveryMode `json:"delivery"`     // How the item changes hands.
	Location     Coordinate   `json:"location"`     // Where the item is offered.
	LocationName string       `json:"locationName"` // Human-readable place name.
	CreatedAt    int64        `json:"createdAt"`    // Creation time, epoch millis.
	Promoted     bool         `json:"promoted"`     // Priority placement flag.
	Provenance   Provenance   `json:"provenance"`   // Synthetic or user-submitted.
}

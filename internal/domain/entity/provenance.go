// Package entity contains the core business objects of the project.
package entity

// Provenance marks where a listing came from. It is an explicit field on
// the listing, never an identity naming convention: the catalog store
// partitions by this tag when the synthetic set is replaced.
type Provenance string

const (
	// ProvenanceSynthetic indicates the listing was produced by the catalog generator.
	ProvenanceSynthetic Provenance = "synthetic"
	// ProvenanceUser indicates the listing was submitted by a user.
	ProvenanceUser Provenance = "user"
)

// String returns the string representation of the Provenance.
func (p Provenance) String() string {
	return string(p)
}

// IsValid checks if the Provenance is a valid value.
func (p Provenance) IsValid() bool {
	switch p {
	case ProvenanceSynthetic, ProvenanceUser:
		return true
	default:
		return false
	}
}

package service

// QRCodeService defines the interface for QR code generation and parsing services
type QRCodeService interface {
	// GenerateListingQR generates a share QR code for a listing
	GenerateListingQR(listingID string) ([]byte, error)

	// ParseListingQR parses QR code data and returns the listing ID
	ParseListingQR(qrData string) (string, error)
}

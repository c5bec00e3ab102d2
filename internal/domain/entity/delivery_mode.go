// Package entity contains the core business objects of the project.
package entity

// DeliveryMode represents how a listing changes hands.
type DeliveryMode string

const (
	// DeliveryMeetup indicates the item is handed over in person.
	DeliveryMeetup DeliveryMode = "meetup"
	// DeliveryShipping indicates the item is shipped to the buyer.
	DeliveryShipping DeliveryMode = "shipping"
	// DeliveryBoth indicates the seller offers both options.
	DeliveryBoth DeliveryMode = "both"
)

// String returns the string representation of the DeliveryMode.
func (d DeliveryMode) String() string {
	return string(d)
}

// IsValid checks if the DeliveryMode is a valid value.
func (d DeliveryMode) IsValid() bool {
	switch d {
	case DeliveryMeetup, DeliveryShipping, DeliveryBoth:
		return true
	default:
		return false
	}
}

package travel

import (
	"time"

	"travelbook/domain/shared"
)

// TravelInfoProps carries the attributes of a travel offer embedded
// in a purchase.
type TravelInfoProps struct {
	OfferID     string
	From        string
	To          string
	Date        time.Time
	Price       float64
	Airline     string
	TravelClass shared.TravelClass
}

// TravelInfo is the immutable value object describing the travel an
// offer was purchased for.
type TravelInfo struct {
	props TravelInfoProps
}

// RehydrateTravelInfo reconstructs a TravelInfo from stored attributes
func RehydrateTravelInfo(props TravelInfoProps) TravelInfo {
	return TravelInfo{props: props}
}

// OfferID returns the id of the backing offer
func (i TravelInfo) OfferID() string { return i.props.OfferID }

// From returns the origin of the travel
func (i TravelInfo) From() string { return i.props.From }

// To returns the destination of the travel
func (i TravelInfo) To() string { return i.props.To }

// Date returns the departure date
func (i TravelInfo) Date() time.Time { return i.props.Date }

// Price returns the purchase price
func (i TravelInfo) Price() float64 { return i.props.Price }

// Airline returns the operating airline
func (i TravelInfo) Airline() string { return i.props.Airline }

// TravelClass returns the cabin class
func (i TravelInfo) TravelClass() shared.TravelClass { return i.props.TravelClass }

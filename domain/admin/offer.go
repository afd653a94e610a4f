package admin

import (
	"time"

	"travelbook/domain/shared"
)

// OfferDraftProps carries the attributes of an offer before it has
// been assigned an identity.
type OfferDraftProps struct {
	From        string
	To          string
	Date        time.Time
	Price       float64
	Airline     string
	TravelClass shared.TravelClass
}

// OfferDraft is a new offer that has not been persisted yet
type OfferDraft struct {
	props OfferDraftProps
}

// NewOfferDraft creates a draft for a new offer
func NewOfferDraft(props OfferDraftProps) OfferDraft {
	return OfferDraft{props: props}
}

// From returns the origin of the offer
func (d OfferDraft) From() string { return d.props.From }

// To returns the destination of the offer
func (d OfferDraft) To() string { return d.props.To }

// Date returns the departure date
func (d OfferDraft) Date() time.Time { return d.props.Date }

// Price returns the listed price
func (d OfferDraft) Price() float64 { return d.props.Price }

// Airline returns the operating airline
func (d OfferDraft) Airline() string { return d.props.Airline }

// TravelClass returns the cabin class
func (d OfferDraft) TravelClass() shared.TravelClass { return d.props.TravelClass }

// OfferProps carries the attributes of an existing offer
type OfferProps struct {
	ID string
	OfferDraftProps
}

// Offer is a persisted catalog entry
type Offer struct {
	OfferDraft
	id string
}

// RehydrateOffer reconstructs an existing Offer from stored attributes
func RehydrateOffer(props OfferProps) *Offer {
	return &Offer{
		OfferDraft: OfferDraft{props: props.OfferDraftProps},
		id:         props.ID,
	}
}

// ID returns the offer identity
func (o *Offer) ID() string { return o.id }

// Patch applies updated attributes to the offer, keeping its identity
func (o *Offer) Patch(props OfferDraftProps) {
	o.props = props
}

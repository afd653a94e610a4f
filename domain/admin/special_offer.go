package admin

// SpecialOfferDraftProps carries the attributes of a special offer
// before it has been assigned an identity.
type SpecialOfferDraftProps struct {
	OfferID      string
	SpecialPrice float64
	Description  string
}

// SpecialOfferDraft is a new special offer that has not been persisted
// yet. OfferID must reference an existing Offer; the services enforce
// that invariant before persistence.
type SpecialOfferDraft struct {
	props SpecialOfferDraftProps
}

// NewSpecialOfferDraft creates a draft for a new special offer
func NewSpecialOfferDraft(props SpecialOfferDraftProps) SpecialOfferDraft {
	return SpecialOfferDraft{props: props}
}

// OfferID returns the id of the referenced offer
func (d SpecialOfferDraft) OfferID() string { return d.props.OfferID }

// SpecialPrice returns the discounted price
func (d SpecialOfferDraft) SpecialPrice() float64 { return d.props.SpecialPrice }

// Description returns the promotional text
func (d SpecialOfferDraft) Description() string { return d.props.Description }

// SpecialOfferProps carries the attributes of an existing special offer
type SpecialOfferProps struct {
	ID string
	SpecialOfferDraftProps
}

// SpecialOffer is a persisted special offer
type SpecialOffer struct {
	SpecialOfferDraft
	id string
}

// RehydrateSpecialOffer reconstructs an existing SpecialOffer from
// stored attributes.
func RehydrateSpecialOffer(props SpecialOfferProps) *SpecialOffer {
	return &SpecialOffer{
		SpecialOfferDraft: SpecialOfferDraft{props: props.SpecialOfferDraftProps},
		id:                props.ID,
	}
}

// ID returns the special offer identity
func (s *SpecialOffer) ID() string { return s.id }

// Patch applies updated attributes, keeping the identity
func (s *SpecialOffer) Patch(props SpecialOfferDraftProps) {
	s.props = props
}

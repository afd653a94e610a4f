package travel

// PurchasedTravelProps carries the attributes of a purchased travel
type PurchasedTravelProps struct {
	ID            string
	PurchasedDate string
	Name          string
	Info          TravelInfo
}

// PurchasedTravel is a travel the user has bought. Identity is fixed
// at purchase time; only the display name may change afterwards.
type PurchasedTravel struct {
	props PurchasedTravelProps
}

// RehydratePurchasedTravel reconstructs a PurchasedTravel from
// repository data.
func RehydratePurchasedTravel(props PurchasedTravelProps) *PurchasedTravel {
	return &PurchasedTravel{props: props}
}

// ID returns the purchase identity
func (p *PurchasedTravel) ID() string { return p.props.ID }

// PurchasedDate returns when the purchase was made
func (p *PurchasedTravel) PurchasedDate() string { return p.props.PurchasedDate }

// Name returns the user-facing name of the purchase
func (p *PurchasedTravel) Name() string { return p.props.Name }

// Info returns the embedded travel details
func (p *PurchasedTravel) Info() TravelInfo { return p.props.Info }

// Rename changes the user-facing name of the purchase
func (p *PurchasedTravel) Rename(newName string) {
	p.props.Name = newName
}

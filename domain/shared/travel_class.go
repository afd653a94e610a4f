package shared

// TravelClass identifies a cabin class on an offer
type TravelClass string

const (
	TravelClassEconomy        TravelClass = "economy"
	TravelClassPremiumEconomy TravelClass = "premium_economy"
	TravelClassBusiness       TravelClass = "business"
	TravelClassFirst          TravelClass = "first"
)

// TravelClasses lists every valid travel class in display order
var TravelClasses = []TravelClass{
	TravelClassEconomy,
	TravelClassPremiumEconomy,
	TravelClassBusiness,
	TravelClassFirst,
}

var travelClassSet = func() map[TravelClass]struct{} {
	set := make(map[TravelClass]struct{}, len(TravelClasses))
	for _, tc := range TravelClasses {
		set[tc] = struct{}{}
	}
	return set
}()

// IsTravelClass reports whether value is a known travel class
func IsTravelClass(value string) bool {
	_, ok := travelClassSet[TravelClass(value)]
	return ok
}

// ParseTravelClass converts a raw string into a TravelClass
func ParseTravelClass(value string) (TravelClass, bool) {
	if IsTravelClass(value) {
		return TravelClass(value), true
	}
	return "", false
}

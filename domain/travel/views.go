package travel

import (
	"time"

	"travelbook/domain/shared"
)

// TravelCard is the search-result view of an offer
type TravelCard struct {
	ID          string             `json:"id"`
	From        string             `json:"from"`
	To          string             `json:"to"`
	Date        string             `json:"date"`
	Price       float64            `json:"price"`
	Airline     string             `json:"airline"`
	TravelClass shared.TravelClass `json:"travelClass"`
}

// LastMinuteDeal is a discounted offer shown on the deals board.
// ID identifies the deal itself; TravelID references the backing offer.
type LastMinuteDeal struct {
	ID          string             `json:"id"`
	From        string             `json:"from"`
	To          string             `json:"to"`
	Date        string             `json:"date"`
	Price       float64            `json:"price"`
	Airline     string             `json:"airline"`
	TravelClass shared.TravelClass `json:"travelClass"`
	TravelID    string             `json:"travelId"`
	Description string             `json:"description"`
}

// SearchCriteriaView is the store-facing projection of a SearchCriteria
type SearchCriteriaView struct {
	From          string               `json:"from"`
	To            string               `json:"to"`
	TravelClasses []shared.TravelClass `json:"travelClass"`
}

// PurchasedTravelView is the store-facing projection of a PurchasedTravel
type PurchasedTravelView struct {
	ID            string             `json:"id"`
	From          string             `json:"from"`
	To            string             `json:"to"`
	Date          string             `json:"date"`
	Price         float64            `json:"price"`
	Airline       string             `json:"airline"`
	TravelClass   shared.TravelClass `json:"travelClass"`
	TravelID      string             `json:"travelId"`
	PurchasedDate string             `json:"purchasedDate"`
	Name          string             `json:"name"`
}

// ToSearchCriteriaView projects a SearchCriteria for store consumers
func ToSearchCriteriaView(criteria SearchCriteria) SearchCriteriaView {
	return SearchCriteriaView{
		From:          criteria.From(),
		To:            criteria.To(),
		TravelClasses: criteria.TravelClasses(),
	}
}

// ToPurchasedTravelView projects a PurchasedTravel for store consumers
func ToPurchasedTravelView(purchased *PurchasedTravel) PurchasedTravelView {
	info := purchased.Info()
	return PurchasedTravelView{
		ID:            purchased.ID(),
		From:          info.From(),
		To:            info.To(),
		Date:          info.Date().Format(time.RFC3339),
		Price:         info.Price(),
		Airline:       info.Airline(),
		TravelClass:   info.TravelClass(),
		TravelID:      info.OfferID(),
		PurchasedDate: purchased.PurchasedDate(),
		Name:          purchased.Name(),
	}
}

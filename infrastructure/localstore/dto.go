// Package localstore implements the application ports on top of the
// key-value store. It is the whole "backend" of the demo: credentials,
// the offer catalog and the per-user profile all live here.
package localstore

import (
	"time"

	jsoniter "github.com/json-iterator/go"

	"travelbook/domain/admin"
	"travelbook/domain/shared"
	"travelbook/domain/travel"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const timeLayout = time.RFC3339

const (
	sessionKey       = "session"
	credentialsKey   = "credentials"
	offersKey        = "offers"
	specialOffersKey = "special_offers"
	profileKeyPrefix = "profile:"
)

type sessionRecord struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

type credentialRecord struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

type offerRecord struct {
	ID          string  `json:"id"`
	From        string  `json:"from"`
	To          string  `json:"to"`
	Date        string  `json:"date"`
	Price       float64 `json:"price"`
	Airline     string  `json:"airline"`
	TravelClass string  `json:"travel_class"`
}

type specialOfferRecord struct {
	ID           string  `json:"id"`
	OfferID      string  `json:"offer_id"`
	SpecialPrice float64 `json:"special_price"`
	Description  string  `json:"description"`
}

type searchRecord struct {
	From          string   `json:"from"`
	To            string   `json:"to"`
	TravelClasses []string `json:"travel_class"`
}

type purchaseRecord struct {
	ID            string  `json:"id"`
	TravelID      string  `json:"travel_id"`
	From          string  `json:"from"`
	To            string  `json:"to"`
	Date          string  `json:"date"`
	Price         float64 `json:"price"`
	Airline       string  `json:"airline"`
	TravelClass   string  `json:"travel_class"`
	PurchasedDate string  `json:"purchased_date"`
	Name          string  `json:"name"`
}

type profileRecord struct {
	RecentSearches []searchRecord   `json:"recent_searches"`
	Purchases      []purchaseRecord `json:"purchases"`
}

func offerToRecord(offer *admin.Offer) offerRecord {
	return offerRecord{
		ID:          offer.ID(),
		From:        offer.From(),
		To:          offer.To(),
		Date:        offer.Date().Format(time.RFC3339),
		Price:       offer.Price(),
		Airline:     offer.Airline(),
		TravelClass: string(offer.TravelClass()),
	}
}

func offerFromRecord(record offerRecord) *admin.Offer {
	date, _ := time.Parse(time.RFC3339, record.Date)
	return admin.RehydrateOffer(admin.OfferProps{
		ID: record.ID,
		OfferDraftProps: admin.OfferDraftProps{
			From:        record.From,
			To:          record.To,
			Date:        date,
			Price:       record.Price,
			Airline:     record.Airline,
			TravelClass: shared.TravelClass(record.TravelClass),
		},
	})
}

func specialOfferToRecord(offer *admin.SpecialOffer) specialOfferRecord {
	return specialOfferRecord{
		ID:           offer.ID(),
		OfferID:      offer.OfferID(),
		SpecialPrice: offer.SpecialPrice(),
		Description:  offer.Description(),
	}
}

func specialOfferFromRecord(record specialOfferRecord) *admin.SpecialOffer {
	return admin.RehydrateSpecialOffer(admin.SpecialOfferProps{
		ID: record.ID,
		SpecialOfferDraftProps: admin.SpecialOfferDraftProps{
			OfferID:      record.OfferID,
			SpecialPrice: record.SpecialPrice,
			Description:  record.Description,
		},
	})
}

func searchToRecord(view travel.SearchCriteriaView) searchRecord {
	classes := make([]string, 0, len(view.TravelClasses))
	for _, class := range view.TravelClasses {
		classes = append(classes, string(class))
	}
	return searchRecord{From: view.From, To: view.To, TravelClasses: classes}
}

func searchFromRecord(record searchRecord) travel.SearchCriteriaView {
	classes := make([]shared.TravelClass, 0, len(record.TravelClasses))
	for _, class := range record.TravelClasses {
		classes = append(classes, shared.TravelClass(class))
	}
	return travel.SearchCriteriaView{From: record.From, To: record.To, TravelClasses: classes}
}

func purchaseToRecord(purchased *travel.PurchasedTravel) purchaseRecord {
	info := purchased.Info()
	return purchaseRecord{
		ID:            purchased.ID(),
		TravelID:      info.OfferID(),
		From:          info.From(),
		To:            info.To(),
		Date:          info.Date().Format(time.RFC3339),
		Price:         info.Price(),
		Airline:       info.Airline(),
		TravelClass:   string(info.TravelClass()),
		PurchasedDate: purchased.PurchasedDate(),
		Name:          purchased.Name(),
	}
}

func purchaseFromRecord(record purchaseRecord) *travel.PurchasedTravel {
	date, _ := time.Parse(time.RFC3339, record.Date)
	return travel.RehydratePurchasedTravel(travel.PurchasedTravelProps{
		ID:            record.ID,
		PurchasedDate: record.PurchasedDate,
		Name:          record.Name,
		Info: travel.RehydrateTravelInfo(travel.TravelInfoProps{
			OfferID:     record.TravelID,
			From:        record.From,
			To:          record.To,
			Date:        date,
			Price:       record.Price,
			Airline:     record.Airline,
			TravelClass: shared.TravelClass(record.TravelClass),
		}),
	})
}

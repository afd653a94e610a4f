package commands

import (
	"travelbook/domain/shared"
	"travelbook/pkg/utils"
)

// SearchTravelsQuery runs a travel search and records it in the
// recent searches.
type SearchTravelsQuery struct {
	From          string               `json:"from" validate:"required"`
	To            string               `json:"to" validate:"required"`
	TravelClasses []shared.TravelClass `json:"travelClass" validate:"required,min=1,dive,oneof=economy premium_economy business first"`
}

// Validate validates the query
func (q SearchTravelsQuery) Validate() error {
	return utils.ValidateStruct(q)
}

// PurchaseTravelCommand books the offer behind a search result card
type PurchaseTravelCommand struct {
	TravelID string `json:"travelId" validate:"required"`
}

// Validate validates the command
func (cmd PurchaseTravelCommand) Validate() error {
	return utils.ValidateStruct(cmd)
}

// PurchaseLastMinuteDealCommand books a deal from the deals board
type PurchaseLastMinuteDealCommand struct {
	DealID string `json:"dealId" validate:"required"`
}

// Validate validates the command
func (cmd PurchaseLastMinuteDealCommand) Validate() error {
	return utils.ValidateStruct(cmd)
}

// RenamePurchasedTravelCommand gives a purchase a user-chosen name
type RenamePurchasedTravelCommand struct {
	ID      string `json:"id" validate:"required"`
	NewName string `json:"newName" validate:"required"`
}

// Validate validates the command
func (cmd RenamePurchasedTravelCommand) Validate() error {
	return utils.ValidateStruct(cmd)
}

// GetPurchasedTravelsQuery loads the purchase history into the store
type GetPurchasedTravelsQuery struct{}

// GetRecentSearchesQuery loads the recent searches into the store
type GetRecentSearchesQuery struct{}

// GetLastMinuteDealsQuery replaces the deals board with fresh deals
type GetLastMinuteDealsQuery struct{}

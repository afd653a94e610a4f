package commands

import (
	"time"

	"travelbook/domain/shared"
	"travelbook/pkg/utils"
)

// AddOfferCommand adds a new offer to the catalog
type AddOfferCommand struct {
	From        string             `json:"from" validate:"required"`
	To          string             `json:"to" validate:"required"`
	Date        time.Time          `json:"date" validate:"required"`
	Price       float64            `json:"price" validate:"required,gt=0"`
	Airline     string             `json:"airline" validate:"required"`
	TravelClass shared.TravelClass `json:"travelClass" validate:"required,oneof=economy premium_economy business first"`
}

// Validate validates the command
func (cmd AddOfferCommand) Validate() error {
	return utils.ValidateStruct(cmd)
}

// UpdateOfferCommand replaces the attributes of an existing offer
type UpdateOfferCommand struct {
	ID          string             `json:"id" validate:"required"`
	From        string             `json:"from" validate:"required"`
	To          string             `json:"to" validate:"required"`
	Date        time.Time          `json:"date" validate:"required"`
	Price       float64            `json:"price" validate:"required,gt=0"`
	Airline     string             `json:"airline" validate:"required"`
	TravelClass shared.TravelClass `json:"travelClass" validate:"required,oneof=economy premium_economy business first"`
}

// Validate validates the command
func (cmd UpdateOfferCommand) Validate() error {
	return utils.ValidateStruct(cmd)
}

// AddSpecialOfferCommand discounts an existing offer
type AddSpecialOfferCommand struct {
	OfferID      string  `json:"offerId" validate:"required"`
	SpecialPrice float64 `json:"specialPrice" validate:"required,gt=0"`
	Description  string  `json:"description" validate:"required"`
}

// Validate validates the command
func (cmd AddSpecialOfferCommand) Validate() error {
	return utils.ValidateStruct(cmd)
}

// UpdateSpecialOfferCommand replaces the attributes of an existing
// special offer.
type UpdateSpecialOfferCommand struct {
	ID           string  `json:"id" validate:"required"`
	OfferID      string  `json:"offerId" validate:"required"`
	SpecialPrice float64 `json:"specialPrice" validate:"required,gt=0"`
	Description  string  `json:"description" validate:"required"`
}

// Validate validates the command
func (cmd UpdateSpecialOfferCommand) Validate() error {
	return utils.ValidateStruct(cmd)
}

// GetOffersQuery lists the offer catalog
type GetOffersQuery struct{}

// GetSpecialOffersQuery lists the discounted offers
type GetSpecialOffersQuery struct{}

package travel

// StatusKey names a single flag inside TravelStatus
type StatusKey string

const (
	StatusIsLoadingCards     StatusKey = "isLoadingCards"
	StatusIsLoadingPurchased StatusKey = "isLoadingPurchased"
	StatusIsLoadingSearches  StatusKey = "isLoadingSearches"
	StatusIsLoadingDeals     StatusKey = "isLoadingDeals"
)

// TravelStatus tracks the progress of travel-related operations.
// Each flag is settable independently of the others.
type TravelStatus struct {
	IsLoadingCards     bool `json:"isLoadingCards"`
	IsLoadingPurchased bool `json:"isLoadingPurchased"`
	IsLoadingSearches  bool `json:"isLoadingSearches"`
	IsLoadingDeals     bool `json:"isLoadingDeals"`
}

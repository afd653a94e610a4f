package travel

// SearchResult is what a travel search yields: the matching cards plus
// the recent searches as they stand after recording this one.
type SearchResult struct {
	TravelCards    []TravelCard         `json:"travelCards"`
	RecentSearches []SearchCriteriaView `json:"recentSearches"`
}

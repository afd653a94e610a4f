package travel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"travelbook/domain/shared"
	apperrors "travelbook/pkg/errors"
)

func TestNewSearchCriteriaRejectsSameOriginDestination(t *testing.T) {
	_, err := NewSearchCriteria(SearchCriteriaProps{
		From:          "Berlin",
		To:            "Berlin",
		TravelClasses: []shared.TravelClass{shared.TravelClassEconomy},
	}, nil)

	require.Error(t, err)
	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.ErrorTypeSameOriginDestination, appErr.Type)
}

func TestNewSearchCriteriaAcceptsDistinctRoute(t *testing.T) {
	criteria, err := NewSearchCriteria(SearchCriteriaProps{
		From:          "Berlin",
		To:            "Rome",
		TravelClasses: []shared.TravelClass{shared.TravelClassBusiness},
	}, nil)

	require.NoError(t, err)
	assert.Equal(t, "Berlin", criteria.From())
	assert.Equal(t, "Rome", criteria.To())
	assert.Equal(t, []shared.TravelClass{shared.TravelClassBusiness}, criteria.TravelClasses())
}

func TestRehydrateSearchCriteriaBypassesPolicy(t *testing.T) {
	criteria := RehydrateSearchCriteria(SearchCriteriaProps{
		From: "Berlin",
		To:   "Berlin",
	})

	assert.Equal(t, "Berlin", criteria.From())
	assert.Equal(t, "Berlin", criteria.To())
}

func TestSearchCriteriaIsDetachedFromInputSlice(t *testing.T) {
	classes := []shared.TravelClass{shared.TravelClassEconomy}
	criteria, err := NewSearchCriteria(SearchCriteriaProps{
		From:          "Oslo",
		To:            "Madrid",
		TravelClasses: classes,
	}, nil)
	require.NoError(t, err)

	classes[0] = shared.TravelClassFirst
	assert.Equal(t, []shared.TravelClass{shared.TravelClassEconomy}, criteria.TravelClasses())

	returned := criteria.TravelClasses()
	returned[0] = shared.TravelClassFirst
	assert.Equal(t, []shared.TravelClass{shared.TravelClassEconomy}, criteria.TravelClasses())
}

func TestPurchasedTravelRenameKeepsIdentity(t *testing.T) {
	purchase := RehydratePurchasedTravel(PurchasedTravelProps{
		ID:   "p-1",
		Name: "Travel from Oslo to Madrid",
	})

	purchase.Rename("Summer holiday")

	assert.Equal(t, "p-1", purchase.ID())
	assert.Equal(t, "Summer holiday", purchase.Name())
}

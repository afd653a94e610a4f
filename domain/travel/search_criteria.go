package travel

import (
	"travelbook/domain/shared"
	pkgerrors "travelbook/pkg/errors"
)

// SearchCriteriaProps carries the raw attributes of a search
type SearchCriteriaProps struct {
	From          string
	To            string
	TravelClasses []shared.TravelClass
}

// SearchCriteria is the validated, immutable criteria used for
// searching travel options.
type SearchCriteria struct {
	props SearchCriteriaProps
}

// SearchCriteriaPolicy validates the attributes of a criteria
// before it is allowed to exist.
type SearchCriteriaPolicy interface {
	Validate(props SearchCriteriaProps) error
}

// DistinctOriginDestinationPolicy rejects searches whose origin and
// destination are the same place.
type DistinctOriginDestinationPolicy struct{}

// Validate implements SearchCriteriaPolicy
func (DistinctOriginDestinationPolicy) Validate(props SearchCriteriaProps) error {
	if props.From == props.To {
		return pkgerrors.NewSameOriginDestinationError("origin and destination must be different")
	}
	return nil
}

// NewSearchCriteria creates a SearchCriteria after validating the
// properties against the given policy; a nil policy falls back to
// DistinctOriginDestinationPolicy.
func NewSearchCriteria(props SearchCriteriaProps, policy SearchCriteriaPolicy) (SearchCriteria, error) {
	if policy == nil {
		policy = DistinctOriginDestinationPolicy{}
	}
	if err := policy.Validate(props); err != nil {
		return SearchCriteria{}, err
	}
	return SearchCriteria{props: copySearchCriteriaProps(props)}, nil
}

// RehydrateSearchCriteria reconstructs a SearchCriteria from trusted
// storage, bypassing policy validation.
func RehydrateSearchCriteria(props SearchCriteriaProps) SearchCriteria {
	return SearchCriteria{props: copySearchCriteriaProps(props)}
}

// From returns the origin of the search
func (c SearchCriteria) From() string {
	return c.props.From
}

// To returns the destination of the search
func (c SearchCriteria) To() string {
	return c.props.To
}

// TravelClasses returns the cabin classes the search is restricted to
func (c SearchCriteria) TravelClasses() []shared.TravelClass {
	out := make([]shared.TravelClass, len(c.props.TravelClasses))
	copy(out, c.props.TravelClasses)
	return out
}

func copySearchCriteriaProps(props SearchCriteriaProps) SearchCriteriaProps {
	classes := make([]shared.TravelClass, len(props.TravelClasses))
	copy(classes, props.TravelClasses)
	props.TravelClasses = classes
	return props
}

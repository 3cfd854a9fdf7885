package models

// JourneyFilter narrows a journey list. Zero values disable a predicate.
// GroupOnly and MaxPrice are parsed by the handler so that empty values fail.
type JourneyFilter struct {
	Destination string   `form:"destination"`
	GroupOnly   bool     `form:"-"`
	MaxPrice    *float64 `form:"-"`
}

// TripQuery is the search input of GET /search/trips. Kind is "both" only
// when the parameter is absent; an explicit empty kind matches nothing.
type TripQuery struct {
	Origin      string   `form:"origin" binding:"required,min=3,max=5"`
	Destination string   `form:"destination" binding:"required,min=3,max=5"`
	TravelDate  string   `form:"travel_date" binding:"required"`
	Kind        string   `form:"-"`
	MaxPrice    *float64 `form:"-"`
}

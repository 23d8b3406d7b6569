package model

// Dustbin is one disposal-site location on campus.
type Dustbin struct {
	Name string  `json:"name"`
	Lng  float64 `json:"lng"`
	Lat  float64 `json:"lat"`
}

// NearestRoute is the bin-locator response: the closest dustbin plus walking
// navigation details when the user is far enough away to need them.
type NearestRoute struct {
	Message  string  `json:"message"`
	NavURL   string  `json:"nav_url"`
	Deeplink string  `json:"deeplink"`
	Dustbin  Dustbin `json:"dustbin"`
	Distance float64 `json:"distance"`
	Duration int     `json:"duration"`
	Nearby   bool    `json:"nearby"`
}

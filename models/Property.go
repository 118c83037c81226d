package models

type Property struct {
	ID          int64    `json:"id"`
	Title       string   `json:"title"`
	Location    string   `json:"location"` // city key, e.g. "ouagadougou"
	Price       int      `json:"price"`    // FCFA per night
	Rating      float64  `json:"rating"`
	Image       string   `json:"image"`
	Description string   `json:"description"`
	Amenities   []string `json:"amenities"`
	Host        string   `json:"host"`
	Bedrooms    int      `json:"bedrooms"`
	Bathrooms   int      `json:"bathrooms"`
	Guests      int      `json:"guests"`
}

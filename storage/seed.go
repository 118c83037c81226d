package storage

import "github.com/AchilleKettyetta/bstay/models"

// DefaultProperties returns the listings used when nothing has been persisted
// yet (first run or wiped storage).
func DefaultProperties() []models.Property {
	return []models.Property{
		{
			ID:          1,
			Title:       "Villa moderne à Ouagadougou",
			Location:    "ouagadougou",
			Price:       25000,
			Rating:      4.8,
			Image:       "https://images.unsplash.com/photo-1566073771259-6a8506099945?w=400",
			Description: "Belle villa moderne avec piscine dans le quartier résidentiel de Ouaga 2000",
			Amenities:   []string{"WiFi", "Piscine", "Parking", "Climatisation"},
			Host:        "Marie Ouédraogo",
			Bedrooms:    3,
			Bathrooms:   2,
			Guests:      6,
		},
		{
			ID:          2,
			Title:       "Maison traditionnelle à Bobo-Dioulasso",
			Location:    "bobo-dioulasso",
			Price:       15000,
			Rating:      4.5,
			Image:       "https://images.unsplash.com/photo-1564013799919-ab600027ffc6?w=400",
			Description: "Authentique maison traditionnelle au cœur de la ville de Sya",
			Amenities:   []string{"WiFi", "Jardin", "Terrasse"},
			Host:        "Amadou Traoré",
			Bedrooms:    2,
			Bathrooms:   1,
			Guests:      4,
		},
		{
			ID:          3,
			Title:       "Appartement central à Koudougou",
			Location:    "koudougou",
			Price:       12000,
			Rating:      4.2,
			Image:       "https://images.unsplash.com/photo-1522708323590-d24dbb6b0267?w=400",
			Description: "Appartement confortable en centre-ville, proche des commerces",
			Amenities:   []string{"WiFi", "Balcon", "Cuisine équipée"},
			Host:        "Fatou Sawadogo",
			Bedrooms:    1,
			Bathrooms:   1,
			Guests:      2,
		},
	}
}

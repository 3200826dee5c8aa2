package catalog

// seedCatalog is the bundled demo catalog used when the persistence port has
// nothing (or nothing readable) under the products key. Image references are
// intentionally empty.
func seedCatalog() []Product {
	return []Product{
		{
			ID:            1,
			Name:          "Advanced Snail Mucin Essence",
			Brand:         "COSRX",
			Price:         215000,
			OriginalPrice: 280000,
			Rating:        4.9,
			Reviews:       1240,
			Description:   "A lightweight essence which absorbs into skin fast to give skin a natural glow from the inside. This essence is created from nutritious, low-stimulation filtered snail mucin to keep your skin moisturized and illuminated all day.",
			Category:      "Skincare",
			IsSale:        true,
		},
		{
			ID:          2,
			Name:        "Low pH Good Morning Cleanser",
			Brand:       "COSRX",
			Price:       55000,
			Rating:      4.7,
			Reviews:     850,
			Description: "Cleanse daily with this gentle and effective gel type cleanser. Formulated with tea tree oil and natural BHA to refine skin texture, the Low pH Good Morning Gel Cleanser's pH level is the closest to your skin's natural pH level.",
			Category:    "Cleanser",
			IsNew:       true,
		},
		{
			ID:          3,
			Name:        "Matte Lipstick - Dusty Rose",
			Brand:       "MAC",
			Price:       350000,
			Rating:      4.8,
			Reviews:     320,
			Description: "The iconic product that made M·A·C famous. This creamy rich formula features high colour payoff in a no-shine matte finish.",
			Category:    "Makeup",
		},
		{
			ID:            4,
			Name:          "Hydrating Water Gel",
			Brand:         "Neutrogena",
			Price:         180000,
			OriginalPrice: 200000,
			Rating:        4.5,
			Reviews:       2100,
			Description:   "Neutrogena Hydro Boost Water Gel instantly quenches dry skin and keeps it looking smooth, supple and hydrated day after day.",
			Category:      "Moisturizer",
			IsSale:        true,
		},
		{
			ID:          5,
			Name:        "UV Protection Sunscreen SPF 50",
			Brand:       "Biore",
			Price:       120000,
			Rating:      4.6,
			Reviews:     500,
			Description: "Micro Defense formula provides even coverage for fine lines and uneven surfaces at a micro level. Powerful UV protection in a light, watery texture.",
			Category:    "Sunscreen",
		},
		{
			ID:          6,
			Name:        "Niacinamide 10% + Zinc 1%",
			Brand:       "The Ordinary",
			Price:       110000,
			Rating:      4.8,
			Reviews:     5600,
			Description: "A high-strength vitamin and mineral blemish formula. Niacinamide (Vitamin B3) is indicated to reduce the appearance of skin blemishes and congestion.",
			Category:    "Serum",
		},
		{
			ID:            7,
			Name:          "Clay Mask Pore Cleansing",
			Brand:         "Innisfree",
			Price:         190000,
			OriginalPrice: 220000,
			Rating:        4.7,
			Reviews:       900,
			Description:   "10-in-1 clay mask that is formulated with Jeju Volcanic Clusters & Spheres to provide intensive pore care.",
			Category:      "Mask",
			IsSale:        true,
		},
		{
			ID:          8,
			Name:        "Setting Spray Matte Finish",
			Brand:       "NYX",
			Price:       145000,
			Rating:      4.4,
			Reviews:     120,
			Description: "Demand perfection! For that fresh makeup look that lasts, the NYX Professional Makeup Matte Setting Spray - Matte is a gorgeous shine-free finish.",
			Category:    "Makeup",
		},
	}
}

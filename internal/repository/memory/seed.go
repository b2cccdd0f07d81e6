package memory

import "globemart-backend/internal/domain"

// SeedCatalog returns the demo catalog loaded into the memory store. Images
// are asset keys resolved against the configured asset origin.
func SeedCatalog() []domain.Product {
	return []domain.Product{
		{
			Name:          "MacBook Pro",
			Price:         2500,
			OriginalPrice: priceOf(2800),
			Image:         "photo-1647805256812-ccb927cf1f67",
			Country:       "USA",
			Flag:          "🇺🇸",
			Rating:        4.8,
			Reviews:       1250,
			Shipping:      "Free shipping",
			Category:      "Electronics",
		},
		{
			Name:          "Lamp Shade",
			Price:         25,
			OriginalPrice: priceOf(35),
			Image:         "photo-1694353560850-436cb191fb8c",
			Country:       "Italy",
			Flag:          "🇮🇹",
			Rating:        4.2,
			Reviews:       89,
			Shipping:      "$5.99 shipping",
			Category:      "Home & Garden",
		},
		{
			Name:          "Laser Printer",
			Price:         150,
			OriginalPrice: priceOf(199),
			Image:         "photo-1625961332771-3f40b0e2bdcf",
			Country:       "Japan",
			Flag:          "🇯🇵",
			Rating:        4.5,
			Reviews:       456,
			Shipping:      "Free shipping",
			Category:      "Electronics",
		},
		{
			Name:          "Laptop Stand",
			Price:         45,
			OriginalPrice: priceOf(60),
			Image:         "photo-1623251606108-512c7c4a3507",
			Country:       "Germany",
			Flag:          "🇩🇪",
			Rating:        4.3,
			Reviews:       234,
			Shipping:      "$3.99 shipping",
			Category:      "Electronics",
		},
		{
			Name:          "LED Light Bulb",
			Price:         12,
			OriginalPrice: priceOf(18),
			Image:         "photo-1553213134-f60afad82ceb",
			Country:       "China",
			Flag:          "🇨🇳",
			Rating:        4.1,
			Reviews:       567,
			Shipping:      "Free shipping",
			Category:      "Home & Garden",
		},
		{
			Name:          "Luggage Set",
			Price:         120,
			OriginalPrice: priceOf(160),
			Image:         "photo-1708403120467-1715bb6840df",
			Country:       "France",
			Flag:          "🇫🇷",
			Rating:        4.6,
			Reviews:       123,
			Shipping:      "$8.99 shipping",
			Category:      "Travel",
		},
		{
			Name:          "Camping Lantern",
			Price:         35,
			OriginalPrice: priceOf(50),
			Image:         "photo-1570739260082-39a84dae80c8",
			Country:       "Canada",
			Flag:          "🇨🇦",
			Rating:        4.4,
			Reviews:       198,
			Shipping:      "Free shipping",
			Category:      "Outdoor",
		},
	}
}

func priceOf(v float64) *float64 { return &v }

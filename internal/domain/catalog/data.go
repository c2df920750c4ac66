// internal/domain/catalog/data.go
package catalog

// seedProducts is the demo catalog. Product data is fixed; there is no
// persistence layer behind it.
func seedProducts() []Product {
	return []Product{
		{
			ID:            1,
			Name:          "Aletas Profesionales Cressi",
			Price:         149.99,
			Description:   "Aletas profesionales de fibra de carbono para freediving. Excelente propulsión y eficiencia.",
			Image:         "https://picsum.photos/500/400?random=1",
			Category:      CategoryFins,
			InStock:       true,
			StockQuantity: 15,
			Rating:        4.8,
			Reviews:       124,
			Variants: []Variant{
				{ID: 0, Color: "#1e40af", ColorName: "Azul Océano", Image: "https://picsum.photos/500/400?random=2", InStock: true, StockQuantity: 8},
				{ID: 1, Color: "#000000", ColorName: "Negro Profundo", Image: "https://picsum.photos/500/400?random=3", InStock: true, StockQuantity: 5},
				{ID: 2, Color: "#dc2626", ColorName: "Rojo Kraken", Image: "https://picsum.photos/500/400?random=4", InStock: false, StockQuantity: 0},
			},
		},
		{
			ID:            2,
			Name:          "Máscara Mares X-Vision",
			Price:         79.99,
			Sale:          &Sale{DiscountPercentage: 20},
			Description:   "Máscara de bajo volumen con cristal templado. Perfecta para freediving profundo.",
			Image:         "https://picsum.photos/500/400?random=5",
			Category:      CategoryMasks,
			InStock:       true,
			StockQuantity: 12,
			Rating:        4.9,
			Reviews:       89,
			Variants: []Variant{
				{ID: 0, Color: "#0ea5e9", ColorName: "Azul Claro", Image: "https://picsum.photos/500/400?random=6", InStock: true, StockQuantity: 4},
				{ID: 1, Color: "#000000", ColorName: "Negro", Image: "https://picsum.photos/500/400?random=7", InStock: true, StockQuantity: 6},
				{ID: 2, Color: "#ffffff", ColorName: "Blanco", Image: "https://picsum.photos/500/400?random=8", InStock: true, StockQuantity: 2},
			},
		},
		{
			ID:            3,
			Name:          "Tubo Cressi Alpha Ultra Dry",
			Price:         34.99,
			Description:   "Tubo de respiración con válvula de purga. Diseño ergonómico y cómodo.",
			Image:         "https://picsum.photos/500/400?random=9",
			Category:      CategorySnorkels,
			InStock:       true,
			StockQuantity: 8,
			Rating:        4.7,
			Reviews:       156,
		},
		{
			ID:            4,
			Name:          "Traje Neopreno Mares 3mm",
			Price:         189.99,
			Sale:          &Sale{DiscountPercentage: 15},
			Description:   "Traje de neopreno de alta calidad para aguas templadas. Excelente flexibilidad.",
			Image:         "https://picsum.photos/500/400?random=10",
			Category:      CategoryWetsuits,
			InStock:       true,
			StockQuantity: 6,
			Rating:        4.6,
			Reviews:       78,
		},
		{
			ID:            5,
			Name:          "Reloj Garmin Descent Mk2i",
			Price:         1199.99,
			Description:   "Reloj inteligente especializado para buceo con GPS y monitoreo de inmersión.",
			Image:         "https://picsum.photos/500/400?random=11",
			Category:      CategoryAccessories,
			InStock:       true,
			StockQuantity: 3,
			Rating:        4.9,
			Reviews:       45,
		},
		{
			ID:            6,
			Name:          "Aletas Beuchat Mundial",
			Price:         124.99,
			Description:   "Aletas clásicas de competición. Utilizadas por campeones mundiales.",
			Image:         "https://picsum.photos/500/400?random=12",
			Category:      CategoryFins,
			InStock:       true,
			StockQuantity: 22,
			Rating:        4.9,
			Reviews:       89,
		},
		{
			ID:            7,
			Name:          "Máscara Cressi F1",
			Price:         89.99,
			Description:   "Máscara ultra-compacta con tecnología de cristal anti-reflejo.",
			Image:         "https://picsum.photos/500/400?random=13",
			Category:      CategoryMasks,
			InStock:       false,
			StockQuantity: 0,
			Rating:        4.8,
			Reviews:       92,
		},
		{
			ID:            8,
			Name:          "Cuchillo Cressi Borg",
			Price:         45.99,
			Description:   "Cuchillo de seguridad con funda. Acero inoxidable de alta calidad.",
			Image:         "https://picsum.photos/500/400?random=14",
			Category:      CategoryAccessories,
			InStock:       true,
			StockQuantity: 18,
			Rating:        4.8,
			Reviews:       92,
		},
	}
}

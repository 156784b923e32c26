package catalog

// Seed dataset for the demo storefront. There is no backing catalog service;
// this is the whole inventory the UI renders.

var seedCategories = []Category{
	{
		ID:           "1",
		Name:         "Electronics",
		Slug:         "electronics",
		Description:  "Latest gadgets and tech essentials",
		Image:        "https://images.unsplash.com/photo-1498049794561-7780e7231661?w=600&q=80",
		ProductCount: 24,
	},
	{
		ID:           "2",
		Name:         "Fashion",
		Slug:         "fashion",
		Description:  "Trendy apparel and accessories",
		Image:        "https://images.unsplash.com/photo-1445205170230-053b83016050?w=600&q=80",
		ProductCount: 56,
	},
	{
		ID:           "3",
		Name:         "Home & Living",
		Slug:         "home-living",
		Description:  "Furniture and home decor",
		Image:        "https://images.unsplash.com/photo-1556909114-f6e7ad7d3136?w=600&q=80",
		ProductCount: 38,
	},
	{
		ID:           "4",
		Name:         "Sports",
		Slug:         "sports",
		Description:  "Athletic gear and equipment",
		Image:        "https://images.unsplash.com/photo-1461896836934-a4e4c0facc?w=600&q=80",
		ProductCount: 19,
	},
}

var seedProducts = []Product{
	{
		ID:            "1",
		Name:          "Premium Wireless Headphones",
		Description:   "Experience crystal-clear audio with our premium wireless headphones. Features active noise cancellation, 30-hour battery life, and premium comfort padding for extended listening sessions.",
		Price:         299.99,
		OriginalPrice: 349.99,
		Image:         "https://images.unsplash.com/photo-1505740420928-5e560c06d30e?w=600&q=80",
		Images: []string{
			"https://images.unsplash.com/photo-1505740420928-5e560c06d30e?w=600&q=80",
			"https://images.unsplash.com/photo-1484704849700-f032a568e944?w=600&q=80",
			"https://images.unsplash.com/photo-1524678606370-a47ad25cb82a?w=600&q=80",
		},
		Category:     "Electronics",
		CategorySlug: "electronics",
		Rating:       4.8,
		ReviewCount:  234,
		InStock:      true,
		Colors: []Color{
			{Name: "Midnight Black", Hex: "#1a1a1a"},
			{Name: "Cloud White", Hex: "#f5f5f5"},
			{Name: "Navy Blue", Hex: "#1e3a5f"},
		},
		Featured: true,
		IsNew:    true,
		IsSale:   true,
	},
	{
		ID:          "2",
		Name:        "Minimalist Leather Watch",
		Description: "A timeless piece that combines elegance with functionality. Crafted with genuine Italian leather and Swiss movement for precision timekeeping.",
		Price:       189.99,
		Image:       "https://images.unsplash.com/photo-1523275335684-37898b6baf30?w=600&q=80",
		Images: []string{
			"https://images.unsplash.com/photo-1523275335684-37898b6baf30?w=600&q=80",
			"https://images.unsplash.com/photo-1522312346375-d1a52e2b99b3?w=600&q=80",
		},
		Category:     "Fashion",
		CategorySlug: "fashion",
		Rating:       4.9,
		ReviewCount:  189,
		InStock:      true,
		Colors: []Color{
			{Name: "Brown", Hex: "#8B4513"},
			{Name: "Black", Hex: "#1a1a1a"},
		},
		Featured: true,
	},
	{
		ID:            "3",
		Name:          "Smart Home Speaker",
		Description:   "Transform your home with intelligent voice control. Premium 360° audio, smart home integration, and a sleek design that fits any room.",
		Price:         149.99,
		OriginalPrice: 179.99,
		Image:         "https://images.unsplash.com/photo-1558089687-f282ffcbc126?w=600&q=80",
		Images: []string{
			"https://images.unsplash.com/photo-1558089687-f282ffcbc126?w=600&q=80",
			"https://images.unsplash.com/photo-1545454675-3531b543be5d?w=600&q=80",
		},
		Category:     "Electronics",
		CategorySlug: "electronics",
		Rating:       4.6,
		ReviewCount:  312,
		InStock:      true,
		Colors: []Color{
			{Name: "Charcoal", Hex: "#36454F"},
			{Name: "Sand", Hex: "#C2B280"},
		},
		Featured: true,
		IsSale:   true,
	},
	{
		ID:          "4",
		Name:        "Canvas Backpack",
		Description: "Durable and stylish backpack perfect for daily commute or weekend adventures. Features water-resistant material and ergonomic design.",
		Price:       79.99,
		Image:       "https://images.unsplash.com/photo-1553062407-98eeb64c6a62?w=600&q=80",
		Images: []string{
			"https://images.unsplash.com/photo-1553062407-98eeb64c6a62?w=600&q=80",
			"https://images.unsplash.com/photo-1622560480605-d83c853bc5c3?w=600&q=80",
		},
		Category:     "Fashion",
		CategorySlug: "fashion",
		Rating:       4.5,
		ReviewCount:  156,
		InStock:      true,
		Colors: []Color{
			{Name: "Olive", Hex: "#556B2F"},
			{Name: "Navy", Hex: "#000080"},
			{Name: "Gray", Hex: "#808080"},
		},
		IsNew: true,
	},
	{
		ID:          "5",
		Name:        "Ceramic Table Lamp",
		Description: "Handcrafted ceramic lamp with warm ambient lighting. Perfect for creating a cozy atmosphere in any room.",
		Price:       129.99,
		Image:       "https://images.unsplash.com/photo-1507473885765-e6ed057f782c?w=600&q=80",
		Images: []string{
			"https://images.unsplash.com/photo-1507473885765-e6ed057f782c?w=600&q=80",
		},
		Category:     "Home & Living",
		CategorySlug: "home-living",
		Rating:       4.7,
		ReviewCount:  89,
		InStock:      true,
		Colors: []Color{
			{Name: "White", Hex: "#FFFFFF"},
			{Name: "Terra Cotta", Hex: "#E2725B"},
		},
		Featured: true,
	},
	{
		ID:            "6",
		Name:          "Running Shoes Pro",
		Description:   "Lightweight performance running shoes with responsive cushioning. Designed for both casual joggers and competitive athletes.",
		Price:         159.99,
		OriginalPrice: 189.99,
		Image:         "https://images.unsplash.com/photo-1542291026-7eec264c27ff?w=600&q=80",
		Images: []string{
			"https://images.unsplash.com/photo-1542291026-7eec264c27ff?w=600&q=80",
			"https://images.unsplash.com/photo-1460353581641-37baddab0fa2?w=600&q=80",
		},
		Category:     "Sports",
		CategorySlug: "sports",
		Rating:       4.8,
		ReviewCount:  445,
		InStock:      true,
		Sizes:        []string{"7", "8", "9", "10", "11", "12"},
		Colors: []Color{
			{Name: "Coral Red", Hex: "#FF6B6B"},
			{Name: "Ocean Blue", Hex: "#4ECDC4"},
			{Name: "Black", Hex: "#1a1a1a"},
		},
		Featured: true,
		IsNew:    true,
		IsSale:   true,
	},
	{
		ID:          "7",
		Name:        "Organic Cotton T-Shirt",
		Description: "Ultra-soft organic cotton t-shirt with a relaxed fit. Sustainably sourced and ethically manufactured.",
		Price:       39.99,
		Image:       "https://images.unsplash.com/photo-1521572163474-6864f9cf17ab?w=600&q=80",
		Images: []string{
			"https://images.unsplash.com/photo-1521572163474-6864f9cf17ab?w=600&q=80",
			"https://images.unsplash.com/photo-1583743814966-8936f5b7be1a?w=600&q=80",
		},
		Category:     "Fashion",
		CategorySlug: "fashion",
		Rating:       4.4,
		ReviewCount:  278,
		InStock:      true,
		Sizes:        []string{"XS", "S", "M", "L", "XL"},
		Colors: []Color{
			{Name: "White", Hex: "#FFFFFF"},
			{Name: "Black", Hex: "#1a1a1a"},
			{Name: "Heather Gray", Hex: "#9CA3AF"},
		},
	},
	{
		ID:          "8",
		Name:        "Smart Fitness Tracker",
		Description: "Track your fitness journey with precision. Features heart rate monitoring, sleep tracking, and 7-day battery life.",
		Price:       99.99,
		Image:       "https://images.unsplash.com/photo-1575311373937-040b8e1fd5b6?w=600&q=80",
		Images: []string{
			"https://images.unsplash.com/photo-1575311373937-040b8e1fd5b6?w=600&q=80",
		},
		Category:     "Electronics",
		CategorySlug: "electronics",
		Rating:       4.5,
		ReviewCount:  521,
		InStock:      true,
		Colors: []Color{
			{Name: "Black", Hex: "#1a1a1a"},
			{Name: "Rose Gold", Hex: "#B76E79"},
		},
		IsNew: true,
	},
}

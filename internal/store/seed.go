package store

import "freshmart_back_end/internal/models"

// Catalogue de démarrage : les catégories sont figées à l'initialisation,
// seuls les produits évoluent ensuite.

func initialCategories() []models.Category {
	return []models.Category{
		{ID: "1", Name: "Fruits & Vegetables", Icon: "🥕"},
		{ID: "2", Name: "Dairy & Eggs", Icon: "🥛"},
		{ID: "3", Name: "Meat & Seafood", Icon: "🥩"},
		{ID: "4", Name: "Bakery", Icon: "🍞"},
		{ID: "5", Name: "Beverages", Icon: "🥤"},
		{ID: "6", Name: "Snacks", Icon: "🍿"},
		{ID: "7", Name: "Pantry", Icon: "🥫"},
		{ID: "8", Name: "Frozen Foods", Icon: "🧊"},
		{ID: "9", Name: "Personal Care", Icon: "🧴"},
		{ID: "10", Name: "Household", Icon: "🧽"},
	}
}

func initialProducts() []models.Product {
	return []models.Product{
		{
			ID: "1", Name: "Fresh Bananas",
			Description: "Premium quality bananas, perfect for breakfast and smoothies",
			Price:       89, Category: "Fruits & Vegetables", Brand: "Fresh Farm",
			Image: "https://images.pexels.com/photos/2872755/pexels-photo-2872755.jpeg?auto=compress&cs=tinysrgb&w=400",
			Stock: 50, InStock: true, Rating: 4.5, Reviews: 128,
			Tags:          []string{"fresh", "organic", "potassium"},
			NutritionInfo: &models.NutritionInfo{Calories: 89, Protein: 1.1, Carbs: 22.8, Fat: 0.3},
		},
		{
			ID: "2", Name: "Red Apples",
			Description: "Crisp and sweet red apples, rich in fiber and vitamins",
			Price:       150, Category: "Fruits & Vegetables", Brand: "Orchard Fresh",
			Image: "https://images.pexels.com/photos/102104/pexels-photo-102104.jpeg?auto=compress&cs=tinysrgb&w=400",
			Stock: 75, InStock: true, Rating: 4.7, Reviews: 95,
			Tags:          []string{"fresh", "vitamin-c", "fiber"},
			NutritionInfo: &models.NutritionInfo{Calories: 52, Protein: 0.3, Carbs: 14, Fat: 0.2},
		},
		{
			ID: "3", Name: "Fresh Spinach",
			Description: "Organic spinach leaves, perfect for salads and cooking",
			Price:       45, Category: "Fruits & Vegetables", Brand: "Green Valley",
			Image: "https://images.pexels.com/photos/2325843/pexels-photo-2325843.jpeg?auto=compress&cs=tinysrgb&w=400",
			Stock: 30, InStock: true, Rating: 4.3, Reviews: 67,
			Tags:          []string{"organic", "iron", "leafy-green"},
			NutritionInfo: &models.NutritionInfo{Calories: 23, Protein: 2.9, Carbs: 3.6, Fat: 0.4},
		},
		{
			ID: "4", Name: "Organic Milk",
			Description: "Fresh organic whole milk, 1 liter pack",
			Price:       75, Category: "Dairy & Eggs", Brand: "Pure Dairy",
			Image: "https://images.pexels.com/photos/248412/pexels-photo-248412.jpeg?auto=compress&cs=tinysrgb&w=400",
			Stock: 25, InStock: true, Rating: 4.8, Reviews: 156,
			Tags:          []string{"organic", "calcium", "protein"},
			NutritionInfo: &models.NutritionInfo{Calories: 42, Protein: 3.4, Carbs: 5, Fat: 1},
		},
		{
			ID: "5", Name: "Farm Fresh Eggs",
			Description: "Free-range chicken eggs, pack of 12",
			Price:       120, Category: "Dairy & Eggs", Brand: "Happy Hens",
			Image: "https://images.pexels.com/photos/162712/egg-white-food-protein-162712.jpeg?auto=compress&cs=tinysrgb&w=400",
			Stock: 45, InStock: true, Rating: 4.7, Reviews: 134,
			Tags:          []string{"free-range", "protein", "omega-3"},
			NutritionInfo: &models.NutritionInfo{Calories: 155, Protein: 13, Carbs: 1.1, Fat: 11},
		},
		{
			ID: "6", Name: "Greek Yogurt",
			Description: "Thick and creamy Greek yogurt, 500g container",
			Price:       180, Category: "Dairy & Eggs", Brand: "Mediterranean",
			Image: "https://images.pexels.com/photos/1435735/pexels-photo-1435735.jpeg?auto=compress&cs=tinysrgb&w=400",
			Stock: 20, InStock: true, Rating: 4.6, Reviews: 98,
			Tags:          []string{"probiotic", "protein", "calcium"},
			NutritionInfo: &models.NutritionInfo{Calories: 59, Protein: 10, Carbs: 3.6, Fat: 0.4},
		},
		{
			ID: "7", Name: "Fresh Salmon",
			Description: "Atlantic salmon fillet, wild caught, 500g",
			Price:       650, Category: "Meat & Seafood", Brand: "Ocean Fresh",
			Image: "https://images.pexels.com/photos/1565982/pexels-photo-1565982.jpeg?auto=compress&cs=tinysrgb&w=400",
			Stock: 15, InStock: true, Rating: 4.9, Reviews: 87,
			Tags:          []string{"wild-caught", "omega-3", "protein"},
			NutritionInfo: &models.NutritionInfo{Calories: 208, Protein: 20, Carbs: 0, Fat: 13},
		},
		{
			ID: "8", Name: "Chicken Breast",
			Description: "Boneless chicken breast, 1kg pack",
			Price:       320, Category: "Meat & Seafood", Brand: "Farm Chicken",
			Image: "https://images.pexels.com/photos/2338407/pexels-photo-2338407.jpeg?auto=compress&cs=tinysrgb&w=400",
			Stock: 25, InStock: true, Rating: 4.4, Reviews: 112,
			Tags:          []string{"lean", "protein", "boneless"},
			NutritionInfo: &models.NutritionInfo{Calories: 165, Protein: 31, Carbs: 0, Fat: 3.6},
		},
		{
			ID: "9", Name: "Artisan Bread",
			Description: "Fresh baked sourdough bread, 500g loaf",
			Price:       85, Category: "Bakery", Brand: "Baker's Choice",
			Image: "https://images.pexels.com/photos/1586947/pexels-photo-1586947.jpeg?auto=compress&cs=tinysrgb&w=400",
			Stock: 20, InStock: true, Rating: 4.7, Reviews: 143,
			Tags:          []string{"artisan", "sourdough", "fresh-baked"},
			NutritionInfo: &models.NutritionInfo{Calories: 265, Protein: 9, Carbs: 49, Fat: 3.2},
		},
		{
			ID: "10", Name: "Orange Juice",
			Description: "Fresh squeezed orange juice, no pulp, 1 liter",
			Price:       120, Category: "Beverages", Brand: "Citrus Fresh",
			Image: "https://images.pexels.com/photos/1640774/pexels-photo-1640774.jpeg?auto=compress&cs=tinysrgb&w=400",
			Stock: 30, InStock: true, Rating: 4.5, Reviews: 156,
			Tags:          []string{"fresh", "vitamin-c", "no-pulp"},
			NutritionInfo: &models.NutritionInfo{Calories: 45, Protein: 0.7, Carbs: 10.4, Fat: 0.2},
		},
		{
			ID: "11", Name: "Green Tea",
			Description: "Premium green tea bags, pack of 25",
			Price:       180, Category: "Beverages", Brand: "Tea Garden",
			Image: "https://images.pexels.com/photos/1638280/pexels-photo-1638280.jpeg?auto=compress&cs=tinysrgb&w=400",
			Stock: 40, InStock: true, Rating: 4.6, Reviews: 203,
			Tags:          []string{"antioxidants", "premium", "healthy"},
			NutritionInfo: &models.NutritionInfo{Calories: 2},
		},
		{
			ID: "12", Name: "Mixed Nuts",
			Description: "Premium mixed nuts, lightly salted, 250g pack",
			Price:       320, Category: "Snacks", Brand: "Nutty Delights",
			Image: "https://images.pexels.com/photos/1295572/pexels-photo-1295572.jpeg?auto=compress&cs=tinysrgb&w=400",
			Stock: 40, InStock: true, Rating: 4.7, Reviews: 189,
			Tags:          []string{"premium", "protein", "healthy-fats"},
			NutritionInfo: &models.NutritionInfo{Calories: 607, Protein: 20, Carbs: 16, Fat: 54},
		},
		{
			ID: "13", Name: "Olive Oil",
			Description: "Extra virgin olive oil, cold pressed, 500ml",
			Price:       450, Category: "Pantry", Brand: "Mediterranean Gold",
			Image: "https://images.pexels.com/photos/33783/olive-oil-salad-dressing-cooking-olive.jpg?auto=compress&cs=tinysrgb&w=400",
			Stock: 35, InStock: true, Rating: 4.9, Reviews: 145,
			Tags:          []string{"extra-virgin", "cold-pressed", "premium"},
			NutritionInfo: &models.NutritionInfo{Calories: 884, Fat: 100},
		},
		{
			ID: "14", Name: "Frozen Berries",
			Description: "Mixed frozen berries, 500g pack",
			Price:       280, Category: "Frozen Foods", Brand: "Arctic Fresh",
			Image: "https://images.pexels.com/photos/1841555/pexels-photo-1841555.jpeg?auto=compress&cs=tinysrgb&w=400",
			Stock: 22, InStock: true, Rating: 4.5, Reviews: 98,
			Tags:          []string{"mixed", "antioxidants", "vitamin-c"},
			NutritionInfo: &models.NutritionInfo{Calories: 57, Protein: 0.7, Carbs: 14, Fat: 0.3},
		},
		{
			ID: "15", Name: "Organic Shampoo",
			Description: "Natural organic shampoo for all hair types, 300ml",
			Price:       320, Category: "Personal Care", Brand: "Nature's Care",
			Image: "https://images.pexels.com/photos/4465124/pexels-photo-4465124.jpeg?auto=compress&cs=tinysrgb&w=400",
			Stock: 25, InStock: true, Rating: 4.6, Reviews: 89,
			Tags:  []string{"organic", "natural", "sulfate-free"},
		},
		{
			ID: "16", Name: "Dish Soap",
			Description: "Concentrated dish soap, lemon scented, 500ml",
			Price:       95, Category: "Household", Brand: "Clean Master",
			Image: "https://images.pexels.com/photos/4465124/pexels-photo-4465124.jpeg?auto=compress&cs=tinysrgb&w=400",
			Stock: 35, InStock: true, Rating: 4.3, Reviews: 123,
			Tags:  []string{"concentrated", "lemon", "grease-cutting"},
		},
	}
}

package catalog

import "mcp-diet-plan/internal/models"

// plans is the literal nutrition taxonomy: condition type, status tier,
// adherence class, meal slot, three items each.
var plans = map[Key]Plan{
	{models.Type1, models.StatusLow}: {
		models.Mandatory: {
			models.Breakfast: {
				{Icon: "🥛", Label: "Milk + oats", Kcal: 220, GI: 55},
				{Icon: "🍌", Label: "Banana", Kcal: 100, GI: 51},
				{Icon: "🍓", Label: "Berries", Kcal: 60, GI: 25},
			},
			models.Lunch: {
				{Icon: "🍚", Label: "Brown rice & dal", Kcal: 420, GI: 55},
				{Icon: "🥗", Label: "Veg salad", Kcal: 150, GI: 15},
				{Icon: "🥕", Label: "Boiled veggies", Kcal: 80, GI: 15},
			},
			models.Dinner: {
				{Icon: "🥣", Label: "Soup + chapati", Kcal: 320, GI: 52},
				{Icon: "🥦", Label: "Steamed broccoli", Kcal: 70, GI: 15},
				{Icon: "🍅", Label: "Tomato salad", Kcal: 60, GI: 15},
			},
			models.Snacks: {
				{Icon: "🍎", Label: "Apple", Kcal: 95, GI: 36},
				{Icon: "🥜", Label: "Roasted nuts", Kcal: 140, GI: 15},
				{Icon: "🥛", Label: "Low-fat milk", Kcal: 90, GI: 31},
			},
		},
		models.Moderate: {
			models.Breakfast: {
				{Icon: "🍞", Label: "Toast + peanut butter", Kcal: 260, GI: 15},
				{Icon: "🥚", Label: "Boiled egg", Kcal: 80, GI: 0},
				{Icon: "🍎", Label: "Apple", Kcal: 95, GI: 36},
			},
			models.Lunch: {
				{Icon: "🥘", Label: "Veg pulao small", Kcal: 330, GI: 70},
				{Icon: "🥗", Label: "Curd", Kcal: 100, GI: 33},
				{Icon: "🥕", Label: "Salad", Kcal: 70, GI: 15},
			},
			models.Dinner: {
				{Icon: "🍛", Label: "Light curry + roti", Kcal: 340, GI: 62},
				{Icon: "🥣", Label: "Soup", Kcal: 100, GI: 20},
				{Icon: "🍆", Label: "Grilled brinjal", Kcal: 80, GI: 50},
			},
			models.Snacks: {
				{Icon: "🍌", Label: "Banana", Kcal: 105, GI: 51},
				{Icon: "🥜", Label: "Peanuts", Kcal: 130, GI: 15},
				{Icon: "🍊", Label: "Orange", Kcal: 80, GI: 44},
			},
		},
		models.HighIntake: {
			models.Breakfast: {
				{Icon: "🥐", Label: "Pastry", Kcal: 420, GI: 76},
				{Icon: "🥞", Label: "Pancake", Kcal: 400, GI: 76},
				{Icon: "🥤", Label: "Milkshake", Kcal: 350, GI: 31},
			},
			models.Lunch: {
				{Icon: "🍔", Label: "Burger", Kcal: 650, GI: 60},
				{Icon: "🍟", Label: "Fries", Kcal: 400, GI: 75},
				{Icon: "🥓", Label: "Fried bacon", Kcal: 300, GI: 50},
			},
			models.Dinner: {
				{Icon: "🍕", Label: "Pizza", Kcal: 600, GI: 60},
				{Icon: "🍝", Label: "Pasta", Kcal: 480, GI: 65},
				{Icon: "🍗", Label: "Fried chicken", Kcal: 500, GI: 50},
			},
			models.Snacks: {
				{Icon: "🍫", Label: "Chocolate", Kcal: 230, GI: 40},
				{Icon: "🍩", Label: "Donut", Kcal: 290, GI: 76},
				{Icon: "🥤", Label: "Soda", Kcal: 180, GI: 65},
			},
		},
	},
	{models.Type1, models.StatusNormal}: {
		models.Mandatory: {
			models.Breakfast: {
				{Icon: "🥣", Label: "Oats porridge", Kcal: 250, GI: 55},
				{Icon: "🥚", Label: "Boiled eggs", Kcal: 155, GI: 0},
				{Icon: "🍊", Label: "Orange", Kcal: 80, GI: 44},
			},
			models.Lunch: {
				{Icon: "🥗", Label: "Grilled chicken salad", Kcal: 350, GI: 15},
				{Icon: "🍚", Label: "Brown rice", Kcal: 400, GI: 55},
				{Icon: "🥬", Label: "Spinach curry", Kcal: 120, GI: 15},
			},
			models.Dinner: {
				{Icon: "🐟", Label: "Steamed fish + veggies", Kcal: 380, GI: 15},
				{Icon: "🥣", Label: "Soup", Kcal: 100, GI: 20},
				{Icon: "🥕", Label: "Boiled veggies", Kcal: 80, GI: 15},
			},
			models.Snacks: {
				{Icon: "🍎", Label: "Apple + nuts", Kcal: 120, GI: 36},
				{Icon: "🥛", Label: "Yogurt", Kcal: 100, GI: 33},
				{Icon: "🍌", Label: "Banana", Kcal: 105, GI: 51},
			},
		},
		models.Moderate: {
			models.Breakfast: {
				{Icon: "🍞", Label: "Multigrain toast", Kcal: 200, GI: 52},
				{Icon: "🥚", Label: "Omelet", Kcal: 130, GI: 50},
				{Icon: "🥛", Label: "Milk", Kcal: 100, GI: 31},
			},
			models.Lunch: {
				{Icon: "🥘", Label: "Roti + sabzi", Kcal: 330, GI: 62},
				{Icon: "🥗", Label: "Curd", Kcal: 90, GI: 33},
				{Icon: "🥦", Label: "Salad", Kcal: 70, GI: 15},
			},
			models.Dinner: {
				{Icon: "🥟", Label: "Paneer paratha small", Kcal: 360, GI: 10},
				{Icon: "🥣", Label: "Soup", Kcal: 90, GI: 20},
				{Icon: "🥕", Label: "Veg curry", Kcal: 100, GI: 50},
			},
			models.Snacks: {
				{Icon: "🍌", Label: "Banana", Kcal: 105, GI: 51},
				{Icon: "🍊", Label: "Orange", Kcal: 80, GI: 44},
				{Icon: "🥜", Label: "Nuts", Kcal: 130, GI: 15},
			},
		},
		models.HighIntake: {
			models.Breakfast: {
				{Icon: "🥐", Label: "Sweet bun", Kcal: 380, GI: 76},
				{Icon: "🥞", Label: "Pancake", Kcal: 420, GI: 76},
				{Icon: "🥤", Label: "Soda", Kcal: 180, GI: 65},
			},
			models.Lunch: {
				{Icon: "🍜", Label: "Fried rice", Kcal: 520, GI: 65},
				{Icon: "🍟", Label: "French fries", Kcal: 450, GI: 75},
				{Icon: "🍔", Label: "Burger", Kcal: 650, GI: 60},
			},
			models.Dinner: {
				{Icon: "🍕", Label: "Pizza", Kcal: 600, GI: 60},
				{Icon: "🍝", Label: "Cream pasta", Kcal: 500, GI: 65},
				{Icon: "🍗", Label: "Fried chicken", Kcal: 480, GI: 50},
			},
			models.Snacks: {
				{Icon: "🥤", Label: "Soda", Kcal: 180, GI: 65},
				{Icon: "🍩", Label: "Donut", Kcal: 290, GI: 76},
				{Icon: "🍫", Label: "Chocolate", Kcal: 230, GI: 40},
			},
		},
	},
	{models.Type1, models.StatusHigh}: {
		models.Mandatory: {
			models.Breakfast: {
				{Icon: "🥣", Label: "Oats with milk", Kcal: 220, GI: 55},
				{Icon: "🍎", Label: "Apple", Kcal: 95, GI: 36},
				{Icon: "🍓", Label: "Berries", Kcal: 60, GI: 25},
			},
			models.Lunch: {
				{Icon: "🥗", Label: "Veg salad", Kcal: 180, GI: 15},
				{Icon: "🥦", Label: "Boiled veggies", Kcal: 200, GI: 15},
				{Icon: "🥕", Label: "Soup bowl", Kcal: 90, GI: 20},
			},
			models.Dinner: {
				{Icon: "🥦", Label: "Boiled veggies", Kcal: 200, GI: 15},
				{Icon: "🍚", Label: "Small rice", Kcal: 200, GI: 89},
				{Icon: "🥣", Label: "Soup", Kcal: 100, GI: 20},
			},
			models.Snacks: {
				{Icon: "🍊", Label: "Orange", Kcal: 80, GI: 44},
				{Icon: "🥜", Label: "Nuts", Kcal: 130, GI: 15},
				{Icon: "🍎", Label: "Apple", Kcal: 95, GI: 36},
			},
		},
		models.Moderate: {
			models.Breakfast: {
				{Icon: "🍞", Label: "Chapati", Kcal: 220, GI: 52},
				{Icon: "🥚", Label: "Boiled egg", Kcal: 80, GI: 0},
				{Icon: "🍊", Label: "Orange", Kcal: 80, GI: 44},
			},
			models.Lunch: {
				{Icon: "🍛", Label: "Veg rice small", Kcal: 300, GI: 70},
				{Icon: "🥗", Label: "Salad", Kcal: 90, GI: 15},
				{Icon: "🥣", Label: "Dal", Kcal: 100, GI: 32},
			},
			models.Dinner: {
				{Icon: "🍲", Label: "Soup", Kcal: 200, GI: 20},
				{Icon: "🥕", Label: "Boiled carrot", Kcal: 60, GI: 50},
				{Icon: "🥬", Label: "Veg curry", Kcal: 80, GI: 50},
			},
			models.Snacks: {
				{Icon: "🍌", Label: "Banana", Kcal: 105, GI: 51},
				{Icon: "🥛", Label: "Milk", Kcal: 90, GI: 31},
				{Icon: "🍎", Label: "Apple", Kcal: 95, GI: 36},
			},
		},
		models.HighIntake: {
			models.Breakfast: {
				{Icon: "🥞", Label: "Pancake", Kcal: 400, GI: 76},
				{Icon: "🥐", Label: "Pastry", Kcal: 420, GI: 76},
				{Icon: "🥤", Label: "Soda", Kcal: 180, GI: 65},
			},
			models.Lunch: {
				{Icon: "🍔", Label: "Burger", Kcal: 600, GI: 60},
				{Icon: "🍟", Label: "Fries", Kcal: 450, GI: 75},
				{Icon: "🍕", Label: "Pizza", Kcal: 600, GI: 60},
			},
			models.Dinner: {
				{Icon: "🍟", Label: "Fried snacks", Kcal: 450, GI: 50},
				{Icon: "🍝", Label: "Pasta", Kcal: 500, GI: 65},
				{Icon: "🍗", Label: "Fried chicken", Kcal: 480, GI: 50},
			},
			models.Snacks: {
				{Icon: "🍫", Label: "Chocolate", Kcal: 230, GI: 40},
				{Icon: "🍩", Label: "Donut", Kcal: 290, GI: 76},
				{Icon: "🥤", Label: "Soda", Kcal: 180, GI: 65},
			},
		},
	},
	{models.Type2, models.StatusLow}: {
		models.Mandatory: {
			models.Breakfast: {
				{Icon: "🥣", Label: "Oats + milk", Kcal: 230, GI: 55},
				{Icon: "🍌", Label: "Banana", Kcal: 100, GI: 51},
				{Icon: "🍓", Label: "Berries", Kcal: 60, GI: 25},
			},
			models.Lunch: {
				{Icon: "🍚", Label: "Brown rice + dal", Kcal: 420, GI: 55},
				{Icon: "🥗", Label: "Veg salad", Kcal: 150, GI: 15},
				{Icon: "🥬", Label: "Spinach curry", Kcal: 120, GI: 15},
			},
			models.Dinner: {
				{Icon: "🥗", Label: "Veg salad", Kcal: 160, GI: 15},
				{Icon: "🥣", Label: "Soup", Kcal: 100, GI: 20},
				{Icon: "🥦", Label: "Boiled veggies", Kcal: 90, GI: 15},
			},
			models.Snacks: {
				{Icon: "🍎", Label: "Apple", Kcal: 95, GI: 36},
				{Icon: "🥜", Label: "Nuts", Kcal: 130, GI: 15},
				{Icon: "🍊", Label: "Orange", Kcal: 80, GI: 44},
			},
		},
		models.Moderate: {
			models.Breakfast: {
				{Icon: "🍞", Label: "Chapati", Kcal: 220, GI: 52},
				{Icon: "🥛", Label: "Milk", Kcal: 90, GI: 31},
				{Icon: "🍎", Label: "Apple", Kcal: 95, GI: 36},
			},
			models.Lunch: {
				{Icon: "🥘", Label: "White rice small", Kcal: 310, GI: 89},
				{Icon: "🍛", Label: "Curry", Kcal: 130, GI: 50},
				{Icon: "🥗", Label: "Salad", Kcal: 90, GI: 15},
			},
			models.Dinner: {
				{Icon: "🍛", Label: "Curry + roti", Kcal: 340, GI: 62},
				{Icon: "🥣", Label: "Soup", Kcal: 100, GI: 20},
				{Icon: "🥕", Label: "Boiled veggies", Kcal: 80, GI: 15},
			},
			models.Snacks: {
				{Icon: "🍌", Label: "Banana", Kcal: 105, GI: 51},
				{Icon: "🥜", Label: "Peanuts", Kcal: 130, GI: 15},
				{Icon: "🍊", Label: "Orange", Kcal: 80, GI: 44},
			},
		},
		models.HighIntake: {
			models.Breakfast: {
				{Icon: "🥐", Label: "Pastry", Kcal: 420, GI: 76},
				{Icon: "🥞", Label: "Pancake", Kcal: 400, GI: 76},
				{Icon: "🥤", Label: "Milkshake", Kcal: 350, GI: 31},
			},
			models.Lunch: {
				{Icon: "🍔", Label: "Burger", Kcal: 650, GI: 60},
				{Icon: "🍟", Label: "French fries", Kcal: 450, GI: 75},
				{Icon: "🍝", Label: "Cream pasta", Kcal: 500, GI: 65},
			},
			models.Dinner: {
				{Icon: "🍕", Label: "Pizza", Kcal: 600, GI: 60},
				{Icon: "🍗", Label: "Fried chicken", Kcal: 480, GI: 50},
				{Icon: "🍟", Label: "Fried snacks", Kcal: 450, GI: 50},
			},
			models.Snacks: {
				{Icon: "🍫", Label: "Chocolate", Kcal: 230, GI: 40},
				{Icon: "🍩", Label: "Donut", Kcal: 290, GI: 76},
				{Icon: "🥤", Label: "Soda", Kcal: 180, GI: 65},
			},
		},
	},
	{models.Type2, models.StatusNormal}: {
		models.Mandatory: {
			models.Breakfast: {
				{Icon: "🥣", Label: "Oats", Kcal: 250, GI: 55},
				{Icon: "🥚", Label: "Eggs", Kcal: 150, GI: 0},
				{Icon: "🍊", Label: "Orange", Kcal: 80, GI: 44},
			},
			models.Lunch: {
				{Icon: "🥗", Label: "Brown rice + dal", Kcal: 420, GI: 55},
				{Icon: "🥬", Label: "Spinach curry", Kcal: 120, GI: 15},
				{Icon: "🥕", Label: "Boiled veggies", Kcal: 80, GI: 15},
			},
			models.Dinner: {
				{Icon: "🥬", Label: "Veg stir-fry", Kcal: 320, GI: 50},
				{Icon: "🥣", Label: "Soup", Kcal: 90, GI: 20},
				{Icon: "🍚", Label: "Small rice", Kcal: 200, GI: 89},
			},
			models.Snacks: {
				{Icon: "🍎", Label: "Apple + nuts", Kcal: 130, GI: 36},
				{Icon: "🥛", Label: "Yogurt", Kcal: 100, GI: 33},
				{Icon: "🍌", Label: "Banana", Kcal: 105, GI: 51},
			},
		},
		models.Moderate: {
			models.Breakfast: {
				{Icon: "🍞", Label: "Chapati", Kcal: 220, GI: 52},
				{Icon: "🥚", Label: "Boiled egg", Kcal: 80, GI: 0},
				{Icon: "🥛", Label: "Milk", Kcal: 100, GI: 31},
			},
			models.Lunch: {
				{Icon: "🥘", Label: "Veg pulao", Kcal: 330, GI: 70},
				{Icon: "🥗", Label: "Curd", Kcal: 90, GI: 33},
				{Icon: "🥕", Label: "Salad", Kcal: 70, GI: 15},
			},
			models.Dinner: {
				{Icon: "🍛", Label: "Roti + sabzi", Kcal: 340, GI: 62},
				{Icon: "🥣", Label: "Soup", Kcal: 90, GI: 20},
				{Icon: "🥬", Label: "Boiled veggies", Kcal: 80, GI: 15},
			},
			models.Snacks: {
				{Icon: "🍌", Label: "Banana", Kcal: 105, GI: 51},
				{Icon: "🍊", Label: "Orange", Kcal: 80, GI: 44},
				{Icon: "🥜", Label: "Nuts", Kcal: 130, GI: 15},
			},
		},
		models.HighIntake: {
			models.Breakfast: {
				{Icon: "🥐", Label: "Sweet bun", Kcal: 380, GI: 76},
				{Icon: "🥞", Label: "Pancake", Kcal: 420, GI: 76},
				{Icon: "🥤", Label: "Soda", Kcal: 180, GI: 65},
			},
			models.Lunch: {
				{Icon: "🍜", Label: "Fried rice", Kcal: 520, GI: 65},
				{Icon: "🍟", Label: "French fries", Kcal: 450, GI: 75},
				{Icon: "🍔", Label: "Burger", Kcal: 650, GI: 60},
			},
			models.Dinner: {
				{Icon: "🍕", Label: "Pizza", Kcal: 600, GI: 60},
				{Icon: "🍝", Label: "Cream pasta", Kcal: 500, GI: 65},
				{Icon: "🍗", Label: "Fried chicken", Kcal: 480, GI: 50},
			},
			models.Snacks: {
				{Icon: "🥤", Label: "Soda", Kcal: 180, GI: 65},
				{Icon: "🍩", Label: "Donut", Kcal: 290, GI: 76},
				{Icon: "🍫", Label: "Chocolate", Kcal: 230, GI: 40},
			},
		},
	},
	{models.Type2, models.StatusHigh}: {
		models.Mandatory: {
			models.Breakfast: {
				{Icon: "🥛", Label: "Milk + oats", Kcal: 210, GI: 55},
				{Icon: "🍎", Label: "Apple", Kcal: 95, GI: 36},
				{Icon: "🍓", Label: "Berries", Kcal: 60, GI: 25},
			},
			models.Lunch: {
				{Icon: "🥗", Label: "Veg salad", Kcal: 180, GI: 15},
				{Icon: "🥦", Label: "Boiled veggies", Kcal: 200, GI: 15},
				{Icon: "🥣", Label: "Soup", Kcal: 100, GI: 20},
			},
			models.Dinner: {
				{Icon: "🥦", Label: "Steamed veggies", Kcal: 200, GI: 15},
				{Icon: "🥕", Label: "Soup bowl", Kcal: 100, GI: 20},
				{Icon: "🍚", Label: "Small rice", Kcal: 200, GI: 89},
			},
			models.Snacks: {
				{Icon: "🍊", Label: "Orange", Kcal: 80, GI: 44},
				{Icon: "🥜", Label: "Nuts", Kcal: 130, GI: 15},
				{Icon: "🍎", Label: "Apple", Kcal: 95, GI: 36},
			},
		},
		models.Moderate: {
			models.Breakfast: {
				{Icon: "🍞", Label: "Chapati", Kcal: 220, GI: 52},
				{Icon: "🥚", Label: "Boiled egg", Kcal: 80, GI: 0},
				{Icon: "🍊", Label: "Orange", Kcal: 80, GI: 44},
			},
			models.Lunch: {
				{Icon: "🍛", Label: "Small rice portion", Kcal: 300, GI: 89},
				{Icon: "🥗", Label: "Salad", Kcal: 90, GI: 15},
				{Icon: "🥣", Label: "Dal", Kcal: 100, GI: 32},
			},
			models.Dinner: {
				{Icon: "🍲", Label: "Soup", Kcal: 200, GI: 20},
				{Icon: "🥕", Label: "Boiled carrot", Kcal: 60, GI: 50},
				{Icon: "🥬", Label: "Veg curry", Kcal: 80, GI: 50},
			},
			models.Snacks: {
				{Icon: "🍌", Label: "Banana", Kcal: 105, GI: 51},
				{Icon: "🥛", Label: "Milk", Kcal: 90, GI: 31},
				{Icon: "🍎", Label: "Apple", Kcal: 95, GI: 36},
			},
		},
		models.HighIntake: {
			models.Breakfast: {
				{Icon: "🥞", Label: "Pancake", Kcal: 400, GI: 76},
				{Icon: "🥐", Label: "Pastry", Kcal: 420, GI: 76},
				{Icon: "🥤", Label: "Soda", Kcal: 180, GI: 65},
			},
			models.Lunch: {
				{Icon: "🍔", Label: "Burger", Kcal: 600, GI: 60},
				{Icon: "🍟", Label: "Fries", Kcal: 450, GI: 75},
				{Icon: "🍕", Label: "Pizza", Kcal: 600, GI: 60},
			},
			models.Dinner: {
				{Icon: "🍟", Label: "Fried snacks", Kcal: 450, GI: 50},
				{Icon: "🍝", Label: "Pasta", Kcal: 500, GI: 65},
				{Icon: "🍗", Label: "Fried chicken", Kcal: 480, GI: 50},
			},
			models.Snacks: {
				{Icon: "🍫", Label: "Chocolate", Kcal: 230, GI: 40},
				{Icon: "🍩", Label: "Donut", Kcal: 290, GI: 76},
				{Icon: "🥤", Label: "Soda", Kcal: 180, GI: 65},
			},
		},
	},
	{models.Gestational, models.StatusLow}: {
		models.Mandatory: {
			models.Breakfast: {
				{Icon: "🥣", Label: "Oats with milk", Kcal: 220, GI: 55},
				{Icon: "🍌", Label: "Banana", Kcal: 100, GI: 51},
				{Icon: "🍓", Label: "Berries", Kcal: 60, GI: 25},
			},
			models.Lunch: {
				{Icon: "🍚", Label: "Brown rice", Kcal: 400, GI: 55},
				{Icon: "🥗", Label: "Veg curry", Kcal: 280, GI: 50},
				{Icon: "🥬", Label: "Spinach curry", Kcal: 120, GI: 15},
			},
			models.Dinner: {
				{Icon: "🥗", Label: "Veg curry", Kcal: 280, GI: 50},
				{Icon: "🥣", Label: "Soup", Kcal: 90, GI: 20},
				{Icon: "🥕", Label: "Boiled veggies", Kcal: 80, GI: 15},
			},
			models.Snacks: {
				{Icon: "🍎", Label: "Apple", Kcal: 95, GI: 36},
				{Icon: "🥜", Label: "Nuts", Kcal: 130, GI: 15},
				{Icon: "🍊", Label: "Orange", Kcal: 80, GI: 44},
			},
		},
		models.Moderate: {
			models.Breakfast: {
				{Icon: "🍞", Label: "Chapati", Kcal: 210, GI: 52},
				{Icon: "🥛", Label: "Milk", Kcal: 90, GI: 31},
				{Icon: "🍎", Label: "Apple", Kcal: 95, GI: 36},
			},
			models.Lunch: {
				{Icon: "🥘", Label: "Small pulao", Kcal: 320, GI: 70},
				{Icon: "🥗", Label: "Curd", Kcal: 90, GI: 33},
				{Icon: "🥕", Label: "Salad", Kcal: 70, GI: 15},
			},
			models.Dinner: {
				{Icon: "🍛", Label: "Roti + sabzi", Kcal: 340, GI: 62},
				{Icon: "🥣", Label: "Soup", Kcal: 100, GI: 20},
				{Icon: "🥬", Label: "Veg curry", Kcal: 90, GI: 50},
			},
			models.Snacks: {
				{Icon: "🍌", Label: "Banana", Kcal: 105, GI: 51},
				{Icon: "🥜", Label: "Peanuts", Kcal: 130, GI: 15},
				{Icon: "🍊", Label: "Orange", Kcal: 80, GI: 44},
			},
		},
		models.HighIntake: {
			models.Breakfast: {
				{Icon: "🥐", Label: "Cake", Kcal: 400, GI: 76},
				{Icon: "🥞", Label: "Pancake", Kcal: 420, GI: 76},
				{Icon: "🥤", Label: "Milkshake", Kcal: 350, GI: 31},
			},
			models.Lunch: {
				{Icon: "🍔", Label: "Burger", Kcal: 650, GI: 60},
				{Icon: "🍟", Label: "Fries", Kcal: 450, GI: 75},
				{Icon: "🍕", Label: "Pizza", Kcal: 600, GI: 60},
			},
			models.Dinner: {
				{Icon: "🍕", Label: "Pizza", Kcal: 600, GI: 60},
				{Icon: "🍝", Label: "Pasta", Kcal: 500, GI: 65},
				{Icon: "🍗", Label: "Fried chicken", Kcal: 480, GI: 50},
			},
			models.Snacks: {
				{Icon: "🍫", Label: "Chocolate", Kcal: 230, GI: 40},
				{Icon: "🍩", Label: "Donut", Kcal: 290, GI: 76},
				{Icon: "🥤", Label: "Soda", Kcal: 180, GI: 65},
			},
		},
	},
	{models.Gestational, models.StatusNormal}: {
		models.Mandatory: {
			models.Breakfast: {
				{Icon: "🥣", Label: "Oats + milk", Kcal: 240, GI: 55},
				{Icon: "🍌", Label: "Banana", Kcal: 100, GI: 51},
				{Icon: "🍓", Label: "Berries", Kcal: 60, GI: 25},
			},
			models.Lunch: {
				{Icon: "🥗", Label: "Veg salad + chapati", Kcal: 350, GI: 52},
				{Icon: "🥬", Label: "Curry", Kcal: 150, GI: 50},
				{Icon: "🍚", Label: "Brown rice", Kcal: 380, GI: 55},
			},
			models.Dinner: {
				{Icon: "🥘", Label: "Rice + dal", Kcal: 380, GI: 32},
				{Icon: "🥣", Label: "Soup", Kcal: 90, GI: 20},
				{Icon: "🥕", Label: "Boiled veggies", Kcal: 80, GI: 15},
			},
			models.Snacks: {
				{Icon: "🍊", Label: "Orange", Kcal: 80, GI: 44},
				{Icon: "🥛", Label: "Yogurt", Kcal: 100, GI: 33},
				{Icon: "🍎", Label: "Apple", Kcal: 95, GI: 36},
			},
		},
		models.Moderate: {
			models.Breakfast: {
				{Icon: "🍞", Label: "Toast + milk", Kcal: 230, GI: 31},
				{Icon: "🥚", Label: "Boiled egg", Kcal: 80, GI: 0},
				{Icon: "🍎", Label: "Apple", Kcal: 95, GI: 36},
			},
			models.Lunch: {
				{Icon: "🍛", Label: "Small rice", Kcal: 310, GI: 89},
				{Icon: "🥗", Label: "Curd", Kcal: 90, GI: 33},
				{Icon: "🥕", Label: "Salad", Kcal: 70, GI: 15},
			},
			models.Dinner: {
				{Icon: "🥟", Label: "Paratha small", Kcal: 360, GI: 50},
				{Icon: "🥣", Label: "Soup", Kcal: 100, GI: 20},
				{Icon: "🥬", Label: "Veg curry", Kcal: 80, GI: 50},
			},
			models.Snacks: {
				{Icon: "🍌", Label: "Banana", Kcal: 105, GI: 51},
				{Icon: "🥜", Label: "Nuts", Kcal: 130, GI: 15},
				{Icon: "🍊", Label: "Orange", Kcal: 80, GI: 44},
			},
		},
		models.HighIntake: {
			models.Breakfast: {
				{Icon: "🥐", Label: "Pastry", Kcal: 420, GI: 76},
				{Icon: "🥞", Label: "Pancake", Kcal: 400, GI: 76},
				{Icon: "🥤", Label: "Milkshake", Kcal: 350, GI: 31},
			},
			models.Lunch: {
				{Icon: "🍜", Label: "Fried rice", Kcal: 520, GI: 65},
				{Icon: "🍟", Label: "Fries", Kcal: 450, GI: 75},
				{Icon: "🍔", Label: "Burger", Kcal: 650, GI: 60},
			},
			models.Dinner: {
				{Icon: "🍕", Label: "Pizza", Kcal: 600, GI: 60},
				{Icon: "🍝", Label: "Pasta", Kcal: 500, GI: 65},
				{Icon: "🍗", Label: "Fried chicken", Kcal: 480, GI: 50},
			},
			models.Snacks: {
				{Icon: "🥤", Label: "Soda", Kcal: 180, GI: 65},
				{Icon: "🍩", Label: "Donut", Kcal: 290, GI: 76},
				{Icon: "🍫", Label: "Chocolate", Kcal: 230, GI: 40},
			},
		},
	},
	{models.Gestational, models.StatusHigh}: {
		models.Mandatory: {
			models.Breakfast: {
				{Icon: "🥛", Label: "Milk + oats", Kcal: 210, GI: 55},
				{Icon: "🍎", Label: "Apple", Kcal: 95, GI: 36},
				{Icon: "🍓", Label: "Berries", Kcal: 60, GI: 25},
			},
			models.Lunch: {
				{Icon: "🥗", Label: "Veg salad", Kcal: 180, GI: 15},
				{Icon: "🥦", Label: "Boiled veggies", Kcal: 200, GI: 15},
				{Icon: "🥣", Label: "Soup", Kcal: 100, GI: 20},
			},
			models.Dinner: {
				{Icon: "🥦", Label: "Steamed veggies", Kcal: 200, GI: 15},
				{Icon: "🥕", Label: "Soup bowl", Kcal: 100, GI: 20},
				{Icon: "🍚", Label: "Small rice", Kcal: 200, GI: 89},
			},
			models.Snacks: {
				{Icon: "🍊", Label: "Orange", Kcal: 80, GI: 44},
				{Icon: "🥜", Label: "Nuts", Kcal: 130, GI: 15},
				{Icon: "🍎", Label: "Apple", Kcal: 95, GI: 36},
			},
		},
		models.Moderate: {
			models.Breakfast: {
				{Icon: "🍞", Label: "Chapati", Kcal: 220, GI: 52},
				{Icon: "🥚", Label: "Boiled egg", Kcal: 80, GI: 0},
				{Icon: "🍊", Label: "Orange", Kcal: 80, GI: 44},
			},
			models.Lunch: {
				{Icon: "🍛", Label: "Small rice portion", Kcal: 300, GI: 89},
				{Icon: "🥗", Label: "Salad", Kcal: 90, GI: 15},
				{Icon: "🥣", Label: "Dal", Kcal: 100, GI: 32},
			},
			models.Dinner: {
				{Icon: "🍲", Label: "Soup", Kcal: 200, GI: 20},
				{Icon: "🥕", Label: "Boiled carrot", Kcal: 60, GI: 50},
				{Icon: "🥬", Label: "Veg curry", Kcal: 80, GI: 50},
			},
			models.Snacks: {
				{Icon: "🍌", Label: "Banana", Kcal: 105, GI: 51},
				{Icon: "🥛", Label: "Milk", Kcal: 90, GI: 31},
				{Icon: "🍎", Label: "Apple", Kcal: 95, GI: 36},
			},
		},
		models.HighIntake: {
			models.Breakfast: {
				{Icon: "🥞", Label: "Pancake", Kcal: 400, GI: 76},
				{Icon: "🥐", Label: "Pastry", Kcal: 420, GI: 76},
				{Icon: "🥤", Label: "Soda", Kcal: 180, GI: 65},
			},
			models.Lunch: {
				{Icon: "🍔", Label: "Burger", Kcal: 600, GI: 60},
				{Icon: "🍟", Label: "Fries", Kcal: 450, GI: 75},
				{Icon: "🍕", Label: "Pizza", Kcal: 600, GI: 60},
			},
			models.Dinner: {
				{Icon: "🍟", Label: "Fried snacks", Kcal: 450, GI: 50},
				{Icon: "🍝", Label: "Pasta", Kcal: 500, GI: 65},
				{Icon: "🍗", Label: "Fried chicken", Kcal: 480, GI: 50},
			},
			models.Snacks: {
				{Icon: "🍫", Label: "Chocolate", Kcal: 230, GI: 40},
				{Icon: "🍩", Label: "Donut", Kcal: 290, GI: 76},
				{Icon: "🥤", Label: "Soda", Kcal: 180, GI: 65},
			},
		},
	},
	{models.PreDiabetes, models.StatusLow}: {
		models.Mandatory: {
			models.Breakfast: {
				{Icon: "🥣", Label: "Oats with skim milk", Kcal: 220, GI: 55},
				{Icon: "🍌", Label: "Banana", Kcal: 100, GI: 51},
				{Icon: "🍓", Label: "Berries", Kcal: 60, GI: 25},
			},
			models.Lunch: {
				{Icon: "🍚", Label: "Brown rice + dal", Kcal: 420, GI: 55},
				{Icon: "🥗", Label: "Veg salad", Kcal: 150, GI: 15},
				{Icon: "🥕", Label: "Boiled veggies", Kcal: 80, GI: 15},
			},
			models.Dinner: {
				{Icon: "🥣", Label: "Soup + chapati", Kcal: 320, GI: 52},
				{Icon: "🥦", Label: "Steamed broccoli", Kcal: 70, GI: 15},
				{Icon: "🍅", Label: "Tomato salad", Kcal: 60, GI: 15},
			},
			models.Snacks: {
				{Icon: "🍎", Label: "Apple", Kcal: 95, GI: 36},
				{Icon: "🥜", Label: "Nuts", Kcal: 130, GI: 15},
				{Icon: "🥛", Label: "Low-fat milk", Kcal: 90, GI: 31},
			},
		},
		models.Moderate: {
			models.Breakfast: {
				{Icon: "🍞", Label: "Whole wheat toast", Kcal: 220, GI: 70},
				{Icon: "🥚", Label: "Boiled egg", Kcal: 80, GI: 0},
				{Icon: "🍎", Label: "Apple", Kcal: 95, GI: 36},
			},
			models.Lunch: {
				{Icon: "🥘", Label: "Veg pulao", Kcal: 330, GI: 70},
				{Icon: "🥗", Label: "Curd", Kcal: 100, GI: 33},
				{Icon: "🥕", Label: "Salad", Kcal: 70, GI: 15},
			},
			models.Dinner: {
				{Icon: "🍛", Label: "Roti + curry", Kcal: 340, GI: 62},
				{Icon: "🥣", Label: "Soup", Kcal: 100, GI: 20},
				{Icon: "🥬", Label: "Veg curry", Kcal: 90, GI: 50},
			},
			models.Snacks: {
				{Icon: "🍌", Label: "Banana", Kcal: 105, GI: 51},
				{Icon: "🥜", Label: "Nuts", Kcal: 130, GI: 15},
				{Icon: "🍊", Label: "Orange", Kcal: 80, GI: 44},
			},
		},
		models.HighIntake: {
			models.Breakfast: {
				{Icon: "🥞", Label: "Pancake", Kcal: 400, GI: 76},
				{Icon: "🥐", Label: "Pastry", Kcal: 420, GI: 76},
				{Icon: "🥤", Label: "Milkshake", Kcal: 350, GI: 31},
			},
			models.Lunch: {
				{Icon: "🍔", Label: "Burger", Kcal: 650, GI: 60},
				{Icon: "🍟", Label: "Fries", Kcal: 450, GI: 75},
				{Icon: "🍝", Label: "Pasta", Kcal: 500, GI: 65},
			},
			models.Dinner: {
				{Icon: "🍕", Label: "Pizza", Kcal: 600, GI: 60},
				{Icon: "🍝", Label: "Pasta", Kcal: 480, GI: 65},
				{Icon: "🍗", Label: "Fried chicken", Kcal: 500, GI: 50},
			},
			models.Snacks: {
				{Icon: "🍫", Label: "Chocolate", Kcal: 230, GI: 40},
				{Icon: "🍩", Label: "Donut", Kcal: 290, GI: 76},
				{Icon: "🥤", Label: "Soda", Kcal: 180, GI: 65},
			},
		},
	},
	{models.PreDiabetes, models.StatusNormal}: {
		models.Mandatory: {
			models.Breakfast: {
				{Icon: "🥣", Label: "Oats with milk", Kcal: 250, GI: 55},
				{Icon: "🥚", Label: "Boiled eggs", Kcal: 150, GI: 0},
				{Icon: "🍊", Label: "Orange", Kcal: 80, GI: 44},
			},
			models.Lunch: {
				{Icon: "🥗", Label: "Veg curry + rice", Kcal: 380, GI: 70},
				{Icon: "🥬", Label: "Spinach curry", Kcal: 120, GI: 15},
				{Icon: "🥕", Label: "Boiled veggies", Kcal: 80, GI: 15},
			},
			models.Dinner: {
				{Icon: "🥣", Label: "Soup + chapati", Kcal: 300, GI: 52},
				{Icon: "🥬", Label: "Boiled veggies", Kcal: 100, GI: 15},
				{Icon: "🍚", Label: "Small rice", Kcal: 200, GI: 89},
			},
			models.Snacks: {
				{Icon: "🍎", Label: "Apple + nuts", Kcal: 130, GI: 36},
				{Icon: "🥛", Label: "Yogurt", Kcal: 100, GI: 33},
				{Icon: "🍌", Label: "Banana", Kcal: 105, GI: 51},
			},
		},
		models.Moderate: {
			models.Breakfast: {
				{Icon: "🍞", Label: "Chapati", Kcal: 220, GI: 52},
				{Icon: "🥛", Label: "Milk", Kcal: 100, GI: 31},
				{Icon: "🍎", Label: "Apple", Kcal: 95, GI: 36},
			},
			models.Lunch: {
				{Icon: "🍛", Label: "Veg rice small", Kcal: 300, GI: 70},
				{Icon: "🥗", Label: "Salad", Kcal: 90, GI: 15},
				{Icon: "🥣", Label: "Dal", Kcal: 100, GI: 32},
			},
			models.Dinner: {
				{Icon: "🍲", Label: "Soup", Kcal: 200, GI: 20},
				{Icon: "🥕", Label: "Boiled carrot", Kcal: 60, GI: 50},
				{Icon: "🥬", Label: "Veg curry", Kcal: 80, GI: 50},
			},
			models.Snacks: {
				{Icon: "🍌", Label: "Banana", Kcal: 105, GI: 51},
				{Icon: "🥜", Label: "Nuts", Kcal: 130, GI: 15},
				{Icon: "🍊", Label: "Orange", Kcal: 80, GI: 44},
			},
		},
		models.HighIntake: {
			models.Breakfast: {
				{Icon: "🥞", Label: "Pancake", Kcal: 400, GI: 76},
				{Icon: "🥐", Label: "Pastry", Kcal: 420, GI: 76},
				{Icon: "🥤", Label: "Soda", Kcal: 180, GI: 65},
			},
			models.Lunch: {
				{Icon: "🍔", Label: "Burger", Kcal: 600, GI: 60},
				{Icon: "🍟", Label: "Fries", Kcal: 450, GI: 75},
				{Icon: "🍕", Label: "Pizza", Kcal: 600, GI: 60},
			},
			models.Dinner: {
				{Icon: "🍝", Label: "Pasta", Kcal: 500, GI: 65},
				{Icon: "🍟", Label: "Fried snacks", Kcal: 450, GI: 50},
				{Icon: "🍗", Label: "Fried chicken", Kcal: 480, GI: 50},
			},
			models.Snacks: {
				{Icon: "🍫", Label: "Chocolate", Kcal: 230, GI: 40},
				{Icon: "🍩", Label: "Donut", Kcal: 290, GI: 76},
				{Icon: "🥤", Label: "Soda", Kcal: 180, GI: 65},
			},
		},
	},
	{models.PreDiabetes, models.StatusHigh}: {
		models.Mandatory: {
			models.Breakfast: {
				{Icon: "🥣", Label: "Oats + milk", Kcal: 220, GI: 55},
				{Icon: "🍎", Label: "Apple", Kcal: 95, GI: 36},
				{Icon: "🍓", Label: "Berries", Kcal: 60, GI: 25},
			},
			models.Lunch: {
				{Icon: "🥗", Label: "Veg salad", Kcal: 180, GI: 15},
				{Icon: "🥦", Label: "Boiled veggies", Kcal: 200, GI: 15},
				{Icon: "🥣", Label: "Soup", Kcal: 100, GI: 20},
			},
			models.Dinner: {
				{Icon: "🥦", Label: "Steamed veggies", Kcal: 200, GI: 15},
				{Icon: "🥕", Label: "Soup bowl", Kcal: 100, GI: 20},
				{Icon: "🍚", Label: "Small rice", Kcal: 200, GI: 89},
			},
			models.Snacks: {
				{Icon: "🍊", Label: "Orange", Kcal: 80, GI: 44},
				{Icon: "🥜", Label: "Nuts", Kcal: 130, GI: 15},
				{Icon: "🍎", Label: "Apple", Kcal: 95, GI: 36},
			},
		},
		models.Moderate: {
			models.Breakfast: {
				{Icon: "🍞", Label: "Chapati", Kcal: 220, GI: 52},
				{Icon: "🥚", Label: "Boiled egg", Kcal: 80, GI: 0},
				{Icon: "🍊", Label: "Orange", Kcal: 80, GI: 44},
			},
			models.Lunch: {
				{Icon: "🍛", Label: "Small rice portion", Kcal: 300, GI: 89},
				{Icon: "🥗", Label: "Salad", Kcal: 90, GI: 15},
				{Icon: "🥣", Label: "Dal", Kcal: 100, GI: 32},
			},
			models.Dinner: {
				{Icon: "🍲", Label: "Soup", Kcal: 200, GI: 20},
				{Icon: "🥕", Label: "Boiled carrot", Kcal: 60, GI: 50},
				{Icon: "🥬", Label: "Veg curry", Kcal: 80, GI: 50},
			},
			models.Snacks: {
				{Icon: "🍌", Label: "Banana", Kcal: 105, GI: 51},
				{Icon: "🥛", Label: "Milk", Kcal: 90, GI: 31},
				{Icon: "🍎", Label: "Apple", Kcal: 95, GI: 36},
			},
		},
		models.HighIntake: {
			models.Breakfast: {
				{Icon: "🥞", Label: "Pancake", Kcal: 400, GI: 76},
				{Icon: "🥐", Label: "Pastry", Kcal: 420, GI: 76},
				{Icon: "🥤", Label: "Soda", Kcal: 180, GI: 65},
			},
			models.Lunch: {
				{Icon: "🍔", Label: "Burger", Kcal: 600, GI: 60},
				{Icon: "🍟", Label: "Fries", Kcal: 450, GI: 75},
				{Icon: "🍕", Label: "Pizza", Kcal: 600, GI: 60},
			},
			models.Dinner: {
				{Icon: "🍟", Label: "Fried snacks", Kcal: 450, GI: 50},
				{Icon: "🍝", Label: "Pasta", Kcal: 500, GI: 65},
				{Icon: "🍗", Label: "Fried chicken", Kcal: 480, GI: 50},
			},
			models.Snacks: {
				{Icon: "🍫", Label: "Chocolate", Kcal: 230, GI: 40},
				{Icon: "🍩", Label: "Donut", Kcal: 290, GI: 76},
				{Icon: "🥤", Label: "Soda", Kcal: 180, GI: 65},
			},
		},
	},
}

package domain

var Tables = []interface{}{
	// System
	&Operator{},
	&OperatorLog{},
	// Menu
	&FoodItem{},
	&AlcoholItem{},
	&Promotion{},
	&VenueSettings{},
}

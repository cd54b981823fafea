package catalog

import "github.com/shopspring/decimal"

// DefaultProducts returns the built-in catalog. The store sells a fixed
// assortment of pickles and snacks; the list is loaded once at startup
// and never mutated.
func DefaultProducts() []*Product {
	return []*Product{
		{
			ID:          1,
			Name:        "Chicken Pickle",
			Price:       decimal.NewFromInt(350),
			Image:       "https://cdn.pickleworks.example/images/chicken-pickle.jpg",
			Description: "Authentic, spicy, meaty pickle made with organic ingredients.",
		},
		{
			ID:          2,
			Name:        "Gongura Mutton Pickle",
			Price:       decimal.NewFromInt(320),
			Image:       "https://cdn.pickleworks.example/images/gongura-mutton-pickle.jpg",
			Description: "Mutton combined with tangy gongura leaves.",
		},
		{
			ID:          3,
			Name:        "Boti Pickle",
			Price:       decimal.NewFromInt(400),
			Image:       "https://cdn.pickleworks.example/images/boti-pickle.jpg",
			Description: "Newly introduced pickle made with boti.",
		},
		{
			ID:          4,
			Name:        "Fish Pickle",
			Price:       decimal.NewFromInt(380),
			Image:       "https://cdn.pickleworks.example/images/fish-pickle.jpg",
			Description: "Juicy fish pieces in a spiced oil base.",
		},
		{
			ID:          5,
			Name:        "Mango Pickle",
			Price:       decimal.NewFromInt(280),
			Image:       "https://cdn.pickleworks.example/images/mango-pickle.jpg",
			Description: "A classic Andhra-style pickle made with raw mangoes, mustard seeds, and spices.",
		},
		{
			ID:          6,
			Name:        "Mixed Veg Pickle",
			Price:       decimal.NewFromInt(280),
			Image:       "https://cdn.pickleworks.example/images/mixed-veg-pickle.jpg",
			Description: "Carrot, cauliflower, lime and mango combo.",
		},
		{
			ID:          7,
			Name:        "Tomato Pickle",
			Price:       decimal.NewFromInt(250),
			Image:       "https://cdn.pickleworks.example/images/tomato-pickle.jpg",
			Description: "Ripe tomatoes with a blend of spices.",
		},
		{
			ID:          8,
			Name:        "Gongura Pickle",
			Price:       decimal.NewFromInt(220),
			Image:       "https://cdn.pickleworks.example/images/gongura-pickle.jpg",
			Description: "Tangy sorrel leaves with a special spice mix.",
		},
		{
			ID:          9,
			Name:        "Madras Mixture",
			Price:       decimal.NewFromInt(230),
			Image:       "https://cdn.pickleworks.example/images/madras-mixture.jpg",
			Description: "A spicy and crunchy snack mix from South India.",
		},
		{
			ID:          10,
			Name:        "Murukku Chakki",
			Price:       decimal.NewFromInt(300),
			Image:       "https://cdn.pickleworks.example/images/murukku-chakki.jpg",
			Description: "Roasted murukku with a delicious taste.",
		},
		{
			ID:          11,
			Name:        "Ribbon Pakoda",
			Price:       decimal.NewFromInt(220),
			Image:       "https://cdn.pickleworks.example/images/ribbon-pakoda.jpg",
			Description: "Classic ribbon-shaped savoury snack.",
		},
		{
			ID:          12,
			Name:        "Bombay Mixture",
			Price:       decimal.NewFromInt(150),
			Image:       "https://cdn.pickleworks.example/images/bombay-mixture.jpg",
			Description: "Crunchy Bombay mixture.",
		},
	}
}

package catalog

import "github.com/oparantho/saakwa-laundry-platform/internal/models"

// Prices in naira, current list as agreed with operations.
var defaultItems = []models.CatalogItem{
	{ID: "native-colored", Name: "Native (Colored)", UnitPrice: 3200, Category: "Traditional Wear", Icon: "👘"},
	{ID: "native-white", Name: "Native (White)", UnitPrice: 3700, Category: "Traditional Wear", Icon: "🤍"},
	{ID: "complete-agbada", Name: "Complete Agbada", UnitPrice: 7700, Category: "Traditional Wear", Icon: "👳"},
	{ID: "jalamia", Name: "Jalamia", UnitPrice: 2700, Category: "Traditional Wear", Icon: "🕌"},
	{ID: "long-native-gown", Name: "Long Native/Ankara Gown", UnitPrice: 2700, Category: "Traditional Wear", Icon: "👗"},
	{ID: "big-native-gown", Name: "Big Native/Ankara Gown", UnitPrice: 3200, Category: "Traditional Wear", Icon: "👗"},
	{ID: "short-native-gown", Name: "Short Native Gown", UnitPrice: 2200, Category: "Traditional Wear", Icon: "👗"},
	{ID: "cele-white-garment", Name: "Cele White Garment (Gown with Cap)", UnitPrice: 2700, Category: "Traditional Wear", Icon: "⚪"},

	{ID: "suit-white", Name: "Suit (White)", UnitPrice: 3700, Category: "Formal Wear", Icon: "🤵"},
	{ID: "suit-colored", Name: "Suit (Colored)", UnitPrice: 3200, Category: "Formal Wear", Icon: "🤵"},
	{ID: "long-sleeve-colored", Name: "Long Sleeve Shirt (Colored)", UnitPrice: 1200, Category: "Formal Wear", Icon: "👔"},
	{ID: "long-sleeve-white", Name: "Long Sleeve Shirt (White)", UnitPrice: 1800, Category: "Formal Wear", Icon: "👔"},
	{ID: "short-sleeve-colored", Name: "Short Sleeve Shirt (Colored)", UnitPrice: 1100, Category: "Formal Wear", Icon: "👕"},
	{ID: "short-sleeve-white", Name: "Short Sleeve Shirt (White)", UnitPrice: 1700, Category: "Formal Wear", Icon: "👕"},
	{ID: "corporate-jacket", Name: "Corporate Jacket", UnitPrice: 2200, Category: "Formal Wear", Icon: "🧥"},
	{ID: "plain-trousers", Name: "Plain Trousers", UnitPrice: 1800, Category: "Formal Wear", Icon: "👖"},

	{ID: "polo-colored", Name: "Polo/Round Neck (Colored)", UnitPrice: 1000, Category: "Casual Wear", Icon: "👕"},
	{ID: "polo-white", Name: "Polo/Round Neck (White)", UnitPrice: 1200, Category: "Casual Wear", Icon: "👕"},
	{ID: "jeans", Name: "Jeans", UnitPrice: 1900, Category: "Casual Wear", Icon: "👖"},
	{ID: "jean-shorts", Name: "Jean Shorts", UnitPrice: 1700, Category: "Casual Wear", Icon: "🩳"},
	{ID: "joggers", Name: "Joggers", UnitPrice: 1700, Category: "Casual Wear", Icon: "🩱"},
	{ID: "shorts-knickers", Name: "Shorts / Knickers", UnitPrice: 1100, Category: "Casual Wear", Icon: "🩳"},

	{ID: "wedding-gown", Name: "Wedding Gown", UnitPrice: 25000, Category: "Women's Wear", Icon: "👰"},
	{ID: "short-aso-ebi", Name: "Short Aso-Ebi Gown (with Design)", UnitPrice: 10700, Category: "Women's Wear", Icon: "💃"},
	{ID: "long-aso-ebi", Name: "Long Aso-Ebi Gown", UnitPrice: 12700, Category: "Women's Wear", Icon: "💃"},
	{ID: "short-gown", Name: "Short Gown", UnitPrice: 1700, Category: "Women's Wear", Icon: "👗"},
	{ID: "long-gown", Name: "Long Gown", UnitPrice: 2200, Category: "Women's Wear", Icon: "👗"},
	{ID: "blouse", Name: "Blouse", UnitPrice: 1000, Category: "Women's Wear", Icon: "👚"},
	{ID: "crop-tops", Name: "Crop Tops", UnitPrice: 800, Category: "Women's Wear", Icon: "👕"},
	{ID: "bra", Name: "Bra", UnitPrice: 1700, Category: "Women's Wear", Icon: "👙"},
	{ID: "lingerie", Name: "Lingerie", UnitPrice: 2200, Category: "Women's Wear", Icon: "👙"},
	{ID: "up-and-down", Name: "Up & Down (Any)", UnitPrice: 2900, Category: "Women's Wear", Icon: "👗"},

	{ID: "sweat-tops", Name: "Sweat Tops / Sweaters", UnitPrice: 2700, Category: "Tops & Outerwear", Icon: "🧥"},
	{ID: "hoodies", Name: "Hoodies", UnitPrice: 3200, Category: "Tops & Outerwear", Icon: "👕"},
	{ID: "singlet", Name: "Singlet", UnitPrice: 700, Category: "Tops & Outerwear", Icon: "👕"},

	{ID: "boxers", Name: "Boxers", UnitPrice: 800, Category: "Underwear", Icon: "🩲"},
	{ID: "panties", Name: "Panties", UnitPrice: 1700, Category: "Underwear", Icon: "🩲"},

	{ID: "face-cap", Name: "Face Cap", UnitPrice: 1700, Category: "Accessories", Icon: "🧢"},
	{ID: "hat", Name: "Hat", UnitPrice: 1000, Category: "Accessories", Icon: "👒"},
	{ID: "sneakers", Name: "Sneakers", UnitPrice: 3200, Category: "Accessories", Icon: "👟"},

	{ID: "regular-duvet-colored", Name: "Regular Duvet (Colored)", UnitPrice: 4700, Category: "Home Textiles", Icon: "🛏️"},
	{ID: "regular-duvet-white", Name: "Regular Duvet (White)", UnitPrice: 4700, Category: "Home Textiles", Icon: "🛏️"},
	{ID: "big-duvet-colored", Name: "Big Duvet (Colored)", UnitPrice: 5700, Category: "Home Textiles", Icon: "🛏️"},
	{ID: "big-duvet-white", Name: "Big Duvet (White)", UnitPrice: 6700, Category: "Home Textiles", Icon: "🛏️"},
	{ID: "duvet-cover", Name: "Duvet Cover", UnitPrice: 2700, Category: "Home Textiles", Icon: "🛏️"},
	{ID: "bed-sheet-colored", Name: "Bed Sheet (Colored)", UnitPrice: 2700, Category: "Home Textiles", Icon: "🛏️"},
	{ID: "bed-sheet-white", Name: "Bed Sheet (White)", UnitPrice: 3200, Category: "Home Textiles", Icon: "🛏️"},
	{ID: "pillow-case", Name: "Pillow Case", UnitPrice: 500, Category: "Home Textiles", Icon: "🛏️"},
	{ID: "big-curtain", Name: "Big Curtain", UnitPrice: 5700, Category: "Home Textiles", Icon: "🪟"},
	{ID: "towel-colored", Name: "Towel (Colored)", UnitPrice: 2200, Category: "Home Textiles", Icon: "🏖️"},
	{ID: "towel-white-big", Name: "Towel (White, Big)", UnitPrice: 2700, Category: "Home Textiles", Icon: "🏖️"},
	{ID: "bathrobe", Name: "Bathrobe", UnitPrice: 5700, Category: "Home Textiles", Icon: "🥽"},

	{ID: "student-uniform", Name: "Student Uniform", UnitPrice: 900, Category: "Special Services", Icon: "🎓"},
	{ID: "ironing-only", Name: "Ironing Only", UnitPrice: 900, Category: "Special Services", Icon: "🔥"},
	{ID: "ironing-native", Name: "Ironing Only (Native)", UnitPrice: 1700, Category: "Special Services", Icon: "🔥"},
	{ID: "express-delivery", Name: "Express Delivery (Same Day)", UnitPrice: 10000, Category: "Special Services", Icon: "🚀"},
}

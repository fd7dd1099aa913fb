package seed

import (
	"time"

	"github.com/Mukesh-219/indian-local-guide-api/internal/cultural"
	"github.com/Mukesh-219/indian-local-guide-api/internal/food"
	"github.com/Mukesh-219/indian-local-guide-api/internal/geo"
	"github.com/Mukesh-219/indian-local-guide-api/internal/slang"
)

// seedTime is the fixed timestamp stamped on built-in records so seeded
// state is deterministic across restarts.
var seedTime = time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)

// BuiltIn returns the curated starter dataset: common slang terms, a spread
// of street-food vendors in Delhi and Mumbai, city centers, and the cultural
// reference tables.
func BuiltIn() *Data {
	return &Data{
		Terms:       builtInTerms(),
		Items:       builtInItems(),
		Vendors:     builtInVendors(),
		CityCenters: builtInCityCenters(),
		Regions:     builtInRegions(),
		Festivals:   builtInFestivals(),
		Etiquette:   builtInEtiquette(),
		Tips:        builtInTips(),
	}
}

func builtInTerms() []slang.Term {
	return []slang.Term{
		{
			ID:         "seed-term-jugaad",
			Text:       "jugaad",
			Language:   "hindi",
			Region:     "North India",
			Context:    "casual",
			Popularity: 95,
			Translations: []slang.Translation{
				{Text: "hack", Language: "english", Context: "casual", Confidence: 0.9},
				{Text: "improvised fix", Language: "english", Context: "formal", Confidence: 0.85},
				{Text: "workaround", Language: "english", Context: "casual", Confidence: 0.7},
			},
			UsageExamples: []string{
				"He fixed the scooter with pure jugaad.",
				"There's always a jugaad for everything here.",
			},
			CreatedAt: seedTime,
			UpdatedAt: seedTime,
		},
		{
			ID:         "seed-term-bindaas",
			Text:       "bindaas",
			Language:   "hindi",
			Region:     "Mumbai",
			Context:    "slang",
			Popularity: 80,
			Translations: []slang.Translation{
				{Text: "carefree", Language: "english", Context: "casual", Confidence: 0.9},
				{Text: "cool", Language: "english", Context: "slang", Confidence: 0.75},
			},
			UsageExamples: []string{"She walked in bindaas, like she owned the place."},
			CreatedAt:     seedTime,
			UpdatedAt:     seedTime,
		},
		{
			ID:         "seed-term-bakwas",
			Text:       "bakwas",
			Language:   "hindi",
			Region:     "North India",
			Context:    "casual",
			Popularity: 75,
			Translations: []slang.Translation{
				{Text: "nonsense", Language: "english", Context: "casual", Confidence: 0.95},
				{Text: "rubbish", Language: "english", Context: "casual", Confidence: 0.8},
			},
			UsageExamples: []string{"That movie was total bakwas."},
			CreatedAt:     seedTime,
			UpdatedAt:     seedTime,
		},
		{
			ID:         "seed-term-funda",
			Text:       "funda",
			Language:   "hindi",
			Region:     "Bengaluru",
			Context:    "slang",
			Popularity: 60,
			Translations: []slang.Translation{
				{Text: "concept", Language: "english", Context: "casual", Confidence: 0.85},
				{Text: "fundamental idea", Language: "english", Context: "formal", Confidence: 0.7},
			},
			UsageExamples: []string{"His funda is simple: never skip breakfast."},
			CreatedAt:     seedTime,
			UpdatedAt:     seedTime,
		},
		{
			ID:         "seed-term-timepass",
			Text:       "timepass",
			Language:   "hindi",
			Region:     "Mumbai",
			Context:    "casual",
			Popularity: 70,
			Translations: []slang.Translation{
				{Text: "killing time", Language: "english", Context: "casual", Confidence: 0.9},
				{Text: "idle amusement", Language: "english", Context: "formal", Confidence: 0.6},
			},
			UsageExamples: []string{"We watched the match just for timepass."},
			CreatedAt:     seedTime,
			UpdatedAt:     seedTime,
		},
		{
			ID:         "seed-term-jhakaas",
			Text:       "jhakaas",
			Language:   "hindi",
			Region:     "Mumbai",
			Context:    "slang",
			Popularity: 65,
			Translations: []slang.Translation{
				{Text: "awesome", Language: "english", Context: "slang", Confidence: 0.9},
				{Text: "fantastic", Language: "english", Context: "casual", Confidence: 0.8},
			},
			UsageExamples: []string{"The vada pav here is jhakaas!"},
			CreatedAt:     seedTime,
			UpdatedAt:     seedTime,
		},
	}
}

func builtInItems() []food.Item {
	return []food.Item{
		{
			ID:          "seed-item-golgappa",
			Name:        "Golgappa",
			Description: "Crisp hollow puri filled with spiced water, tamarind, and potato",
			Category:    "chaat",
			Region:      "North India",
			Ingredients: []string{"semolina", "potato", "tamarind", "mint"},
			Vegetarian:  true,
			Vegan:       true,
			SpiceLevel:  3,
		},
		{
			ID:          "seed-item-aloo-tikki",
			Name:        "Aloo Tikki",
			Description: "Shallow-fried potato patty with chutneys and yogurt",
			Category:    "chaat",
			Region:      "North India",
			Ingredients: []string{"potato", "peas", "yogurt", "chutney"},
			Vegetarian:  true,
			SpiceLevel:  2,
		},
		{
			ID:          "seed-item-vada-pav",
			Name:        "Vada Pav",
			Description: "Spiced potato fritter in a bun with garlic chutney",
			Category:    "snack",
			Region:      "Maharashtra",
			Ingredients: []string{"potato", "bread", "garlic", "green chili"},
			Vegetarian:  true,
			Vegan:       true,
			SpiceLevel:  4,
		},
		{
			ID:          "seed-item-pav-bhaji",
			Name:        "Pav Bhaji",
			Description: "Mashed vegetable curry with buttered buns",
			Category:    "snack",
			Region:      "Maharashtra",
			Ingredients: []string{"mixed vegetables", "butter", "bread"},
			Vegetarian:  true,
			SpiceLevel:  3,
		},
		{
			ID:          "seed-item-lassi",
			Name:        "Sweet Lassi",
			Description: "Chilled churned yogurt drink with sugar and cardamom",
			Category:    "beverage",
			Region:      "Punjab",
			Ingredients: []string{"yogurt", "sugar", "cardamom"},
			Vegetarian:  true,
			SpiceLevel:  0,
		},
		{
			ID:          "seed-item-jalebi",
			Name:        "Jalebi",
			Description: "Deep-fried batter spirals soaked in saffron syrup",
			Category:    "sweet",
			Region:      "North India",
			Ingredients: []string{"flour", "sugar", "saffron"},
			Vegetarian:  true,
			SpiceLevel:  0,
		},
	}
}

func builtInVendors() []food.Vendor {
	return []food.Vendor{
		{
			ID:   "seed-vendor-cp-chaat",
			Name: "Connaught Place Chaat Corner",
			Location: food.Location{
				Point: geo.Point{Lat: 28.6315, Lng: 77.2167},
				City:  "Delhi",
				State: "Delhi",
			},
			ItemIDs: []string{"seed-item-golgappa", "seed-item-aloo-tikki"},
			Safety: food.SafetyRating{
				Overall: 4, Hygiene: 4, Freshness: 5, Popularity: 5,
				ReviewCount: 412, LastUpdated: seedTime,
			},
			PriceMin: 30,
			PriceMax: 120,
			Hours:    map[string]string{"mon-sun": "11:00-22:00"},
			HygieneNotes: []string{
				"Filtered water used for pani",
				"Gloves worn during assembly",
			},
		},
		{
			ID:   "seed-vendor-chandni-jalebi",
			Name: "Old Famous Jalebi Wala",
			Location: food.Location{
				Point: geo.Point{Lat: 28.6562, Lng: 77.2307},
				City:  "Delhi",
				State: "Delhi",
			},
			ItemIDs: []string{"seed-item-jalebi", "seed-item-lassi"},
			Safety: food.SafetyRating{
				Overall: 5, Hygiene: 4, Freshness: 5, Popularity: 5,
				ReviewCount: 980, LastUpdated: seedTime,
			},
			PriceMin: 50,
			PriceMax: 200,
			Hours:    map[string]string{"mon-sun": "09:00-21:00"},
		},
		{
			ID:   "seed-vendor-dadar-vadapav",
			Name: "Dadar Vada Pav Stall",
			Location: food.Location{
				Point: geo.Point{Lat: 19.0178, Lng: 72.8478},
				City:  "Mumbai",
				State: "Maharashtra",
			},
			ItemIDs: []string{"seed-item-vada-pav"},
			Safety: food.SafetyRating{
				Overall: 4, Hygiene: 3, Freshness: 4, Popularity: 5,
				ReviewCount: 655, LastUpdated: seedTime,
			},
			PriceMin: 15,
			PriceMax: 40,
			Hours:    map[string]string{"mon-sat": "07:00-23:00"},
		},
		{
			ID:   "seed-vendor-juhu-pavbhaji",
			Name: "Juhu Beach Pav Bhaji",
			Location: food.Location{
				Point: geo.Point{Lat: 19.0968, Lng: 72.8265},
				City:  "Mumbai",
				State: "Maharashtra",
			},
			ItemIDs: []string{"seed-item-pav-bhaji", "seed-item-vada-pav"},
			Safety: food.SafetyRating{
				Overall: 3, Hygiene: 3, Freshness: 4, Popularity: 4,
				ReviewCount: 230, LastUpdated: seedTime,
			},
			PriceMin: 60,
			PriceMax: 180,
			Hours:    map[string]string{"mon-sun": "16:00-01:00"},
		},
	}
}

func builtInCityCenters() map[string]geo.Point {
	return map[string]geo.Point{
		"delhi":     {Lat: 28.6139, Lng: 77.2090},
		"mumbai":    {Lat: 19.0760, Lng: 72.8777},
		"bengaluru": {Lat: 12.9716, Lng: 77.5946},
		"kolkata":   {Lat: 22.5726, Lng: 88.3639},
		"chennai":   {Lat: 13.0827, Lng: 80.2707},
	}
}

func builtInRegions() []cultural.RegionalInfo {
	return []cultural.RegionalInfo{
		{
			Region:    "Delhi",
			Summary:   "The capital blends Mughal heritage with modern sprawl; street life centers on markets and monuments.",
			Languages: []string{"Hindi", "English", "Punjabi", "Urdu"},
			Customs:   []string{"Greet elders first", "Haggle in markets, not in fixed-price stores"},
			MustTry:   []string{"Chandni Chowk parathas", "Golgappa", "Butter chicken"},
			TravelTips: []string{
				"Use the metro to skip traffic",
				"Carry small notes for street purchases",
			},
		},
		{
			Region:    "Mumbai",
			Summary:   "A fast-moving coastal metropolis where local trains set the rhythm of the day.",
			Languages: []string{"Marathi", "Hindi", "English"},
			Customs:   []string{"Stand left on escalators", "Local trains have gender-separated cars"},
			MustTry:   []string{"Vada pav", "Bhel puri", "Cutting chai"},
			TravelTips: []string{
				"Avoid local trains at rush hour",
				"Monsoon floods low-lying streets in July",
			},
		},
		{
			Region:    "Rajasthan",
			Summary:   "Desert forts, palace cities, and a strong craft tradition in textiles and jewellery.",
			Languages: []string{"Rajasthani", "Hindi", "English"},
			Customs:   []string{"Dress modestly at temples and forts", "Remove shoes before entering homes"},
			MustTry:   []string{"Dal baati churma", "Laal maas", "Pyaaz kachori"},
			TravelTips: []string{
				"Summers exceed 45C; travel October to March",
				"Agree taxi fares before the ride",
			},
		},
		{
			Region:    "Kerala",
			Summary:   "Backwaters, spice plantations, and a distinct coastal cuisine built on coconut and rice.",
			Languages: []string{"Malayalam", "English"},
			Customs:   []string{"Eat with the right hand", "Ask before photographing temple interiors"},
			MustTry:   []string{"Appam with stew", "Karimeen fry", "Sadya"},
			TravelTips: []string{
				"Houseboat rates are negotiable off-season",
				"Many temples restrict entry to non-Hindus",
			},
		},
	}
}

func builtInFestivals() []cultural.Festival {
	return []cultural.Festival{
		{
			Name:         "Diwali",
			Region:       "Pan-India",
			Month:        "October-November",
			Description:  "Festival of lights with lamps, fireworks, and sweets.",
			Significance: "Celebrates the victory of light over darkness.",
		},
		{
			Name:         "Holi",
			Region:       "North India",
			Month:        "March",
			Description:  "Festival of colors with water and powder play.",
			Significance: "Marks the arrival of spring and the triumph of good.",
		},
		{
			Name:         "Durga Puja",
			Region:       "West Bengal",
			Month:        "September-October",
			Description:  "Ten days of elaborate pandals honoring the goddess Durga.",
			Significance: "Commemorates Durga's victory over Mahishasura.",
		},
		{
			Name:         "Onam",
			Region:       "Kerala",
			Month:        "August-September",
			Description:  "Harvest festival with flower carpets, boat races, and the sadya feast.",
			Significance: "Welcomes the mythical king Mahabali home.",
		},
		{
			Name:         "Ganesh Chaturthi",
			Region:       "Maharashtra",
			Month:        "August-September",
			Description:  "Clay idols of Ganesha installed at home and in public, immersed on the final day.",
			Significance: "Honors Ganesha as the remover of obstacles.",
		},
	}
}

func builtInEtiquette() []cultural.EtiquetteRule {
	return []cultural.EtiquetteRule{
		{
			Topic:  "temples",
			Region: "Pan-India",
			Dos: []string{
				"Remove shoes before entering",
				"Dress modestly, covering shoulders and knees",
			},
			Donts: []string{
				"Don't photograph the inner sanctum",
				"Don't touch idols or offerings",
			},
		},
		{
			Topic:  "dining",
			Region: "Pan-India",
			Dos: []string{
				"Eat with the right hand",
				"Try a little of everything offered",
			},
			Donts: []string{
				"Don't pass food with the left hand",
				"Don't refuse hospitality outright; decline gently",
			},
		},
		{
			Topic:  "greetings",
			Region: "Pan-India",
			Dos: []string{
				"Use namaste with palms together for elders",
				"Address strangers respectfully as bhaiya or didi",
			},
			Donts: []string{
				"Don't initiate handshakes with the opposite gender unless offered",
			},
		},
	}
}

func builtInTips() []cultural.BargainingTip {
	return []cultural.BargainingTip{
		{
			Situation: "street markets",
			Tip:       "Start at roughly half the quoted price and settle around 60-70%.",
			Phrase:    "Bhaiya, thoda kam karo (brother, lower it a bit)",
		},
		{
			Situation: "auto rickshaws",
			Tip:       "Insist on the meter, or agree on the fare before boarding.",
			Phrase:    "Meter se chalo (go by the meter)",
		},
		{
			Situation: "souvenir shops",
			Tip:       "Walking away often brings the price down; compare across stalls first.",
			Phrase:    "Aur kahin dekh lunga (I'll look elsewhere)",
		},
	}
}

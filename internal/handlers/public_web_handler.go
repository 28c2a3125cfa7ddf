package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domain "github.com/mapleforkbistro/bistro-api/internal/domain/reservation"
)

type PublicWebHandler struct{}

func NewPublicWebHandler() *PublicWebHandler {
	return &PublicWebHandler{}
}

// --------- Page content ---------
//
// The marketing copy is fixed; there is no CMS behind it.

type MenuItem struct {
	Name        string
	Description string
	Price       string
}

type MenuCategory struct {
	Category string
	Items    []MenuItem
}

type OpeningHours struct {
	Days  string
	Hours string
}

type Testimonial struct {
	Name  string
	Quote string
}

var menu = []MenuCategory{
	{
		Category: "Signature Dishes",
		Items: []MenuItem{
			{"Grilled Herb Chicken", "Herb-marinated chicken breast with seasonal vegetables and warm sauce", "$18.95"},
			{"Classic Beef Burger", "Handcrafted beef patty with fresh toppings on artisan bread", "$16.95"},
			{"Creamy Mushroom Pasta", "Fresh pasta with locally-sourced mushrooms in creamy sauce", "$17.95"},
		},
	},
	{
		Category: "Fresh Salads",
		Items: []MenuItem{
			{"Garden Fresh Salad Bowl", "Mixed greens with seasonal vegetables and house vinaigrette", "$12.95"},
			{"Warm Beet & Goat Cheese", "Roasted beets with creamy goat cheese and candied walnuts", "$14.95"},
			{"Grilled Chicken Caesar", "Classic Caesar with grilled chicken and fresh parmesan", "$15.95"},
		},
	},
	{
		Category: "Desserts",
		Items: []MenuItem{
			{"Homemade Lemon Tart", "Zesty lemon custard in buttery pastry shell", "$8.95"},
			{"Chocolate Flourless Cake", "Rich, decadent chocolate cake with berry compote", "$9.95"},
			{"Seasonal Fruit Crumble", "Fresh seasonal fruits with warm crumble topping", "$8.95"},
		},
	},
}

var hours = []OpeningHours{
	{"Monday - Thursday", "11:30 AM - 9:30 PM"},
	{"Friday - Saturday", "11:30 AM - 10:30 PM"},
	{"Sunday", "10:00 AM - 9:00 PM"},
}

var testimonials = []Testimonial{
	{"Sarah M.", "The coziest spot in town. The mushroom pasta is unforgettable."},
	{"David R.", "Booked a table for eight and the staff made it effortless."},
	{"Elena K.", "Warm atmosphere, generous plates, honest prices. We keep coming back."},
}

// --------- Handler ---------

func (h *PublicWebHandler) ShowHomePage(c *gin.Context) {
	c.HTML(http.StatusOK, "home.html", gin.H{
		"RestaurantName": "Maple Fork Bistro",
		"Tagline":        "Join us for an unforgettable dining experience",
		"Menu":           menu,
		"Hours":          hours,
		"Testimonials":   testimonials,
		"Contact": gin.H{
			"Phone":   "+1 (555) 012-3456",
			"Email":   "hello@mapleforkbistro.com",
			"Address": "42 Maple Street, Toronto, ON",
		},
		"MaxPartySize": domain.MaxPartySize,
	})
}

package fixture

import (
	"github.com/shopspring/decimal"

	"storefront/internal/domain/entity"
)

// DefaultPassword is the plain credential every seeded user receives.
const DefaultPassword = "password123"

// DefaultCatalog returns a fresh copy of the built-in beauty catalog.
func DefaultCatalog() *Catalog {
	return &Catalog{
		Categories: []CategoryTemplate{
			{Name: "Face Care", Description: "Creams, serums and masks for the face"},
			{Name: "Makeup", Description: "Makeup products for every style"},
			{Name: "Fragrances", Description: "Fragrances for men and women"},
			{Name: "Body Care", Description: "Lotions, shower gels and body treatments"},
			{Name: "Hair Care", Description: "Shampoos, conditioners and hair masks"},
			{Name: "Nail Care", Description: "Polishes and treatments for nails"},
		},
		Products: []ProductTemplate{
			{Name: "Vitamin C Serum", Description: "Brightening serum with pure vitamin C", Price: price("45.99"), Stock: 50, Brand: "GlowLab", Rating: 4.5},
			{Name: "Organic Moisturizing Cream", Description: "Certified organic moisturizer", Price: price("32.50"), Stock: 75, Brand: "NatureSkin", Rating: 4.8},
			{Name: "Volume XXL Mascara", Description: "Intense volume mascara", Price: price("18.90"), Stock: 100, Brand: "BeautyPro", Rating: 4.2},
			{Name: "Matte Lipstick", Description: "Long-lasting matte lipstick", Price: price("22.00"), Stock: 80, Brand: "ColorMe", Rating: 4.6},
			{Name: "Floral Elegance Perfume", Description: "Eau de parfum with floral notes", Price: price("89.99"), Stock: 30, Brand: "Essence", Rating: 4.9},
			{Name: "Relaxing Shower Gel", Description: "Lavender shower gel", Price: price("12.50"), Stock: 120, Brand: "PureSpa", Rating: 4.3},
			{Name: "Repair Shampoo", Description: "Shampoo for damaged hair", Price: price("15.90"), Stock: 90, Brand: "HairCare", Rating: 4.4},
			{Name: "Intense Hair Mask", Description: "Deep nourishing mask", Price: price("28.00"), Stock: 60, Brand: "HairCare", Rating: 4.7},
			{Name: "Pink Nail Polish", Description: "Long-wear powder pink polish", Price: price("9.99"), Stock: 150, Brand: "NailArt", Rating: 4.1},
			{Name: "Fluid Foundation", Description: "Medium coverage foundation", Price: price("35.00"), Stock: 70, Brand: "BeautyPro", Rating: 4.5},
			{Name: "Eyeshadow Palette", Description: "12 shades for every look", Price: price("42.00"), Stock: 55, Brand: "ColorMe", Rating: 4.8},
			{Name: "Premium Anti-Aging Cream", Description: "High performance anti-wrinkle cream", Price: price("78.50"), Stock: 40, Brand: "GlowLab", Rating: 4.9},
			{Name: "Moisturizing Body Lotion", Description: "24h hydration lotion", Price: price("19.90"), Stock: 85, Brand: "PureSpa", Rating: 4.4},
			{Name: "Gentle Micellar Water", Description: "All-in-one makeup remover", Price: price("14.50"), Stock: 110, Brand: "NatureSkin", Rating: 4.6},
			{Name: "Repairing Lip Balm", Description: "Nourishing balm for dry lips", Price: price("7.99"), Stock: 200, Brand: "NatureSkin", Rating: 4.3},
		},
		Users: []UserTemplate{
			{Username: "alice_martin", Email: "alice.martin@email.com", Password: DefaultPassword, Phone: "0612345678", Address: "12 Rue de Paris, Tunis"},
			{Username: "bob_dupont", Email: "bob.dupont@email.com", Password: DefaultPassword, Phone: "0623456789", Address: "45 Avenue Habib Bourguiba, Sfax"},
			{Username: "claire_bernard", Email: "claire.bernard@email.com", Password: DefaultPassword, Phone: "0634567890", Address: "78 Rue de la Liberté, Sousse"},
			{Username: "david_rousseau", Email: "david.rousseau@email.com", Password: DefaultPassword, Phone: "0645678901", Address: "23 Boulevard Mohamed V, Bizerte"},
			{Username: "emma_petit", Email: "emma.petit@email.com", Password: DefaultPassword, Phone: "0656789012", Address: "56 Rue de Carthage, Tunis"},
			{Username: "felix_moreau", Email: "felix.moreau@email.com", Password: DefaultPassword, Phone: "0667890123", Address: "89 Avenue de France, Monastir"},
			{Username: "gabrielle_simon", Email: "gabrielle.simon@email.com", Password: DefaultPassword, Phone: "0678901234", Address: "34 Rue Ibn Khaldoun, Tunis"},
			{Username: "hugo_laurent", Email: "hugo.laurent@email.com", Password: DefaultPassword, Phone: "0689012345", Address: "67 Avenue Farhat Hached, Nabeul"},
		},
		Tasks: []TaskTemplate{
			{Title: "Morning routine", Description: "Apply your morning skincare routine", Category: "skincare", Type: "daily", Points: 50},
			{Title: "First purchase", Description: "Place your first order", Category: "shopping", Type: "onboarding", Points: 100},
			{Title: "Leave a review", Description: "Share your opinion on a product", Category: "review", Type: "weekly", Points: 30},
			{Title: "Share on social media", Description: "Share your favorite products", Category: "social", Type: "challenge", Points: 20},
			{Title: "Hair treatment", Description: "Apply a mask to your hair", Category: "haircare", Type: "weekly", Points: 40},
		},
		ReviewComments: []string{
			"Excellent product, I recommend it!",
			"Very happy with my purchase",
			"Good value for money",
			"Exactly what I expected",
			"I will definitely buy it again",
			"Effective and pleasant to use",
			"A bit expensive but high quality",
			"Visible results quickly",
		},
		OrderStatuses: []string{
			entity.OrderStatusPending,
			entity.OrderStatusProcessing,
			entity.OrderStatusShipped,
			entity.OrderStatusDelivered,
		},
		PaymentMethods: []string{
			entity.PaymentCreditCard,
			entity.PaymentPayPal,
			entity.PaymentBankTransfer,
		},
		SkinTypes: []string{"normal", "dry", "oily", "combination"},
		Concerns:  []string{"hydration", "anti-aging", "acne"},
	}
}

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

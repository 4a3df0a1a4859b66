package chatbot

import "strings"

// Intent is one entry in the keyword table. The table is an ordered
// list, not a map: the first intent whose keyword appears in the
// normalized message wins, so table order is part of the contract.
type Intent struct {
	Name     string
	Keywords []string
}

// DefaultIntents is the storefront assistant's trigger table.
var DefaultIntents = []Intent{
	{"greeting", []string{"hello", "hi", "hey", "greetings", "good morning", "good afternoon", "good evening"}},
	{"product_search", []string{"product", "show", "find", "looking for", "search", "item", "commodity"}},
	{"contact_info", []string{"contact", "phone", "email", "address", "reach", "call", "location"}},
	{"pricing", []string{"price", "cost", "quote", "how much", "rates", "pricing", "budget"}},
	{"certification", []string{"certified", "fssai", "iso", "quality", "standards", "compliance"}},
	{"categories", []string{"categories", "vertical", "types", "section", "department", "group"}},
	{"ticket_create", []string{"complaint", "issue", "problem", "support", "help", "technical"}},
	{"about_company", []string{"about", "company", "who are", "history", "background", "story"}},
	{"shipping", []string{"shipping", "delivery", "export", "logistics", "transport", "worldwide"}},
	{"quality", []string{"quality", "best", "premium", "top", "excellent", "standard"}},
	{"goodbye", []string{"bye", "goodbye", "thanks", "thank you", "see you", "exit"}},
}

// DefaultTemplates maps intents to canned replies. product_search has no
// template on purpose: product questions always go to the upstream
// backend, which can answer with live catalog data.
var DefaultTemplates = map[string]string{
	"greeting": "Hello! Welcome to Westend Corporation. I'm here to help you find information about our products, services, or answer any questions you might have. What can I assist you with today?",

	"contact_info": "You can reach us at:\n\nPhone: +91 93119 33481\nEmail: support@westendcorporation.in\nAddress: X-57, Phase 2, Okhla, New Delhi - 110020\n\nOur business hours are Monday to Saturday, 9 AM to 6 PM.",

	"about_company": "Westend Corporation is a leading international food exporter from India, specializing in premium quality food products including groceries, pulses, spices, and frozen vegetables. We export to USA, Canada, and worldwide markets with FSSAI certification.",

	"shipping": "We export products worldwide with reliable shipping and logistics. Our products reach USA, Canada, and many other countries with proper documentation and quality assurance. Delivery times vary by destination but typically range from 7-21 days.",

	"quality": "Quality is our top priority at Westend Corporation. We maintain strict quality control from sourcing to packaging, ensuring only the best products reach our customers. We are FSSAI, ISO, and HACCP certified.",

	"certification": "Westend Corporation maintains various quality certifications including:\n\n• FSSAI Certification\n• ISO Certification\n• HACCP Compliance\n• Organic India Certification\n• USDA Organic\n\nAll our products meet strict international quality standards.",

	"categories": "We offer several main product categories:\n\nGroceries & Pulses - Premium quality grains and lentils\nFrozen Vegetables - Fresh frozen produce\nProcessed Foods - Ready-to-eat and value-added products\n\nWhich category interests you?",

	"goodbye": "Thank you for contacting Westend Corporation! Feel free to reach out anytime if you need more information. Have a great day!",

	"pricing": "For pricing information, I can help you get a quote. Could you please tell me which products you're interested in and the quantity you need? Our pricing is competitive and varies based on order quantity and destination.",

	"ticket_create": "I understand you need support. I can create a support ticket for you. Could you please provide:\n\n• Your name and email\n• A brief description of your issue\n• Your phone number (optional)\n\nThis will help our support team assist you better.",
}

// Normalize prepares a message for matching and cache keying.
func Normalize(message string) string {
	return strings.ToLower(strings.TrimSpace(message))
}

// DetectIntent scans the ordered table and returns the first intent with
// a keyword appearing as a substring of the normalized message.
func DetectIntent(intents []Intent, message string) (string, bool) {
	normalized := Normalize(message)
	for _, intent := range intents {
		for _, keyword := range intent.Keywords {
			if strings.Contains(normalized, keyword) {
				return intent.Name, true
			}
		}
	}
	return "", false
}

// Package catalog supplies the read-only seed data: the task-card deck
// and the household-bill list a couple starts from. Templates carry no
// ids or assignments; instantiate them with NewCards / NewBills.
package catalog

import (
	"time"

	"github.com/google/uuid"

	"github.com/insama/insama/internal/models"
)

func card(title string, category models.CardCategory, description, mentalLoad, frequency string, minutes int, priority string) models.Card {
	return models.Card{
		Title:        title,
		Category:     category,
		Description:  description,
		MentalLoad:   mentalLoad,
		Frequency:    frequency,
		TimeEstimate: minutes,
		Priority:     priority,
	}
}

var cardTemplates = []models.Card{
	// Home & cleaning
	card("Dishes", models.CategoryHomeCleaning,
		"Keep dishes clean and kitchen tidy",
		"Notice when dishes are dirty, plan when to do them, load/unload dishwasher, hand wash items, put away clean dishes",
		models.FrequencyDaily, 30, models.PriorityHigh),
	card("Laundry", models.CategoryHomeCleaning,
		"Manage all household laundry",
		"Notice when clothes are dirty, sort by color/fabric, wash, dry, fold, put away in correct locations",
		models.FrequencyWeekly, 120, models.PriorityHigh),
	card("Bathroom Cleaning", models.CategoryHomeCleaning,
		"Keep bathrooms clean and stocked",
		"Notice when cleaning is needed, buy supplies, scrub toilet/shower/sink, restock toilet paper and toiletries",
		models.FrequencyWeekly, 45, models.PriorityMedium),
	card("Grocery Shopping", models.CategoryHomeCleaning,
		"Ensure household has food and supplies",
		"Check what's needed, make shopping list, go to store, put groceries away in proper places",
		models.FrequencyWeekly, 90, models.PriorityHigh),
	card("Trash & Recycling", models.CategoryHomeCleaning,
		"Manage household waste",
		"Empty bins when full, take to curb on collection day, bring bins back, replace liners",
		models.FrequencyWeekly, 15, models.PriorityMedium),
	card("Kitchen Deep Clean", models.CategoryHomeCleaning,
		"Maintain kitchen appliances and surfaces",
		"Clean inside microwave, oven, refrigerator, wipe down cabinets, organize pantry, sanitize counters",
		models.FrequencyMonthly, 90, models.PriorityMedium),
	card("Mail Organization", models.CategoryHomeCleaning,
		"Manage incoming mail and packages",
		"Sort daily mail, file important documents, recycle junk mail, track packages",
		models.FrequencyDaily, 10, models.PriorityMedium),
	card("Deep Cleaning Projects", models.CategoryHomeCleaning,
		"Tackle intensive cleaning tasks",
		"Plan deep cleaning schedule, gather supplies, clean baseboards, light fixtures, behind appliances",
		models.FrequencySeasonal, 240, models.PriorityMedium),

	// Children
	card("School Lunches", models.CategoryChildren,
		"Prepare daily school lunches",
		"Plan nutritious meals, buy lunch supplies, pack lunches each morning, include utensils/napkins",
		models.FrequencyDaily, 15, models.PriorityHigh),
	card("Doctor Appointments", models.CategoryChildren,
		"Manage children's healthcare",
		"Schedule appointments, remember dates, arrange transportation, follow up on treatments",
		models.FrequencyAsNeeded, 120, models.PriorityHigh),
	card("Bedtime Routine", models.CategoryChildren,
		"Ensure children get proper sleep",
		"Set consistent bedtime, oversee baths/teeth brushing, read stories, create calm environment",
		models.FrequencyDaily, 45, models.PriorityHigh),
	card("School Pickup/Dropoff", models.CategoryChildren,
		"Manage school transportation",
		"Plan timing, arrange backup plans, communicate with school, ensure safety",
		models.FrequencyDaily, 30, models.PriorityHigh),
	card("Homework Supervision", models.CategoryChildren,
		"Support children's academic success",
		"Check homework completion, provide help when needed, communicate with teachers",
		models.FrequencyDaily, 45, models.PriorityMedium),
	card("Playdates", models.CategoryChildren,
		"Facilitate children's social connections",
		"Coordinate with other parents, plan activities, supervise play, arrange transportation",
		models.FrequencyWeekly, 120, models.PriorityMedium),
	card("School Communication", models.CategoryChildren,
		"Maintain connection with teachers",
		"Read school emails, attend conferences, respond to teacher requests, volunteer",
		models.FrequencyWeekly, 30, models.PriorityMedium),

	// Adult relationships
	card("Date Nights", models.CategoryAdultRelationships,
		"Nurture romantic relationship",
		"Plan activities, arrange childcare, make reservations, create special moments together",
		models.FrequencyWeekly, 30, models.PriorityMedium),
	card("Holiday Planning", models.CategoryAdultRelationships,
		"Organize holiday celebrations",
		"Plan menus, buy decorations, coordinate travel, manage gift exchanges",
		models.FrequencySeasonal, 300, models.PriorityHigh),
	card("Extended Family", models.CategoryAdultRelationships,
		"Maintain family relationships",
		"Remember important events, coordinate visits, send cards/gifts, plan gatherings",
		models.FrequencyMonthly, 60, models.PriorityMedium),
	card("Couple's Finances", models.CategoryAdultRelationships,
		"Manage shared financial goals",
		"Plan budgets together, discuss financial goals, coordinate major purchases",
		models.FrequencyMonthly, 90, models.PriorityMedium),
	card("Gift Giving", models.CategoryAdultRelationships,
		"Manage gift obligations",
		"Remember occasions, shop for gifts, wrap presents, coordinate gift exchanges",
		models.FrequencyAsNeeded, 90, models.PriorityMedium),
	card("Communication Rituals", models.CategoryAdultRelationships,
		"Maintain open communication",
		"Schedule regular check-ins, practice active listening, address conflicts constructively",
		models.FrequencyWeekly, 30, models.PriorityMedium),

	// Magic
	card("Family Traditions", models.CategoryMagic,
		"Create meaningful family memories",
		"Plan special traditions, gather supplies, document moments, maintain consistency year to year",
		models.FrequencySeasonal, 120, models.PriorityMedium),
	card("Surprise Gifts", models.CategoryMagic,
		"Create unexpected joy",
		"Notice what would bring happiness, plan surprises, shop for special items, coordinate timing",
		models.FrequencyAsNeeded, 90, models.PriorityMedium),
	card("Photo Organization", models.CategoryMagic,
		"Preserve family memories",
		"Take photos, organize digital files, create albums, print special photos, backup files",
		models.FrequencyMonthly, 60, models.PriorityMedium),
	card("Birthday Magic", models.CategoryMagic,
		"Make birthdays special",
		"Plan surprise elements, create special traditions, coordinate celebrations, document milestones",
		models.FrequencyAsNeeded, 120, models.PriorityMedium),
	card("Family Game Nights", models.CategoryMagic,
		"Create fun family bonding time",
		"Plan game nights, buy new games, create tournaments, make special snacks",
		models.FrequencyWeekly, 30, models.PriorityMedium),

	// Wild cards
	card("Illness Management", models.CategoryWildCards,
		"Handle family health crises",
		"Recognize symptoms, contact doctors, manage medications, arrange care, adjust schedules",
		models.FrequencyAsNeeded, 240, models.PriorityHigh),
	card("Travel Planning", models.CategoryWildCards,
		"Organize family trips",
		"Research destinations, book flights/hotels, plan itineraries, pack for everyone, arrange pet care",
		models.FrequencyAsNeeded, 360, models.PriorityMedium),
	card("Home Repairs", models.CategoryWildCards,
		"Maintain household functionality",
		"Notice what needs fixing, research solutions, contact contractors, oversee repairs",
		models.FrequencyAsNeeded, 180, models.PriorityMedium),
	card("Pet Care", models.CategoryWildCards,
		"Manage pet health and needs",
		"Schedule vet visits, manage feeding, arrange pet sitting, handle emergencies",
		models.FrequencyWeekly, 60, models.PriorityMedium),
	card("Financial Emergencies", models.CategoryWildCards,
		"Manage unexpected expenses",
		"Assess situation, research options, make decisions, implement solutions, adjust budget",
		models.FrequencyAsNeeded, 180, models.PriorityHigh),
	card("Aging Parents", models.CategoryWildCards,
		"Support elderly family members",
		"Coordinate care, manage medical appointments, research care options, provide emotional support",
		models.FrequencyAsNeeded, 240, models.PriorityHigh),
}

// Cards returns the card templates. The slice is a copy; callers may
// modify it freely.
func Cards() []models.Card {
	out := make([]models.Card, len(cardTemplates))
	copy(out, cardTemplates)
	return out
}

// NewCards instantiates the full deck with fresh ids, unassigned
// ownership, and the given creation time.
func NewCards(now time.Time) []models.Card {
	cards := Cards()
	for i := range cards {
		cards[i].ID = "card-" + uuid.New().String()
		cards[i].Ownership = models.Ownership{}
		cards[i].CreatedAt = now
	}
	return cards
}

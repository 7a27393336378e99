// Package catalog holds the immutable reward, challenge and event fixtures.
// Catalog entries are seeded into storage at startup and are never created
// or destroyed at runtime.
package catalog

import (
	"time"

	"github.com/ecosphere/ecosphere-api/internal/models"
)

func days(n int) *int { return &n }

// Rewards returns the reward catalog.
func Rewards() []models.Reward {
	return []models.Reward{
		{
			ID:                "reward1",
			Title:             "20% Off at GreenEats Restaurant",
			Description:       "Enjoy a discount at this farm-to-table restaurant that sources all ingredients locally.",
			PointsCost:        500,
			Category:          "dining",
			Provider:          "GreenEats",
			ExpiryDays:        days(60),
			RedemptionDetails: "Show the code at checkout: ECO500. Valid for one meal, excluding alcohol.",
			Image:             "/rewards/greeneats.jpg",
			Available:         true,
		},
		{
			ID:                "reward2",
			Title:             "Free Bike Tune-Up",
			Description:       "Get your bicycle tuned up for free at CycleLife bike shop.",
			PointsCost:        800,
			Category:          "transport",
			Provider:          "CycleLife",
			ExpiryDays:        days(90),
			RedemptionDetails: "Present the voucher code ECO800 at any CycleLife location.",
			Image:             "/rewards/cyclelife.jpg",
			Available:         true,
		},
		{
			ID:                "reward3",
			Title:             "15% Off Sustainable Fashion",
			Description:       "Discount on any purchase at EcoWear, featuring clothing made from recycled materials.",
			PointsCost:        350,
			Category:          "shopping",
			Provider:          "EcoWear",
			ExpiryDays:        days(45),
			RedemptionDetails: "Use code ECOSPH350 at checkout online or in-store.",
			Image:             "/rewards/ecowear.jpg",
			Available:         true,
		},
		{
			ID:                "reward4",
			Title:             "Zero-Waste Starter Kit",
			Description:       "A kit containing reusable straw, cutlery, coffee cup, and shopping bag.",
			PointsCost:        650,
			Category:          "merchandise",
			Provider:          "EcoSphere",
			RedemptionDetails: "We'll ship the kit to your registered address within 10 business days.",
			Image:             "/rewards/starterkit.jpg",
			Available:         true,
		},
		{
			ID:                "reward5",
			Title:             "Tree Planting in Your Name",
			Description:       "We'll plant a tree in a reforestation project and send you the certificate.",
			PointsCost:        200,
			Category:          "impact",
			Provider:          "TreeFuture",
			RedemptionDetails: "Receive a digital certificate with GPS coordinates of your tree.",
			Image:             "/rewards/treeplanting.jpg",
			Available:         true,
		},
		{
			ID:                "reward6",
			Title:             "One Month Free Public Transit Pass",
			Description:       "A month of unlimited rides on city public transportation.",
			PointsCost:        1000,
			Category:          "transport",
			Provider:          "Metro Transit",
			ExpiryDays:        days(30),
			RedemptionDetails: "Redeem at any Metro Transit customer service center with code ECOSPH1000.",
			Image:             "/rewards/transit.jpg",
			Available:         true,
		},
		{
			ID:                "reward7",
			Title:             "50% Off Home Energy Audit",
			Description:       "Professional assessment of your home's energy efficiency with recommendations.",
			PointsCost:        450,
			Category:          "home",
			Provider:          "GreenHome Solutions",
			ExpiryDays:        days(120),
			RedemptionDetails: "Call GreenHome at 555-123-4567 and mention code ECOSPH450.",
			Image:             "/rewards/energyaudit.jpg",
			Available:         true,
		},
		{
			ID:                "reward8",
			Title:             "Community Garden Plot",
			Description:       "One season access to a plot in a local community garden.",
			PointsCost:        1200,
			Category:          "experience",
			Provider:          "Urban Growers Collective",
			ExpiryDays:        days(365),
			RedemptionDetails: "Contact Urban Growers with your voucher code for plot assignment.",
			Image:             "/rewards/garden.jpg",
			Available:         true,
		},
	}
}

// Challenges returns the challenge catalog.
func Challenges() []models.Challenge {
	return []models.Challenge{
		{
			ID:          "challenge1",
			Title:       "Zero Waste Day",
			Description: "Go through an entire day without generating any disposable waste.",
			Points:      100,
			Difficulty:  "medium",
			Type:        "daily",
			Duration:    1,
			Tips: []string{
				"Bring your own reusable containers for takeout",
				"Carry a reusable water bottle and coffee cup",
				"Say no to straws and plastic cutlery",
			},
			Impact:             "Reduces landfill waste and plastic pollution",
			CompletionCriteria: "Honor system - report your success at the end of the day",
		},
		{
			ID:          "challenge2",
			Title:       "Bike to Work Week",
			Description: "Commute to work or school by bicycle for an entire week.",
			Points:      250,
			Difficulty:  "hard",
			Type:        "weekly",
			Duration:    7,
			Tips: []string{
				"Plan your route ahead of time",
				"Check your bike is in good working condition",
				"Pack a change of clothes if needed",
			},
			Impact:             "Reduces CO2 emissions and improves personal health",
			CompletionCriteria: "Track your rides with the app for 5 workdays",
		},
		{
			ID:          "challenge3",
			Title:       "Meatless Monday",
			Description: "Eat vegetarian for an entire day.",
			Points:      75,
			Difficulty:  "easy",
			Type:        "weekly",
			Duration:    1,
			Tips: []string{
				"Try plant-based proteins like beans, lentils, and tofu",
				"Explore vegetarian recipes from different cultures",
				"Prep your meals ahead of time",
			},
			Impact:             "Reduces carbon footprint and water usage associated with meat production",
			CompletionCriteria: "Track your meals for the day in the app",
		},
		{
			ID:          "challenge4",
			Title:       "Energy Audit",
			Description: "Complete a home energy audit and identify at least 3 ways to improve efficiency.",
			Points:      150,
			Difficulty:  "medium",
			Type:        "monthly",
			Duration:    1,
			Tips: []string{
				"Check for air leaks around windows and doors",
				"Inspect insulation in your attic",
				"Evaluate the efficiency of your appliances",
			},
			Impact:             "Reduces home energy consumption and greenhouse gas emissions",
			CompletionCriteria: "Submit your findings and planned improvements",
		},
		{
			ID:          "challenge5",
			Title:       "Public Transport Month",
			Description: "Use public transportation for all non-walking distance trips for a month.",
			Points:      300,
			Difficulty:  "hard",
			Type:        "monthly",
			Duration:    30,
			Tips: []string{
				"Get a monthly transit pass to save money",
				"Download transit apps to plan your routes",
				"Bring a book or podcast for the journey",
			},
			Impact:             "Significantly reduces carbon emissions from personal vehicle use",
			CompletionCriteria: "Log at least 20 public transit trips in 30 days",
		},
		{
			ID:          "challenge6",
			Title:       "Local Food Day",
			Description: "Eat only locally-sourced food (within 100 miles) for a day.",
			Points:      100,
			Difficulty:  "medium",
			Type:        "daily",
			Duration:    1,
			Tips: []string{
				"Visit a farmers market",
				"Research local food producers in your area",
				"Cook meals from scratch using local ingredients",
			},
			Impact:             "Reduces carbon emissions from food transportation and supports local economy",
			CompletionCriteria: "Record your meals with sources of each ingredient",
		},
		{
			ID:          "challenge7",
			Title:       "Digital Cleanup Day",
			Description: "Delete unnecessary emails, files, and apps to reduce your digital carbon footprint.",
			Points:      50,
			Difficulty:  "easy",
			Type:        "daily",
			Duration:    1,
			Tips: []string{
				"Start with your largest files and oldest emails",
				"Unsubscribe from newsletters you don't read",
				"Use cloud storage services that run on renewable energy",
			},
			Impact:             "Reduces energy used by data centers to store digital content",
			CompletionCriteria: "Delete at least 1GB of data or 500 emails",
		},
		{
			ID:          "challenge8",
			Title:       "Water Conservation Week",
			Description: "Reduce your water usage by 20% for a week.",
			Points:      200,
			Difficulty:  "medium",
			Type:        "weekly",
			Duration:    7,
			Tips: []string{
				"Take shorter showers",
				"Install low-flow faucets and shower heads",
				"Only run full loads of laundry and dishes",
			},
			Impact:             "Conserves water resources and reduces energy used for water heating",
			CompletionCriteria: "Track your water usage before and during the challenge",
		},
	}
}

// Events returns the event catalog.
func Events() []models.Event {
	return []models.Event{
		{
			ID:                   "event1",
			Title:                "Community Park Cleanup",
			Description:          "Join us for a day of cleaning up Riverside Park. Equipment and refreshments provided.",
			Date:                 time.Date(2023, 11, 15, 9, 0, 0, 0, time.UTC),
			EndTime:              time.Date(2023, 11, 15, 12, 0, 0, 0, time.UTC),
			Location:             "Riverside Park, Main Entrance",
			Type:                 "cleanup",
			Organizer:            "City Green Initiative",
			Attendees:            42,
			MaxAttendees:         50,
			PointsReward:         150,
			Image:                "/events/parkcleanup.jpg",
			RegistrationRequired: true,
		},
		{
			ID:                   "event2",
			Title:                "Sustainable Living Workshop",
			Description:          "Learn practical tips for reducing waste and living more sustainably in your daily life.",
			Date:                 time.Date(2023, 11, 20, 18, 30, 0, 0, time.UTC),
			EndTime:              time.Date(2023, 11, 20, 20, 30, 0, 0, time.UTC),
			Location:             "Community Center, Room 203",
			Type:                 "workshop",
			Organizer:            "EcoLiving Experts",
			Attendees:            28,
			MaxAttendees:         35,
			PointsReward:         100,
			Image:                "/events/workshop.jpg",
			RegistrationRequired: true,
		},
		{
			ID:                   "event3",
			Title:                "Farmers Market Tour",
			Description:          "Guided tour of the local farmers market with tips on selecting seasonal produce and meeting local farmers.",
			Date:                 time.Date(2023, 11, 25, 10, 0, 0, 0, time.UTC),
			EndTime:              time.Date(2023, 11, 25, 11, 30, 0, 0, time.UTC),
			Location:             "Downtown Farmers Market",
			Type:                 "tour",
			Organizer:            "Local Food Alliance",
			Attendees:            15,
			MaxAttendees:         20,
			PointsReward:         75,
			Image:                "/events/farmersmarket.jpg",
			RegistrationRequired: true,
		},
		{
			ID:                   "event4",
			Title:                "Bike to Work Day",
			Description:          "Join fellow cyclists for a community ride to work. Multiple starting points throughout the city.",
			Date:                 time.Date(2023, 12, 1, 7, 0, 0, 0, time.UTC),
			EndTime:              time.Date(2023, 12, 1, 9, 0, 0, 0, time.UTC),
			Location:             "Various Locations",
			Type:                 "activity",
			Organizer:            "Cycle Advocates Network",
			Attendees:            120,
			MaxAttendees:         500,
			PointsReward:         100,
			Image:                "/events/biketowork.jpg",
			RegistrationRequired: false,
			RegistrationURL:      "https://biketoworkday.org",
		},
		{
			ID:                   "event5",
			Title:                "Documentary Screening: Climate Solutions",
			Description:          "Screening of award-winning documentary followed by panel discussion with local experts.",
			Date:                 time.Date(2023, 12, 8, 19, 0, 0, 0, time.UTC),
			EndTime:              time.Date(2023, 12, 8, 21, 30, 0, 0, time.UTC),
			Location:             "City Library Auditorium",
			Type:                 "educational",
			Organizer:            "Climate Action Coalition",
			Attendees:            75,
			MaxAttendees:         120,
			PointsReward:         100,
			Image:                "/events/documentary.jpg",
			RegistrationRequired: true,
		},
		{
			ID:                   "event6",
			Title:                "Native Plant Gardening Workshop",
			Description:          "Learn how to create a garden that supports local ecosystems and requires less water and maintenance.",
			Date:                 time.Date(2023, 12, 15, 14, 0, 0, 0, time.UTC),
			EndTime:              time.Date(2023, 12, 15, 16, 0, 0, 0, time.UTC),
			Location:             "Botanical Gardens Education Center",
			Type:                 "workshop",
			Organizer:            "Native Plant Society",
			Attendees:            18,
			MaxAttendees:         30,
			PointsReward:         125,
			Image:                "/events/nativeplants.jpg",
			RegistrationRequired: true,
		},
	}
}

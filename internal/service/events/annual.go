package events

import "github.com/DylanJDombrowski/pizzai-dashboard/internal/domain/models"

// annualHolidays is the built-in event table: holidays and recurring demand
// drivers with impact multipliers estimated for pizza restaurant traffic.
// Dates for recurring entries anchor the month/day; the calendar re-pins
// them to the queried year.
func annualHolidays() []models.SpecialEvent {
	return []models.SpecialEvent{
		{
			ID:               "event_super_bowl_sunday",
			Name:             "Super Bowl Sunday",
			Date:             "2025-02-09",
			Type:             models.EventSports,
			Impact:           models.ImpactVeryHigh,
			ImpactMultiplier: 3.0,
			Description:      "Highest volume day of the year for pizza delivery",
			Recurring:        true,
			Customizations: &models.EventCustomizations{
				StaffingNotes:    "All hands on deck - expect 3x normal volume. Start prep early.",
				RecommendedRoles: []models.Role{models.RoleCook, models.RoleDelivery, models.RolePrep},
				ExtendedHours:    true,
			},
		},
		{
			ID:               "event_new_years_eve",
			Name:             "New Year's Eve",
			Date:             "2025-12-31",
			Type:             models.EventHoliday,
			Impact:           models.ImpactVeryHigh,
			ImpactMultiplier: 2.2,
			Description:      "Major party night with high delivery and takeout demand",
			Recurring:        true,
			Customizations: &models.EventCustomizations{
				StaffingNotes: "Late night surge expected. Consider extended hours until 2 AM.",
				ExtendedHours: true,
			},
		},
		{
			ID:               "event_halloween",
			Name:             "Halloween",
			Date:             "2025-10-31",
			Type:             models.EventHoliday,
			Impact:           models.ImpactVeryHigh,
			ImpactMultiplier: 2.0,
			Description:      "High family demand and party orders",
			Recurring:        true,
			Customizations: &models.EventCustomizations{
				StaffingNotes: "Peak from 5-8 PM. Many large family orders.",
			},
		},
		{
			ID:               "event_valentines_day",
			Name:             "Valentine's Day",
			Date:             "2025-02-14",
			Type:             models.EventHoliday,
			Impact:           models.ImpactHigh,
			ImpactMultiplier: 1.8,
			Description:      "Strong dinner demand, many couples dining in",
			Recurring:        true,
		},
		{
			ID:               "event_march_madness_first_weekend",
			Name:             "March Madness (First Weekend)",
			Date:             "2025-03-20",
			Type:             models.EventSports,
			Impact:           models.ImpactHigh,
			ImpactMultiplier: 1.7,
			Description:      "NCAA tournament drives sports bar and delivery demand",
			Recurring:        true,
		},
		{
			ID:               "event_cinco_de_mayo",
			Name:             "Cinco de Mayo",
			Date:             "2025-05-05",
			Type:             models.EventHoliday,
			Impact:           models.ImpactHigh,
			ImpactMultiplier: 1.6,
			Description:      "Party night with strong evening demand",
			Recurring:        true,
		},
		{
			ID:               "event_memorial_day_weekend",
			Name:             "Memorial Day Weekend",
			Date:             "2025-05-26",
			Type:             models.EventHoliday,
			Impact:           models.ImpactHigh,
			ImpactMultiplier: 1.5,
			Description:      "Summer kickoff, strong weekend demand",
			Recurring:        true,
		},
		{
			ID:               "event_independence_day",
			Name:             "Independence Day (July 4th)",
			Date:             "2025-07-04",
			Type:             models.EventHoliday,
			Impact:           models.ImpactHigh,
			ImpactMultiplier: 1.8,
			Description:      "Major party day with BBQs and gatherings",
			Recurring:        true,
		},
		{
			ID:               "event_labor_day_weekend",
			Name:             "Labor Day Weekend",
			Date:             "2025-09-01",
			Type:             models.EventHoliday,
			Impact:           models.ImpactHigh,
			ImpactMultiplier: 1.5,
			Description:      "Summer ending celebrations",
			Recurring:        true,
		},
		{
			ID:               "event_thanksgiving_eve",
			Name:             "Thanksgiving Eve",
			Date:             "2025-11-26",
			Type:             models.EventHoliday,
			Impact:           models.ImpactHigh,
			ImpactMultiplier: 1.9,
			Description:      "Biggest bar night of the year, high late-night demand",
			Recurring:        true,
			Customizations: &models.EventCustomizations{
				StaffingNotes: "Late night surge. Many people out with friends/family.",
			},
		},
		{
			ID:               "event_black_friday",
			Name:             "Black Friday",
			Date:             "2025-11-28",
			Type:             models.EventHoliday,
			Impact:           models.ImpactHigh,
			ImpactMultiplier: 1.6,
			Description:      "Shoppers ordering delivery and takeout",
			Recurring:        true,
		},
		{
			ID:               "event_christmas_eve",
			Name:             "Christmas Eve",
			Date:             "2025-12-24",
			Type:             models.EventHoliday,
			Impact:           models.ImpactHigh,
			ImpactMultiplier: 1.7,
			Description:      "Family gatherings and last-minute orders",
			Recurring:        true,
		},
		{
			ID:               "event_st_patricks_day",
			Name:             "St. Patrick's Day",
			Date:             "2025-03-17",
			Type:             models.EventHoliday,
			Impact:           models.ImpactModerate,
			ImpactMultiplier: 1.4,
			Description:      "Bar crowds and evening parties",
			Recurring:        true,
		},
		{
			ID:               "event_easter_sunday",
			Name:             "Easter Sunday",
			Date:             "2025-04-20",
			Type:             models.EventHoliday,
			Impact:           models.ImpactModerate,
			ImpactMultiplier: 1.3,
			Description:      "Family dinner demand",
			Recurring:        true,
		},
		{
			ID:               "event_mothers_day",
			Name:             "Mother's Day",
			Date:             "2025-05-11",
			Type:             models.EventHoliday,
			Impact:           models.ImpactModerate,
			ImpactMultiplier: 1.4,
			Description:      "Strong lunch and early dinner demand",
			Recurring:        true,
		},
		{
			ID:               "event_fathers_day",
			Name:             "Father's Day",
			Date:             "2025-06-15",
			Type:             models.EventHoliday,
			Impact:           models.ImpactModerate,
			ImpactMultiplier: 1.3,
			Description:      "Casual dining and sports bar demand",
			Recurring:        true,
		},
		{
			ID:               "event_back_to_school_week",
			Name:             "Back to School Week",
			Date:             "2025-09-02",
			Type:             models.EventLocal,
			Impact:           models.ImpactModerate,
			ImpactMultiplier: 1.2,
			Description:      "Busy parents ordering convenience meals",
			Recurring:        true,
		},
		{
			ID:               "event_christmas_day",
			Name:             "Christmas Day",
			Date:             "2025-12-25",
			Type:             models.EventHoliday,
			Impact:           models.ImpactModerate,
			ImpactMultiplier: 1.3,
			Description:      "Limited competition, family orders",
			Recurring:        true,
			Customizations: &models.EventCustomizations{
				StaffingNotes: "Consider closing or limited hours. Holiday pay applies.",
			},
		},
		{
			ID:               "event_thanksgiving_day",
			Name:             "Thanksgiving Day",
			Date:             "2025-11-27",
			Type:             models.EventHoliday,
			Impact:           models.ImpactLow,
			ImpactMultiplier: 0.3,
			Description:      "Slowest day of the year - people cooking at home",
			Recurring:        true,
			Customizations: &models.EventCustomizations{
				StaffingNotes: "Consider closing. Minimal demand expected.",
			},
		},
		{
			ID:               "event_nfl_season_sundays",
			Name:             "NFL Season (Sundays)",
			Date:             "2025-09-07",
			Type:             models.EventSports,
			Impact:           models.ImpactModerate,
			ImpactMultiplier: 1.3,
			Description:      "Sunday football drives consistent demand Sept-Jan",
			Recurring:        true,
			Customizations: &models.EventCustomizations{
				StaffingNotes: "Strong Sunday demand during NFL season (Sept-Feb)",
			},
		},
		{
			ID:               "event_march_madness_finals",
			Name:             "March Madness (Finals)",
			Date:             "2025-04-07",
			Type:             models.EventSports,
			Impact:           models.ImpactHigh,
			ImpactMultiplier: 1.8,
			Description:      "Championship game drives major demand",
			Recurring:        true,
		},
	}
}

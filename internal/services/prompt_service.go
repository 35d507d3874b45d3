package services

import (
	"fmt"
	"strings"

	"voyago/internal/models/db_models"
	"voyago/pkg/utils"
)

type PromptServiceInterface interface {
	// BuildSystemPrompt renders plan, fixed points and profile into the
	// instruction set for the LLM. Pure function of its inputs: same data in,
	// same string out, no I/O.
	BuildSystemPrompt(plan *db_models.Plan, fixedPoints []db_models.FixedPoint, profile *db_models.Profile, language string) string
	BuildUserPrompt() string
}

type PromptService struct{}

func NewPromptService() PromptServiceInterface {
	return &PromptService{}
}

func (p *PromptService) BuildSystemPrompt(
	plan *db_models.Plan,
	fixedPoints []db_models.FixedPoint,
	profile *db_models.Profile,
	language string,
) string {
	if language == "" {
		language = "en"
	}

	var prompt strings.Builder

	prompt.WriteString("You are a travel planner. Create a day-by-day itinerary for the trip below.\n\n")

	prompt.WriteString("Trip:\n")
	prompt.WriteString(fmt.Sprintf("- Destination: %s\n", plan.Destination))
	prompt.WriteString(fmt.Sprintf("- Dates: %s to %s (%d days, one entry per day)\n",
		utils.FormatDate(plan.StartDate),
		utils.FormatDate(plan.EndDate),
		utils.PlanDayCount(*plan.StartDate, *plan.EndDate)))
	if strings.TrimSpace(plan.Notes) != "" {
		prompt.WriteString(fmt.Sprintf("- Traveler notes: %s\n", plan.Notes))
	}

	prompt.WriteString("\nFixed points (pre-booked, non-negotiable):\n")
	if len(fixedPoints) == 0 {
		prompt.WriteString("- none scheduled\n")
	} else {
		for _, fp := range fixedPoints {
			line := fmt.Sprintf("- %s | %s", fp.ScheduledAt.UTC().Format("2006-01-02 15:04"), fp.Location)
			if fp.DurationMinutes > 0 {
				line += fmt.Sprintf(" | %d min", fp.DurationMinutes)
			}
			if fp.Description != "" {
				line += fmt.Sprintf(" | %s", fp.Description)
			}
			prompt.WriteString(line + "\n")
		}
	}

	prompt.WriteString("\nPriority rules, highest first:\n")
	prompt.WriteString("1. Every fixed point MUST appear in the itinerary on its exact date and time. Never move, rename or drop a fixed point; schedule everything else around them.\n")
	prompt.WriteString("2. The traveler notes are the next strongest signal for what to include.\n")
	prompt.WriteString(fmt.Sprintf("3. Travel pace is %q: let it set how many activities fit into a day.\n", paceOrDefault(profile)))
	if profile != nil && len(profile.Preferences) > 0 {
		prompt.WriteString(fmt.Sprintf("4. Bias remaining activity selection toward these interests, in order: %s.\n",
			strings.Join(profile.Preferences, ", ")))
	}

	prompt.WriteString("\nMoney:\n")
	prompt.WriteString("- Infer the local currency from the destination and report it as a 3-letter ISO 4217 code.\n")
	prompt.WriteString("- estimated_price is a plain numeric string without symbols; use \"0\" for free activities.\n")

	prompt.WriteString(fmt.Sprintf("\nWrite all user-facing text in language %q.\n", language))

	prompt.WriteString("\nReturn JSON only, matching exactly one of these two shapes:\n")
	prompt.WriteString(`{
  "status": "success",
  "summary": "...",
  "currency": "EUR",
  "itinerary": {
    "destination": "...",
    "dates": "...",
    "days": [
      {
        "date": "2026-06-15",
        "items": [
          {"time": "09:00", "category": "sightseeing", "title": "...", "description": "...", "estimated_price": "12", "estimated_duration": "2h"}
        ]
      }
    ]
  }
}`)
	prompt.WriteString("\nor, when the trip cannot be planned:\n")
	prompt.WriteString(`{
  "status": "error",
  "error_type": "unrealistic_plan" or "invalid_location",
  "error_message": "..."
}`)
	prompt.WriteString("\nNo markdown, no comments, no extra keys.\n")

	return prompt.String()
}

func (p *PromptService) BuildUserPrompt() string {
	return "Generate the itinerary now."
}

func paceOrDefault(profile *db_models.Profile) db_models.TravelPace {
	if profile == nil || profile.TravelPace == "" {
		return db_models.PaceModerate
	}
	return profile.TravelPace
}

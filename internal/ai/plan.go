package ai

import (
	"fmt"
	"math"
	"strings"
)

var goalTemplates = map[string][]string{
	"weight loss": {
		"4 days per week: 2 cardio sessions + 2 strength sessions",
		"5 min warm-up before and 10 min stretching after each session",
		"Daily step target: 8000-10000",
	},
	"muscle gain": {
		"4 days per week split: alternating upper body / lower body",
		"Progressive overload on compound lifts (squat, bench, deadlift)",
		"10 minutes of mobility work after each session",
	},
	"flexibility": {
		"3 days per week of yoga or pilates",
		"Daily 15 minute stretching routine",
		"Low intensity cardio as a warm-up",
	},
	"weight gain": {
		"3-4 days per week of full body strength training",
		"Focus on compound movements (squat, bench, row)",
		"Short cardio sessions for recovery",
	},
}

// BuildPlan assembles a rule-based training and nutrition plan from the
// member's goal, body metrics and preferences. No external AI calls.
func BuildPlan(req PlanRequest) PlanResponse {
	goalInput := strings.TrimSpace(req.FitnessGoal)

	template, hasTemplate := goalTemplates[strings.ToLower(goalInput)]

	goal := "general fitness"
	if hasTemplate {
		goal = goalInput
	}

	workout := []string{
		"3 days per week of full body training",
		"Regular cardio and stretching",
	}
	if template != nil {
		workout = append([]string(nil), template...)
	}

	intensity := strings.TrimSpace(req.Intensity)
	if intensity == "" {
		intensity = "moderate"
	}

	bmi := calculateBMI(req.HeightCm, req.WeightKg)
	bmiCategory := bmiCategoryFor(bmi)

	extraNote := "The plan includes a 5-10 minute warm-up to reduce injury risk."
	if notes := strings.TrimSpace(req.SpecialNotes); notes != "" {
		extraNote = "Your note was taken into account: " + notes
	}

	plan := make([]string, 0, len(workout)+2)
	plan = append(plan, "Intensity preference: "+intensity)
	plan = append(plan, workout...)
	plan = append(plan, fmt.Sprintf("Daily target duration: %d minutes", req.DailyMinutes))

	return PlanResponse{
		Headline:        fmt.Sprintf("A %d minute plan for your %s goal", req.DailyMinutes, goal),
		WorkoutPlan:     plan,
		NutritionPlan:   buildNutrition(goal, intensity),
		BMI:             math.Round(bmi*10) / 10,
		BMICategory:     bmiCategory,
		PersonalizedTip: buildPersonalizedTip(req.BodyType, bmiCategory, req.Age, goal),
		ExtraNote:       extraNote,
	}
}

func buildNutrition(goal, intensity string) []string {
	var suggestions []string

	switch strings.ToLower(strings.TrimSpace(goal)) {
	case "weight loss":
		suggestions = []string{
			"Run a 15-20% daily calorie deficit",
			"Target 25-30g of protein per meal",
			"Swap sugary drinks for water or herbal tea",
		}
	case "weight gain":
		suggestions = []string{
			"Add 300-500 kcal to your daily intake",
			"Add protein and complex carb rich snacks",
			"Supplement with liquid calories (smoothies)",
		}
	case "muscle gain":
		suggestions = []string{
			"1.6-2g of protein per kg of body weight",
			"Balance complex carbs and healthy fats",
			"Add 300-400 kcal on training days",
		}
	default:
		suggestions = []string{
			"Drink 2-2.5L of water daily",
			"Add vegetables or greens to every meal",
			"Keep fiber and protein in balance",
		}
	}

	if strings.EqualFold(strings.TrimSpace(intensity), "high") {
		suggestions = append(suggestions, "Pay extra attention to electrolytes and sleep quality")
	} else {
		suggestions = append(suggestions, "At low or moderate intensity, plenty of water and balanced carbs suffice")
	}

	return suggestions
}

func calculateBMI(heightCm, weightKg float64) float64 {
	if heightCm <= 0 || weightKg <= 0 {
		return 0
	}

	heightM := heightCm / 100
	return weightKg / (heightM * heightM)
}

func bmiCategoryFor(bmi float64) string {
	switch {
	case bmi <= 0:
		return "unknown"
	case bmi < 18.5:
		return "underweight"
	case bmi < 24.9:
		return "normal"
	case bmi < 29.9:
		return "overweight"
	default:
		return "obese"
	}
}

func buildPersonalizedTip(bodyType, bmiCategory string, age int, goal string) string {
	var hints []string

	if bodyType = strings.TrimSpace(bodyType); bodyType != "" {
		hints = append(hints, "Body type: "+bodyType)
	}

	if bmiCategory != "" && bmiCategory != "unknown" {
		hints = append(hints, "BMI reading: "+bmiCategory)
	}

	if age > 0 {
		if age < 25 {
			hints = append(hints, "Recovery is fast in your age group, intensity can be increased.")
		} else {
			hints = append(hints, "Mind your recovery windows and plan for quality sleep.")
		}
	}

	if goal != "" {
		hints = append(hints, fmt.Sprintf("For a %s goal, prioritize the balance between recovery and nutrition.", strings.ToLower(goal)))
	}

	if len(hints) == 0 {
		return "Start the plan after a basic health check."
	}

	return strings.Join(hints, " · ")
}

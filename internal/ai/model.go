package ai

type WorkoutAnalysisRequest struct {
	Description string `json:"description" binding:"required"`
}

type NutritionAdviceRequest struct {
	Question string `json:"question" binding:"required"`
}

type ExerciseImageRequest struct {
	ExerciseName string `json:"exercise_name" binding:"required"`
	Days         int    `json:"days" binding:"required,min=1,max=7"`
	Reps         int    `json:"reps" binding:"required,min=1"`
}

type PlanRequest struct {
	FitnessGoal  string  `json:"fitness_goal"`
	BodyType     string  `json:"body_type"`
	Intensity    string  `json:"intensity"`
	HeightCm     float64 `json:"height_cm"`
	WeightKg     float64 `json:"weight_kg"`
	Age          int     `json:"age"`
	DailyMinutes int     `json:"daily_minutes"`
	SpecialNotes string  `json:"special_notes"`
}

type PlanResponse struct {
	Headline        string   `json:"headline"`
	WorkoutPlan     []string `json:"workout_plan"`
	NutritionPlan   []string `json:"nutrition_plan"`
	BMI             float64  `json:"bmi"`
	BMICategory     string   `json:"bmi_category"`
	PersonalizedTip string   `json:"personalized_tip"`
	ExtraNote       string   `json:"extra_note"`
}

type TextResponse struct {
	Result string `json:"result"`
}

type ImageResponse struct {
	URL string `json:"url"`
}

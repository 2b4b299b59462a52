package ai

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// ImageGenerator builds image URLs for a keyless, URL-based image
// service. The prompt is encoded into the URL and the result can be
// used directly as an img src.
type ImageGenerator struct {
	baseURL string
}

func NewImageGenerator(baseURL string) *ImageGenerator {
	return &ImageGenerator{baseURL: baseURL}
}

func (g *ImageGenerator) ExerciseImageURL(exerciseName string, days, reps int) (string, error) {
	if strings.TrimSpace(exerciseName) == "" {
		return "", errors.New("exercise name must not be empty")
	}

	prompt := buildFitnessPrompt(exerciseName, days, reps)
	encoded := url.QueryEscape(prompt)

	return fmt.Sprintf("%s%s?width=768&height=512&nologo=true", g.baseURL, encoded), nil
}

func buildFitnessPrompt(exerciseName string, days, reps int) string {
	details := exerciseDetails(exerciseName)

	return fmt.Sprintf("Professional fitness illustration showing a fit athletic person performing %s exercise, "+
		"%s, "+
		"training schedule %d days per week with %d repetitions, "+
		"modern gym environment with professional lighting, "+
		"motivational fitness poster style, "+
		"high quality digital art, vibrant colors, dynamic pose, "+
		"showing proper form and technique",
		exerciseName, details, days, reps)
}

// exerciseDetails returns per-exercise visual cues that steer the
// generator towards an accurate depiction.
func exerciseDetails(exerciseName string) string {
	switch strings.ToLower(strings.TrimSpace(exerciseName)) {
	case "squat":
		return "barbell on shoulders, deep squat position, strong leg muscles visible"
	case "bench press":
		return "lying on bench, pressing barbell upward, chest muscles engaged"
	case "deadlift":
		return "lifting heavy barbell from ground, back straight, powerful stance"
	case "push-up":
		return "plank position, arms extended, core tight, bodyweight exercise"
	case "pull-up":
		return "hanging from bar, pulling body upward, back muscles defined"
	case "plank":
		return "static hold position, core engaged, perfect body alignment"
	case "bicep curl":
		return "holding dumbbells, curling weights, bicep muscles flexed"
	case "lunges":
		return "stepping forward, deep lunge position, leg muscles working"
	case "shoulder press":
		return "pressing dumbbells overhead, shoulder muscles defined"
	case "lat pulldown":
		return "seated at cable machine, pulling bar down, wide back muscles"
	case "leg press":
		return "seated on machine, pressing weight with legs, quadriceps engaged"
	case "tricep dips":
		return "on parallel bars or bench, lowering body, triceps working"
	case "crunches":
		return "lying on mat, curling upper body, abdominal muscles contracting"
	case "burpees":
		return "explosive full body movement, jumping and dropping to ground"
	case "kettlebell swing":
		return "swinging kettlebell, hip hinge movement, full body exercise"
	default:
		return "proper exercise form, focused athletic movement, muscle engagement visible"
	}
}

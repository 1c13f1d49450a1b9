package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/abylaikhan/uniadvisor/internal/client/models"
)

// typingDelay simulates the interviewer typing before each question.
// Indirection so tests run without waiting.
var typingDelay = func() { time.Sleep(800 * time.Millisecond) }

// Assessment runs the questionnaire: generate the questions, ask them one
// by one in order, then send all answers for evaluation and render the
// ranked major recommendations.
func (a *App) Assessment(ctx context.Context) error {
	fmt.Fprintln(a.out, "Preparing your assessment...")
	questions, err := a.api.GenerateQuestions(ctx, models.AssessmentCategories)
	if err != nil {
		a.notify.Error(detailOr(err, "Failed to generate questions"))
		return err
	}
	if len(questions) == 0 {
		a.notify.Warning("No questions were generated, try again later")
		return nil
	}

	answers := make([]models.Answer, 0, len(questions))
	for _, q := range questions {
		typingDelay()
		fmt.Fprintf(a.out, "\nQuestion %d/%d\n%s\n", q.Step, len(questions), q.Text)

		text, err := getSimpleText(a.reader, "Your answer", a.out)
		if err != nil {
			return err
		}
		for text == "" {
			a.notify.Warning("Please answer before continuing")
			text, err = getSimpleText(a.reader, "Your answer", a.out)
			if err != nil {
				return err
			}
		}
		answers = append(answers, models.Answer{Question: q.Text, Answer: text})
	}

	fmt.Fprintln(a.out, "\nEvaluating your answers...")
	recs, err := a.api.Evaluate(ctx, answers)
	if err != nil {
		a.notify.Error(detailOr(err, "Evaluation failed"))
		return err
	}
	if len(recs) == 0 {
		a.notify.Warning("The evaluation returned no recommendations")
		return nil
	}

	fmt.Fprintln(a.out, "\nYour recommended majors:")
	for i, r := range recs {
		a.printRecommendation(i+1, r)
	}
	return nil
}

func (a *App) printRecommendation(n int, r models.Recommendation) {
	fmt.Fprintf(a.out, "\n%d. %s (%.0f%% match)\n", n, r.MajorName, r.MatchPercentage)

	difficulty := r.DifficultyLevel
	if difficulty == "" {
		difficulty = models.DefaultDifficulty
	}
	cost := r.EstimatedCost
	if cost == "" {
		cost = models.DefaultCost
	}
	duration := r.StudyDuration
	if duration == "" {
		duration = models.DefaultDuration
	}
	fmt.Fprintf(a.out, "   Difficulty: %s   Cost: %s   Duration: %s\n", difficulty, cost, duration)

	roadmap := r.Roadmap
	if len(roadmap) == 0 {
		roadmap = models.DefaultRoadmap
	}
	fmt.Fprintln(a.out, "   Roadmap:")
	for i, step := range roadmap {
		fmt.Fprintf(a.out, "     %d) %s\n", i+1, step)
	}
}

// AssessmentResults lists the user's completed assessments.
func (a *App) AssessmentResults(ctx context.Context) error {
	results, err := a.api.MyResults(ctx)
	if err != nil {
		a.notify.Error(detailOr(err, "Failed to load results"))
		return err
	}
	if len(results) == 0 {
		fmt.Fprintln(a.out, "No assessment results yet. Run 'assessment' to take one.")
		return nil
	}

	fmt.Fprintf(a.out, "\n%d completed assessments:\n", len(results))
	for _, r := range results {
		completed := r.CompletedAt
		if i := strings.IndexByte(completed, 'T'); i > 0 {
			completed = completed[:i]
		}
		fmt.Fprintf(a.out, "  %-12s %-20s %s\n", completed, orNA(r.TestType), orNA(r.PersonalityType))
	}
	return nil
}

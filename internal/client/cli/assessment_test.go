package cli

import (
	"context"
	"strings"
	"testing"

	"github.com/abylaikhan/uniadvisor/internal/client/models"
)

func stubTypingDelay(t *testing.T) func() {
	t.Helper()
	orig := typingDelay
	typingDelay = func() {}
	return func() { typingDelay = orig }
}

func TestAssessment_AnswersFollowQuestionOrder(t *testing.T) {
	questions := []models.Question{
		{Step: 1, Category: "personality", Text: "Do you prefer teams?"},
		{Step: 2, Category: "Interests", Text: "Favourite subject?"},
		{Step: 3, Category: "thinking_style", Text: "Plans or improvisation?"},
	}

	var gotCategories []string
	var gotAnswers []models.Answer
	f := &fakeAPI{
		questionsFn: func(categories []string) ([]models.Question, error) {
			gotCategories = categories
			return questions, nil
		},
		evaluateFn: func(answers []models.Answer) ([]models.Recommendation, error) {
			gotAnswers = answers
			return []models.Recommendation{{MajorName: "CS", MatchPercentage: 91}}, nil
		},
	}
	a, out := newTestApp(f)

	defer stubTypingDelay(t)()
	defer stubTexts(t, "Yes", "Math", "Plans")()

	if err := a.Assessment(context.Background()); err != nil {
		t.Fatalf("Assessment err: %v", err)
	}

	if len(gotCategories) != len(models.AssessmentCategories) {
		t.Errorf("categories = %v", gotCategories)
	}
	if len(gotAnswers) != 3 {
		t.Fatalf("answers len = %d, want 3", len(gotAnswers))
	}
	for i, q := range questions {
		if gotAnswers[i].Question != q.Text {
			t.Errorf("answer %d paired with %q, want %q", i, gotAnswers[i].Question, q.Text)
		}
	}
	if !strings.Contains(out.String(), "Question 2/3") {
		t.Errorf("progress indicator missing:\n%s", out.String())
	}
}

func TestAssessment_EmptyAnswerReprompts(t *testing.T) {
	f := &fakeAPI{
		questionsFn: func([]string) ([]models.Question, error) {
			return []models.Question{{Step: 1, Text: "Q1"}}, nil
		},
		evaluateFn: func(answers []models.Answer) ([]models.Recommendation, error) {
			if answers[0].Answer != "finally" {
				t.Errorf("answer = %q, want finally", answers[0].Answer)
			}
			return nil, nil
		},
	}
	a, _ := newTestApp(f)

	defer stubTypingDelay(t)()
	defer stubTexts(t, "", "", "finally")()

	if err := a.Assessment(context.Background()); err != nil {
		t.Fatalf("Assessment err: %v", err)
	}
}

func TestPrintRecommendation_SubstitutesDefaults(t *testing.T) {
	a, out := newTestApp(&fakeAPI{})

	a.printRecommendation(1, models.Recommendation{
		MajorName:       "Data Science",
		MatchPercentage: 88,
	})

	got := out.String()
	for _, want := range []string{
		models.DefaultDifficulty, models.DefaultCost, models.DefaultDuration,
		models.DefaultRoadmap[0],
	} {
		if !strings.Contains(got, want) {
			t.Errorf("default %q missing:\n%s", want, got)
		}
	}
}

func TestAssessmentResults_Empty(t *testing.T) {
	a, out := newTestApp(&fakeAPI{})

	if err := a.AssessmentResults(context.Background()); err != nil {
		t.Fatalf("AssessmentResults err: %v", err)
	}
	if !strings.Contains(out.String(), "No assessment results yet") {
		t.Errorf("empty notice missing:\n%s", out.String())
	}
}

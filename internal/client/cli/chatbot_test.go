package cli

import (
	"context"
	"strings"
	"testing"

	"github.com/abylaikhan/uniadvisor/internal/client/models"
)

func chatOptions() models.FilterOptions {
	return models.FilterOptions{
		Countries:    []string{"Germany", "Switzerland"},
		Majors:       []string{"CS", "EE"},
		TuitionRange: models.TuitionRange{Min: 1000, Max: 50000},
	}
}

func TestSendChatMessage_NeutralFiltersUseChat(t *testing.T) {
	chatCalls, queryCalls := 0, 0
	f := &fakeAPI{
		chatFn: func(message, sessionID string, _ models.ChatFilters) (models.ChatReply, error) {
			chatCalls++
			return models.ChatReply{Response: "hello", SessionID: sessionID}, nil
		},
		queryFn: func(string, string, models.ChatFilters) (models.ChatReply, error) {
			queryCalls++
			return models.ChatReply{}, nil
		},
	}
	a, _ := newTestApp(f)

	state := &chatState{sessionID: "s1", options: chatOptions()}
	state.filters.MaxTuition = state.options.TuitionRange.Max

	a.sendChatMessage(context.Background(), state, "tell me about Germany")
	if chatCalls != 1 || queryCalls != 0 {
		t.Errorf("chat=%d query=%d, want 1/0", chatCalls, queryCalls)
	}
}

func TestSendChatMessage_ActiveFilterUsesQuery(t *testing.T) {
	chatCalls, queryCalls := 0, 0
	var gotFilters models.ChatFilters
	f := &fakeAPI{
		chatFn: func(string, string, models.ChatFilters) (models.ChatReply, error) {
			chatCalls++
			return models.ChatReply{}, nil
		},
		queryFn: func(_, _ string, filters models.ChatFilters) (models.ChatReply, error) {
			queryCalls++
			gotFilters = filters
			return models.ChatReply{Response: "results"}, nil
		},
	}
	a, _ := newTestApp(f)

	state := &chatState{sessionID: "s1", options: chatOptions()}
	state.filters.MaxTuition = state.options.TuitionRange.Max
	state.filters.Country = "Germany"

	a.sendChatMessage(context.Background(), state, "cheap universities")
	if chatCalls != 0 || queryCalls != 1 {
		t.Errorf("chat=%d query=%d, want 0/1", chatCalls, queryCalls)
	}
	if gotFilters.Country != "Germany" {
		t.Errorf("filters = %+v", gotFilters)
	}
}

func TestSendChatMessage_FilteredReplyRendersParagraphs(t *testing.T) {
	f := &fakeAPI{
		queryFn: func(string, string, models.ChatFilters) (models.ChatReply, error) {
			return models.ChatReply{
				Response: "* **TU Munich** fits your budget.\n\n\n* Consider ETH as a reach option.",
			}, nil
		},
	}
	a, out := newTestApp(f)

	state := &chatState{options: chatOptions()}
	state.filters.MaxTuition = state.options.TuitionRange.Max
	state.filters.MinGPA = 3.5

	a.sendChatMessage(context.Background(), state, "what fits me?")

	got := out.String()
	if strings.Contains(got, "*") {
		t.Errorf("model markers not cleaned:\n%s", got)
	}
	if !strings.Contains(got, "TU Munich fits your budget.\nConsider ETH as a reach option.\n") {
		t.Errorf("paragraphs not rendered line by line:\n%s", got)
	}
}

func TestSendChatMessage_ScholarshipAloneStaysConversational(t *testing.T) {
	chatCalls, queryCalls := 0, 0
	f := &fakeAPI{
		chatFn: func(string, string, models.ChatFilters) (models.ChatReply, error) {
			chatCalls++
			return models.ChatReply{}, nil
		},
		queryFn: func(string, string, models.ChatFilters) (models.ChatReply, error) {
			queryCalls++
			return models.ChatReply{}, nil
		},
	}
	a, _ := newTestApp(f)

	state := &chatState{options: chatOptions()}
	state.filters.MaxTuition = state.options.TuitionRange.Max
	state.filters.ScholarshipTrack = true

	a.sendChatMessage(context.Background(), state, "any scholarships?")
	if chatCalls != 1 || queryCalls != 0 {
		t.Errorf("chat=%d query=%d, want 1/0", chatCalls, queryCalls)
	}
}

func TestSendChatMessage_AdoptsSessionAndSuggestions(t *testing.T) {
	f := &fakeAPI{
		chatFn: func(string, string, models.ChatFilters) (models.ChatReply, error) {
			return models.ChatReply{
				Response:  "here are some options",
				SessionID: "s2",
				Universities: []models.University{
					{ID: 1, Name: "TU Munich"},
					{ID: 2, Name: "ETH Zurich"},
				},
			}, nil
		},
	}
	a, out := newTestApp(f)

	state := &chatState{sessionID: "s1", options: chatOptions()}
	state.filters.MaxTuition = state.options.TuitionRange.Max

	a.sendChatMessage(context.Background(), state, "hi")
	if state.sessionID != "s2" {
		t.Errorf("sessionID = %q, want s2", state.sessionID)
	}
	if len(state.suggested) != 2 {
		t.Errorf("suggested len = %d, want 2", len(state.suggested))
	}
	if !strings.Contains(out.String(), "TU Munich") {
		t.Errorf("suggestions not rendered:\n%s", out.String())
	}
}

func TestSelectUniversity_CapAndDuplicates(t *testing.T) {
	a, out := newTestApp(&fakeAPI{})
	state := &chatState{
		suggested: []models.University{
			{ID: 1, Name: "A"}, {ID: 2, Name: "B"},
			{ID: 3, Name: "C"}, {ID: 4, Name: "D"},
		},
	}

	for _, n := range []string{"1", "2", "3"} {
		a.selectUniversity(state, n)
	}
	if len(state.selected) != 3 {
		t.Fatalf("selected len = %d, want 3", len(state.selected))
	}

	a.selectUniversity(state, "4")
	if len(state.selected) != 3 {
		t.Errorf("cap not enforced, len = %d", len(state.selected))
	}
	if !strings.Contains(out.String(), "at most 3") {
		t.Errorf("cap notice missing:\n%s", out.String())
	}

	a.selectUniversity(state, "2")
	if len(state.selected) != 3 {
		t.Errorf("duplicate re-added, len = %d", len(state.selected))
	}
}

func TestUnselectUniversity(t *testing.T) {
	a, _ := newTestApp(&fakeAPI{})
	state := &chatState{
		suggested: []models.University{{ID: 1, Name: "A"}, {ID: 2, Name: "B"}},
		selected:  []models.University{{ID: 1, Name: "A"}, {ID: 2, Name: "B"}},
	}

	a.unselectUniversity(state, "1")
	if len(state.selected) != 1 || state.selected[0].ID != 2 {
		t.Errorf("selected = %+v", state.selected)
	}
}

func TestCompareSelected_RequiresTwo(t *testing.T) {
	compares := 0
	f := &fakeAPI{compareFn: func([]int) ([]models.University, error) {
		compares++
		return nil, nil
	}}
	a, out := newTestApp(f)

	state := &chatState{selected: []models.University{{ID: 1}}}
	a.compareSelected(context.Background(), state)

	if compares != 0 {
		t.Error("compare request made with a single pick")
	}
	if !strings.Contains(out.String(), "at least 2") {
		t.Errorf("guard notice missing:\n%s", out.String())
	}
}

func TestCompareSelected_RendersTable(t *testing.T) {
	var gotIDs []int
	f := &fakeAPI{compareFn: func(ids []int) ([]models.University, error) {
		gotIDs = ids
		return []models.University{
			{ID: 1, Name: "TU Munich", Country: "Germany", City: "Garching", TuitionFee: 3000, MinGPA: 3.0, AcceptanceRate: 0.45},
			{ID: 2, Name: "ETH Zurich", Country: "Switzerland", City: "Lausanne", AcceptanceRate: 0.08},
		}, nil
	}}
	a, out := newTestApp(f)

	state := &chatState{selected: []models.University{{ID: 1}, {ID: 2}}}
	a.compareSelected(context.Background(), state)

	if len(gotIDs) != 2 {
		t.Fatalf("ids = %v", gotIDs)
	}
	got := out.String()
	if !strings.Contains(got, "$3,000") {
		t.Errorf("tuition not grouped:\n%s", got)
	}
	if !strings.Contains(got, "N/A") {
		t.Errorf("missing N/A fallback for unreported figures:\n%s", got)
	}
	// Rates arrive as fractions and render as percentages to one decimal.
	if !strings.Contains(got, "45.0%") || !strings.Contains(got, "8.0%") {
		t.Errorf("acceptance rates not scaled:\n%s", got)
	}
	if !strings.Contains(got, "Garching") || !strings.Contains(got, "Lausanne") {
		t.Errorf("city row missing:\n%s", got)
	}
}

func TestFormatPercent(t *testing.T) {
	tests := []struct {
		rate float64
		want string
	}{
		{0, "N/A"},
		{0.45, "45.0%"},
		{0.08, "8.0%"},
		{0.125, "12.5%"},
	}
	for _, tt := range tests {
		if got := formatPercent(tt.rate); got != tt.want {
			t.Errorf("formatPercent(%v) = %q, want %q", tt.rate, got, tt.want)
		}
	}
}

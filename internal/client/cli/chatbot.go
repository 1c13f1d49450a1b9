package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/abylaikhan/uniadvisor/internal/markx"
	"github.com/abylaikhan/uniadvisor/internal/client/models"
)

// compareLimit is the maximum number of universities in one comparison.
const compareLimit = 3

// chatState carries one chat conversation: the session token, the filter
// panel, the last batch of suggested universities and the comparison picks.
type chatState struct {
	sessionID string
	filters   models.ChatFilters
	options   models.FilterOptions

	// suggested is the last university list shown, indexed by the numbers
	// printed next to the cards.
	suggested []models.University
	selected  []models.University
}

// Chat runs the university chatbot conversation. Messages route to the
// conversational or the filtered-query endpoint depending on the filter
// panel; slash commands manage filters, selection and comparison.
func (a *App) Chat(ctx context.Context) error {
	state := &chatState{}

	opts, err := a.api.ChatFilterOptions(ctx)
	if err != nil {
		a.notify.Warning(detailOr(err, "Filter options are unavailable, filters disabled"))
	} else {
		state.options = opts
		state.filters.MaxTuition = opts.TuitionRange.Max
	}

	if id, err := a.api.CreateChatSession(ctx); err == nil {
		state.sessionID = id
	} else {
		a.log.Warn(ctx, "chat session creation failed", "error", err)
	}

	fmt.Fprintln(a.out, "University advisor chat. Type a question, or /help for commands.")
	for {
		line, err := getSimpleText(a.reader, "you", a.out)
		if err != nil {
			return err
		}
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, "/") {
			done, err := a.chatCommand(ctx, state, line)
			if err != nil {
				return err
			}
			if done {
				return nil
			}
			continue
		}

		a.sendChatMessage(ctx, state, line)
	}
}

func (a *App) chatCommand(ctx context.Context, state *chatState, line string) (done bool, err error) {
	parts := strings.Fields(line)
	switch parts[0] {
	case "/help":
		fmt.Fprintln(a.out, "/filters  edit the filter panel")
		fmt.Fprintln(a.out, "/select <n>, /unselect <n>  pick universities for comparison (up to 3)")
		fmt.Fprintln(a.out, "/compare  compare the selected universities side by side")
		fmt.Fprintln(a.out, "/clear    start a new conversation")
		fmt.Fprintln(a.out, "/exit     leave the chat")

	case "/filters":
		if err := a.editChatFilters(state); err != nil {
			return false, err
		}

	case "/select":
		if len(parts) < 2 {
			a.notify.Error("Usage: /select <number>")
			break
		}
		a.selectUniversity(state, parts[1])

	case "/unselect":
		if len(parts) < 2 {
			a.notify.Error("Usage: /unselect <number>")
			break
		}
		a.unselectUniversity(state, parts[1])

	case "/compare":
		a.compareSelected(ctx, state)

	case "/clear":
		state.suggested = nil
		state.selected = nil
		state.sessionID = ""
		if id, err := a.api.CreateChatSession(ctx); err == nil {
			state.sessionID = id
		}
		fmt.Fprintln(a.out, "Started a new conversation.")

	case "/exit":
		return true, nil

	default:
		a.notify.Error("Unknown command: " + parts[0])
	}
	return false, nil
}

// sendChatMessage routes the message by filter state, prints the reply and
// any suggested universities, and adopts the session id the backend returns.
func (a *App) sendChatMessage(ctx context.Context, state *chatState, text string) {
	var (
		reply models.ChatReply
		err   error
	)
	switch models.RouteMessage(state.filters, state.options.TuitionRange.Max) {
	case models.RouteFilteredQuery:
		reply, err = a.api.Query(ctx, text, state.sessionID, state.filters)
		if err == nil {
			fmt.Fprintln(a.out, "\nadvisor:")
			for _, p := range markx.Paragraphs(markx.CleanModelResponse(reply.Response)) {
				fmt.Fprintln(a.out, p)
			}
		}
	default:
		reply, err = a.api.Chat(ctx, text, state.sessionID, state.filters)
		if err == nil {
			rendered, rerr := markx.RenderMarkdown(reply.Response)
			if rerr != nil {
				fmt.Fprintf(a.out, "\nadvisor: %s\n", markx.CleanModelResponse(reply.Response))
			} else {
				fmt.Fprintf(a.out, "\nadvisor: %s\n", markx.HTMLToText(rendered))
			}
		}
	}
	if err != nil {
		a.notify.Error(detailOr(err, "The advisor is unavailable right now"))
		return
	}

	if reply.SessionID != "" {
		state.sessionID = reply.SessionID
	}
	if len(reply.Universities) > 0 {
		state.suggested = reply.Universities
		fmt.Fprintln(a.out, "\nSuggested universities:")
		for i, u := range reply.Universities {
			printUniversityCard(a.out, i+1, u)
		}
		fmt.Fprintln(a.out, "Use /select <n> to pick universities to compare.")
	}
}

// editChatFilters walks the filter panel. Empty answers keep current
// values, "-" resets a filter to neutral.
func (a *App) editChatFilters(state *chatState) error {
	if len(state.options.Countries) > 0 {
		fmt.Fprintln(a.out, "Countries:", strings.Join(state.options.Countries, ", "))
	}
	country, err := getSimpleText(a.reader, fmt.Sprintf("Country [%s]", orNA(state.filters.Country)), a.out)
	if err != nil {
		return err
	}
	applyTextFilter(&state.filters.Country, country)

	if len(state.options.Majors) > 0 {
		fmt.Fprintln(a.out, "Majors:", strings.Join(state.options.Majors, ", "))
	}
	major, err := getSimpleText(a.reader, fmt.Sprintf("Major [%s]", orNA(state.filters.Major)), a.out)
	if err != nil {
		return err
	}
	applyTextFilter(&state.filters.Major, major)

	tuition, err := getSimpleText(a.reader,
		fmt.Sprintf("Max tuition [%s]", formatMoney(state.filters.MaxTuition)), a.out)
	if err != nil {
		return err
	}
	switch {
	case tuition == "-":
		state.filters.MaxTuition = state.options.TuitionRange.Max
	case tuition != "":
		if v, err := strconv.ParseFloat(tuition, 64); err == nil {
			state.filters.MaxTuition = v
		} else {
			a.notify.Warning("Not a number, keeping previous max tuition")
		}
	}

	gpa, err := getSimpleText(a.reader, fmt.Sprintf("Min GPA [%s]", orNAFloat(state.filters.MinGPA)), a.out)
	if err != nil {
		return err
	}
	switch {
	case gpa == "-":
		state.filters.MinGPA = 0
	case gpa != "":
		if v, err := strconv.ParseFloat(gpa, 64); err == nil {
			state.filters.MinGPA = v
		} else {
			a.notify.Warning("Not a number, keeping previous min GPA")
		}
	}

	scholarship, err := getConfirmation(a.reader, "Scholarship track?", a.out)
	if err != nil {
		return err
	}
	state.filters.ScholarshipTrack = scholarship

	if models.RouteMessage(state.filters, state.options.TuitionRange.Max) == models.RouteFilteredQuery {
		a.notify.Info("Filters active: messages will use the filtered search")
	} else {
		a.notify.Info("No filters active: messages will use the open conversation")
	}
	return nil
}

func applyTextFilter(target *string, input string) {
	switch {
	case input == "-":
		*target = ""
	case input != "":
		*target = input
	}
}

func (a *App) selectUniversity(state *chatState, arg string) {
	n, err := strconv.Atoi(arg)
	if err != nil || n < 1 || n > len(state.suggested) {
		a.notify.Error("No suggested university with that number")
		return
	}
	u := state.suggested[n-1]

	for _, s := range state.selected {
		if s.ID == u.ID {
			a.notify.Warning(u.Name + " is already selected")
			return
		}
	}
	if len(state.selected) >= compareLimit {
		a.notify.Error(fmt.Sprintf("You can compare at most %d universities", compareLimit))
		return
	}

	state.selected = append(state.selected, u)
	a.notify.Success(fmt.Sprintf("Selected %s (%d/%d)", u.Name, len(state.selected), compareLimit))
}

func (a *App) unselectUniversity(state *chatState, arg string) {
	n, err := strconv.Atoi(arg)
	if err != nil || n < 1 || n > len(state.suggested) {
		a.notify.Error("No suggested university with that number")
		return
	}
	id := state.suggested[n-1].ID

	for i, s := range state.selected {
		if s.ID == id {
			state.selected = append(state.selected[:i], state.selected[i+1:]...)
			a.notify.Info("Removed " + s.Name + " from the comparison")
			return
		}
	}
	a.notify.Warning("That university is not selected")
}

// compareSelected fetches full records for the selection and renders the
// side-by-side table. Fewer than two picks is a local error.
func (a *App) compareSelected(ctx context.Context, state *chatState) {
	if len(state.selected) < 2 {
		a.notify.Error("Select at least 2 universities to compare")
		return
	}

	ids := make([]int, len(state.selected))
	for i, u := range state.selected {
		ids[i] = u.ID
	}

	unis, err := a.api.CompareUniversities(ctx, ids)
	if err != nil {
		a.notify.Error(detailOr(err, "Comparison failed"))
		return
	}
	if len(unis) == 0 {
		a.notify.Warning("The comparison returned no data")
		return
	}
	a.printComparison(unis)
}

func (a *App) printComparison(unis []models.University) {
	w := tabwriter.NewWriter(a.out, 2, 4, 2, ' ', 0)

	row := func(label string, value func(models.University) string) {
		fmt.Fprint(w, label)
		for _, u := range unis {
			fmt.Fprint(w, "\t", value(u))
		}
		fmt.Fprintln(w)
	}

	row("", func(u models.University) string { return u.Name })
	row("Country", func(u models.University) string { return orNA(u.Country) })
	row("City", func(u models.University) string { return orNA(u.City) })
	row("Tuition/year", func(u models.University) string { return formatMoney(u.TuitionFee) })
	row("Min GPA", func(u models.University) string { return orNAFloat(u.MinGPA) })
	row("Ranking", func(u models.University) string { return orNAInt(u.Ranking) })
	row("Acceptance", func(u models.University) string { return formatPercent(u.AcceptanceRate) })
	row("Duration", func(u models.University) string { return orNA(u.Duration) })
	row("Scholarships", func(u models.University) string {
		if u.ScholarshipAvailable {
			return "Yes"
		}
		return "No"
	})

	_ = w.Flush()
}

package models

// ChatFilters is the structured filter panel state sent with every chatbot
// message. The zero values of Country, Major and MinGPA are their neutral
// defaults; MaxTuition is neutral when it sits at the catalog's reported
// ceiling.
type ChatFilters struct {
	ScholarshipTrack bool    `json:"scholarship_track"`
	Country          string  `json:"country"`
	Major            string  `json:"major"`
	MaxTuition       float64 `json:"max_tuition"`
	MinGPA           float64 `json:"min_gpa"`
}

// ChatRoute identifies which chatbot endpoint a message goes to.
type ChatRoute int

const (
	// RoutePlainChat is the conversational endpoint.
	RoutePlainChat ChatRoute = iota
	// RouteFilteredQuery is the structured filtered-query endpoint.
	RouteFilteredQuery
)

// RouteMessage decides, purely from the current filter state, whether a chat
// message goes to the plain-chat or the filtered-query endpoint. A filter is
// active when it differs from its neutral default: non-empty country,
// non-empty major, max tuition below the catalog ceiling, or min GPA above
// zero. The scholarship track does not affect routing.
func RouteMessage(f ChatFilters, tuitionCeiling float64) ChatRoute {
	if f.Country != "" || f.Major != "" ||
		(f.MaxTuition > 0 && f.MaxTuition < tuitionCeiling) ||
		f.MinGPA > 0 {
		return RouteFilteredQuery
	}
	return RoutePlainChat
}

// FilterOptions are the selectable filter values reported by the catalog.
type FilterOptions struct {
	Countries    []string     `json:"countries"`
	Majors       []string     `json:"majors"`
	TuitionRange TuitionRange `json:"tuition_range"`
}

// TuitionRange is the catalog's tuition span; Max doubles as the neutral
// default of the tuition filter.
type TuitionRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// ChatReply is the normalized response of both chatbot endpoints.
type ChatReply struct {
	Response     string
	SessionID    string
	Universities []University
}

package models

// User is the account identity returned by /auth/me.
type User struct {
	ID        int    `json:"id"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	IsPremium bool   `json:"is_premium"`
}

// Profile holds the editable applicant profile. Saves are full-object
// upserts; the whole struct is sent on every update.
type Profile struct {
	FullName         string  `json:"full_name"`
	Nationality      string  `json:"nationality"`
	DateOfBirth      string  `json:"date_of_birth"`
	Bio              string  `json:"bio"`
	GPA              float64 `json:"gpa"`
	Budget           int     `json:"budget"`
	PreferredCountry string  `json:"preferred_country"`
	PreferredMajor   string  `json:"preferred_major"`
	LearningStyle    string  `json:"learning_style"`
	CareerGoal       string  `json:"career_goal"`
}

// Account bundles the user and their profile as returned by /auth/me.
type Account struct {
	User    User    `json:"user"`
	Profile Profile `json:"profile"`
}

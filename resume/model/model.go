package model

// ParsedResume is the structured result of resume text extraction.
// It is built once per upload and replaced wholesale on re-upload;
// optional fields are omitted rather than carried as null placeholders.
type ParsedResume struct {
	Skills     []string     `json:"skills"`
	Experience []Experience `json:"experience"`
	Education  []Education  `json:"education"`
	Summary    string       `json:"summary"`
	Contact    Contact      `json:"contact"`
	Projects   []Project    `json:"projects"`
	RawText    string       `json:"rawText"`
}

// Experience is a single work-history entry.
type Experience struct {
	Role        string   `json:"role"`
	Company     string   `json:"company"`
	Duration    string   `json:"duration,omitempty"`
	Description []string `json:"description"`
}

// Education is a single education entry.
type Education struct {
	Degree      string `json:"degree"`
	Institution string `json:"institution,omitempty"`
	Year        string `json:"year,omitempty"`
	GPA         string `json:"gpa,omitempty"`
}

// Contact holds whatever contact details were found in the resume text.
type Contact struct {
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
	GitHub   string `json:"github,omitempty"`
}

// Project is a single personal or side project entry.
type Project struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// MatchResult is the outcome of scoring one resume against one job text.
type MatchResult struct {
	Score          int      `json:"score"`
	MatchingSkills []string `json:"matchingSkills"`
	MissingSkills  []string `json:"missingSkills"`
}

// Suggestion types.
const (
	SuggestionSkills     = "skills"
	SuggestionSummary    = "summary"
	SuggestionContact    = "contact"
	SuggestionExperience = "experience"
)

// Suggestion priorities.
const (
	PriorityHigh   = "high"
	PriorityMedium = "medium"
	PriorityLow    = "low"
)

// Suggestion is a single rule-based improvement hint for a resume
// evaluated against a job text.
type Suggestion struct {
	Type     string `json:"type"`
	Message  string `json:"message"`
	Priority string `json:"priority"`
}

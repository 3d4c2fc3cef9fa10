// Package models defines the record types fetched from the academic-records
// service and the merged journal view persisted for offline display.
package models

// Tokens is the pair of short-lived anti-forgery tokens the service hands
// out before authentication. Both must accompany the sign-in form.
type Tokens struct {
	First  string `json:"token1"`
	Second string `json:"token2"`
}

// Credentials is the stored sign-in state. The cookie is refreshed after
// each authenticated call that returns a Set-Cookie header; username and
// password are read-only to the sync engine.
type Credentials struct {
	Username string
	Password string
	Cookie   string
}

// AuthResult is the outcome of a sign-in call. Cookie is empty when the
// response carried no Set-Cookie header.
type AuthResult struct {
	Cookie string
}

// Term is an academic term identifier. The first term in the fetched
// sequence is the current one and gates exam/grade fetches.
type Term struct {
	Value       int    `json:"value"`
	Description string `json:"description"`
}

// Session is a scheduled class occurrence. Immutable once fetched.
type Session struct {
	Date       string `json:"date"`
	CourseID   string `json:"courseId"`
	CourseName string `json:"courseName"`
	Room       string `json:"room"`
	StartTime  string `json:"startTime"`
	EndTime    string `json:"endTime"`
}

// Exam is an exam occurrence for a course in a given term.
type Exam struct {
	Date       string `json:"date"`
	CourseID   string `json:"courseId"`
	CourseName string `json:"courseName"`
	Room       string `json:"room"`
	Type       string `json:"type"`
	Time       string `json:"time"`
}

// ExamRequest is the body of the exam fetch; it names the term whose exam
// schedule is requested.
type ExamRequest struct {
	Term string `json:"term"`
}

// Finance is a single billing due item.
type Finance struct {
	DueDate     string `json:"dueDate"`
	Amount      int64  `json:"amount"`
	Description string `json:"description"`
}

// FinanceSummary is the running charge/payment totals. The wire format is a
// JSON array whose first object carries the fields.
type FinanceSummary struct {
	Charge  int `json:"charge"`
	Payment int `json:"payment"`
}

// Grade is the composite grade payload for one term: per-course credit
// totals plus per-assessment gradings and scores.
type Grade struct {
	Term     string    `json:"term"`
	Credit   Credit    `json:"credit"`
	Gradings []Grading `json:"gradings"`
	Scores   []Score   `json:"scores"`
}

// Credit holds per-term credit totals.
type Credit struct {
	Term       string  `json:"term"`
	Earned     float64 `json:"earned"`
	Attempted  float64 `json:"attempted"`
	GradePoint float64 `json:"gradePoint"`
}

// Grading is one assessment's weight within a course.
type Grading struct {
	CourseID   string  `json:"courseId"`
	Assessment string  `json:"assessment"`
	Weight     float64 `json:"weight"`
}

// Score is one assessment's achieved score within a course.
type Score struct {
	CourseID   string  `json:"courseId"`
	Assessment string  `json:"assessment"`
	Score      float64 `json:"score"`
}

// Profile is the student profile; its fields are stored as discrete
// preference scalars, not as a store entity.
type Profile struct {
	Major     string `json:"ACAD_PROG_DESCR"`
	Degree    string `json:"ACAD_CAREER_DESCR"`
	Birthday  string `json:"BIRTHDATE"`
	Name      string `json:"NAMA"`
	StudentID string `json:"NIM"`
}

// Course references a course whose resources can be fetched in the
// RESOURCES flow.
type Course struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Resource is one downloadable item attached to a course.
type Resource struct {
	CourseID string `json:"courseId"`
	Title    string `json:"title"`
	URL      string `json:"url"`
}

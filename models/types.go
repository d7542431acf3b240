package models

import "time"

// Field of study constants
const (
	FieldInformatique = "informatique"
	FieldGenieCivil   = "genie-civil"
	FieldElectronique = "electronique"
	FieldMecanique    = "mecanique"
	FieldGestion      = "gestion"
)

// Rating criteria bounds. Overall is mandatory; the other criteria may be
// left at zero when the voter skips them.
const (
	RatingMin = 1
	RatingMax = 5
)

// ValidFields lists the accepted field-of-study values in display order.
var ValidFields = []string{
	FieldInformatique,
	FieldGenieCivil,
	FieldElectronique,
	FieldMecanique,
	FieldGestion,
}

// IsValidField reports whether field is one of the known fields of study.
func IsValidField(field string) bool {
	for _, f := range ValidFields {
		if f == field {
			return true
		}
	}
	return false
}

// Request types

type CreateProjectRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Students    string `json:"students"`
	Field       string `json:"field"`
}

type UpdateProjectRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Students    string `json:"students"`
	Field       string `json:"field"`
}

type SubmitRatingRequest struct {
	UserSession  string `json:"user_session"`
	Presentation int    `json:"presentation"`
	Technical    int    `json:"technical"`
	Innovation   int    `json:"innovation"`
	Overall      int    `json:"overall"`
}

type SubmitCommentRequest struct {
	UserSession string `json:"user_session"`
	Content     string `json:"content"`
}

// Response types

type CreateProjectResponse struct {
	ProjectID string `json:"project_id"`
}

type SubmitRatingResponse struct {
	Message string `json:"message"`
}

type SubmitCommentResponse struct {
	CommentID string `json:"comment_id"`
	Message   string `json:"message"`
}

type ProjectListResponse struct {
	Projects []ProjectSummary `json:"projects"`
}

// Domain types

type Project struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Students    string    `json:"students"`
	Field       string    `json:"field"`
	CreatedAt   time.Time `json:"created_at"`
}

type ProjectSummary struct {
	Project
	AverageRating float64 `json:"average_rating"`
	TotalVotes    int     `json:"total_votes"`
	CommentsCount int     `json:"comments_count"`
}

type Rating struct {
	ProjectID    string    `json:"project_id"`
	UserSession  string    `json:"-"` // Never expose in JSON
	Presentation int       `json:"presentation"`
	Technical    int       `json:"technical"`
	Innovation   int       `json:"innovation"`
	Overall      int       `json:"overall"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type Comment struct {
	ID          string    `json:"id"`
	ProjectID   string    `json:"project_id"`
	UserSession string    `json:"-"` // Never expose in JSON
	Content     string    `json:"content"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Admin dashboard types

type FieldStats struct {
	Field         string  `json:"field"`
	ProjectCount  int     `json:"project_count"`
	AverageRating float64 `json:"average_rating"`
}

type DashboardResponse struct {
	TotalProjects int              `json:"total_projects"`
	TotalVotes    int              `json:"total_votes"`
	TotalComments int              `json:"total_comments"`
	AverageRating float64          `json:"average_rating"`
	FieldStats    []FieldStats     `json:"field_stats"`
	TopProjects   []ProjectSummary `json:"top_projects"`
	LastActivity  string           `json:"last_activity,omitempty"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

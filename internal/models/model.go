package models

import "time"

// ModelProfile groups the public-facing profile fields of a model.
type ModelProfile struct {
	Name        string   `json:"name"`
	Bio         string   `json:"bio,omitempty"`
	Location    string   `json:"location,omitempty"`
	Specialties []string `json:"specialties,omitempty"`
	Photos      []string `json:"photos,omitempty"`
}

// ModelContactInfo holds contact and pricing details. Price is required
// and positive; the backend enforces the bound.
type ModelContactInfo struct {
	Phone string  `json:"phone,omitempty"`
	Price float64 `json:"price"`
}

// ModelStatus carries the moderation state of a profile. AdminApproved
// and Availability are independent: an approved model can be unavailable.
// A rejection sets RejectionReason together with Timestamps.RejectionDate.
type ModelStatus struct {
	AdminApproved   bool   `json:"adminApproved"`
	Availability    bool   `json:"availability"`
	ConsentGiven    bool   `json:"consentGiven,omitempty"`
	RejectionReason string `json:"rejectionReason,omitempty"`
}

// ModelUserSnapshot is the denormalized slice of account data embedded in
// a model record.
type ModelUserSnapshot struct {
	TelegramID int64  `json:"telegramId,omitempty"`
	Username   string `json:"username,omitempty"`
	FirstName  string `json:"firstName,omitempty"`
	LastName   string `json:"lastName,omitempty"`
	Status     string `json:"status,omitempty"`
}

// ModelMetrics holds sales counters computed server-side.
type ModelMetrics struct {
	SalesCount    int     `json:"salesCount"`
	TotalEarnings float64 `json:"totalEarnings"`
}

// ModelTimestamps collects the lifecycle dates of a profile.
type ModelTimestamps struct {
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     *time.Time `json:"updatedAt,omitempty"`
	ApprovalDate  *time.Time `json:"approvalDate,omitempty"`
	RejectionDate *time.Time `json:"rejectionDate,omitempty"`
	ConsentDate   *time.Time `json:"consentDate,omitempty"`
}

// ModelCompleteness is the derived profile-completeness score.
type ModelCompleteness struct {
	Checks     map[string]bool `json:"checks,omitempty"`
	Score      float64         `json:"score,omitempty"`
	Percentage float64         `json:"percentage"`
	IsComplete bool            `json:"isComplete,omitempty"`
}

// Model is a service-provider profile managed through the admin dashboard.
type Model struct {
	ModelID      string             `json:"modelId"`
	UserID       string             `json:"userId,omitempty"`
	Profile      ModelProfile       `json:"profile"`
	ContactInfo  ModelContactInfo   `json:"contactInfo"`
	Status       ModelStatus        `json:"status"`
	User         ModelUserSnapshot  `json:"user"`
	Metrics      *ModelMetrics      `json:"metrics,omitempty"`
	Timestamps   ModelTimestamps    `json:"timestamps"`
	Completeness *ModelCompleteness `json:"completeness,omitempty"`
	Priority     float64            `json:"priority,omitempty"`
}

// ModelFilters narrows admin model listings. Nil numeric fields are
// omitted from the query entirely.
type ModelFilters struct {
	Status    string
	Search    string
	Location  string
	PriceMin  *float64
	PriceMax  *float64
	SortBy    string
	SortOrder string
	Limit     *int
	Offset    *int
}

// Pagination echoes the window of a list response. On failure the service
// layer fabricates one from the caller's requested limit and offset.
type Pagination struct {
	Total   int  `json:"total"`
	Limit   int  `json:"limit"`
	Offset  int  `json:"offset"`
	HasMore bool `json:"hasMore"`
}

// ModelListSummary is the moderation-queue summary attached to listings.
type ModelListSummary struct {
	TotalPending   int `json:"totalPending"`
	HighPriority   int `json:"highPriority"`
	ReadyForReview int `json:"readyForReview"`
	NeedsAttention int `json:"needsAttention"`
}

// ModelList is the payload of model listing endpoints.
type ModelList struct {
	Models     []Model           `json:"models"`
	Pagination Pagination        `json:"pagination"`
	Summary    *ModelListSummary `json:"summary,omitempty"`
}

// BulkOperation summarizes a bulk moderation request.
type BulkOperation struct {
	Action        string   `json:"action"`
	AffectedCount int      `json:"affectedCount"`
	ModelIDs      []string `json:"modelIds"`
}

// ModelDetailMetrics extends the basic sales counters for the detail view.
type ModelDetailMetrics struct {
	TotalSales        int     `json:"totalSales"`
	TotalEarnings     float64 `json:"totalEarnings"`
	AverageRating     float64 `json:"averageRating"`
	ConversionRate    float64 `json:"conversionRate"`
	SalesLast30Days   int     `json:"salesLast30Days"`
	SalesLast7Days    int     `json:"salesLast7Days"`
	TotalPlatformFees float64 `json:"totalPlatformFees"`
}

// ModelDetailUser is the full account record joined into the detail view.
type ModelDetailUser struct {
	ID               string    `json:"id"`
	Phone            string    `json:"phone"`
	TelegramID       string    `json:"telegramId,omitempty"`
	TelegramUsername string    `json:"telegramUsername,omitempty"`
	FirstName        string    `json:"firstName,omitempty"`
	LastName         string    `json:"lastName,omitempty"`
	RegisteredAt     time.Time `json:"registeredAt"`
	IsActive         bool      `json:"isActive"`
}

// ModelDetail bundles a model with its derived metrics and related data.
type ModelDetail struct {
	Model   Model              `json:"model"`
	Metrics ModelDetailMetrics `json:"metrics"`
	Photos  []string           `json:"photos,omitempty"`
	User    ModelDetailUser    `json:"user"`
}

// SearchModel is a model annotated with search relevance.
type SearchModel struct {
	Model
	RelevanceScore float64 `json:"relevanceScore"`
}

// SearchInfo describes how a search query was executed.
type SearchInfo struct {
	Query        string   `json:"query"`
	TotalMatches int      `json:"totalMatches"`
	SearchTime   float64  `json:"searchTime"`
	Suggestions  []string `json:"suggestions,omitempty"`
}

// ModelSearchResult is the payload of the model search endpoint.
type ModelSearchResult struct {
	Models     []SearchModel `json:"models"`
	Pagination Pagination    `json:"pagination"`
	SearchInfo SearchInfo    `json:"searchInfo"`
}

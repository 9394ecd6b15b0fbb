package models

// AnalyticsOverview is the headline block of the platform analytics report.
type AnalyticsOverview struct {
	TotalModels        int     `json:"totalModels"`
	ApprovedModels     int     `json:"approvedModels"`
	PendingModels      int     `json:"pendingModels"`
	RejectedModels     int     `json:"rejectedModels"`
	ActiveModels       int     `json:"activeModels"`
	TotalTransactions  int     `json:"totalTransactions"`
	TotalRevenue       float64 `json:"totalRevenue"`
	TotalPlatformFees  float64 `json:"totalPlatformFees"`
	TotalModelEarnings float64 `json:"totalModelEarnings"`
	ApprovalRate       float64 `json:"approvalRate"`
	ConversionRate     float64 `json:"conversionRate"`
}

// TopModel ranks one model inside the analytics report.
type TopModel struct {
	ModelID       string  `json:"modelId"`
	Name          string  `json:"name"`
	Location      string  `json:"location"`
	ContactPrice  float64 `json:"contactPrice"`
	SalesCount    int     `json:"salesCount"`
	TotalEarnings float64 `json:"totalEarnings"`
	GrossRevenue  float64 `json:"grossRevenue"`
}

// DailyMetric is one day of activity inside the analytics report.
type DailyMetric struct {
	Date         string  `json:"date"`
	Transactions int     `json:"transactions"`
	Revenue      float64 `json:"revenue"`
	ActiveModels int     `json:"activeModels"`
	UniqueBuyers int     `json:"uniqueBuyers"`
}

// RegistrationTrend is one day of onboarding activity.
type RegistrationTrend struct {
	Date             string `json:"date"`
	NewRegistrations int    `json:"newRegistrations"`
	Approved         int    `json:"approved"`
	Rejected         int    `json:"rejected"`
}

// LocationStat aggregates models by location.
type LocationStat struct {
	Location     string  `json:"location"`
	ModelCount   int     `json:"modelCount"`
	TotalSales   int     `json:"totalSales"`
	TotalRevenue float64 `json:"totalRevenue"`
	AvgPrice     float64 `json:"avgPrice"`
}

// PriceRangeStat aggregates models by price band.
type PriceRangeStat struct {
	PriceRange           string  `json:"priceRange"`
	ModelCount           int     `json:"modelCount"`
	TotalSales           int     `json:"totalSales"`
	TotalRevenue         float64 `json:"totalRevenue"`
	AvgTransactionAmount float64 `json:"avgTransactionAmount"`
}

// ModelAnalytics is the full analytics report computed server-side for a
// reporting period. The client only deserializes it.
type ModelAnalytics struct {
	Period             int                 `json:"period"`
	Overview           AnalyticsOverview   `json:"overview"`
	TopModels          []TopModel          `json:"topModels"`
	DailyMetrics       []DailyMetric       `json:"dailyMetrics"`
	RegistrationTrends []RegistrationTrend `json:"registrationTrends"`
	LocationAnalytics  []LocationStat      `json:"locationAnalytics"`
	PriceAnalytics     []PriceRangeStat    `json:"priceAnalytics"`
}

// SpecialtyStat aggregates models by declared specialty.
type SpecialtyStat struct {
	Specialty  string  `json:"specialty"`
	ModelCount int     `json:"modelCount"`
	TotalSales int     `json:"totalSales"`
	AvgPrice   float64 `json:"avgPrice"`
}

// StatsPriceRange aggregates models by price band in the stats report.
type StatsPriceRange struct {
	Range      string  `json:"range"`
	ModelCount int     `json:"modelCount"`
	TotalSales int     `json:"totalSales"`
	AvgPrice   float64 `json:"avgPrice"`
}

// StatsTrend is one day of moderation and sales activity.
type StatsTrend struct {
	Date           string  `json:"date"`
	NewModels      int     `json:"newModels"`
	ApprovedModels int     `json:"approvedModels"`
	TotalSales     int     `json:"totalSales"`
	Revenue        float64 `json:"revenue"`
}

// ModelStats is the payload of the model statistics endpoint.
type ModelStats struct {
	TotalModels       int               `json:"totalModels"`
	ApprovedModels    int               `json:"approvedModels"`
	PendingModels     int               `json:"pendingModels"`
	RejectedModels    int               `json:"rejectedModels"`
	ActiveModels      int               `json:"activeModels"`
	TotalRevenue      float64           `json:"totalRevenue"`
	TotalTransactions int               `json:"totalTransactions"`
	ConversionRate    float64           `json:"conversionRate"`
	LocationStats     []LocationStat    `json:"locationStats"`
	SpecialtyStats    []SpecialtyStat   `json:"specialtyStats"`
	PriceRangeStats   []StatsPriceRange `json:"priceRangeStats"`
	Trends            []StatsTrend      `json:"trends"`
}

// DashboardMetrics is the fixed-shape summary assembled by the dashboard
// aggregator from four concurrent list calls.
type DashboardMetrics struct {
	TotalUsers        int `json:"totalUsers"`
	TotalModels       int `json:"totalModels"`
	TotalTransactions int `json:"totalTransactions"`
	TotalProducts     int `json:"totalProducts"`
	PendingApprovals  int `json:"pendingApprovals"`
	ActiveUsers       int `json:"activeUsers"`
}

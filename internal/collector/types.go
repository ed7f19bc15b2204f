package collector

import (
	"loveuadAdmin/internal/models"
	"loveuadAdmin/internal/repository"
)

// Every result type carries an Error string. A failed collector yields the
// type's zero value with Error set (see setError).

type GCPCosts struct {
	CloudRun   float64 `json:"cloud_run"`
	CloudSQL   float64 `json:"cloud_sql"`
	Networking float64 `json:"networking"`
	Storage    float64 `json:"storage"`
	Total      float64 `json:"total"`
	Source     string  `json:"source"`
	Error      string  `json:"error,omitempty"`
}

func (r *GCPCosts) setError(msg string) {
	r.Error = msg
	r.Source = "Error: " + msg
}

type TableUsage struct {
	Name      string  `json:"name"`
	SizeMB    float64 `json:"size_mb"`
	SizeHuman string  `json:"size_human"`
}

type DatabaseMetrics struct {
	SizeGB            float64      `json:"size_gb"`
	SizeBytes         int64        `json:"size_bytes"`
	SizeHuman         string       `json:"size_human"`
	ActiveConnections int          `json:"active_connections"`
	Tables            []TableUsage `json:"tables"`
	Error             string       `json:"error,omitempty"`
}

func (r *DatabaseMetrics) setError(msg string) {
	r.Error = msg
	r.Tables = []TableUsage{}
}

type TwilioMetrics struct {
	TotalCalls   int     `json:"total_calls"`
	TotalMinutes float64 `json:"total_minutes"`
	AvgDuration  float64 `json:"avg_duration"`
	Cost         float64 `json:"cost"`
	Balance      float64 `json:"balance"`
	Error        string  `json:"error,omitempty"`
}

func (r *TwilioMetrics) setError(msg string) {
	r.Error = msg
}

type GeminiMetrics struct {
	TotalQueries int     `json:"total_queries"`
	TotalScans   int     `json:"total_scans"`
	InputTokens  int64   `json:"input_tokens"`
	OutputTokens int64   `json:"output_tokens"`
	TotalTokens  int64   `json:"total_tokens"`
	Cost         float64 `json:"cost"`
	Error        string  `json:"error,omitempty"`
}

func (r *GeminiMetrics) setError(msg string) {
	r.Error = msg
}

type DayCount struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

type UserMetrics struct {
	TotalUsers      int        `json:"total_users"`
	ActiveOnce7d    int        `json:"active_once_7d"`
	ActiveThrice7d  int        `json:"active_thrice_7d"`
	ActiveOncePct   float64    `json:"active_once_pct"`
	ActiveThricePct float64    `json:"active_thrice_pct"`
	GrowthRate      float64    `json:"growth_rate"`
	RetentionRate   float64    `json:"retention_rate"`
	Signups7d       int        `json:"signups_7d"`
	SignupsPrev7d   int        `json:"signups_prev_7d"`
	DailySignups    []DayCount `json:"daily_signups"`
	Error           string     `json:"error,omitempty"`
}

func (r *UserMetrics) setError(msg string) {
	r.Error = msg
	r.DailySignups = []DayCount{}
}

type SurveyDay struct {
	Low    int `json:"Low"`
	Medium int `json:"Medium"`
	High   int `json:"High"`
	Total  int `json:"total"`
}

type SatisfactionMetrics struct {
	ByDay  map[string]SurveyDay `json:"by_day"`
	Scores map[string]float64   `json:"scores"`
	Error  string               `json:"error,omitempty"`
}

func (r *SatisfactionMetrics) setError(msg string) {
	r.Error = msg
	r.ByDay = map[string]SurveyDay{}
	r.Scores = map[string]float64{}
}

type DAUMetrics struct {
	Daily []DayCount `json:"daily"`
	Error string     `json:"error,omitempty"`
}

func (r *DAUMetrics) setError(msg string) {
	r.Error = msg
	r.Daily = []DayCount{}
}

type ManualCosts struct {
	Marketing float64 `json:"marketing"`
	Personnel float64 `json:"personnel"`
	Ads       float64 `json:"ads"`
	Legal     float64 `json:"legal"`
	Other     float64 `json:"other"`
	Total     float64 `json:"total"`
	Error     string  `json:"error,omitempty"`
}

func (r *ManualCosts) setError(msg string) {
	r.Error = msg
}

type LoggedError struct {
	ID        string `json:"id"`
	ErrorType string `json:"error_type"`
	Message   string `json:"message"`
	Severity  string `json:"severity"`
	CreatedAt string `json:"created_at"`
	Resolved  bool   `json:"resolved"`
}

type ErrorTypeCount struct {
	ErrorType string `json:"error_type"`
	Count     int    `json:"count"`
}

type ErrorMetrics struct {
	Errors24h  int              `json:"errors_24h"`
	Errors7d   int              `json:"errors_7d"`
	Unresolved int              `json:"unresolved"`
	Recent     []LoggedError    `json:"recent"`
	ByType     []ErrorTypeCount `json:"by_type"`
	ByEndpoint []ErrorTypeCount `json:"by_endpoint"`
	Source     string           `json:"source"`
	Error      string           `json:"error,omitempty"`
}

func (r *ErrorMetrics) setError(msg string) {
	r.Error = msg
	r.Recent = []LoggedError{}
	r.ByType = []ErrorTypeCount{}
	r.ByEndpoint = []ErrorTypeCount{}
	r.Source = "Error fetching logs"
}

type ProbeResult struct {
	Status     string  `json:"status"`
	ResponseMS float64 `json:"response_ms"`
}

type HealthStatus struct {
	Database         ProbeResult `json:"database"`
	PatientsCount    int         `json:"patients_count"`
	MedicationsCount int         `json:"medications_count"`
	MainApp          ProbeResult `json:"main_app"`
	Overall          string      `json:"overall"`
	Error            string      `json:"error,omitempty"`
}

func (r *HealthStatus) setError(msg string) {
	r.Error = msg
	r.Database = ProbeResult{Status: StatusError}
	r.MainApp = ProbeResult{Status: StatusUnknown}
	r.Overall = OverallUnhealthy
}

type ComplianceMetrics struct {
	TotalActions   int                          `json:"total_actions"`
	ByType         []repository.ActionTypeCount `json:"by_type"`
	AcceptanceRate float64                      `json:"acceptance_rate"`
	Accepted       int                          `json:"accepted"`
	Rejected       int                          `json:"rejected"`
	Modified       int                          `json:"modified"`
	Recent         []models.AiAuditLogEntry     `json:"recent"`
	Error          string                       `json:"error,omitempty"`
}

func (r *ComplianceMetrics) setError(msg string) {
	r.Error = msg
	r.ByType = []repository.ActionTypeCount{}
	r.Recent = []models.AiAuditLogEntry{}
}

type DeletionMetrics struct {
	Pending []models.DeletionRequest `json:"pending"`
	Count   int                      `json:"count"`
	Error   string                   `json:"error,omitempty"`
}

func (r *DeletionMetrics) setError(msg string) {
	r.Error = msg
	r.Pending = []models.DeletionRequest{}
}

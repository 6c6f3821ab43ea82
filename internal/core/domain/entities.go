package domain

import "time"

type RFPStatus string

const (
	RFPStatusUploaded  RFPStatus = "uploaded"
	RFPStatusParsing   RFPStatus = "parsing"
	RFPStatusParsed    RFPStatus = "parsed"
	RFPStatusAnalyzing RFPStatus = "analyzing"
	RFPStatusAnalyzed  RFPStatus = "analyzed"
	RFPStatusArchived  RFPStatus = "archived"
)

type RiskLevel string

const (
	RiskGreen  RiskLevel = "green"
	RiskYellow RiskLevel = "yellow"
	RiskRed    RiskLevel = "red"
)

type EvidenceType string

const (
	EvidenceDocumented    EvidenceType = "documented"
	EvidenceEvidenceBased EvidenceType = "evidence_based"
	EvidenceQualitative   EvidenceType = "qualitative"
	EvidenceMixedMethods  EvidenceType = "mixed_methods"
)

type CrosswalkStatus string

const (
	CrosswalkPending  CrosswalkStatus = "pending"
	CrosswalkApproved CrosswalkStatus = "approved"
	CrosswalkRejected CrosswalkStatus = "rejected"
)

type AlignmentLabel string

const (
	AlignmentStrong  AlignmentLabel = "strong"
	AlignmentPartial AlignmentLabel = "partial"
	AlignmentWeak    AlignmentLabel = "weak"
	AlignmentNone    AlignmentLabel = "none"
)

type PlanStatus string

const (
	PlanDraft     PlanStatus = "draft"
	PlanReview    PlanStatus = "review"
	PlanApproved  PlanStatus = "approved"
	PlanSubmitted PlanStatus = "submitted"
)

// BoilerplateSection is a reusable organizational content block. Version
// increments by exactly 1 on each successful edit and never decreases.
// LocalOnly marks entities the server has not confirmed, so a future
// reconciliation pass can detect unsynced records.
type BoilerplateSection struct {
	ID          string       `json:"id" yaml:"id"`
	Title       string       `json:"title" yaml:"title"`
	Category    string       `json:"category" yaml:"category"`
	Content     string       `json:"content" yaml:"content"`
	Tags        []string     `json:"tags,omitempty" yaml:"tags,omitempty"`
	ProgramArea string       `json:"program_area,omitempty" yaml:"program_area,omitempty"`
	Version     int          `json:"version" yaml:"version"`
	LastUpdated time.Time    `json:"last_updated" yaml:"last_updated"`
	Evidence    EvidenceType `json:"evidence_type,omitempty" yaml:"evidence_type,omitempty"`
	LocalOnly   bool         `json:"local_only,omitempty" yaml:"-"`
}

// RFP status is dictated by the server; the client only displays it.
type RFP struct {
	ID               string     `json:"id" yaml:"id"`
	Title            string     `json:"title" yaml:"title"`
	FunderName       string     `json:"funder_name,omitempty" yaml:"funder_name,omitempty"`
	UploadDate       time.Time  `json:"upload_date" yaml:"upload_date"`
	Status           RFPStatus  `json:"status" yaml:"status"`
	RequirementCount int        `json:"requirement_count,omitempty" yaml:"requirement_count,omitempty"`
	SectionCount     int        `json:"section_count,omitempty" yaml:"section_count,omitempty"`
	TotalWordLimit   int        `json:"total_word_limit,omitempty" yaml:"total_word_limit,omitempty"`
	Deadline         *time.Time `json:"deadline,omitempty" yaml:"deadline,omitempty"`
	FundingAmount    float64    `json:"funding_amount,omitempty" yaml:"funding_amount,omitempty"`
}

type RequirementItem struct {
	ID              string   `json:"id" yaml:"id"`
	RFPID           string   `json:"rfp_id" yaml:"rfp_id"`
	SectionName     string   `json:"section_name" yaml:"section_name"`
	Description     string   `json:"description" yaml:"description"`
	WordLimit       int      `json:"word_limit,omitempty" yaml:"word_limit,omitempty"`
	ScoringWeight   *float64 `json:"scoring_weight,omitempty" yaml:"scoring_weight,omitempty"`
	Mandatory       bool     `json:"mandatory" yaml:"mandatory"`
	Order           int      `json:"order" yaml:"order"`
	FormattingNotes string   `json:"formatting_notes,omitempty" yaml:"formatting_notes,omitempty"`
	Attachments     []string `json:"attachments,omitempty" yaml:"attachments,omitempty"`
}

// CrosswalkMapping links an RFP requirement to boilerplate content.
// MatchedSections references BoilerplateSection by title; there is no
// foreign-key enforcement. RiskLevel and AlignmentScore are independently
// settable; nothing derives one from the other.
type CrosswalkMapping struct {
	ID              string          `json:"id" yaml:"id"`
	RequirementText string          `json:"requirement_text" yaml:"requirement_text"`
	MatchedSections []string        `json:"matched_sections,omitempty" yaml:"matched_sections,omitempty"`
	RiskLevel       RiskLevel       `json:"risk_level" yaml:"risk_level"`
	AlignmentScore  int             `json:"alignment_score" yaml:"alignment_score"`
	Notes           string          `json:"notes,omitempty" yaml:"notes,omitempty"`
	Status          CrosswalkStatus `json:"status" yaml:"status"`
}

type Plan struct {
	ID         string        `json:"id" yaml:"id"`
	Title      string        `json:"title" yaml:"title"`
	RFPID      string        `json:"rfp_id" yaml:"rfp_id"`
	Status     PlanStatus    `json:"status" yaml:"status"`
	WordCount  int           `json:"word_count" yaml:"word_count"`
	WordTarget int           `json:"word_target" yaml:"word_target"`
	Sections   []PlanSection `json:"sections,omitempty" yaml:"sections,omitempty"`
}

type PlanSection struct {
	ID             string `json:"id" yaml:"id"`
	Title          string `json:"title" yaml:"title"`
	Words          int    `json:"words" yaml:"words"`
	Target         int    `json:"target" yaml:"target"`
	Complete       bool   `json:"complete" yaml:"complete"`
	AlignmentScore int    `json:"alignment_score" yaml:"alignment_score"`
}

// RFPUploadMeta is the optional query metadata carried alongside a
// multipart RFP upload.
type RFPUploadMeta struct {
	Title         string
	FunderName    string
	Deadline      *time.Time
	FundingAmount float64
}

// FunderRecord carries monetary roll-up inputs for one funder.
type FunderRecord struct {
	Name     string  `json:"name" yaml:"name"`
	Category string  `json:"category,omitempty" yaml:"category,omitempty"`
	Awarded  float64 `json:"awarded" yaml:"awarded"`
	Pending  float64 `json:"pending" yaml:"pending"`
	Denied   float64 `json:"denied" yaml:"denied"`
}

type FundingTotals struct {
	Awarded  float64 `json:"awarded"`
	Pending  float64 `json:"pending"`
	Denied   float64 `json:"denied"`
	Pipeline float64 `json:"pipeline"`
}

type RiskBucket struct {
	Label string `json:"label"`
	Count int    `json:"count"`
	Color string `json:"color"`
}

type ActivityEntry struct {
	ID        string    `json:"id" yaml:"id"`
	Kind      string    `json:"kind" yaml:"kind"`
	Message   string    `json:"message" yaml:"message"`
	Timestamp time.Time `json:"timestamp" yaml:"timestamp"`
}

type DeadlineAlert struct {
	RFPTitle      string    `json:"rfp_title"`
	Deadline      time.Time `json:"deadline"`
	DaysRemaining int       `json:"days_remaining"`
}

// DashboardSummary is never mutated in place; every refresh cycle replaces
// it wholesale.
type DashboardSummary struct {
	TotalBoilerplateSections int             `json:"total_boilerplate_sections"`
	ActiveRFPs               int             `json:"active_rfps"`
	PendingCrosswalks        int             `json:"pending_crosswalks"`
	PlansGenerated           int             `json:"plans_generated"`
	AverageAlignment         int             `json:"average_alignment"`
	OverallRisk              RiskLevel       `json:"overall_risk"`
	RiskDistribution         []RiskBucket    `json:"risk_distribution"`
	Funding                  FundingTotals   `json:"funding"`
	RecentRFPs               []RFP           `json:"recent_rfps"`
	UpcomingDeadlines        []DeadlineAlert `json:"upcoming_deadlines"`
	ActivityFeed             []ActivityEntry `json:"activity_feed"`
	GeneratedAt              time.Time       `json:"generated_at"`
}

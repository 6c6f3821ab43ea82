package payload

import (
	"strings"

	"github.com/grantops/grantdesk/internal/core/domain"
)

// Normalizers map loosely-shaped backend records onto the canonical entity
// types. The backend uses alternative names for the same concept across
// endpoints (title vs name vs section_title, updated_at vs last_updated),
// so every field probes its known aliases in order.

func BoilerplateFrom(r Record) domain.BoilerplateSection {
	version := r.integer("version", "version_number")
	if version < 1 {
		version = 1
	}
	return domain.BoilerplateSection{
		ID:          r.str("id", "section_id", "uuid"),
		Title:       r.str("title", "section_title", "name"),
		Category:    r.str("category", "category_name"),
		Content:     r.str("content", "body", "text"),
		Tags:        r.strSlice("tags"),
		ProgramArea: r.str("program_area", "programArea"),
		Version:     version,
		LastUpdated: r.timestamp("last_updated", "updated_at", "lastUpdated", "updatedAt"),
		Evidence:    domain.EvidenceType(r.str("evidence_type", "evidenceType")),
	}
}

func RFPFrom(r Record) domain.RFP {
	rfp := domain.RFP{
		ID:               r.str("id", "rfp_id", "uuid"),
		Title:            r.str("title", "name"),
		FunderName:       r.str("funder_name", "funder", "funderName"),
		UploadDate:       r.timestamp("upload_date", "uploaded_at", "uploadDate", "created_at"),
		Status:           domain.RFPStatus(r.str("status")),
		RequirementCount: r.integer("requirement_count", "requirementCount", "total_requirements"),
		SectionCount:     r.integer("section_count", "sectionCount"),
		TotalWordLimit:   r.integer("total_word_limit", "totalWordLimit"),
		FundingAmount:    r.floating("funding_amount", "fundingAmount", "amount"),
	}
	if deadline := r.timestamp("deadline", "due_date"); !deadline.IsZero() {
		rfp.Deadline = &deadline
	}
	return rfp
}

func RequirementFrom(r Record) domain.RequirementItem {
	item := domain.RequirementItem{
		ID:              r.str("id", "requirement_id"),
		RFPID:           r.str("rfp_id", "rfpId"),
		SectionName:     r.str("section_name", "sectionName", "title"),
		Description:     r.str("description", "text"),
		WordLimit:       r.integer("word_limit", "wordLimit"),
		Mandatory:       r.boolean("mandatory", "eligibility_flag", "required"),
		Order:           r.integer("order", "section_order", "display_order"),
		FormattingNotes: r.str("formatting_notes", "formattingNotes"),
		Attachments:     r.strSlice("attachments", "required_attachments"),
	}
	if _, present := firstPresent(r, "scoring_weight", "scoringWeight", "weight"); present {
		weight := r.floating("scoring_weight", "scoringWeight", "weight")
		item.ScoringWeight = &weight
	}
	return item
}

func CrosswalkFrom(r Record) domain.CrosswalkMapping {
	status := domain.CrosswalkStatus(r.str("status"))
	if status == "" {
		status = domain.CrosswalkPending
	}
	return domain.CrosswalkMapping{
		ID:              r.str("id", "crosswalk_id", "mapping_id"),
		RequirementText: r.str("requirement_text", "requirement", "description"),
		MatchedSections: r.strSlice("matched_sections", "matchedSections", "boilerplate_sections"),
		RiskLevel:       domain.RiskLevel(strings.ToLower(r.str("risk_level", "riskLevel", "risk"))),
		AlignmentScore:  alignmentScore(r),
		Notes:           r.str("notes"),
		Status:          status,
	}
}

func PlanFrom(r Record) domain.Plan {
	plan := domain.Plan{
		ID:         r.str("id", "plan_id"),
		Title:      r.str("title", "name"),
		RFPID:      r.str("rfp_id", "rfpId"),
		Status:     domain.PlanStatus(r.str("status")),
		WordCount:  r.integer("word_count", "wordCount", "words"),
		WordTarget: r.integer("word_target", "wordTarget", "target"),
	}
	if seq, ok := r["sections"].([]any); ok {
		for _, rec := range toRecords(seq) {
			plan.Sections = append(plan.Sections, PlanSectionFrom(rec))
		}
	}
	return plan
}

func PlanSectionFrom(r Record) domain.PlanSection {
	return domain.PlanSection{
		ID:             r.str("id", "section_id"),
		Title:          r.str("title", "section_title", "name"),
		Words:          r.integer("words", "word_count"),
		Target:         r.integer("target", "word_target", "word_limit"),
		Complete:       r.boolean("complete", "is_complete"),
		AlignmentScore: alignmentScore(r),
	}
}

func FunderFrom(r Record) domain.FunderRecord {
	return domain.FunderRecord{
		Name:     r.str("name", "funder_name", "funder"),
		Category: r.str("category", "funding_type"),
		Awarded:  r.floating("awarded", "awarded_amount"),
		Pending:  r.floating("pending", "pending_amount"),
		Denied:   r.floating("denied", "denied_amount"),
	}
}

// FundingTotalsFrom extracts the monetary roll-up from a summary record,
// probing the nested "funding" object first. ok is false when the record
// carries no awarded figure at all.
func FundingTotalsFrom(r Record) (domain.FundingTotals, bool) {
	if nested, ok := r["funding"].(map[string]any); ok {
		r = Record(nested)
	}
	if _, present := firstPresent(r, "awarded", "awarded_amount", "total_awarded"); !present {
		return domain.FundingTotals{}, false
	}
	totals := domain.FundingTotals{
		Awarded: r.floating("awarded", "awarded_amount", "total_awarded"),
		Pending: r.floating("pending", "pending_amount", "total_pending"),
		Denied:  r.floating("denied", "denied_amount", "total_denied"),
	}
	totals.Pipeline = r.floating("pipeline", "total_pipeline")
	if totals.Pipeline == 0 {
		totals.Pipeline = totals.Awarded + totals.Pending + totals.Denied
	}
	return totals, true
}

func ActivityFrom(r Record) domain.ActivityEntry {
	return domain.ActivityEntry{
		ID:        r.str("id"),
		Kind:      r.str("kind", "type", "action"),
		Message:   r.str("message", "description", "detail"),
		Timestamp: r.timestamp("timestamp", "created_at", "occurred_at"),
	}
}

// Alignment arrives either as a 0-100 number or as a label from the
// backend's enum. Label weights follow the server's scoring table.
func alignmentScore(r Record) int {
	keys := []string{"alignment_score", "alignmentScore", "score"}
	for _, key := range keys {
		if s, ok := r[key].(string); ok {
			switch domain.AlignmentLabel(strings.ToLower(s)) {
			case domain.AlignmentStrong:
				return 100
			case domain.AlignmentPartial:
				return 50
			case domain.AlignmentWeak:
				return 25
			case domain.AlignmentNone:
				return 0
			}
		}
	}
	score := r.integer(keys...)
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

func firstPresent(r Record, keys ...string) (any, bool) {
	for _, key := range keys {
		if v, ok := r[key]; ok && v != nil {
			return v, true
		}
	}
	return nil, false
}

package export

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/grantops/grantdesk/internal/core/domain"
	"github.com/grantops/grantdesk/internal/core/stats"
)

// WriteCrosswalkWorkbook renders the requirement-to-content matrix for one
// RFP as an xlsx sheet. Used when the server-side export is unavailable.
func WriteCrosswalkWorkbook(w io.Writer, rfp domain.RFP, mappings []domain.CrosswalkMapping) error {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Crosswalk"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return fmt.Errorf("create crosswalk sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("drop default sheet: %w", err)
	}

	header := []any{"Requirement", "Matched Sections", "Risk", "Alignment", "Status", "Notes"}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("write crosswalk header: %w", err)
	}

	for i, m := range mappings {
		row := []any{
			m.RequirementText,
			strings.Join(m.MatchedSections, "; "),
			string(m.RiskLevel),
			m.AlignmentScore,
			string(m.Status),
			m.Notes,
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("address crosswalk row: %w", err)
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("write crosswalk row: %w", err)
		}
	}

	summaryRow := len(mappings) + 3
	cell, err := excelize.CoordinatesToCellName(1, summaryRow)
	if err != nil {
		return fmt.Errorf("address summary row: %w", err)
	}
	summary := []any{
		fmt.Sprintf("%s / %s", rfp.Title, rfp.FunderName),
		fmt.Sprintf("mean alignment %d", stats.MeanAlignment(mappings)),
		fmt.Sprintf("overall risk %s", stats.OverallRisk(mappings)),
	}
	if err := f.SetSheetRow(sheet, cell, &summary); err != nil {
		return fmt.Errorf("write crosswalk summary: %w", err)
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write crosswalk workbook: %w", err)
	}
	return nil
}

// WriteDashboardWorkbook renders the current summary as a two-sheet
// workbook: headline metrics plus the funder money roll-up.
func WriteDashboardWorkbook(w io.Writer, summary *domain.DashboardSummary, funders []domain.FunderRecord) error {
	f := excelize.NewFile()
	defer f.Close()

	const metricsSheet = "Summary"
	index, err := f.NewSheet(metricsSheet)
	if err != nil {
		return fmt.Errorf("create summary sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("drop default sheet: %w", err)
	}

	rows := [][]any{
		{"Generated", summary.GeneratedAt.Format(time.RFC3339)},
		{"Boilerplate Sections", summary.TotalBoilerplateSections},
		{"Active RFPs", summary.ActiveRFPs},
		{"Pending Crosswalks", summary.PendingCrosswalks},
		{"Plans Generated", summary.PlansGenerated},
		{"Average Alignment", summary.AverageAlignment},
		{"Overall Risk", string(summary.OverallRisk)},
		{"Awarded", stats.FormatMoney(summary.Funding.Awarded)},
		{"Pending", stats.FormatMoney(summary.Funding.Pending)},
		{"Pipeline", stats.FormatMoney(summary.Funding.Pipeline)},
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return fmt.Errorf("address summary row: %w", err)
		}
		if err := f.SetSheetRow(metricsSheet, cell, &row); err != nil {
			return fmt.Errorf("write summary row: %w", err)
		}
	}

	const funderSheet = "Funders"
	if _, err := f.NewSheet(funderSheet); err != nil {
		return fmt.Errorf("create funder sheet: %w", err)
	}
	header := []any{"Funder", "Category", "Awarded", "Pending", "Denied"}
	if err := f.SetSheetRow(funderSheet, "A1", &header); err != nil {
		return fmt.Errorf("write funder header: %w", err)
	}
	for i, funder := range funders {
		row := []any{funder.Name, funder.Category, funder.Awarded, funder.Pending, funder.Denied}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("address funder row: %w", err)
		}
		if err := f.SetSheetRow(funderSheet, cell, &row); err != nil {
			return fmt.Errorf("write funder row: %w", err)
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write dashboard workbook: %w", err)
	}
	return nil
}

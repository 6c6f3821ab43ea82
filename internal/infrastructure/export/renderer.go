package export

import (
	"io"

	"github.com/grantops/grantdesk/internal/core/domain"
)

// Renderer adapts the workbook writers to the local-render contract used
// when the server-side export endpoint is unavailable.
type Renderer struct{}

func (Renderer) RenderCrosswalks(w io.Writer, rfp domain.RFP, mappings []domain.CrosswalkMapping) error {
	return WriteCrosswalkWorkbook(w, rfp, mappings)
}

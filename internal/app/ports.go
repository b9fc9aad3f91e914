package app

import (
	"context"
	"io"

	"github.com/alexanderramin/assay/internal/domain"
)

type SelectTypeUseCase interface {
	SelectType(ctx context.Context, t domain.AssessmentType) (*TypeDetails, error)
}

type UDLUseCase interface {
	UDLReport(ctx context.Context, checked map[string]bool) (*UDLReport, error)
}

type AlignmentUseCase interface {
	CheckAlignment(ctx context.Context, req AlignmentRequest) (*AlignmentReport, error)
}

type InclusiveUseCase interface {
	InclusiveReport(ctx context.Context, checked map[string]bool) (*InclusiveReport, error)
}

type PromptUseCase interface {
	GeneratePrompt(ctx context.Context, req PromptRequest) (*PromptResult, error)
}

type ExportUseCase interface {
	Export(ctx context.Context, w io.Writer) error
	SaveExport(ctx context.Context, dir string) (string, error)
}

// Questionnaire is the full set of stage use cases a session controller offers.
type Questionnaire interface {
	SelectTypeUseCase
	UDLUseCase
	AlignmentUseCase
	InclusiveUseCase
	PromptUseCase
	ExportUseCase
	Start(ctx context.Context)
	Summary(ctx context.Context) Summary
	Design() *domain.AssessmentDesign
	Reset(ctx context.Context)
}

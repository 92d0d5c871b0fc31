package queries

import (
	"errors"

	"wreaths/internal/core/domain/model/bespoke"
	"wreaths/internal/core/domain/model/kernel"
	"wreaths/internal/pkg/guard"
)

var ErrPreviewBespokeQueryIsNotConstructed = errors.New(
	"PreviewBespokeQuery must be created via NewPreviewBespokeQuery constructor",
)

// PreviewBespokeQuery evaluates a partly filled bespoke form. It never fails on the form
// contents: incomplete or unknown values just produce no estimate.
type PreviewBespokeQuery struct {
	form bespoke.Form

	guard guard.ConstructorGuard
}

func NewPreviewBespokeQuery(form bespoke.Form) PreviewBespokeQuery {
	return PreviewBespokeQuery{form: form, guard: guard.NewConstructorGuard()}
}

func (q PreviewBespokeQuery) Validate() error {
	return q.guard.Validate(ErrPreviewBespokeQueryIsNotConstructed)
}

func (q PreviewBespokeQuery) Form() bespoke.Form {
	return q.form
}

type PreviewBespokeQueryResponse struct {
	// Estimate is meaningful only when HasEstimate is true; otherwise a quote is required.
	Estimate        kernel.Money
	HasEstimate     bool
	CompletionRatio float64
	MissingFields   []bespoke.RequiredField
}

package queries

import (
	"strings"

	"wreaths/internal/core/domain/model/bespoke"
)

type PreviewBespokeQueryHandler struct {
	prices bespoke.PriceTable
}

func NewPreviewBespokeQueryHandler(prices bespoke.PriceTable) PreviewBespokeQueryHandler {
	return PreviewBespokeQueryHandler{prices: prices}
}

func (h PreviewBespokeQueryHandler) Handle(query PreviewBespokeQuery) (PreviewBespokeQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return PreviewBespokeQueryResponse{}, err
	}

	form := query.Form()
	resp := PreviewBespokeQueryResponse{
		CompletionRatio: bespoke.CompletionRatio(form),
		MissingFields:   form.MissingFields(),
	}
	if resp.MissingFields == nil {
		resp.MissingFields = []bespoke.RequiredField{}
	}
	resp.Estimate, resp.HasEstimate = h.prices.Estimate(bespoke.Size(strings.TrimSpace(form.Size)), form.Ribbon)
	return resp, nil
}

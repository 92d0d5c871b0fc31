package http

import (
	"wreaths/internal/core/application/usecases/queries"
	"wreaths/internal/generated/servers"
)

func orderToResponse(o queries.GetOrderQueryResponse) servers.Order {
	items := make([]servers.OrderItem, len(o.Items))
	for i, item := range o.Items {
		items[i] = servers.OrderItem{
			Title:     item.Title,
			Quantity:  item.Quantity,
			Price:     item.Price.String(),
			LineTotal: item.LineTotal.String(),
		}
	}

	steps := make([]servers.ProgressStep, len(o.Progress.Steps))
	for i, step := range o.Progress.Steps {
		steps[i] = servers.ProgressStep{
			Status: servers.OrderStatus(step.Status.String()),
			State:  servers.ProgressStepState(step.State.String()),
		}
	}
	progress := servers.Progress{
		Steps:                steps,
		CurrentIndex:         o.Progress.CurrentIndex,
		PromptTrackingNumber: o.Progress.PromptTrackingNumber,
	}
	if o.Progress.HasNext {
		next := servers.OrderStatus(o.Progress.Next.String())
		progress.Next = &next
	}

	resp := servers.Order{
		Id:             o.ID.Value(),
		CustomerName:   o.CustomerName,
		CustomerEmail:  o.CustomerEmail,
		DeliveryMethod: servers.DeliveryMethod(o.DeliveryMethod.String()),
		Status:         servers.OrderStatus(o.Status.String()),
		Items:          items,
		Subtotal:       o.Subtotal.String(),
		DeliveryCost:   o.DeliveryCost.String(),
		Total:          o.Total.String(),
		CreatedAt:      o.CreatedAt,
		UpdatedAt:      o.UpdatedAt,
		Progress:       progress,
	}
	if o.TrackingNumber != "" {
		tn := o.TrackingNumber
		resp.TrackingNumber = &tn
	}
	return resp
}

func enquiryToResponse(e queries.EnquiryView) servers.Enquiry {
	resp := servers.Enquiry{
		Id:              e.ID.Value(),
		Name:            e.Name,
		Email:           e.Email,
		ArrangementType: e.ArrangementType,
		ColourTheme:     e.ColourTheme,
		WreathBase:      e.WreathBase,
		Size:            e.Size.String(),
		Ribbon:          e.Ribbon,
		Status:          servers.EnquiryStatus(e.Status.String()),
		CreatedAt:       e.CreatedAt,
		RespondedAt:     e.RespondedAt,
	}
	if e.Phone != "" {
		phone := e.Phone
		resp.Phone = &phone
	}
	if e.Notes != "" {
		notes := e.Notes
		resp.Notes = &notes
	}
	if e.EstimatedPrice != nil {
		price := e.EstimatedPrice.String()
		resp.EstimatedPrice = &price
	}
	return resp
}

package services

import (
	"wreaths/internal/core/domain/model/order"
)

// StepState is how a single flow step is drawn in the progress indicator.
type StepState int

const (
	StepUpcoming StepState = iota
	StepCurrent
	StepDone
)

func (s StepState) String() string {
	switch s {
	case StepDone:
		return "done"
	case StepCurrent:
		return "current"
	default:
		return "upcoming"
	}
}

type ProgressStep struct {
	Status order.Status
	State  StepState
}

// Progress is the display view of an order's position in its flow.
// Next and PromptTrackingNumber are only meaningful when HasNext is true.
type Progress struct {
	Steps                []ProgressStep
	CurrentIndex         int
	Next                 order.Status
	HasNext              bool
	PromptTrackingNumber bool
}

// ProgressTracker derives Progress views. It is stateless.
type ProgressTracker struct{}

func NewProgressTracker() ProgressTracker {
	return ProgressTracker{}
}

// Track builds the progress view of a constructed order.
func (p ProgressTracker) Track(o *order.Order) (Progress, error) {
	if err := o.Validate(); err != nil {
		return Progress{}, err
	}
	return p.TrackStatus(o.DeliveryMethod(), o.Status())
}

// TrackStatus builds the view from raw values, as read models carry them. It fails with
// order.ErrInvalidDeliveryMethod or order.ErrStatusNotInFlow on inconsistent data.
func (p ProgressTracker) TrackStatus(method order.DeliveryMethod, status order.Status) (Progress, error) {
	flow, err := order.FlowFor(method)
	if err != nil {
		return Progress{}, err
	}
	current, err := flow.IndexOf(status)
	if err != nil {
		return Progress{}, err
	}

	steps := flow.Steps()
	view := Progress{
		Steps:        make([]ProgressStep, len(steps)),
		CurrentIndex: current,
	}
	for i, s := range steps {
		state := StepUpcoming
		switch {
		case i < current:
			state = StepDone
		case i == current:
			state = StepCurrent
		}
		view.Steps[i] = ProgressStep{Status: s, State: state}
	}

	if next, ok := flow.Next(current); ok {
		view.Next = next
		view.HasNext = true
		view.PromptTrackingNumber = order.RequiresTrackingNumber(next)
	}
	return view, nil
}

package service

import "github.com/Mouss-42/ReactSituPro-main/pkg/checkout/domain/model"

// Transition is the checkout state machine. Forward moves are gated by the
// validation of the step being left; back moves are never validated.
func Transition(step model.Step, form model.Form, action model.Action) (model.Step, model.ValidationErrors, error) {
	if step.IsTerminal() {
		return step, nil, model.ErrCheckoutClosed
	}

	switch action {
	case model.ActionNext:
		if step >= model.Review {
			return step, nil, model.ErrInvalidTransition
		}
		if errs := ValidateStep(step, form); len(errs) > 0 {
			return step, errs, nil
		}
		return step + 1, nil, nil

	case model.ActionBack:
		if step == model.Shipping {
			return step, nil, nil
		}
		return step - 1, nil, nil

	case model.ActionPlace:
		if step != model.Review {
			return step, nil, model.ErrInvalidTransition
		}
		if errs := ValidateAll(form); len(errs) > 0 {
			return step, errs, nil
		}
		return model.Placed, nil, nil
	}

	return step, nil, model.ErrInvalidTransition
}

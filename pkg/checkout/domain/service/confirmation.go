package service

import (
	"fmt"

	cartmodel "github.com/Mouss-42/ReactSituPro-main/pkg/cart/domain/model"
	"github.com/Mouss-42/ReactSituPro-main/pkg/checkout/domain/model"
	"github.com/Mouss-42/ReactSituPro-main/pkg/common/domain"
)

type ConfirmationService interface {
	NotifyOrderConfirmation(order model.OrderPlaced) error
	// HandleOrderPlaced is meant to be subscribed to OrderPlaced events.
	HandleOrderPlaced(event domain.Event) error
}

func NewConfirmationService(sender model.NotificationSender) ConfirmationService {
	return &confirmationService{sender: sender}
}

type confirmationService struct {
	sender model.NotificationSender
}

// NotifyOrderConfirmation is a no-op for orders placed without an email.
func (s *confirmationService) NotifyOrderConfirmation(order model.OrderPlaced) error {
	if order.Email == "" {
		return nil
	}

	subject := fmt.Sprintf("Commande confirmée : %s", order.OrderNumber)
	body := fmt.Sprintf(
		"Bonjour %s, merci pour votre commande. Votre numéro de commande est %s. Montant : %s €.",
		order.FirstName, order.OrderNumber, cartmodel.FormatAmount(order.Total),
	)
	return s.sender.Send(order.Email, subject, body)
}

func (s *confirmationService) HandleOrderPlaced(event domain.Event) error {
	placed, ok := event.(model.OrderPlaced)
	if !ok {
		return nil
	}
	return s.NotifyOrderConfirmation(placed)
}

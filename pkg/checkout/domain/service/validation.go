package service

import (
	"regexp"
	"strings"

	"github.com/Mouss-42/ReactSituPro-main/pkg/checkout/domain/model"
)

var (
	cardNumberPattern = regexp.MustCompile(`^\d{16}$`)
	cardExpiryPattern = regexp.MustCompile(`^\d{2}/\d{2}$`)
	cardCVCPattern    = regexp.MustCompile(`^\d{3,4}$`)
)

type requirement struct {
	field   model.Field
	message string
}

var shippingRequirements = []requirement{
	{model.FieldFirstName, "Le prénom est requis"},
	{model.FieldLastName, "Le nom est requis"},
	{model.FieldEmail, "L'email est requis"},
	{model.FieldPhone, "Le téléphone est requis"},
	{model.FieldAddress, "L'adresse est requise"},
	{model.FieldCity, "La ville est requise"},
	{model.FieldPostalCode, "Le code postal est requis"},
}

var billingRequirements = []requirement{
	{model.FieldBillingFirstName, "Le prénom est requis"},
	{model.FieldBillingLastName, "Le nom est requis"},
	{model.FieldBillingAddress, "L'adresse est requise"},
	{model.FieldBillingCity, "La ville est requise"},
	{model.FieldBillingPostalCode, "Le code postal est requis"},
}

var paymentRequirements = []requirement{
	{model.FieldCardName, "Le nom sur la carte est requis"},
	{model.FieldCardNumber, "Le numéro de carte est requis"},
	{model.FieldCardExpiry, "La date d'expiration est requise"},
	{model.FieldCardCVC, "Le code de sécurité est requis"},
}

// ValidateStep checks the fields owned by step. An empty result means the
// step may be left forward.
func ValidateStep(step model.Step, form model.Form) model.ValidationErrors {
	errs := model.ValidationErrors{}

	switch step {
	case model.Shipping:
		requireFields(errs, form, shippingRequirements)
	case model.Billing:
		if !form.SameAsShipping {
			requireFields(errs, form, billingRequirements)
		}
	case model.Payment:
		requireFields(errs, form, paymentRequirements)

		p := form.Payment
		if p.CardNumber != "" && !cardNumberPattern.MatchString(stripWhitespace(p.CardNumber)) {
			errs[model.FieldCardNumber] = "Le numéro de carte doit contenir 16 chiffres"
		}
		if p.CardExpiry != "" && !cardExpiryPattern.MatchString(p.CardExpiry) {
			errs[model.FieldCardExpiry] = "Format invalide (MM/YY)"
		}
		if p.CardCVC != "" && !cardCVCPattern.MatchString(p.CardCVC) {
			errs[model.FieldCardCVC] = "Le code de sécurité doit contenir 3 ou 4 chiffres"
		}
	}

	return errs
}

// ValidateAll runs every data-entry step, for the final check before placement.
func ValidateAll(form model.Form) model.ValidationErrors {
	errs := model.ValidationErrors{}
	for _, step := range []model.Step{model.Shipping, model.Billing, model.Payment} {
		for field, message := range ValidateStep(step, form) {
			errs[field] = message
		}
	}
	return errs
}

func requireFields(errs model.ValidationErrors, form model.Form, requirements []requirement) {
	for _, r := range requirements {
		if value, _ := form.Get(r.field); value == "" {
			errs[r.field] = r.message
		}
	}
}

func stripWhitespace(s string) string {
	return strings.Join(strings.Fields(s), "")
}

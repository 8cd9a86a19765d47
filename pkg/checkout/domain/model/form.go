package model

import "strings"

const DefaultCountry = "France"

type Field string

const (
	FieldFirstName  Field = "firstName"
	FieldLastName   Field = "lastName"
	FieldEmail      Field = "email"
	FieldPhone      Field = "phone"
	FieldAddress    Field = "address"
	FieldCity       Field = "city"
	FieldPostalCode Field = "postalCode"
	FieldCountry    Field = "country"

	FieldBillingFirstName  Field = "billingFirstName"
	FieldBillingLastName   Field = "billingLastName"
	FieldBillingAddress    Field = "billingAddress"
	FieldBillingCity       Field = "billingCity"
	FieldBillingPostalCode Field = "billingPostalCode"
	FieldBillingCountry    Field = "billingCountry"

	FieldCardName   Field = "cardName"
	FieldCardNumber Field = "cardNumber"
	FieldCardExpiry Field = "cardExpiry"
	FieldCardCVC    Field = "cardCVC"
)

type ShippingInfo struct {
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Address    string `json:"address"`
	City       string `json:"city"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
}

type BillingInfo struct {
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Address    string `json:"address"`
	City       string `json:"city"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
}

type PaymentInfo struct {
	CardName   string `json:"cardName"`
	CardNumber string `json:"cardNumber"`
	CardExpiry string `json:"cardExpiry"`
	CardCVC    string `json:"cardCVC"`
}

type Form struct {
	Shipping        ShippingInfo `json:"shipping"`
	SameAsShipping  bool         `json:"sameAsShipping"`
	Billing         BillingInfo  `json:"billing"`
	Payment         PaymentInfo  `json:"payment"`
	SavePaymentInfo bool         `json:"savePaymentInfo"`
}

func NewForm() Form {
	return Form{
		Shipping:       ShippingInfo{Country: DefaultCountry},
		SameAsShipping: true,
		Billing:        BillingInfo{Country: DefaultCountry},
	}
}

// field maps a field name to its slot in the form.
func (f *Form) field(name Field) *string {
	switch name {
	case FieldFirstName:
		return &f.Shipping.FirstName
	case FieldLastName:
		return &f.Shipping.LastName
	case FieldEmail:
		return &f.Shipping.Email
	case FieldPhone:
		return &f.Shipping.Phone
	case FieldAddress:
		return &f.Shipping.Address
	case FieldCity:
		return &f.Shipping.City
	case FieldPostalCode:
		return &f.Shipping.PostalCode
	case FieldCountry:
		return &f.Shipping.Country
	case FieldBillingFirstName:
		return &f.Billing.FirstName
	case FieldBillingLastName:
		return &f.Billing.LastName
	case FieldBillingAddress:
		return &f.Billing.Address
	case FieldBillingCity:
		return &f.Billing.City
	case FieldBillingPostalCode:
		return &f.Billing.PostalCode
	case FieldBillingCountry:
		return &f.Billing.Country
	case FieldCardName:
		return &f.Payment.CardName
	case FieldCardNumber:
		return &f.Payment.CardNumber
	case FieldCardExpiry:
		return &f.Payment.CardExpiry
	case FieldCardCVC:
		return &f.Payment.CardCVC
	default:
		return nil
	}
}

func (f *Form) Get(name Field) (string, bool) {
	p := f.field(name)
	if p == nil {
		return "", false
	}
	return *p, true
}

func (f *Form) Set(name Field, value string) bool {
	p := f.field(name)
	if p == nil {
		return false
	}
	*p = value
	return true
}

// CopyShippingToBilling is a one-time snapshot; later shipping edits are not
// reflected in billing.
func (f *Form) CopyShippingToBilling() {
	f.Billing.FirstName = f.Shipping.FirstName
	f.Billing.LastName = f.Shipping.LastName
	f.Billing.Address = f.Shipping.Address
	f.Billing.City = f.Shipping.City
	f.Billing.PostalCode = f.Shipping.PostalCode
	f.Billing.Country = f.Shipping.Country
}

func (p PaymentInfo) MaskedCardNumber() string {
	digits := strings.ReplaceAll(p.CardNumber, " ", "")
	if len(digits) > 4 {
		digits = digits[len(digits)-4:]
	}
	return "**** **** **** " + digits
}

type ValidationErrors map[Field]string

func (e ValidationErrors) Has(field Field) bool {
	_, ok := e[field]
	return ok
}

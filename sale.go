package ensaios

import (
	"fmt"
	"time"
)

// SaleStatus classifies the outcome of a sale attempt.
type SaleStatus string

const (
	// Sold (VD, "vendido"): the client bought photos.
	Sold SaleStatus = "VD"
	// GaveUp (D, "desistência"): the client was seen but declined.
	GaveUp SaleStatus = "D"
	// NotSeen (NV, "não visto"): the client never showed up.
	NotSeen SaleStatus = "NV"
)

// ParseSaleStatus parses a string into a SaleStatus.
func ParseSaleStatus(s string) (SaleStatus, error) {
	switch SaleStatus(s) {
	case Sold, GaveUp, NotSeen:
		return SaleStatus(s), nil
	default:
		return "", fmt.Errorf("unknown sale status: %q (want VD, D or NV)", s)
	}
}

// PaymentMethod is one of the ways a client can settle a sale.
type PaymentMethod string

const (
	Pix  PaymentMethod = "pix"
	Card PaymentMethod = "cartao"
	Cash PaymentMethod = "dinheiro"
)

// ParsePaymentMethod parses a string into a PaymentMethod.
func ParsePaymentMethod(s string) (PaymentMethod, error) {
	switch PaymentMethod(s) {
	case Pix, Card, Cash:
		return PaymentMethod(s), nil
	default:
		return "", fmt.Errorf("unknown payment method: %q (want pix, cartao or dinheiro)", s)
	}
}

// Payment is one slice of a possibly split payment.
type Payment struct {
	Method PaymentMethod `json:"method"`
	Value  Money         `json:"value"`
}

// MaxPayments caps how many ways a single sale can be split.
const MaxPayments = 3

// DeliveryType describes what photo set was handed to the client.
type DeliveryType string

const (
	// DeliverySelected: the client's selection of photos.
	DeliverySelected DeliveryType = "selected"
	// DeliveryComplete: the complete set of the session.
	DeliveryComplete DeliveryType = "complete"
	// DeliveryCourtesy: a courtesy photo for a client that declined.
	DeliveryCourtesy DeliveryType = "courtesy"
	// DeliveryNone: nothing delivered.
	DeliveryNone DeliveryType = "none"
)

// ParseDeliveryType parses a string into a DeliveryType.
func ParseDeliveryType(s string) (DeliveryType, error) {
	switch DeliveryType(s) {
	case DeliverySelected, DeliveryComplete, DeliveryCourtesy, DeliveryNone:
		return DeliveryType(s), nil
	default:
		return "", fmt.Errorf("unknown delivery type: %q (want selected, complete, courtesy or none)", s)
	}
}

// DeliveryStatus tracks the photo handoff of a sold session.
type DeliveryStatus string

const (
	// DeliveryPending is set automatically when a sale is recorded as VD.
	DeliveryPending DeliveryStatus = "pending"
	// DeliverySent is set by the delivery handoff action.
	DeliverySent DeliveryStatus = "sent"
)

// Sale is the recorded outcome of attempting to sell a session's photos.
// A session has at most one sale; recording a new one replaces it entirely.
type Sale struct {
	SessionID string     `json:"sessionId"`
	Seller    string     `json:"seller"`
	Status    SaleStatus `json:"saleStatus"`
	// Value is the total amount, always the sum of Payments; zero unless Sold.
	Value    Money        `json:"saleValue"`
	Payments []Payment    `json:"paymentMethods,omitempty"`
	Delivery DeliveryType `json:"photoType,omitempty"`

	ClientName     string `json:"clientName,omitempty"`
	ClientEmail    string `json:"clientEmail,omitempty"`
	ClientWhatsApp string `json:"clientWhatsapp,omitempty"`

	// Timestamp is when the sale was recorded; its day, not the session's
	// date, decides which day the sale counts toward.
	Timestamp time.Time `json:"timestamp"`

	DeliveryStatus DeliveryStatus `json:"deliveryStatus,omitempty"`
}

// Day returns the calendar day this sale counts toward.
func (s Sale) Day() Date { return DayOf(s.Timestamp) }

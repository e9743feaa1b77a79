package payment

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"havenpos/internal/core/domain/model/kernel"
	"havenpos/internal/pkg/errs"
	"havenpos/internal/pkg/guard"
)

var (
	ErrAmountMustBePositive    = errors.New("payment amount must be positive")
	ErrPaymentIsNotConstructed = errors.New("Payment must be created via NewPayment or RestorePayment")
	ErrOrderIsCancelled        = errors.New("cancelled orders take no payments")
)

type Method int

const (
	UnknownMethod Method = iota
	Cash
	Card
	DigitalWallet
	BankTransfer
	LoyaltyPoints
)

var methodNames = map[Method]string{
	Cash:          "cash",
	Card:          "card",
	DigitalWallet: "digital_wallet",
	BankTransfer:  "bank_transfer",
	LoyaltyPoints: "loyalty_points",
}

func ParseMethod(raw string) (Method, error) {
	needle := strings.ToLower(strings.TrimSpace(raw))
	for m, name := range methodNames {
		if name == needle {
			return m, nil
		}
	}
	return UnknownMethod, errs.NewValueIsInvalidErrorWithCause("payment_method", fmt.Errorf("%q is not a known method", raw))
}

func (m Method) Validate() error {
	if _, ok := methodNames[m]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("payment_method", fmt.Errorf("%d is not a valid method", m))
	}
	return nil
}

func (m Method) String() string {
	if name, ok := methodNames[m]; ok {
		return name
	}
	return "unknown"
}

type Status int

const (
	UnknownStatus Status = iota
	Pending
	Processing
	Completed
	Failed
	Refunded
)

var statusNames = map[Status]string{
	Pending:    "pending",
	Processing: "processing",
	Completed:  "completed",
	Failed:     "failed",
	Refunded:   "refunded",
}

func ParseStatus(raw string) (Status, error) {
	needle := strings.ToLower(strings.TrimSpace(raw))
	for s, name := range statusNames {
		if name == needle {
			return s, nil
		}
	}
	return UnknownStatus, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a known payment status", raw))
}

func (s Status) Validate() error {
	if _, ok := statusNames[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid payment status", s))
	}
	return nil
}

func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "unknown"
}

// Details are the optional references a terminal captures with a payment.
type Details struct {
	TransactionID string
	Reference     string
	// CardLastFour is empty or exactly four digits.
	CardLastFour string
}

// Payment is money taken for one order.
type Payment struct {
	id          kernel.UUID
	orderID     kernel.UUID
	amount      kernel.Money
	method      Method
	status      Status
	details     Details
	processedBy string
	createdAt   time.Time
	processedAt time.Time
	guard       guard.ConstructorGuard
}

// NewPayment records a completed payment processed at the given time.
func NewPayment(
	id, orderID kernel.UUID,
	amount kernel.Money,
	method Method,
	details Details,
	processedBy string,
	at time.Time,
) (Payment, error) {
	return RestorePayment(Snapshot{
		ID:          id,
		OrderID:     orderID,
		Amount:      amount,
		Method:      method,
		Status:      Completed,
		Details:     details,
		ProcessedBy: processedBy,
		CreatedAt:   at,
		ProcessedAt: at,
	})
}

// Snapshot is the plain form of a Payment exchanged with adapters.
type Snapshot struct {
	ID          kernel.UUID
	OrderID     kernel.UUID
	Amount      kernel.Money
	Method      Method
	Status      Status
	Details     Details
	ProcessedBy string
	CreatedAt   time.Time
	ProcessedAt time.Time
}

// RestorePayment rebuilds a payment read from storage.
func RestorePayment(s Snapshot) (Payment, error) {
	details := Details{
		TransactionID: strings.TrimSpace(s.Details.TransactionID),
		Reference:     strings.TrimSpace(s.Details.Reference),
		CardLastFour:  strings.TrimSpace(s.Details.CardLastFour),
	}
	var amountErr error
	if !s.Amount.GreaterThan(kernel.Zero()) {
		amountErr = errs.NewValueIsInvalidErrorWithCause("amount", ErrAmountMustBePositive)
	}
	if err := errors.Join(
		s.ID.Validate(),
		s.OrderID.Validate(),
		amountErr,
		s.Method.Validate(),
		s.Status.Validate(),
		validateCardLastFour(details.CardLastFour),
	); err != nil {
		return Payment{}, err
	}
	return Payment{
		id:          s.ID,
		orderID:     s.OrderID,
		amount:      s.Amount,
		method:      s.Method,
		status:      s.Status,
		details:     details,
		processedBy: strings.TrimSpace(s.ProcessedBy),
		createdAt:   s.CreatedAt,
		processedAt: s.ProcessedAt,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (p Payment) Validate() error {
	return p.guard.Validate(ErrPaymentIsNotConstructed)
}

func (p Payment) ID() kernel.UUID {
	return p.id
}

func (p Payment) OrderID() kernel.UUID {
	return p.orderID
}

func (p Payment) Amount() kernel.Money {
	return p.amount
}

func (p Payment) Method() Method {
	return p.method
}

func (p Payment) Status() Status {
	return p.status
}

func (p Payment) Details() Details {
	return p.details
}

// ProcessedBy is the user id of the staff member who took the payment.
func (p Payment) ProcessedBy() string {
	return p.processedBy
}

func (p Payment) CreatedAt() time.Time {
	return p.createdAt
}

func (p Payment) ProcessedAt() time.Time {
	return p.processedAt
}

// Snapshot copies the payment into its plain form.
func (p Payment) Snapshot() Snapshot {
	return Snapshot{
		ID:          p.id,
		OrderID:     p.orderID,
		Amount:      p.amount,
		Method:      p.method,
		Status:      p.status,
		Details:     p.details,
		ProcessedBy: p.processedBy,
		CreatedAt:   p.createdAt,
		ProcessedAt: p.processedAt,
	}
}

// TotalPaid sums the completed payments.
func TotalPaid(payments []Payment) kernel.Money {
	total := kernel.Zero()
	for _, p := range payments {
		if p.status == Completed {
			total = total.Add(p.amount)
		}
	}
	return total
}

func validateCardLastFour(digits string) error {
	if digits == "" {
		return nil
	}
	valid := len(digits) == 4
	for _, r := range digits {
		if r < '0' || r > '9' {
			valid = false
		}
	}
	if !valid {
		return errs.NewValueIsInvalidErrorWithCause("card_last_four", fmt.Errorf("%q is not four digits", digits))
	}
	return nil
}

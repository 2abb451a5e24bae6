package servicing

import (
	"encoding/json"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Money is a currency amount carried as a decimal string.
type Money struct {
	Amount   string
	Currency string
}

// NewMoney builds a Money in the default USD currency.
func NewMoney(amount string) *Money {
	return &Money{Amount: amount, Currency: "USD"}
}

// Attributes implements Serializable.
func (m *Money) Attributes() []string {
	return []string{"amount", "currency"}
}

// Validators implements Serializable.
func (m *Money) Validators() []Validator {
	return []Validator{
		Required("amount", func() bool { return m.Amount != "" }),
		{
			Message: "amount attribute must be a decimal value",
			Valid: func() bool {
				_, err := decimal.NewFromString(m.Amount)

				return err == nil
			},
		},
	}
}

// Attribute implements Serializable.
func (m *Money) Attribute(name string) any {
	switch name {
	case "amount":
		return m.Amount
	case "currency":
		return m.Currency
	default:
		return nil
	}
}

// FixedPayment is the fixed amount due each period on a non-revolving loan.
type FixedPayment struct {
	Amount *Money
	Type   FixedPaymentType
}

// NewFixedPayment builds a FixedPayment of the default TOTAL type.
func NewFixedPayment(amount *Money) *FixedPayment {
	return &FixedPayment{Amount: amount, Type: FixedPaymentTotal}
}

// Attributes implements Serializable.
func (p *FixedPayment) Attributes() []string {
	return []string{"amount", "type"}
}

// Validators implements Serializable.
func (p *FixedPayment) Validators() []Validator {
	return []Validator{
		Required("amount", func() bool { return p.Amount != nil }),
		OneOf("type", FixedPaymentTypes(), func() string { return string(p.Type) }),
	}
}

// Attribute implements Serializable.
func (p *FixedPayment) Attribute(name string) any {
	switch name {
	case "amount":
		if p.Amount == nil {
			return nil
		}

		return p.Amount
	case "type":
		return string(p.Type)
	default:
		return nil
	}
}

// Periods describes a loan's repayment schedule.
type Periods struct {
	Count             int
	Frequency         Frequency
	DayOfMonth        *int
	CountDeferred     int
	CountInterestOnly int
	StartType         StartType
}

// NewPeriods builds a Periods schedule anchored at the disbursement date
// with no deferred or interest-only periods.
func NewPeriods(count int, frequency Frequency) *Periods {
	return &Periods{
		Count:     count,
		Frequency: frequency,
		StartType: StartTypeDisbursementDate,
	}
}

// Attributes implements Serializable.
func (p *Periods) Attributes() []string {
	return []string{
		"count",
		"frequency",
		"day_of_month",
		"count_deferred",
		"count_interest_only",
		"start_type",
	}
}

// Validators implements Serializable.
func (p *Periods) Validators() []Validator {
	return []Validator{
		Required("count", func() bool { return p.Count > 0 }),
		OneOf("frequency", Frequencies(), func() string { return string(p.Frequency) }),
		OneOf("start_type", StartTypes(), func() string { return string(p.StartType) }),
	}
}

// Attribute implements Serializable.
func (p *Periods) Attribute(name string) any {
	switch name {
	case "count":
		return p.Count
	case "frequency":
		return string(p.Frequency)
	case "day_of_month":
		if p.DayOfMonth == nil {
			return nil
		}

		return *p.DayOfMonth
	case "count_deferred":
		return p.CountDeferred
	case "count_interest_only":
		return p.CountInterestOnly
	case "start_type":
		return string(p.StartType)
	default:
		return nil
	}
}

// Loan is a servicing loan registration. AnnualRate is carried as a
// json.Number so it stays numeric on the wire without a float round-trip.
type Loan struct {
	AgentID         uuid.UUID
	BorrowerID      uuid.UUID
	LenderID        uuid.UUID
	AnnualRate      json.Number
	Benchmark       BenchmarkName
	Commitment      *Money
	Compounding     Compounding
	DayCount        DayCount
	FixedPayment    *FixedPayment
	OriginationDate string
	TimeZoneID      string
	Periods         *Periods
	IsRevolver      bool
	MaxNumDraws     *int
}

// Attributes implements Serializable.
func (l *Loan) Attributes() []string {
	return []string{
		"agent_id",
		"borrower_id",
		"lender_id",
		"annual_rate",
		"benchmark",
		"commitment",
		"compounding",
		"day_count",
		"fixed_payment",
		"origination_date",
		"time_zone_id",
		"periods",
		"is_revolver",
		"max_num_draws",
	}
}

// Validators implements Serializable.
func (l *Loan) Validators() []Validator {
	return []Validator{
		Required("agent_id", func() bool { return l.AgentID != uuid.Nil }),
		Required("borrower_id", func() bool { return l.BorrowerID != uuid.Nil }),
		Required("lender_id", func() bool { return l.LenderID != uuid.Nil }),
		Required("annual_rate", func() bool { return l.AnnualRate != "" }),
		Required("commitment", func() bool { return l.Commitment != nil }),
		Required("origination_date", func() bool { return l.OriginationDate != "" }),
		Required("time_zone_id", func() bool { return l.TimeZoneID != "" }),
		Required("periods", func() bool { return l.Periods != nil }),
		OneOf("benchmark", BenchmarkNames(), func() string { return string(l.Benchmark) }),
		OneOf("compounding", Compoundings(), func() string { return string(l.Compounding) }),
		OneOf("day_count", DayCounts(), func() string { return string(l.DayCount) }),
	}
}

// Attribute implements Serializable.
func (l *Loan) Attribute(name string) any {
	switch name {
	case "agent_id":
		return l.AgentID
	case "borrower_id":
		return l.BorrowerID
	case "lender_id":
		return l.LenderID
	case "annual_rate":
		return l.AnnualRate
	case "benchmark":
		return string(l.Benchmark)
	case "commitment":
		if l.Commitment == nil {
			return nil
		}

		return l.Commitment
	case "compounding":
		return string(l.Compounding)
	case "day_count":
		return string(l.DayCount)
	case "fixed_payment":
		if l.FixedPayment == nil {
			return nil
		}

		return l.FixedPayment
	case "origination_date":
		return l.OriginationDate
	case "time_zone_id":
		return l.TimeZoneID
	case "periods":
		if l.Periods == nil {
			return nil
		}

		return l.Periods
	case "is_revolver":
		return l.IsRevolver
	case "max_num_draws":
		if l.MaxNumDraws == nil {
			return nil
		}

		return *l.MaxNumDraws
	default:
		return nil
	}
}

// Address is a postal address attached to an institution.
type Address struct {
	StreetOne string
	StreetTwo string
	City      string
	State     string
	Zip       string
}

// Attributes implements Serializable.
func (a *Address) Attributes() []string {
	return []string{"street_one", "street_two", "city", "state", "zip"}
}

// Validators implements Serializable.
func (a *Address) Validators() []Validator {
	return []Validator{
		Required("street_one", func() bool { return a.StreetOne != "" }),
		Required("city", func() bool { return a.City != "" }),
		Required("state", func() bool { return a.State != "" }),
		Required("zip", func() bool { return a.Zip != "" }),
	}
}

// Attribute implements Serializable.
func (a *Address) Attribute(name string) any {
	switch name {
	case "street_one":
		return a.StreetOne
	case "street_two":
		return a.StreetTwo
	case "city":
		return a.City
	case "state":
		return a.State
	case "zip":
		return a.Zip
	default:
		return nil
	}
}

// Institution is a bank or other lender registered with the servicing API.
type Institution struct {
	Name    string
	Ticker  string
	Address *Address
}

// Attributes implements Serializable.
func (i *Institution) Attributes() []string {
	return []string{"name", "ticker", "address"}
}

// Validators implements Serializable.
func (i *Institution) Validators() []Validator {
	return []Validator{
		Required("name", func() bool { return i.Name != "" }),
	}
}

// Attribute implements Serializable.
func (i *Institution) Attribute(name string) any {
	switch name {
	case "name":
		return i.Name
	case "ticker":
		return i.Ticker
	case "address":
		if i.Address == nil {
			return nil
		}

		return i.Address
	default:
		return nil
	}
}

// Fund is a pool of capital owned by an institution.
type Fund struct {
	Name string
}

// Attributes implements Serializable.
func (f *Fund) Attributes() []string {
	return []string{"name"}
}

// Validators implements Serializable.
func (f *Fund) Validators() []Validator {
	return []Validator{
		Required("name", func() bool { return f.Name != "" }),
	}
}

// Attribute implements Serializable.
func (f *Fund) Attribute(name string) any {
	switch name {
	case "name":
		return f.Name
	default:
		return nil
	}
}

// User is a servicing API user belonging to an institution.
type User struct {
	InstitutionID uuid.UUID
	Email         string
}

// Attributes implements Serializable.
func (u *User) Attributes() []string {
	return []string{"institution_id", "email"}
}

// Validators implements Serializable.
func (u *User) Validators() []Validator {
	return []Validator{
		Required("institution_id", func() bool { return u.InstitutionID != uuid.Nil }),
		Required("email", func() bool { return u.Email != "" }),
	}
}

// Attribute implements Serializable.
func (u *User) Attribute(name string) any {
	switch name {
	case "institution_id":
		return u.InstitutionID
	case "email":
		return u.Email
	default:
		return nil
	}
}

// Draw is a drawdown of funds against a loan on a calendar date.
type Draw struct {
	Amount *Money
	Date   string
}

// Attributes implements Serializable.
func (d *Draw) Attributes() []string {
	return []string{"amount", "date"}
}

// Validators implements Serializable.
func (d *Draw) Validators() []Validator {
	return []Validator{
		Required("date", func() bool { return d.Date != "" }),
		Required("amount", func() bool { return d.Amount != nil }),
	}
}

// Attribute implements Serializable.
func (d *Draw) Attribute(name string) any {
	switch name {
	case "amount":
		if d.Amount == nil {
			return nil
		}

		return d.Amount
	case "date":
		return d.Date
	default:
		return nil
	}
}

// Payment is a repayment against a loan on a calendar date.
type Payment struct {
	Amount *Money
	Date   string
}

// Attributes implements Serializable.
func (p *Payment) Attributes() []string {
	return []string{"amount", "date"}
}

// Validators implements Serializable.
func (p *Payment) Validators() []Validator {
	return []Validator{
		Required("date", func() bool { return p.Date != "" }),
		Required("amount", func() bool { return p.Amount != nil }),
	}
}

// Attribute implements Serializable.
func (p *Payment) Attribute(name string) any {
	switch name {
	case "amount":
		if p.Amount == nil {
			return nil
		}

		return p.Amount
	case "date":
		return p.Date
	default:
		return nil
	}
}

// Forgiveness writes off part of a loan's balance on a calendar date.
type Forgiveness struct {
	Amount *Money
	Date   string
}

// Attributes implements Serializable.
func (f *Forgiveness) Attributes() []string {
	return []string{"amount", "date"}
}

// Validators implements Serializable.
func (f *Forgiveness) Validators() []Validator {
	return []Validator{
		Required("date", func() bool { return f.Date != "" }),
		Required("amount", func() bool { return f.Amount != nil }),
	}
}

// Attribute implements Serializable.
func (f *Forgiveness) Attribute(name string) any {
	switch name {
	case "amount":
		if f.Amount == nil {
			return nil
		}

		return f.Amount
	case "date":
		return f.Date
	default:
		return nil
	}
}

// MiscFee is a miscellaneous fee charged against a loan on a calendar date.
type MiscFee struct {
	Amount *Money
	Date   string
}

// Attributes implements Serializable.
func (m *MiscFee) Attributes() []string {
	return []string{"amount", "date"}
}

// Validators implements Serializable.
func (m *MiscFee) Validators() []Validator {
	return []Validator{
		Required("date", func() bool { return m.Date != "" }),
		Required("amount", func() bool { return m.Amount != nil }),
	}
}

// Attribute implements Serializable.
func (m *MiscFee) Attribute(name string) any {
	switch name {
	case "amount":
		if m.Amount == nil {
			return nil
		}

		return m.Amount
	case "date":
		return m.Date
	default:
		return nil
	}
}

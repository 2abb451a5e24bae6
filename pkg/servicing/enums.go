package servicing

// BenchmarkName identifies a published benchmark interest rate.
type BenchmarkName string

// Benchmark rate names accepted by the servicing API.
const (
	BenchmarkPrime          BenchmarkName = "PRIME"
	BenchmarkLIBOROvernight BenchmarkName = "LIBOR_OVERNIGHT"
	BenchmarkLIBOR1Week     BenchmarkName = "LIBOR_1_WEEK"
	BenchmarkLIBOR1Month    BenchmarkName = "LIBOR_1_MONTH"
	BenchmarkLIBOR2Month    BenchmarkName = "LIBOR_2_MONTH"
	BenchmarkLIBOR3Month    BenchmarkName = "LIBOR_3_MONTH"
	BenchmarkLIBOR6Month    BenchmarkName = "LIBOR_6_MONTH"
	BenchmarkLIBOR12Month   BenchmarkName = "LIBOR_12_MONTH"
)

// BenchmarkNames lists every benchmark wire value.
func BenchmarkNames() []string {
	return []string{
		string(BenchmarkPrime),
		string(BenchmarkLIBOROvernight),
		string(BenchmarkLIBOR1Week),
		string(BenchmarkLIBOR1Month),
		string(BenchmarkLIBOR2Month),
		string(BenchmarkLIBOR3Month),
		string(BenchmarkLIBOR6Month),
		string(BenchmarkLIBOR12Month),
	}
}

// Compounding selects how interest accrues on a loan.
type Compounding string

// Compounding modes.
const (
	CompoundingSimple   Compounding = "SIMPLE"
	CompoundingCompound Compounding = "COMPOUND"
)

// Compoundings lists every compounding wire value.
func Compoundings() []string {
	return []string{string(CompoundingSimple), string(CompoundingCompound)}
}

// DayCount selects the day-count convention used for interest accrual.
type DayCount string

// Day-count conventions.
const (
	DayCountActual360 DayCount = "ACTUAL_360"
	DayCountActual365 DayCount = "ACTUAL_365"
	DayCountThirty360 DayCount = "THIRTY_360"
)

// DayCounts lists every day-count wire value.
func DayCounts() []string {
	return []string{
		string(DayCountActual360),
		string(DayCountActual365),
		string(DayCountThirty360),
	}
}

// FixedPaymentType selects what a fixed payment amount covers.
type FixedPaymentType string

// Fixed payment types.
const (
	FixedPaymentTotal     FixedPaymentType = "TOTAL"
	FixedPaymentPrincipal FixedPaymentType = "PRINCIPAL"
)

// FixedPaymentTypes lists every fixed-payment-type wire value.
func FixedPaymentTypes() []string {
	return []string{string(FixedPaymentTotal), string(FixedPaymentPrincipal)}
}

// Frequency selects how often loan periods recur.
type Frequency string

// Period frequencies.
const (
	FrequencyWeekly        Frequency = "WEEKLY"
	FrequencyEveryTwoWeeks Frequency = "EVERY_TWO_WEEKS"
	FrequencyMonthly       Frequency = "MONTHLY"
	FrequencyQuarterly     Frequency = "QUARTERLY"
	FrequencySemiAnnually  Frequency = "SEMI_ANNUALLY"
	FrequencyAnnually      Frequency = "ANNUALLY"
)

// Frequencies lists every frequency wire value.
func Frequencies() []string {
	return []string{
		string(FrequencyWeekly),
		string(FrequencyEveryTwoWeeks),
		string(FrequencyMonthly),
		string(FrequencyQuarterly),
		string(FrequencySemiAnnually),
		string(FrequencyAnnually),
	}
}

// StartType selects the anchor date for a loan's period schedule.
type StartType string

// Period start types.
const (
	StartTypeDisbursementDate StartType = "DISBURSEMENT_DATE"
	StartTypeFirstOfMonth     StartType = "FIRST_OF_MONTH"
)

// StartTypes lists every start-type wire value.
func StartTypes() []string {
	return []string{string(StartTypeDisbursementDate), string(StartTypeFirstOfMonth)}
}

// TransactionType identifies the kind of a loan transaction.
type TransactionType string

// Transaction types.
const (
	TransactionDraw        TransactionType = "DRAW"
	TransactionPayment     TransactionType = "PAYMENT"
	TransactionForgiveness TransactionType = "FORGIVENESS"
	TransactionMiscFee     TransactionType = "MISC_FEE"
)

// TransactionTypes lists every transaction-type wire value.
func TransactionTypes() []string {
	return []string{
		string(TransactionDraw),
		string(TransactionPayment),
		string(TransactionForgiveness),
		string(TransactionMiscFee),
	}
}

// ViewType selects how much detail a listing endpoint returns.
type ViewType string

// View types.
const (
	ViewBasic ViewType = "BASIC"
	ViewFull  ViewType = "FULL"
)

// ViewTypes lists every view wire value.
func ViewTypes() []string {
	return []string{string(ViewBasic), string(ViewFull)}
}

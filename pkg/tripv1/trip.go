// Package tripv1 defines the wire messages of the tripledger.v1 API.
// Messages are encoded as JSON by the codec in tripv1connect.
package tripv1

// Split describes who paid for a record and how it is shared.
// Method is one of "Equally", "Solely" or "Custom".
type Split struct {
	Method            string             `json:"method"`
	Payer             string             `json:"payer"`
	CustomShares      map[string]float64 `json:"customShares,omitempty"`
	CustomLocalShares map[string]float64 `json:"customLocalShares,omitempty"`
}

type Expense struct {
	Id               string  `json:"id"`
	Description      string  `json:"description"`
	AmountLocal      float64 `json:"amountLocal"`
	AmountSettlement float64 `json:"amountSettlement"`
	FxRate           float64 `json:"fxRate,omitempty"`
	Currency         string  `json:"currency,omitempty"`
	PaymentMethod    string  `json:"paymentMethod,omitempty"`
	Split            *Split  `json:"split"`
	IsSettlement     bool    `json:"isSettlement,omitempty"`
	Date             string  `json:"date,omitempty"`
}

type Booking struct {
	Id               string  `json:"id"`
	Type             string  `json:"type"`
	Name             string  `json:"name"`
	Details          string  `json:"details,omitempty"`
	Confirmation     string  `json:"confirmation,omitempty"`
	Date             string  `json:"date,omitempty"`
	Time             string  `json:"time,omitempty"`
	AmountLocal      float64 `json:"amountLocal,omitempty"`
	AmountSettlement float64 `json:"amountSettlement,omitempty"`
	FxRate           float64 `json:"fxRate,omitempty"`
	Currency         string  `json:"currency,omitempty"`
	PaymentMethod    string  `json:"paymentMethod,omitempty"`
	Split            *Split  `json:"split"`
}

type ScheduledItem struct {
	Id               string  `json:"id"`
	Time             string  `json:"time,omitempty"`
	Activity         string  `json:"activity"`
	Location         string  `json:"location,omitempty"`
	AmountLocal      float64 `json:"amountLocal,omitempty"`
	AmountSettlement float64 `json:"amountSettlement,omitempty"`
	FxRate           float64 `json:"fxRate,omitempty"`
	Currency         string  `json:"currency,omitempty"`
	PaymentMethod    string  `json:"paymentMethod,omitempty"`
	Split            *Split  `json:"split,omitempty"`
}

type PlanDay struct {
	Date      string           `json:"date"`
	Scheduled []*ScheduledItem `json:"scheduled,omitempty"`
}

// Trip is the full trip document. Version must be echoed back on update.
type Trip struct {
	Id                 string     `json:"id"`
	Title              string     `json:"title"`
	Destination        string     `json:"destination,omitempty"`
	BaseCurrency       string     `json:"baseCurrency,omitempty"`
	SettlementCurrency string     `json:"settlementCurrency,omitempty"`
	FxRate             float64    `json:"fxRate,omitempty"`
	StartDate          string     `json:"startDate,omitempty"`
	EndDate            string     `json:"endDate,omitempty"`
	Members            []string   `json:"members"`
	ExternalNames      []string   `json:"externalNames,omitempty"`
	Expenses           []*Expense `json:"expenses,omitempty"`
	Bookings           []*Booking `json:"bookings,omitempty"`
	PlanDays           []*PlanDay `json:"planDays,omitempty"`
	Version            int64      `json:"version"`
	CreatedAt          int64      `json:"createdAt"`
	UpdatedAt          int64      `json:"updatedAt"`
}

type TripSummary struct {
	Id          string   `json:"id"`
	Title       string   `json:"title"`
	Destination string   `json:"destination,omitempty"`
	Members     []string `json:"members"`
	Version     int64    `json:"version"`
	CreatedAt   int64    `json:"createdAt"`
	UpdatedAt   int64    `json:"updatedAt"`
}

type MemberBalance struct {
	MemberName string  `json:"memberName"`
	NetBalance float64 `json:"netBalance"`
	TotalPaid  float64 `json:"totalPaid"`
	TotalOwed  float64 `json:"totalOwed"`
	Spending   float64 `json:"spending"`
	External   bool    `json:"external,omitempty"`
}

type Transfer struct {
	From   string  `json:"from"`
	To     string  `json:"to"`
	Amount float64 `json:"amount"`
}

type Warning struct {
	TransactionId string `json:"transactionId"`
	Kind          string `json:"kind"`
	Message       string `json:"message"`
	Suggestion    string `json:"suggestion,omitempty"`
}

// Amount is a local amount, its rate and the settlement value.
type Amount struct {
	Local      float64 `json:"local"`
	Rate       float64 `json:"rate"`
	Settlement float64 `json:"settlement"`
}

// Transaction is one row of the unified journal.
type Transaction struct {
	Id            string  `json:"id"`
	Source        string  `json:"source"`
	Category      string  `json:"category"`
	Description   string  `json:"description"`
	Date          string  `json:"date,omitempty"`
	Amount        *Amount `json:"amount"`
	Payer         string  `json:"payer,omitempty"`
	PaymentMethod string  `json:"paymentMethod,omitempty"`
	IsSettlement  bool    `json:"isSettlement,omitempty"`
}

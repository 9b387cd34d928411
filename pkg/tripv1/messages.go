package tripv1

type User struct {
	Id          string `json:"id"`
	Email       string `json:"email"`
	DisplayName string `json:"displayName,omitempty"`
	CreatedAt   int64  `json:"createdAt,omitempty"`
}

type RegisterRequest struct {
	Email       string `json:"email"`
	DisplayName string `json:"displayName"`
	Password    string `json:"password"`
}

type RegisterResponse struct {
	User  *User  `json:"user"`
	Token string `json:"token"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	User  *User  `json:"user"`
	Token string `json:"token"`
}

type GetCurrentUserRequest struct{}

type GetCurrentUserResponse struct {
	User *User `json:"user"`
}

type CreateTripRequest struct {
	Trip *Trip `json:"trip"`
}

type CreateTripResponse struct {
	Trip *Trip `json:"trip"`
}

type GetTripRequest struct {
	TripId string `json:"tripId"`
}

type GetTripResponse struct {
	Trip *Trip `json:"trip"`
}

type ListTripsRequest struct{}

type ListTripsResponse struct {
	Trips []*TripSummary `json:"trips"`
}

type UpdateTripRequest struct {
	Trip *Trip `json:"trip"`
}

type UpdateTripResponse struct {
	Trip *Trip `json:"trip"`
}

type DeleteTripRequest struct {
	TripId string `json:"tripId"`
}

type DeleteTripResponse struct{}

type AddExpenseRequest struct {
	TripId  string   `json:"tripId"`
	Expense *Expense `json:"expense"`
}

type AddExpenseResponse struct {
	Expense  *Expense   `json:"expense"`
	Version  int64      `json:"version"`
	Warnings []*Warning `json:"warnings,omitempty"`
}

type DeleteExpenseRequest struct {
	TripId    string `json:"tripId"`
	ExpenseId string `json:"expenseId"`
}

type DeleteExpenseResponse struct {
	Version int64 `json:"version"`
}

type GetBalancesRequest struct {
	TripId string `json:"tripId"`
}

type GetBalancesResponse struct {
	SettlementCurrency string             `json:"settlementCurrency,omitempty"`
	Balances           map[string]float64 `json:"balances"`
	Spending           map[string]float64 `json:"spending"`
	Members            []*MemberBalance   `json:"members"`
	Transfers          []*Transfer        `json:"transfers"`
	Warnings           []*Warning         `json:"warnings,omitempty"`
	Version            int64              `json:"version"`
}

// SettleUpRequest records that From paid To. Amount must be positive.
type SettleUpRequest struct {
	TripId string  `json:"tripId"`
	From   string  `json:"from"`
	To     string  `json:"to"`
	Amount float64 `json:"amount"`
}

type SettleUpResponse struct {
	Settlement *Expense             `json:"settlement"`
	Balances   *GetBalancesResponse `json:"balances"`
}

type ListTransactionsRequest struct {
	TripId        string `json:"tripId"`
	Payer         string `json:"payer,omitempty"`
	PaymentMethod string `json:"paymentMethod,omitempty"`
}

type ListTransactionsResponse struct {
	Transactions []*Transaction `json:"transactions"`
	TotalSpent   float64        `json:"totalSpent"`
	TotalSettled float64        `json:"totalSettled"`
}

// ConvertAmountRequest applies one edit to an amount triple. Field is
// "local", "rate" or "settlement"; Input is the raw user text.
type ConvertAmountRequest struct {
	Amount *Amount `json:"amount"`
	Field  string  `json:"field"`
	Input  string  `json:"input"`
}

type ConvertAmountResponse struct {
	Amount *Amount `json:"amount"`
}

func (x *Trip) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *CreateTripRequest) GetTrip() *Trip {
	if x != nil {
		return x.Trip
	}
	return nil
}

func (x *CreateTripResponse) GetTrip() *Trip {
	if x != nil {
		return x.Trip
	}
	return nil
}

func (x *UpdateTripRequest) GetTrip() *Trip {
	if x != nil {
		return x.Trip
	}
	return nil
}

func (x *GetTripRequest) GetTripId() string {
	if x != nil {
		return x.TripId
	}
	return ""
}

func (x *DeleteTripRequest) GetTripId() string {
	if x != nil {
		return x.TripId
	}
	return ""
}

func (x *AddExpenseRequest) GetTripId() string {
	if x != nil {
		return x.TripId
	}
	return ""
}

func (x *DeleteExpenseRequest) GetTripId() string {
	if x != nil {
		return x.TripId
	}
	return ""
}

func (x *GetBalancesRequest) GetTripId() string {
	if x != nil {
		return x.TripId
	}
	return ""
}

func (x *SettleUpRequest) GetTripId() string {
	if x != nil {
		return x.TripId
	}
	return ""
}

func (x *ListTransactionsRequest) GetTripId() string {
	if x != nil {
		return x.TripId
	}
	return ""
}

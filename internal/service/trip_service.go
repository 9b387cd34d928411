package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"connectrpc.com/connect"

	"github.com/mmynk/tripledger/internal/auth"
	"github.com/mmynk/tripledger/internal/cache"
	"github.com/mmynk/tripledger/internal/calculator"
	"github.com/mmynk/tripledger/internal/currency"
	"github.com/mmynk/tripledger/internal/journal"
	"github.com/mmynk/tripledger/internal/metrics"
	"github.com/mmynk/tripledger/internal/middleware"
	"github.com/mmynk/tripledger/internal/models"
	"github.com/mmynk/tripledger/internal/storage"
	tripv1 "github.com/mmynk/tripledger/pkg/tripv1"
	"github.com/mmynk/tripledger/pkg/tripv1/tripv1connect"
)

// maxUpdateAttempts bounds the read-modify-write retries on version
// conflicts.
const maxUpdateAttempts = 3

var errNotOwner = errors.New("trip belongs to another user")

// TripService implements the Connect TripService.
type TripService struct {
	tripv1connect.UnimplementedTripServiceHandler
	store              storage.TripStore
	cache              cache.BalanceCache
	settlementCurrency string
	now                func() time.Time
}

// NewTripService creates a TripService. A nil cache disables caching.
// settlementCurrency is applied to new trips that do not name one.
func NewTripService(store storage.TripStore, balanceCache cache.BalanceCache, settlementCurrency string) *TripService {
	if balanceCache == nil {
		balanceCache = cache.Nop{}
	}
	return &TripService{
		store:              store,
		cache:              balanceCache,
		settlementCurrency: settlementCurrency,
		now:                time.Now,
	}
}

// storeError maps storage errors onto Connect codes.
func storeError(err error) error {
	switch {
	case errors.Is(err, storage.ErrNotFound):
		return connect.NewError(connect.CodeNotFound, err)
	case errors.Is(err, storage.ErrVersionConflict):
		return connect.NewError(connect.CodeAborted, err)
	case errors.Is(err, errNotOwner):
		return connect.NewError(connect.CodePermissionDenied, err)
	default:
		return connect.NewError(connect.CodeInternal, err)
	}
}

func currentUser(ctx context.Context) (string, error) {
	userID := middleware.GetUserID(ctx)
	if userID == "" {
		return "", connect.NewError(connect.CodeUnauthenticated, auth.ErrMissingToken)
	}
	return userID, nil
}

// loadTrip fetches a trip the caller owns.
func (s *TripService) loadTrip(ctx context.Context, tripID string) (*models.Trip, error) {
	userID, err := currentUser(ctx)
	if err != nil {
		return nil, err
	}
	if tripID == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, errTripIDRequired)
	}

	trip, err := s.store.GetTrip(ctx, tripID)
	if err != nil {
		return nil, err
	}
	if trip.OwnerID != userID {
		return nil, fmt.Errorf("trip %s: %w", tripID, errNotOwner)
	}
	return trip, nil
}

// mutateTrip applies fn to the latest stored trip and saves it, retrying
// when another writer got there first.
func (s *TripService) mutateTrip(ctx context.Context, tripID string, fn func(*models.Trip) error) (*models.Trip, error) {
	for attempt := 1; ; attempt++ {
		trip, err := s.loadTrip(ctx, tripID)
		if err != nil {
			return nil, err
		}
		if err := fn(trip); err != nil {
			return nil, err
		}

		err = s.store.UpdateTrip(ctx, trip)
		if err == nil {
			return trip, nil
		}
		if !errors.Is(err, storage.ErrVersionConflict) || attempt == maxUpdateAttempts {
			return nil, err
		}
		slog.Debug("Retrying trip update", "trip_id", tripID, "attempt", attempt)
	}
}

// computeBalances returns the balance result for a trip version, from the
// cache when possible.
func (s *TripService) computeBalances(ctx context.Context, trip *models.Trip) *calculator.Result {
	if res, ok := s.cache.Get(ctx, trip.ID, trip.Version); ok {
		return res
	}

	res := calculator.CalculateTripBalances(trip)

	kinds := make([]string, len(res.Warnings))
	for i, w := range res.Warnings {
		kinds[i] = string(w.Kind)
	}
	metrics.ObserveBalances(len(res.Transfers), kinds)

	s.cache.Set(ctx, trip.ID, trip.Version, res)
	return res
}

// CreateTrip creates a new trip owned by the caller.
func (s *TripService) CreateTrip(ctx context.Context, req *connect.Request[tripv1.CreateTripRequest]) (*connect.Response[tripv1.CreateTripResponse], error) {
	userID, err := currentUser(ctx)
	if err != nil {
		return nil, err
	}
	if req.Msg.Trip == nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, errTripRequired)
	}

	slog.Info("CreateTrip request received",
		"user_id", userID,
		"title", req.Msg.Trip.Title,
		"members_count", len(req.Msg.Trip.Members),
	)

	trip := tripToModel(req.Msg.Trip)
	trip.ID = ""
	trip.OwnerID = userID
	if trip.SettlementCurrency == "" {
		trip.SettlementCurrency = s.settlementCurrency
	}
	if err := validateTrip(trip); err != nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}
	normalizeRecords(trip)

	if err := s.store.CreateTrip(ctx, trip); err != nil {
		slog.Error("CreateTrip failed", "error", err)
		return nil, storeError(err)
	}

	slog.Info("Trip created", "trip_id", trip.ID)
	return connect.NewResponse(&tripv1.CreateTripResponse{Trip: tripToProto(trip)}), nil
}

// GetTrip returns the full trip document.
func (s *TripService) GetTrip(ctx context.Context, req *connect.Request[tripv1.GetTripRequest]) (*connect.Response[tripv1.GetTripResponse], error) {
	trip, err := s.loadTrip(ctx, req.Msg.TripId)
	if err != nil {
		slog.Warn("GetTrip failed", "trip_id", req.Msg.TripId, "error", err)
		return nil, asConnect(err)
	}
	return connect.NewResponse(&tripv1.GetTripResponse{Trip: tripToProto(trip)}), nil
}

// ListTrips lists the caller's trips.
func (s *TripService) ListTrips(ctx context.Context, req *connect.Request[tripv1.ListTripsRequest]) (*connect.Response[tripv1.ListTripsResponse], error) {
	userID, err := currentUser(ctx)
	if err != nil {
		return nil, err
	}

	trips, err := s.store.ListTrips(ctx, userID)
	if err != nil {
		slog.Error("ListTrips failed", "user_id", userID, "error", err)
		return nil, storeError(err)
	}

	summaries := make([]*tripv1.TripSummary, len(trips))
	for i, trip := range trips {
		summaries[i] = summaryToProto(trip.Summary())
	}

	slog.Info("ListTrips successful", "user_id", userID, "count", len(trips))
	return connect.NewResponse(&tripv1.ListTripsResponse{Trips: summaries}), nil
}

// UpdateTrip replaces the editable parts of a trip. The request must carry
// the version it was read at.
func (s *TripService) UpdateTrip(ctx context.Context, req *connect.Request[tripv1.UpdateTripRequest]) (*connect.Response[tripv1.UpdateTripResponse], error) {
	if req.Msg.Trip == nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, errTripRequired)
	}
	incoming := tripToModel(req.Msg.Trip)
	if err := validateTrip(incoming); err != nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}
	normalizeRecords(incoming)

	trip, err := s.loadTrip(ctx, incoming.ID)
	if err != nil {
		return nil, asConnect(err)
	}

	incoming.OwnerID = trip.OwnerID
	incoming.CreatedAt = trip.CreatedAt
	if incoming.SettlementCurrency == "" {
		incoming.SettlementCurrency = trip.SettlementCurrency
	}
	if incoming.Title == "" {
		incoming.Title = trip.Title
	}

	// no retry: the client edited a specific version
	if err := s.store.UpdateTrip(ctx, incoming); err != nil {
		slog.Warn("UpdateTrip failed", "trip_id", incoming.ID, "error", err)
		return nil, storeError(err)
	}

	slog.Info("Trip updated", "trip_id", incoming.ID, "version", incoming.Version)
	return connect.NewResponse(&tripv1.UpdateTripResponse{Trip: tripToProto(incoming)}), nil
}

// DeleteTrip deletes a trip the caller owns.
func (s *TripService) DeleteTrip(ctx context.Context, req *connect.Request[tripv1.DeleteTripRequest]) (*connect.Response[tripv1.DeleteTripResponse], error) {
	if _, err := s.loadTrip(ctx, req.Msg.TripId); err != nil {
		return nil, asConnect(err)
	}
	if err := s.store.DeleteTrip(ctx, req.Msg.TripId); err != nil {
		slog.Error("DeleteTrip failed", "trip_id", req.Msg.TripId, "error", err)
		return nil, storeError(err)
	}

	slog.Info("Trip deleted", "trip_id", req.Msg.TripId)
	return connect.NewResponse(&tripv1.DeleteTripResponse{}), nil
}

// AddExpense appends an expense and returns any data warnings about it.
func (s *TripService) AddExpense(ctx context.Context, req *connect.Request[tripv1.AddExpenseRequest]) (*connect.Response[tripv1.AddExpenseResponse], error) {
	if req.Msg.Expense == nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, errors.New("expense is required"))
	}
	exp := expenseToModel(req.Msg.Expense)
	exp.ID = ""
	if err := validateSplit(exp.Split); err != nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}
	if exp.Date == "" {
		exp.Date = s.now().Format(time.DateOnly)
	}

	slog.Info("AddExpense request received",
		"trip_id", req.Msg.TripId,
		"description", exp.Description,
		"payer", exp.Split.Payer,
	)

	trip, err := s.mutateTrip(ctx, req.Msg.TripId, func(t *models.Trip) error {
		t.Expenses = append(t.Expenses, exp)
		normalizeRecords(t)
		return nil
	})
	if err != nil {
		slog.Warn("AddExpense failed", "trip_id", req.Msg.TripId, "error", err)
		return nil, asConnect(err)
	}

	added := trip.Expenses[len(trip.Expenses)-1]
	var txs []models.Transaction
	for _, tx := range trip.Transactions() {
		if tx.ID == added.ID {
			txs = append(txs, tx)
		}
	}
	warnings := calculator.CheckTransactions(txs, trip.Members, trip.ExternalNames)

	slog.Info("Expense added", "trip_id", trip.ID, "expense_id", added.ID, "warnings", len(warnings))
	return connect.NewResponse(&tripv1.AddExpenseResponse{
		Expense:  expenseToProto(added),
		Version:  trip.Version,
		Warnings: warningsToProto(warnings),
	}), nil
}

// DeleteExpense removes an expense, including recorded settlements.
func (s *TripService) DeleteExpense(ctx context.Context, req *connect.Request[tripv1.DeleteExpenseRequest]) (*connect.Response[tripv1.DeleteExpenseResponse], error) {
	trip, err := s.mutateTrip(ctx, req.Msg.TripId, func(t *models.Trip) error {
		for i, e := range t.Expenses {
			if e.ID == req.Msg.ExpenseId {
				t.Expenses = append(t.Expenses[:i], t.Expenses[i+1:]...)
				return nil
			}
		}
		return fmt.Errorf("expense %s: %w", req.Msg.ExpenseId, storage.ErrNotFound)
	})
	if err != nil {
		slog.Warn("DeleteExpense failed", "trip_id", req.Msg.TripId, "expense_id", req.Msg.ExpenseId, "error", err)
		return nil, asConnect(err)
	}

	slog.Info("Expense deleted", "trip_id", trip.ID, "expense_id", req.Msg.ExpenseId)
	return connect.NewResponse(&tripv1.DeleteExpenseResponse{Version: trip.Version}), nil
}

// GetBalances returns net balances, spending, member summaries, the
// suggested transfers and data warnings for a trip.
func (s *TripService) GetBalances(ctx context.Context, req *connect.Request[tripv1.GetBalancesRequest]) (*connect.Response[tripv1.GetBalancesResponse], error) {
	trip, err := s.loadTrip(ctx, req.Msg.TripId)
	if err != nil {
		slog.Warn("GetBalances failed", "trip_id", req.Msg.TripId, "error", err)
		return nil, asConnect(err)
	}

	res := s.computeBalances(ctx, trip)

	slog.Info("Balances computed",
		"trip_id", trip.ID,
		"version", trip.Version,
		"transfers", len(res.Transfers),
		"warnings", len(res.Warnings),
	)
	return connect.NewResponse(balancesToProto(trip, res)), nil
}

// SettleUp records a payment from one person to another as a settlement
// expense and returns the updated balances.
func (s *TripService) SettleUp(ctx context.Context, req *connect.Request[tripv1.SettleUpRequest]) (*connect.Response[tripv1.SettleUpResponse], error) {
	from, to, amount := req.Msg.From, req.Msg.To, req.Msg.Amount
	switch {
	case from == "" || to == "":
		return nil, connect.NewError(connect.CodeInvalidArgument, errors.New("from and to are required"))
	case from == to:
		return nil, connect.NewError(connect.CodeInvalidArgument, errors.New("cannot settle with yourself"))
	case !(amount > 0) || math.IsInf(amount, 0):
		return nil, connect.NewError(connect.CodeInvalidArgument, errors.New("amount must be positive"))
	}

	slog.Info("SettleUp request received", "trip_id", req.Msg.TripId, "from", from, "to", to, "amount", amount)

	var recorded models.Expense
	trip, err := s.mutateTrip(ctx, req.Msg.TripId, func(t *models.Trip) error {
		// names that only appear in custom shares still carry a balance
		balances := calculator.Aggregate(t.Transactions(), t.Members).Balances
		for _, name := range []string{from, to} {
			if _, ok := balances[name]; !ok && !t.IsKnown(name) {
				return connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("%q is not part of this trip", name))
			}
		}
		recorded = calculator.RecordSettlement(from, to, amount, s.now())
		t.Expenses = append(t.Expenses, recorded)
		return nil
	})
	if err != nil {
		slog.Warn("SettleUp failed", "trip_id", req.Msg.TripId, "error", err)
		return nil, asConnect(err)
	}
	metrics.IncSettlementRecorded()

	res := s.computeBalances(ctx, trip)

	slog.Info("Settlement recorded", "trip_id", trip.ID, "expense_id", recorded.ID, "remaining_transfers", len(res.Transfers))
	return connect.NewResponse(&tripv1.SettleUpResponse{
		Settlement: expenseToProto(recorded),
		Balances:   balancesToProto(trip, res),
	}), nil
}

// ListTransactions returns the trip journal, newest first.
func (s *TripService) ListTransactions(ctx context.Context, req *connect.Request[tripv1.ListTransactionsRequest]) (*connect.Response[tripv1.ListTransactionsResponse], error) {
	trip, err := s.loadTrip(ctx, req.Msg.TripId)
	if err != nil {
		return nil, asConnect(err)
	}

	txs := journal.Build(trip, journal.Filter{
		Payer:         req.Msg.Payer,
		PaymentMethod: models.PaymentMethod(req.Msg.PaymentMethod),
	})
	spent, settled := journal.Totals(txs)

	out := make([]*tripv1.Transaction, len(txs))
	for i, tx := range txs {
		out[i] = transactionToProto(tx)
	}

	return connect.NewResponse(&tripv1.ListTransactionsResponse{
		Transactions: out,
		TotalSpent:   spent,
		TotalSettled: settled,
	}), nil
}

// ConvertAmount applies one user edit to a local/rate/settlement triple.
func (s *TripService) ConvertAmount(ctx context.Context, req *connect.Request[tripv1.ConvertAmountRequest]) (*connect.Response[tripv1.ConvertAmountResponse], error) {
	amount := amountToModel(req.Msg.Amount)
	if !amount.Apply(currency.Field(req.Msg.Field), currency.ParseAmount(req.Msg.Input)) {
		return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("unknown field %q", req.Msg.Field))
	}
	return connect.NewResponse(&tripv1.ConvertAmountResponse{Amount: amountToProto(amount)}), nil
}

// asConnect passes Connect errors through and maps everything else.
func asConnect(err error) error {
	var connectErr *connect.Error
	if errors.As(err, &connectErr) {
		return err
	}
	return storeError(err)
}

package tripv1connect

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"connectrpc.com/connect"

	tripv1 "github.com/mmynk/tripledger/pkg/tripv1"
)

// TripServiceName is the fully-qualified name of the TripService service.
const TripServiceName = "tripledger.v1.TripService"

// Procedure paths for TripService RPCs.
const (
	TripServiceCreateTripProcedure       = "/tripledger.v1.TripService/CreateTrip"
	TripServiceGetTripProcedure          = "/tripledger.v1.TripService/GetTrip"
	TripServiceListTripsProcedure        = "/tripledger.v1.TripService/ListTrips"
	TripServiceUpdateTripProcedure       = "/tripledger.v1.TripService/UpdateTrip"
	TripServiceDeleteTripProcedure       = "/tripledger.v1.TripService/DeleteTrip"
	TripServiceAddExpenseProcedure       = "/tripledger.v1.TripService/AddExpense"
	TripServiceDeleteExpenseProcedure    = "/tripledger.v1.TripService/DeleteExpense"
	TripServiceGetBalancesProcedure      = "/tripledger.v1.TripService/GetBalances"
	TripServiceSettleUpProcedure         = "/tripledger.v1.TripService/SettleUp"
	TripServiceListTransactionsProcedure = "/tripledger.v1.TripService/ListTransactions"
	TripServiceConvertAmountProcedure    = "/tripledger.v1.TripService/ConvertAmount"
)

// TripServiceClient is a client for the tripledger.v1.TripService service.
type TripServiceClient interface {
	CreateTrip(context.Context, *connect.Request[tripv1.CreateTripRequest]) (*connect.Response[tripv1.CreateTripResponse], error)
	GetTrip(context.Context, *connect.Request[tripv1.GetTripRequest]) (*connect.Response[tripv1.GetTripResponse], error)
	ListTrips(context.Context, *connect.Request[tripv1.ListTripsRequest]) (*connect.Response[tripv1.ListTripsResponse], error)
	UpdateTrip(context.Context, *connect.Request[tripv1.UpdateTripRequest]) (*connect.Response[tripv1.UpdateTripResponse], error)
	DeleteTrip(context.Context, *connect.Request[tripv1.DeleteTripRequest]) (*connect.Response[tripv1.DeleteTripResponse], error)
	AddExpense(context.Context, *connect.Request[tripv1.AddExpenseRequest]) (*connect.Response[tripv1.AddExpenseResponse], error)
	DeleteExpense(context.Context, *connect.Request[tripv1.DeleteExpenseRequest]) (*connect.Response[tripv1.DeleteExpenseResponse], error)
	GetBalances(context.Context, *connect.Request[tripv1.GetBalancesRequest]) (*connect.Response[tripv1.GetBalancesResponse], error)
	SettleUp(context.Context, *connect.Request[tripv1.SettleUpRequest]) (*connect.Response[tripv1.SettleUpResponse], error)
	ListTransactions(context.Context, *connect.Request[tripv1.ListTransactionsRequest]) (*connect.Response[tripv1.ListTransactionsResponse], error)
	ConvertAmount(context.Context, *connect.Request[tripv1.ConvertAmountRequest]) (*connect.Response[tripv1.ConvertAmountResponse], error)
}

// NewTripServiceClient constructs a client for the tripledger.v1.TripService
// service. baseURL is the scheme and host of the server, e.g.
// http://localhost:8080.
func NewTripServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) TripServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = append([]connect.ClientOption{WithJSON()}, opts...)
	return &tripServiceClient{
		createTrip:       connect.NewClient[tripv1.CreateTripRequest, tripv1.CreateTripResponse](httpClient, baseURL+TripServiceCreateTripProcedure, opts...),
		getTrip:          connect.NewClient[tripv1.GetTripRequest, tripv1.GetTripResponse](httpClient, baseURL+TripServiceGetTripProcedure, opts...),
		listTrips:        connect.NewClient[tripv1.ListTripsRequest, tripv1.ListTripsResponse](httpClient, baseURL+TripServiceListTripsProcedure, opts...),
		updateTrip:       connect.NewClient[tripv1.UpdateTripRequest, tripv1.UpdateTripResponse](httpClient, baseURL+TripServiceUpdateTripProcedure, opts...),
		deleteTrip:       connect.NewClient[tripv1.DeleteTripRequest, tripv1.DeleteTripResponse](httpClient, baseURL+TripServiceDeleteTripProcedure, opts...),
		addExpense:       connect.NewClient[tripv1.AddExpenseRequest, tripv1.AddExpenseResponse](httpClient, baseURL+TripServiceAddExpenseProcedure, opts...),
		deleteExpense:    connect.NewClient[tripv1.DeleteExpenseRequest, tripv1.DeleteExpenseResponse](httpClient, baseURL+TripServiceDeleteExpenseProcedure, opts...),
		getBalances:      connect.NewClient[tripv1.GetBalancesRequest, tripv1.GetBalancesResponse](httpClient, baseURL+TripServiceGetBalancesProcedure, opts...),
		settleUp:         connect.NewClient[tripv1.SettleUpRequest, tripv1.SettleUpResponse](httpClient, baseURL+TripServiceSettleUpProcedure, opts...),
		listTransactions: connect.NewClient[tripv1.ListTransactionsRequest, tripv1.ListTransactionsResponse](httpClient, baseURL+TripServiceListTransactionsProcedure, opts...),
		convertAmount:    connect.NewClient[tripv1.ConvertAmountRequest, tripv1.ConvertAmountResponse](httpClient, baseURL+TripServiceConvertAmountProcedure, opts...),
	}
}

type tripServiceClient struct {
	createTrip       *connect.Client[tripv1.CreateTripRequest, tripv1.CreateTripResponse]
	getTrip          *connect.Client[tripv1.GetTripRequest, tripv1.GetTripResponse]
	listTrips        *connect.Client[tripv1.ListTripsRequest, tripv1.ListTripsResponse]
	updateTrip       *connect.Client[tripv1.UpdateTripRequest, tripv1.UpdateTripResponse]
	deleteTrip       *connect.Client[tripv1.DeleteTripRequest, tripv1.DeleteTripResponse]
	addExpense       *connect.Client[tripv1.AddExpenseRequest, tripv1.AddExpenseResponse]
	deleteExpense    *connect.Client[tripv1.DeleteExpenseRequest, tripv1.DeleteExpenseResponse]
	getBalances      *connect.Client[tripv1.GetBalancesRequest, tripv1.GetBalancesResponse]
	settleUp         *connect.Client[tripv1.SettleUpRequest, tripv1.SettleUpResponse]
	listTransactions *connect.Client[tripv1.ListTransactionsRequest, tripv1.ListTransactionsResponse]
	convertAmount    *connect.Client[tripv1.ConvertAmountRequest, tripv1.ConvertAmountResponse]
}

func (c *tripServiceClient) CreateTrip(ctx context.Context, req *connect.Request[tripv1.CreateTripRequest]) (*connect.Response[tripv1.CreateTripResponse], error) {
	return c.createTrip.CallUnary(ctx, req)
}

func (c *tripServiceClient) GetTrip(ctx context.Context, req *connect.Request[tripv1.GetTripRequest]) (*connect.Response[tripv1.GetTripResponse], error) {
	return c.getTrip.CallUnary(ctx, req)
}

func (c *tripServiceClient) ListTrips(ctx context.Context, req *connect.Request[tripv1.ListTripsRequest]) (*connect.Response[tripv1.ListTripsResponse], error) {
	return c.listTrips.CallUnary(ctx, req)
}

func (c *tripServiceClient) UpdateTrip(ctx context.Context, req *connect.Request[tripv1.UpdateTripRequest]) (*connect.Response[tripv1.UpdateTripResponse], error) {
	return c.updateTrip.CallUnary(ctx, req)
}

func (c *tripServiceClient) DeleteTrip(ctx context.Context, req *connect.Request[tripv1.DeleteTripRequest]) (*connect.Response[tripv1.DeleteTripResponse], error) {
	return c.deleteTrip.CallUnary(ctx, req)
}

func (c *tripServiceClient) AddExpense(ctx context.Context, req *connect.Request[tripv1.AddExpenseRequest]) (*connect.Response[tripv1.AddExpenseResponse], error) {
	return c.addExpense.CallUnary(ctx, req)
}

func (c *tripServiceClient) DeleteExpense(ctx context.Context, req *connect.Request[tripv1.DeleteExpenseRequest]) (*connect.Response[tripv1.DeleteExpenseResponse], error) {
	return c.deleteExpense.CallUnary(ctx, req)
}

func (c *tripServiceClient) GetBalances(ctx context.Context, req *connect.Request[tripv1.GetBalancesRequest]) (*connect.Response[tripv1.GetBalancesResponse], error) {
	return c.getBalances.CallUnary(ctx, req)
}

func (c *tripServiceClient) SettleUp(ctx context.Context, req *connect.Request[tripv1.SettleUpRequest]) (*connect.Response[tripv1.SettleUpResponse], error) {
	return c.settleUp.CallUnary(ctx, req)
}

func (c *tripServiceClient) ListTransactions(ctx context.Context, req *connect.Request[tripv1.ListTransactionsRequest]) (*connect.Response[tripv1.ListTransactionsResponse], error) {
	return c.listTransactions.CallUnary(ctx, req)
}

func (c *tripServiceClient) ConvertAmount(ctx context.Context, req *connect.Request[tripv1.ConvertAmountRequest]) (*connect.Response[tripv1.ConvertAmountResponse], error) {
	return c.convertAmount.CallUnary(ctx, req)
}

// TripServiceHandler is implemented by the tripledger.v1.TripService server.
type TripServiceHandler interface {
	CreateTrip(context.Context, *connect.Request[tripv1.CreateTripRequest]) (*connect.Response[tripv1.CreateTripResponse], error)
	GetTrip(context.Context, *connect.Request[tripv1.GetTripRequest]) (*connect.Response[tripv1.GetTripResponse], error)
	ListTrips(context.Context, *connect.Request[tripv1.ListTripsRequest]) (*connect.Response[tripv1.ListTripsResponse], error)
	UpdateTrip(context.Context, *connect.Request[tripv1.UpdateTripRequest]) (*connect.Response[tripv1.UpdateTripResponse], error)
	DeleteTrip(context.Context, *connect.Request[tripv1.DeleteTripRequest]) (*connect.Response[tripv1.DeleteTripResponse], error)
	AddExpense(context.Context, *connect.Request[tripv1.AddExpenseRequest]) (*connect.Response[tripv1.AddExpenseResponse], error)
	DeleteExpense(context.Context, *connect.Request[tripv1.DeleteExpenseRequest]) (*connect.Response[tripv1.DeleteExpenseResponse], error)
	GetBalances(context.Context, *connect.Request[tripv1.GetBalancesRequest]) (*connect.Response[tripv1.GetBalancesResponse], error)
	SettleUp(context.Context, *connect.Request[tripv1.SettleUpRequest]) (*connect.Response[tripv1.SettleUpResponse], error)
	ListTransactions(context.Context, *connect.Request[tripv1.ListTransactionsRequest]) (*connect.Response[tripv1.ListTransactionsResponse], error)
	ConvertAmount(context.Context, *connect.Request[tripv1.ConvertAmountRequest]) (*connect.Response[tripv1.ConvertAmountResponse], error)
}

// NewTripServiceHandler builds an HTTP handler from the service
// implementation. It returns the path on which to mount the handler and the
// handler itself.
func NewTripServiceHandler(svc TripServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{WithJSON()}, opts...)
	handlers := map[string]http.Handler{
		TripServiceCreateTripProcedure:       connect.NewUnaryHandler(TripServiceCreateTripProcedure, svc.CreateTrip, opts...),
		TripServiceGetTripProcedure:          connect.NewUnaryHandler(TripServiceGetTripProcedure, svc.GetTrip, opts...),
		TripServiceListTripsProcedure:        connect.NewUnaryHandler(TripServiceListTripsProcedure, svc.ListTrips, opts...),
		TripServiceUpdateTripProcedure:       connect.NewUnaryHandler(TripServiceUpdateTripProcedure, svc.UpdateTrip, opts...),
		TripServiceDeleteTripProcedure:       connect.NewUnaryHandler(TripServiceDeleteTripProcedure, svc.DeleteTrip, opts...),
		TripServiceAddExpenseProcedure:       connect.NewUnaryHandler(TripServiceAddExpenseProcedure, svc.AddExpense, opts...),
		TripServiceDeleteExpenseProcedure:    connect.NewUnaryHandler(TripServiceDeleteExpenseProcedure, svc.DeleteExpense, opts...),
		TripServiceGetBalancesProcedure:      connect.NewUnaryHandler(TripServiceGetBalancesProcedure, svc.GetBalances, opts...),
		TripServiceSettleUpProcedure:         connect.NewUnaryHandler(TripServiceSettleUpProcedure, svc.SettleUp, opts...),
		TripServiceListTransactionsProcedure: connect.NewUnaryHandler(TripServiceListTransactionsProcedure, svc.ListTransactions, opts...),
		TripServiceConvertAmountProcedure:    connect.NewUnaryHandler(TripServiceConvertAmountProcedure, svc.ConvertAmount, opts...),
	}
	return "/" + TripServiceName + "/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h, ok := handlers[r.URL.Path]
		if !ok {
			http.NotFound(w, r)
			return
		}
		h.ServeHTTP(w, r)
	})
}

// UnimplementedTripServiceHandler returns CodeUnimplemented from all methods.
type UnimplementedTripServiceHandler struct{}

func (UnimplementedTripServiceHandler) CreateTrip(context.Context, *connect.Request[tripv1.CreateTripRequest]) (*connect.Response[tripv1.CreateTripResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("tripledger.v1.TripService.CreateTrip is not implemented"))
}

func (UnimplementedTripServiceHandler) GetTrip(context.Context, *connect.Request[tripv1.GetTripRequest]) (*connect.Response[tripv1.GetTripResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("tripledger.v1.TripService.GetTrip is not implemented"))
}

func (UnimplementedTripServiceHandler) ListTrips(context.Context, *connect.Request[tripv1.ListTripsRequest]) (*connect.Response[tripv1.ListTripsResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("tripledger.v1.TripService.ListTrips is not implemented"))
}

func (UnimplementedTripServiceHandler) UpdateTrip(context.Context, *connect.Request[tripv1.UpdateTripRequest]) (*connect.Response[tripv1.UpdateTripResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("tripledger.v1.TripService.UpdateTrip is not implemented"))
}

func (UnimplementedTripServiceHandler) DeleteTrip(context.Context, *connect.Request[tripv1.DeleteTripRequest]) (*connect.Response[tripv1.DeleteTripResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("tripledger.v1.TripService.DeleteTrip is not implemented"))
}

func (UnimplementedTripServiceHandler) AddExpense(context.Context, *connect.Request[tripv1.AddExpenseRequest]) (*connect.Response[tripv1.AddExpenseResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("tripledger.v1.TripService.AddExpense is not implemented"))
}

func (UnimplementedTripServiceHandler) DeleteExpense(context.Context, *connect.Request[tripv1.DeleteExpenseRequest]) (*connect.Response[tripv1.DeleteExpenseResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("tripledger.v1.TripService.DeleteExpense is not implemented"))
}

func (UnimplementedTripServiceHandler) GetBalances(context.Context, *connect.Request[tripv1.GetBalancesRequest]) (*connect.Response[tripv1.GetBalancesResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("tripledger.v1.TripService.GetBalances is not implemented"))
}

func (UnimplementedTripServiceHandler) SettleUp(context.Context, *connect.Request[tripv1.SettleUpRequest]) (*connect.Response[tripv1.SettleUpResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("tripledger.v1.TripService.SettleUp is not implemented"))
}

func (UnimplementedTripServiceHandler) ListTransactions(context.Context, *connect.Request[tripv1.ListTransactionsRequest]) (*connect.Response[tripv1.ListTransactionsResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("tripledger.v1.TripService.ListTransactions is not implemented"))
}

func (UnimplementedTripServiceHandler) ConvertAmount(context.Context, *connect.Request[tripv1.ConvertAmountRequest]) (*connect.Response[tripv1.ConvertAmountResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("tripledger.v1.TripService.ConvertAmount is not implemented"))
}

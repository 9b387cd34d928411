package tripv1connect

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"connectrpc.com/connect"

	tripv1 "github.com/mmynk/tripledger/pkg/tripv1"
)

// AuthServiceName is the fully-qualified name of the AuthService service.
const AuthServiceName = "tripledger.v1.AuthService"

// Procedure paths for AuthService RPCs.
const (
	AuthServiceRegisterProcedure       = "/tripledger.v1.AuthService/Register"
	AuthServiceLoginProcedure          = "/tripledger.v1.AuthService/Login"
	AuthServiceGetCurrentUserProcedure = "/tripledger.v1.AuthService/GetCurrentUser"
)

// AuthServiceClient is a client for the tripledger.v1.AuthService service.
type AuthServiceClient interface {
	Register(context.Context, *connect.Request[tripv1.RegisterRequest]) (*connect.Response[tripv1.RegisterResponse], error)
	Login(context.Context, *connect.Request[tripv1.LoginRequest]) (*connect.Response[tripv1.LoginResponse], error)
	GetCurrentUser(context.Context, *connect.Request[tripv1.GetCurrentUserRequest]) (*connect.Response[tripv1.GetCurrentUserResponse], error)
}

// NewAuthServiceClient constructs a client for the tripledger.v1.AuthService
// service.
func NewAuthServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) AuthServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = append([]connect.ClientOption{WithJSON()}, opts...)
	return &authServiceClient{
		register:       connect.NewClient[tripv1.RegisterRequest, tripv1.RegisterResponse](httpClient, baseURL+AuthServiceRegisterProcedure, opts...),
		login:          connect.NewClient[tripv1.LoginRequest, tripv1.LoginResponse](httpClient, baseURL+AuthServiceLoginProcedure, opts...),
		getCurrentUser: connect.NewClient[tripv1.GetCurrentUserRequest, tripv1.GetCurrentUserResponse](httpClient, baseURL+AuthServiceGetCurrentUserProcedure, opts...),
	}
}

type authServiceClient struct {
	register       *connect.Client[tripv1.RegisterRequest, tripv1.RegisterResponse]
	login          *connect.Client[tripv1.LoginRequest, tripv1.LoginResponse]
	getCurrentUser *connect.Client[tripv1.GetCurrentUserRequest, tripv1.GetCurrentUserResponse]
}

func (c *authServiceClient) Register(ctx context.Context, req *connect.Request[tripv1.RegisterRequest]) (*connect.Response[tripv1.RegisterResponse], error) {
	return c.register.CallUnary(ctx, req)
}

func (c *authServiceClient) Login(ctx context.Context, req *connect.Request[tripv1.LoginRequest]) (*connect.Response[tripv1.LoginResponse], error) {
	return c.login.CallUnary(ctx, req)
}

func (c *authServiceClient) GetCurrentUser(ctx context.Context, req *connect.Request[tripv1.GetCurrentUserRequest]) (*connect.Response[tripv1.GetCurrentUserResponse], error) {
	return c.getCurrentUser.CallUnary(ctx, req)
}

// AuthServiceHandler is implemented by the tripledger.v1.AuthService server.
type AuthServiceHandler interface {
	Register(context.Context, *connect.Request[tripv1.RegisterRequest]) (*connect.Response[tripv1.RegisterResponse], error)
	Login(context.Context, *connect.Request[tripv1.LoginRequest]) (*connect.Response[tripv1.LoginResponse], error)
	GetCurrentUser(context.Context, *connect.Request[tripv1.GetCurrentUserRequest]) (*connect.Response[tripv1.GetCurrentUserResponse], error)
}

// NewAuthServiceHandler builds an HTTP handler from the service
// implementation.
func NewAuthServiceHandler(svc AuthServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{WithJSON()}, opts...)
	handlers := map[string]http.Handler{
		AuthServiceRegisterProcedure:       connect.NewUnaryHandler(AuthServiceRegisterProcedure, svc.Register, opts...),
		AuthServiceLoginProcedure:          connect.NewUnaryHandler(AuthServiceLoginProcedure, svc.Login, opts...),
		AuthServiceGetCurrentUserProcedure: connect.NewUnaryHandler(AuthServiceGetCurrentUserProcedure, svc.GetCurrentUser, opts...),
	}
	return "/" + AuthServiceName + "/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h, ok := handlers[r.URL.Path]
		if !ok {
			http.NotFound(w, r)
			return
		}
		h.ServeHTTP(w, r)
	})
}

// UnimplementedAuthServiceHandler returns CodeUnimplemented from all methods.
type UnimplementedAuthServiceHandler struct{}

func (UnimplementedAuthServiceHandler) Register(context.Context, *connect.Request[tripv1.RegisterRequest]) (*connect.Response[tripv1.RegisterResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("tripledger.v1.AuthService.Register is not implemented"))
}

func (UnimplementedAuthServiceHandler) Login(context.Context, *connect.Request[tripv1.LoginRequest]) (*connect.Response[tripv1.LoginResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("tripledger.v1.AuthService.Login is not implemented"))
}

func (UnimplementedAuthServiceHandler) GetCurrentUser(context.Context, *connect.Request[tripv1.GetCurrentUserRequest]) (*connect.Response[tripv1.GetCurrentUserResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("tripledger.v1.AuthService.GetCurrentUser is not implemented"))
}

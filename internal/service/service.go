package service

import (
	"context"
	"errors"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/mvillar/fastfeet-front/internal/cache"
	"github.com/mvillar/fastfeet-front/internal/metrics"
	"github.com/mvillar/fastfeet-front/internal/model"
	"github.com/mvillar/fastfeet-front/internal/notify"
)

// ClientAPI is the remote FastFeet API surface the service consumes.
type ClientAPI interface {
	Login(ctx context.Context, input model.LoginDTO) error
	GetOrders(ctx context.Context, pageIndex, limit int) (*model.OrdersPage, error)
	GetOrder(ctx context.Context, orderID string) (*model.Order, error)
	CreateOrder(ctx context.Context, input model.CreateOrderDTO) error
	PickUpOrder(ctx context.Context, orderID string) (*model.PickUpResponse, error)
	CreateRecipient(ctx context.Context, input model.CreateRecipientDTO) error
	GetRecipientsLite(ctx context.Context, pageIndex int, q string) (*model.RecipientsPage, error)
}

// Identity is the session holder surface the service consumes.
type Identity interface {
	CurrentUser(ctx context.Context) (*model.User, error)
	IsFetching() bool
	Authenticated() bool
	Logout(ctx context.Context)
	Clear()
}

type Service struct {
	api      ClientAPI
	identity Identity
	cache    *cache.Cache
	notify   *notify.Center
	lg       *zap.SugaredLogger

	freshness time.Duration
}

func New(api ClientAPI, identity Identity, c *cache.Cache, n *notify.Center, freshness time.Duration, lg *zap.SugaredLogger) *Service {
	return &Service{
		api:       api,
		identity:  identity,
		cache:     c,
		notify:    n,
		lg:        lg,
		freshness: freshness,
	}
}

func (s *Service) Login(ctx context.Context, input model.LoginDTO) *model.APIError {
	if apiErr := validateLoginDTO(input); apiErr != nil {
		return apiErr
	}

	if err := s.api.Login(ctx, input); err != nil {
		return s.apiErrorFrom(err, model.ErrLoginFallbackMessage)
	}

	return nil
}

// Logout clears the identity, the cache and the toast buffer. The local
// teardown happens regardless of the upstream call's outcome.
func (s *Service) Logout(ctx context.Context) {
	s.identity.Logout(ctx)
	s.cache.Clear()
	s.notify.Clear()
}

func (s *Service) CurrentUser(ctx context.Context) (*model.User, *model.APIError) {
	user, err := s.identity.CurrentUser(ctx)
	if err != nil {
		return nil, s.apiErrorFrom(err, model.ErrInternalServerMessage)
	}

	return user, nil
}

func (s *Service) Authenticated() bool {
	return s.identity.Authenticated()
}

func (s *Service) Orders(ctx context.Context, pageIndex, limit int) (*model.OrdersPage, *model.APIError) {
	page, err := cache.Read(ctx, s.cache, cache.OrdersKey(pageIndex, limit), s.freshness,
		func(ctx context.Context) (*model.OrdersPage, error) {
			return s.api.GetOrders(ctx, pageIndex, limit)
		})
	if err != nil {
		return nil, s.apiErrorFrom(err, model.ErrInternalServerMessage)
	}

	return page, nil
}

func (s *Service) Order(ctx context.Context, orderID string) (*model.Order, *model.APIError) {
	if orderID == "" {
		return nil, &model.APIError{
			Code:    http.StatusBadRequest,
			Message: model.ErrOrderNotFoundMessage,
		}
	}

	order, err := cache.Read(ctx, s.cache, cache.OrderKey(orderID), s.freshness,
		func(ctx context.Context) (*model.Order, error) {
			return s.api.GetOrder(ctx, orderID)
		})
	if err != nil {
		return nil, s.apiErrorFrom(err, model.ErrInternalServerMessage)
	}

	return order, nil
}

// OrderSituation is the order detail view-model: the snapshot plus the
// derived progress, checkpoint highlights and the next action gated by the
// viewer's role.
func (s *Service) OrderSituation(ctx context.Context, orderID string) (*OrderSituation, *model.APIError) {
	order, apiErr := s.Order(ctx, orderID)
	if apiErr != nil {
		return nil, apiErr
	}

	user, err := s.identity.CurrentUser(ctx)
	if err != nil {
		return nil, s.apiErrorFrom(err, model.ErrInternalServerMessage)
	}

	situation, err := DeriveSituation(order, user.Role)
	if err != nil {
		return nil, &model.APIError{
			Code:    http.StatusInternalServerError,
			Message: model.ErrUnknownOrderStatusMessage,
		}
	}

	return situation, nil
}

func (s *Service) CreateOrder(ctx context.Context, input model.CreateOrderDTO) *model.APIError {
	if apiErr := validateCreateOrderDTO(input); apiErr != nil {
		return apiErr
	}

	if err := s.api.CreateOrder(ctx, input); err != nil {
		return s.apiErrorFrom(err, model.ErrInternalServerMessage)
	}

	// any cached listing page may now be missing the new order
	s.cache.InvalidateKind(cache.KindOrders)
	metrics.OrdersCreatedTotal.Inc()
	s.notify.Success("order created successfully")

	return nil
}

// PickUpOrder executes the WAITING -> PICKN_UP transition. On success the
// cached order snapshot is merge-patched with the server-confirmed status
// and timestamp; on failure the cache is left untouched and the viewer
// gets a warning with the server's message when one exists.
func (s *Service) PickUpOrder(ctx context.Context, orderID string) *model.APIError {
	response, err := s.api.PickUpOrder(ctx, orderID)
	if err != nil {
		message := model.UpstreamDetails(err, model.ErrPickUpFallbackMessage)
		s.notify.Warning(message)

		apiErr := s.apiErrorFrom(err, model.ErrPickUpFallbackMessage)
		apiErr.Message = message
		return apiErr
	}

	pickUpAt := response.PickUpAt
	cache.Patch(s.cache, cache.OrderKey(orderID), func(order *model.Order) *model.Order {
		patched := *order
		patched.Status = model.OrderStatusPicknUp
		patched.PickUpAt = &pickUpAt
		return &patched
	})

	metrics.OrdersPickedUpTotal.Inc()
	s.notify.Success("package picked up successfully")

	return nil
}

func (s *Service) CreateRecipient(ctx context.Context, input model.CreateRecipientDTO) *model.APIError {
	if apiErr := validateCreateRecipientDTO(input); apiErr != nil {
		return apiErr
	}

	if err := s.api.CreateRecipient(ctx, input); err != nil {
		return s.apiErrorFrom(err, model.ErrInternalServerMessage)
	}

	s.cache.InvalidateKind(cache.KindRecipients)
	metrics.RecipientsCreatedTotal.Inc()
	s.notify.Success("recipient created successfully")

	return nil
}

func (s *Service) RecipientsLite(ctx context.Context, pageIndex int, q string) (*model.RecipientsPage, *model.APIError) {
	page, err := cache.Read(ctx, s.cache, cache.RecipientsKey(pageIndex, q), s.freshness,
		func(ctx context.Context) (*model.RecipientsPage, error) {
			return s.api.GetRecipientsLite(ctx, pageIndex, q)
		})
	if err != nil {
		return nil, s.apiErrorFrom(err, model.ErrInternalServerMessage)
	}

	return page, nil
}

func (s *Service) Notifications() []notify.Notification {
	return s.notify.Recent()
}

// apiErrorFrom converts a transport error into the view-facing APIError.
// A 401/UNAUTHORIZED rejection additionally tears the local session down,
// matching the SPA's force-to-login interceptor.
func (s *Service) apiErrorFrom(err error, fallback string) *model.APIError {
	if model.IsUnauthorized(err) {
		s.identity.Clear()
		return &model.APIError{
			Code:    http.StatusUnauthorized,
			Message: model.ErrSessionExpiredMessage,
		}
	}

	var upstream *model.UpstreamError
	if errors.As(err, &upstream) {
		return &model.APIError{
			Code:    upstream.Status,
			Message: model.UpstreamDetails(err, fallback),
		}
	}

	s.lg.Errorf("request failed: %v", err)
	return &model.APIError{
		Code:    http.StatusInternalServerError,
		Message: fallback,
	}
}

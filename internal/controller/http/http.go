package http

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"github.com/mvillar/fastfeet-front/internal/model"
	"github.com/mvillar/fastfeet-front/internal/notify"
	"github.com/mvillar/fastfeet-front/internal/service"
)

type Service interface {
	Login(ctx context.Context, input model.LoginDTO) *model.APIError
	Logout(ctx context.Context)
	CurrentUser(ctx context.Context) (*model.User, *model.APIError)
	Authenticated() bool
	Orders(ctx context.Context, pageIndex, limit int) (*model.OrdersPage, *model.APIError)
	OrderSituation(ctx context.Context, orderID string) (*service.OrderSituation, *model.APIError)
	CreateOrder(ctx context.Context, input model.CreateOrderDTO) *model.APIError
	PickUpOrder(ctx context.Context, orderID string) *model.APIError
	CreateRecipient(ctx context.Context, input model.CreateRecipientDTO) *model.APIError
	RecipientsLite(ctx context.Context, pageIndex int, q string) (*model.RecipientsPage, *model.APIError)
	Notifications() []notify.Notification
}

type Controller struct {
	service Service
	lg      *zap.SugaredLogger
}

func New(s Service, lg *zap.SugaredLogger) *Controller {
	return &Controller{
		lg:      lg,
		service: s,
	}
}

// RequireSession guards the application routes. Without a live session the
// response is the same 401 {code: "UNAUTHORIZED"} the upstream API uses,
// so a front shell can share its force-to-login handling.
func (c *Controller) RequireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !c.service.Authenticated() {
			writeError(w, c.lg, &model.APIError{
				Code:    http.StatusUnauthorized,
				Message: model.ErrSessionExpiredMessage,
			})
			return
		}

		next.ServeHTTP(w, r)
	})
}

package service

import (
	"fmt"

	"github.com/mvillar/fastfeet-front/internal/model"
)

type OrderAction string

const (
	ActionNone    OrderAction = "none"
	ActionPickUp  OrderAction = "pick_up"
	ActionDeliver OrderAction = "deliver"
)

// pickUpHint explains the disabled control to admins and owners.
const pickUpHint = "only delivery people can pick up a package"

// orderStatusProgress drives the timeline bar. The mapping is fixed:
// WAITING 20, PICKN_UP 50, DONE 100.
var orderStatusProgress = map[model.OrderStatus]int{
	model.OrderStatusWaiting: 20,
	model.OrderStatusPicknUp: 50,
	model.OrderStatusDone:    100,
}

// Checkpoints are the three timeline highlights; a checkpoint lights up
// once the status has reached or passed it.
type Checkpoints struct {
	Waiting   bool `json:"waiting"`
	PickedUp  bool `json:"pickedUp"`
	Delivered bool `json:"delivered"`
}

type OrderSituation struct {
	Order         *model.Order `json:"order"`
	Progress      int          `json:"progress"`
	Checkpoints   Checkpoints  `json:"checkpoints"`
	Action        OrderAction  `json:"action"`
	ActionEnabled bool         `json:"actionEnabled"`
	ActionHint    string       `json:"actionHint,omitempty"`
}

// DeriveSituation computes the detail view-model for an order as seen by
// a viewer with the given role. Only a DELIVERY_MAN may act; other roles
// see the action present but disabled, with an explanatory hint.
func DeriveSituation(order *model.Order, role model.Role) (*OrderSituation, error) {
	progress, ok := orderStatusProgress[order.Status]
	if !ok {
		return nil, fmt.Errorf("unknown order status %q", order.Status)
	}

	situation := &OrderSituation{
		Order:    order,
		Progress: progress,
		Checkpoints: Checkpoints{
			Waiting:   order.Status.Reached(model.OrderStatusWaiting),
			PickedUp:  order.Status.Reached(model.OrderStatusPicknUp),
			Delivered: order.Status.Reached(model.OrderStatusDone),
		},
	}

	switch order.Status {
	case model.OrderStatusWaiting:
		situation.Action = ActionPickUp
	case model.OrderStatusPicknUp:
		// the delivery confirmation flow itself lives elsewhere; this is
		// only the navigation affordance
		situation.Action = ActionDeliver
	default:
		situation.Action = ActionNone
	}

	if situation.Action != ActionNone {
		situation.ActionEnabled = role == model.RoleDeliveryMan
		if !situation.ActionEnabled {
			situation.ActionHint = pickUpHint
		}
	}

	return situation, nil
}

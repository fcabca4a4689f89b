package service

import (
	"sort"
	"strings"
	"time"

	"github.com/sara-ops/sara-api/internal/constants"
	"github.com/sara-ops/sara-api/internal/models"
	"github.com/sara-ops/sara-api/internal/repository"
)

// OrderService creates and lists orders. Lifecycle transitions live in
// LifecycleService.
type OrderService struct {
	orderRepo    repository.OrderRepository
	customerRepo repository.CustomerRepository
	productRepo  repository.ProductRepository
	auditService *AuditService
	now          func() time.Time
}

// NewOrderService creates the order service.
func NewOrderService(orderRepo repository.OrderRepository, customerRepo repository.CustomerRepository, productRepo repository.ProductRepository, auditService *AuditService) *OrderService {
	return &OrderService{
		orderRepo:    orderRepo,
		customerRepo: customerRepo,
		productRepo:  productRepo,
		auditService: auditService,
		now:          time.Now,
	}
}

// CreateOrderInput carries the fields for a new order.
type CreateOrderInput struct {
	CustomerName  string
	RequestedDate *time.Time
	DeliveryMode  string
	Invoice       bool
	PriceTier     string
	Brand         string
	Notes         string
	Items         []CreateOrderItem
}

// CreateOrderItem is one requested product line.
type CreateOrderItem struct {
	ProductID        uint
	Quantity         int
	SpecialUnitPrice *models.Money
}

// CreateOrder validates the lines and registers the order. Orders placed
// by an administrator start approved; everyone else's start pending.
// Fulfillment always starts at awaiting_weighing.
func (s *OrderService) CreateOrder(session SessionContext, input CreateOrderInput) (*models.Order, error) {
	customer, err := s.customerRepo.GetByName(input.CustomerName)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, ErrCustomerNotFound
	}

	if len(input.Items) == 0 {
		return nil, ErrNoItems
	}
	tier := strings.ToLower(strings.TrimSpace(input.PriceTier))
	switch tier {
	case "":
		tier = constants.PriceTierWholesale
	case constants.PriceTierWholesale, constants.PriceTierRetail, constants.PriceTierSpecial:
	default:
		return nil, ErrInvalidPriceTier
	}

	seen := make(map[uint]bool, len(input.Items))
	items := make([]models.OrderLineItem, 0, len(input.Items))
	for _, line := range input.Items {
		if line.Quantity <= 0 {
			return nil, ErrInvalidQuantity
		}
		if seen[line.ProductID] {
			return nil, ErrDuplicateProduct
		}
		seen[line.ProductID] = true

		if tier == constants.PriceTierSpecial {
			if line.SpecialUnitPrice == nil {
				return nil, ErrSpecialPriceRequired
			}
		} else if line.SpecialUnitPrice != nil {
			return nil, ErrSpecialPriceNotAllowed
		}

		product, err := s.productRepo.GetByID(line.ProductID)
		if err != nil {
			return nil, err
		}
		if product == nil || !product.Active {
			return nil, ErrProductNotFound
		}

		items = append(items, models.OrderLineItem{
			ProductID:        product.ID,
			ProductName:      product.Name,
			Quantity:         line.Quantity,
			SpecialUnitPrice: line.SpecialUnitPrice,
		})
	}

	mode := strings.ToLower(strings.TrimSpace(input.DeliveryMode))
	switch mode {
	case "":
		mode = constants.DeliveryModeShipping
	case constants.DeliveryModeShipping, constants.DeliveryModePickup:
	default:
		return nil, ErrInvalidDeliveryMode
	}

	approval := constants.ApprovalStatusPending
	if session.IsAdmin() {
		approval = constants.ApprovalStatusApproved
	}

	order := &models.Order{
		CustomerID:        customer.ID,
		CustomerName:      customer.Name,
		RequestedDate:     normalizeDate(input.RequestedDate),
		DeliveryMode:      mode,
		Invoice:           input.Invoice,
		PriceTier:         tier,
		Brand:             strings.TrimSpace(input.Brand),
		Notes:             strings.TrimSpace(input.Notes),
		ApprovalStatus:    approval,
		FulfillmentStatus: constants.FulfillmentStatusAwaitingWeighing,
		CreatedBy:         session.ActorName,
	}
	if err := s.orderRepo.Create(order, items); err != nil {
		return nil, err
	}

	s.auditService.Record(session, "order #%d created for %q (%d items, %s)", order.ID, customer.Name, len(order.Items), approval)
	return order, nil
}

// GetOrder fetches one order with its line items.
func (s *OrderService) GetOrder(id uint) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

// ListOrders returns orders matching the filter.
func (s *OrderService) ListOrders(filter repository.OrderListFilter) ([]models.Order, int64, error) {
	return s.orderRepo.List(filter)
}

// PendingOrder pairs a pending order with its customer's current
// approval state, so the approvals panel can flag orders that are
// blocked until the customer itself is approved.
type PendingOrder struct {
	models.Order
	CustomerApprovalStatus string `json:"customer_approval_status"`
}

// ListPendingOrders returns orders awaiting an approval decision,
// oldest first, each annotated with its customer's approval state.
func (s *OrderService) ListPendingOrders() ([]PendingOrder, error) {
	orders, err := s.orderRepo.ListPendingApproval()
	if err != nil {
		return nil, err
	}

	ids := make([]uint, 0, len(orders))
	seen := make(map[uint]bool, len(orders))
	for _, order := range orders {
		if !seen[order.CustomerID] {
			seen[order.CustomerID] = true
			ids = append(ids, order.CustomerID)
		}
	}
	statuses, err := s.customerRepo.ApprovalByIDs(ids)
	if err != nil {
		return nil, err
	}

	pending := make([]PendingOrder, 0, len(orders))
	for _, order := range orders {
		pending = append(pending, PendingOrder{
			Order:                  order,
			CustomerApprovalStatus: statuses[order.CustomerID],
		})
	}
	return pending, nil
}

// ListBoard returns the working board: approved, undelivered orders
// inside the requested date window, sorted by requested date with
// undated orders last.
//
// Window rules are rolling. "today" reaches through tomorrow, or through
// Monday when run on a Friday or Saturday. "week" reaches seven days
// out. Orders dated in the past always stay on the board until
// delivered, and undated orders match every window.
func (s *OrderService) ListBoard(window string) ([]models.Order, error) {
	orders, err := s.orderRepo.ListBoard(repository.OrderListFilter{})
	if err != nil {
		return nil, err
	}

	limit, bounded := s.windowLimit(window)
	filtered := orders[:0]
	for _, order := range orders {
		if order.FulfillmentStatus == constants.FulfillmentStatusDelivered {
			continue
		}
		if bounded && order.RequestedDate != nil {
			if dateOnly(*order.RequestedDate).After(limit) {
				continue
			}
		}
		filtered = append(filtered, order)
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		a, b := filtered[i].RequestedDate, filtered[j].RequestedDate
		if a == nil {
			return false
		}
		if b == nil {
			return true
		}
		return a.Before(*b)
	})
	return filtered, nil
}

// windowLimit resolves the inclusive upper bound for a window name.
func (s *OrderService) windowLimit(window string) (time.Time, bool) {
	today := dateOnly(s.now())
	switch window {
	case constants.DateWindowToday:
		extra := 1
		switch today.Weekday() {
		case time.Friday:
			extra = 3
		case time.Saturday:
			extra = 2
		}
		return today.AddDate(0, 0, extra), true
	case constants.DateWindowWeek:
		return today.AddDate(0, 0, 7), true
	default:
		return time.Time{}, false
	}
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func normalizeDate(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	d := dateOnly(*t)
	return &d
}

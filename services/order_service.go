package services

import (
	"strconv"
	"strings"
	"time"

	"restaurant-pos/entity"
	"restaurant-pos/repository"

	"gorm.io/datatypes"
)

// ----- Events -----

const (
	EventOrderCreated = "order.created"
	EventOrderUpdated = "order.updated"
	EventOrderStatus  = "order.status"
	EventOrderDeleted = "order.deleted"
)

type OrderEvent struct {
	Type    string    `json:"type"`
	OrderID uint      `json:"orderId"`
	Status  string    `json:"status,omitempty"`
	At      time.Time `json:"at"`
}

// OrderNotifier receives order changes after they are stored. Publish must
// not block.
type OrderNotifier interface {
	Publish(ev OrderEvent)
}

// ----- DTOs from Controller -----

// Flag decodes loosely typed booleans: true/false, 0/1, "yes"/"on" and the
// like all end up as a plain bool.
type Flag bool

func (f *Flag) UnmarshalJSON(b []byte) error {
	s := strings.ToLower(strings.Trim(strings.TrimSpace(string(b)), `"`))
	switch s {
	case "true", "yes", "y", "on":
		*f = true
	default:
		n, err := strconv.ParseFloat(s, 64)
		*f = Flag(err == nil && n != 0)
	}
	return nil
}

type OrderInput struct {
	TableNumber string                 `json:"tableNumber"`
	Items       []entity.OrderLineItem `json:"items"`
	Takeaway    Flag                   `json:"takeaway"`
	Notes       *string                `json:"notes"`
	ExtraCharge *float64               `json:"extra_charge"`
	Paid        Flag                   `json:"paid"`
}

func (in *OrderInput) extraCharge() float64 {
	if in.ExtraCharge == nil {
		return 0
	}
	return *in.ExtraCharge
}

// ValidateOrderInput is the create-time check: a table and at least one item.
func ValidateOrderInput(in *OrderInput) error {
	if strings.TrimSpace(in.TableNumber) == "" {
		return invalid("tableNumber", "order msg not found: tableNumber is required")
	}
	if len(in.Items) == 0 {
		return invalid("items", "order msg not found: items is required")
	}
	return nil
}

// ----- Service -----

type OrderService struct {
	Repo     *repository.OrderRepository
	Clock    *BusinessClock
	Notifier OrderNotifier
}

func NewOrderService(repo *repository.OrderRepository, clock *BusinessClock, notifier OrderNotifier) *OrderService {
	if clock == nil {
		clock = NewBusinessClock(time.UTC)
	}
	return &OrderService{Repo: repo, Clock: clock, Notifier: notifier}
}

func (s *OrderService) publish(kind string, id uint, status string) {
	if s.Notifier == nil {
		return
	}
	s.Notifier.Publish(OrderEvent{Type: kind, OrderID: id, Status: status, At: s.Clock.Now()})
}

// Create validates, stamps and stores a new order in a single write.
func (s *OrderService) Create(in *OrderInput) (uint, error) {
	if err := ValidateOrderInput(in); err != nil {
		return 0, err
	}

	now := s.Clock.Now()
	order := entity.Order{
		TableNumber: strings.TrimSpace(in.TableNumber),
		Items:       datatypes.JSONSlice[entity.OrderLineItem](in.Items),
		Takeaway:    bool(in.Takeaway),
		Notes:       in.Notes,
		ExtraCharge: in.extraCharge(),
		Paid:        bool(in.Paid),
		Status:      entity.StatusPlaced,
		CreatedAt:   now,
		CreatedDate: s.Clock.DateOf(now),
	}
	if err := s.Repo.Create(&order); err != nil {
		return 0, storageErr("create order", err)
	}

	s.publish(EventOrderCreated, order.ID, order.Status)
	return order.ID, nil
}

// Update replaces the editable fields. Unlike Create it does not insist on a
// table number or items; status and created_at are left alone.
func (s *OrderService) Update(id uint, in *OrderInput) (int64, error) {
	fields := map[string]any{
		"table_number": strings.TrimSpace(in.TableNumber),
		"items":        datatypes.JSONSlice[entity.OrderLineItem](in.Items),
		"takeaway":     bool(in.Takeaway),
		"notes":        in.Notes,
		"extra_charge": in.extraCharge(),
		"paid":         bool(in.Paid),
	}
	n, err := s.Repo.Update(id, fields)
	if err != nil {
		return 0, storageErr("update order", err)
	}
	if n > 0 {
		s.publish(EventOrderUpdated, id, "")
	}
	return n, nil
}

// UpdateStatus overwrites the status label. Any string is accepted.
func (s *OrderService) UpdateStatus(id uint, status string) (int64, error) {
	n, err := s.Repo.UpdateStatus(id, status)
	if err != nil {
		return 0, storageErr("update status", err)
	}
	if n > 0 {
		s.publish(EventOrderStatus, id, status)
	}
	return n, nil
}

func (s *OrderService) Delete(id uint) (int64, error) {
	n, err := s.Repo.Delete(id)
	if err != nil {
		return 0, storageErr("delete order", err)
	}
	if n > 0 {
		s.publish(EventOrderDeleted, id, "")
	}
	return n, nil
}

// ----- Queries -----

func (s *OrderService) FetchByDate(date string) ([]entity.Order, error) {
	day, err := ParseDate(date)
	if err != nil {
		return nil, err
	}
	orders, err := s.Repo.FindByDate(day)
	if err != nil {
		return nil, storageErr("fetch orders by date", err)
	}
	return s.localize(orders), nil
}

func (s *OrderService) ListAll() ([]entity.Order, error) {
	orders, err := s.Repo.FindAll()
	if err != nil {
		return nil, storageErr("list orders", err)
	}
	return s.localize(orders), nil
}

type OrderListOut struct {
	Items []entity.Order `json:"items"`
	Total int64          `json:"total"`
	Page  int            `json:"page"`
	Limit int            `json:"limit"`
}

func (s *OrderService) ListPage(page, limit int) (*OrderListOut, error) {
	orders, total, err := s.Repo.FindPage(page, limit)
	if err != nil {
		return nil, storageErr("list orders", err)
	}
	if page <= 0 {
		page = 1
	}
	if limit <= 0 || limit > 200 {
		limit = 20
	}
	return &OrderListOut{Items: s.localize(orders), Total: total, Page: page, Limit: limit}, nil
}

// Summary recomputes the day's totals from its orders on every call.
func (s *OrderService) Summary(date string) (*Summary, error) {
	orders, err := s.FetchByDate(date)
	if err != nil {
		return nil, err
	}
	sum := ComputeSummary(orders)
	return &sum, nil
}

// localize puts created_at back into the business offset after a read.
func (s *OrderService) localize(orders []entity.Order) []entity.Order {
	for i := range orders {
		orders[i].CreatedAt = orders[i].CreatedAt.In(s.Clock.Location())
	}
	return orders
}

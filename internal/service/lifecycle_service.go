package service

import (
	"fmt"

	"github.com/sara-ops/sara-api/internal/constants"
	"github.com/sara-ops/sara-api/internal/models"
	"github.com/sara-ops/sara-api/internal/repository"
)

// LifecycleService owns the approval and fulfillment transitions of
// customers and orders. Role checks live here rather than in the HTTP
// layer: a disabled button is not a security boundary.
type LifecycleService struct {
	orderRepo    repository.OrderRepository
	customerRepo repository.CustomerRepository
	auditService *AuditService
}

// NewLifecycleService creates the lifecycle service.
func NewLifecycleService(orderRepo repository.OrderRepository, customerRepo repository.CustomerRepository, auditService *AuditService) *LifecycleService {
	return &LifecycleService{
		orderRepo:    orderRepo,
		customerRepo: customerRepo,
		auditService: auditService,
	}
}

// canWeigh reports whether the session may run scale and delivery
// operations.
func canWeigh(session SessionContext) bool {
	return session.Role == constants.RoleAdmin || session.Role == constants.RoleOperator
}

// ApproveCustomer marks a customer approved. Administrators only.
func (s *LifecycleService) ApproveCustomer(session SessionContext, customerID uint) error {
	if !session.IsAdmin() {
		return ErrUnauthorized
	}
	customer, err := s.customerRepo.GetByID(customerID)
	if err != nil {
		return err
	}
	if customer == nil {
		return ErrCustomerNotFound
	}
	if err := s.customerRepo.UpdateApproval(customer.ID, constants.ApprovalStatusApproved); err != nil {
		return err
	}
	s.auditService.Record(session, "customer %q approved", customer.Name)
	return nil
}

// RejectCustomer marks a customer rejected. Administrators only.
func (s *LifecycleService) RejectCustomer(session SessionContext, customerID uint) error {
	if !session.IsAdmin() {
		return ErrUnauthorized
	}
	customer, err := s.customerRepo.GetByID(customerID)
	if err != nil {
		return err
	}
	if customer == nil {
		return ErrCustomerNotFound
	}
	if err := s.customerRepo.UpdateApproval(customer.ID, constants.ApprovalStatusRejected); err != nil {
		return err
	}
	s.auditService.Record(session, "customer %q rejected", customer.Name)
	return nil
}

// ApproveOrder marks an order approved. The owning customer's approval
// status is re-read at call time: an order referencing a customer that is
// not currently approved is refused with ErrCustomerNotApproved and left
// untouched. No transaction spans the customer read and the order write;
// the re-read narrows the race window, it does not close it.
func (s *LifecycleService) ApproveOrder(session SessionContext, orderID uint) error {
	if !session.IsAdmin() {
		return ErrUnauthorized
	}
	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return err
	}
	if order == nil {
		return ErrOrderNotFound
	}

	customer, err := s.customerRepo.GetByID(order.CustomerID)
	if err != nil {
		return err
	}
	if customer == nil {
		return ErrCustomerNotFound
	}
	if customer.ApprovalStatus != constants.ApprovalStatusApproved {
		return ErrCustomerNotApproved
	}

	if err := s.orderRepo.UpdateApproval(order.ID, constants.ApprovalStatusApproved); err != nil {
		return err
	}
	s.auditService.Record(session, "order #%d approved (customer %q)", order.ID, order.CustomerName)
	return nil
}

// RejectOrder marks an order rejected, unconditionally. Administrators only.
func (s *LifecycleService) RejectOrder(session SessionContext, orderID uint) error {
	if !session.IsAdmin() {
		return ErrUnauthorized
	}
	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return err
	}
	if order == nil {
		return ErrOrderNotFound
	}
	if err := s.orderRepo.UpdateApproval(order.ID, constants.ApprovalStatusRejected); err != nil {
		return err
	}
	s.auditService.Record(session, "order #%d rejected (customer %q)", order.ID, order.CustomerName)
	return nil
}

// RecordWeights stores scale readings for an order, one entry per line
// item in line order. A nil entry leaves that item untouched. Each
// present value is clamped to the scale range and rounded to two
// decimals before storage. Re-weighing is allowed until the order is
// delivered; a delivered order refuses further weights. Persists run
// sequentially and are not atomic
// across items: a failed write aborts the remaining sequence and reports
// which line failed, without rolling back the lines already written.
// When every line item carries a weight after the writes, the order
// moves to awaiting delivery; the check uses the just-written values.
// One audit entry covers the whole call.
func (s *LifecycleService) RecordWeights(session SessionContext, orderID uint, weights []*models.Weight) error {
	if !canWeigh(session) {
		return ErrUnauthorized
	}
	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return err
	}
	if order == nil {
		return ErrOrderNotFound
	}
	if order.FulfillmentStatus == constants.FulfillmentStatusDelivered {
		return ErrOrderDelivered
	}
	if len(weights) != len(order.Items) {
		return ErrWeightCountMismatch
	}

	written := 0
	for i, w := range weights {
		if w == nil {
			continue
		}
		clamped := w.Normalize()
		if err := s.orderRepo.UpdateItemWeight(order.Items[i].ID, &clamped); err != nil {
			return fmt.Errorf("persist weight for line %d: %w", order.Items[i].LineNo, err)
		}
		order.Items[i].WeightKg = &clamped
		written++
	}

	allWeighed := len(order.Items) > 0
	for _, item := range order.Items {
		if item.WeightKg == nil {
			allWeighed = false
			break
		}
	}
	if allWeighed && order.FulfillmentStatus == constants.FulfillmentStatusAwaitingWeighing {
		if err := s.orderRepo.UpdateFulfillment(order.ID, constants.FulfillmentStatusAwaitingDelivery); err != nil {
			return err
		}
		order.FulfillmentStatus = constants.FulfillmentStatusAwaitingDelivery
	}

	s.auditService.Record(session, "order #%d weighed (%d of %d items, customer %q)", order.ID, written, len(order.Items), order.CustomerName)
	return nil
}

// MarkDelivered moves an order to the terminal delivered state. Calling
// it on an already delivered order is a no-op. Weighing completeness is
// deliberately not checked: dispatch may force an order out the door.
func (s *LifecycleService) MarkDelivered(session SessionContext, orderID uint) error {
	if !canWeigh(session) {
		return ErrUnauthorized
	}
	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return err
	}
	if order == nil {
		return ErrOrderNotFound
	}
	if order.FulfillmentStatus == constants.FulfillmentStatusDelivered {
		return nil
	}
	if err := s.orderRepo.UpdateFulfillment(order.ID, constants.FulfillmentStatusDelivered); err != nil {
		return err
	}
	s.auditService.Record(session, "order #%d delivered (customer %q)", order.ID, order.CustomerName)
	return nil
}

// DeleteOrder removes an order and its line items. Administrators only.
func (s *LifecycleService) DeleteOrder(session SessionContext, orderID uint) error {
	if !session.IsAdmin() {
		return ErrUnauthorized
	}
	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return err
	}
	if order == nil {
		return ErrOrderNotFound
	}
	if err := s.orderRepo.Delete(order.ID); err != nil {
		return err
	}
	s.auditService.Record(session, "order #%d deleted (customer %q)", order.ID, order.CustomerName)
	return nil
}

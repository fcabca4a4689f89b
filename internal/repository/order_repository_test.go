package repository

import (
	"fmt"
	"testing"
	"time"

	"github.com/sara-ops/sara-api/internal/constants"
	"github.com/sara-ops/sara-api/internal/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupOrderRepositoryTest(t *testing.T) (*GormOrderRepository, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:order_repo_test_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Order{}, &models.OrderLineItem{}); err != nil {
		t.Fatalf("migrate order tables failed: %v", err)
	}
	return NewOrderRepository(db), db
}

func newRepoTestOrder(itemCount int) (*models.Order, []models.OrderLineItem) {
	order := &models.Order{
		CustomerID:        1,
		CustomerName:      "Acme",
		DeliveryMode:      constants.DeliveryModeShipping,
		PriceTier:         constants.PriceTierWholesale,
		ApprovalStatus:    constants.ApprovalStatusPending,
		FulfillmentStatus: constants.FulfillmentStatusAwaitingWeighing,
	}
	items := make([]models.OrderLineItem, 0, itemCount)
	for i := 0; i < itemCount; i++ {
		items = append(items, models.OrderLineItem{
			ProductID:   uint(i + 1),
			ProductName: fmt.Sprintf("cut-%d", i+1),
			Quantity:    1,
		})
	}
	return order, items
}

func TestOrderCreateNumbersLines(t *testing.T) {
	repo, _ := setupOrderRepositoryTest(t)
	order, items := newRepoTestOrder(3)
	if err := repo.Create(order, items); err != nil {
		t.Fatalf("create order failed: %v", err)
	}

	got, err := repo.GetByID(order.ID)
	if err != nil {
		t.Fatalf("get order failed: %v", err)
	}
	if got == nil || len(got.Items) != 3 {
		t.Fatalf("order items want 3 got %+v", got)
	}
	for i, item := range got.Items {
		if item.LineNo != i+1 {
			t.Fatalf("item %d line_no want %d got %d", i, i+1, item.LineNo)
		}
		if item.OrderID != order.ID {
			t.Fatalf("item %d order_id want %d got %d", i, order.ID, item.OrderID)
		}
	}
}

func TestOrderUpdateItemWeight(t *testing.T) {
	repo, _ := setupOrderRepositoryTest(t)
	order, items := newRepoTestOrder(2)
	if err := repo.Create(order, items); err != nil {
		t.Fatalf("create order failed: %v", err)
	}

	weight := models.NewWeightFromFloat(12.345)
	if err := repo.UpdateItemWeight(order.Items[0].ID, &weight); err != nil {
		t.Fatalf("update item weight failed: %v", err)
	}

	got, err := repo.GetByID(order.ID)
	if err != nil {
		t.Fatalf("get order failed: %v", err)
	}
	if got.Items[0].WeightKg == nil || got.Items[0].WeightKg.String() != "12.35" {
		t.Fatalf("weight want 12.35 got %v", got.Items[0].WeightKg)
	}
	if got.Items[1].WeightKg != nil {
		t.Fatalf("second item should stay unweighed")
	}
}

func TestOrderDeleteCascadesItems(t *testing.T) {
	repo, db := setupOrderRepositoryTest(t)
	order, items := newRepoTestOrder(2)
	if err := repo.Create(order, items); err != nil {
		t.Fatalf("create order failed: %v", err)
	}

	if err := repo.Delete(order.ID); err != nil {
		t.Fatalf("delete order failed: %v", err)
	}

	gone, err := repo.GetByID(order.ID)
	if err != nil {
		t.Fatalf("get deleted order failed: %v", err)
	}
	if gone != nil {
		t.Fatalf("deleted order should be nil, got %+v", gone)
	}
	var count int64
	if err := db.Model(&models.OrderLineItem{}).Where("order_id = ?", order.ID).Count(&count).Error; err != nil {
		t.Fatalf("count items failed: %v", err)
	}
	if count != 0 {
		t.Fatalf("orphan items want 0 got %d", count)
	}
}

func TestOrderListBoardOnlyApproved(t *testing.T) {
	repo, _ := setupOrderRepositoryTest(t)

	approved, items := newRepoTestOrder(1)
	approved.ApprovalStatus = constants.ApprovalStatusApproved
	if err := repo.Create(approved, items); err != nil {
		t.Fatalf("create approved order failed: %v", err)
	}
	pending, pendingItems := newRepoTestOrder(1)
	if err := repo.Create(pending, pendingItems); err != nil {
		t.Fatalf("create pending order failed: %v", err)
	}

	board, err := repo.ListBoard(OrderListFilter{})
	if err != nil {
		t.Fatalf("list board failed: %v", err)
	}
	if len(board) != 1 || board[0].ID != approved.ID {
		t.Fatalf("board should hold only approved orders, got %+v", board)
	}
	if len(board[0].Items) != 1 {
		t.Fatalf("board orders should preload items")
	}
}

func TestOrderUpdateStatuses(t *testing.T) {
	repo, _ := setupOrderRepositoryTest(t)
	order, items := newRepoTestOrder(1)
	if err := repo.Create(order, items); err != nil {
		t.Fatalf("create order failed: %v", err)
	}

	if err := repo.UpdateApproval(order.ID, constants.ApprovalStatusApproved); err != nil {
		t.Fatalf("update approval failed: %v", err)
	}
	if err := repo.UpdateFulfillment(order.ID, constants.FulfillmentStatusDelivered); err != nil {
		t.Fatalf("update fulfillment failed: %v", err)
	}

	got, err := repo.GetByID(order.ID)
	if err != nil {
		t.Fatalf("get order failed: %v", err)
	}
	if got.ApprovalStatus != constants.ApprovalStatusApproved {
		t.Fatalf("approval want approved got %s", got.ApprovalStatus)
	}
	if got.FulfillmentStatus != constants.FulfillmentStatusDelivered {
		t.Fatalf("fulfillment want delivered got %s", got.FulfillmentStatus)
	}
}

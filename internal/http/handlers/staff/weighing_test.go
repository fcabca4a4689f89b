package staff

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/sara-ops/sara-api/internal/constants"
	"github.com/sara-ops/sara-api/internal/http/handlers/shared"
	"github.com/sara-ops/sara-api/internal/http/response"
	"github.com/sara-ops/sara-api/internal/models"
	"github.com/sara-ops/sara-api/internal/provider"
	"github.com/sara-ops/sara-api/internal/queue"
	"github.com/sara-ops/sara-api/internal/repository"
	"github.com/sara-ops/sara-api/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupWeighingHandlerTest(t *testing.T) (*Handler, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:weighing_handler_test_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(
		&models.Customer{},
		&models.Product{},
		&models.Order{},
		&models.OrderLineItem{},
		&models.EventLog{},
	); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}

	orderRepo := repository.NewOrderRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	productRepo := repository.NewProductRepository(db)
	queueClient, _ := queue.NewClient(nil)
	auditService := service.NewAuditService(repository.NewEventLogRepository(db), queueClient)

	h := &Handler{Container: &provider.Container{
		OrderService:     service.NewOrderService(orderRepo, customerRepo, productRepo, auditService),
		LifecycleService: service.NewLifecycleService(orderRepo, customerRepo, auditService),
	}}
	return h, db
}

func weighingTestRouter(h *Handler, role string) *gin.Engine {
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(shared.CtxUserID, uint(2))
		c.Set(shared.CtxUsername, "scale-op")
		c.Set(shared.CtxRole, role)
		c.Set(shared.CtxStation, "scale-1")
		c.Next()
	})
	r.PUT("/orders/:id/weights", h.RecordWeights)
	r.POST("/orders/:id/deliver", h.MarkDelivered)
	return r
}

func seedWeighingOrder(t *testing.T, db *gorm.DB, itemCount int) *models.Order {
	t.Helper()
	customer := &models.Customer{
		Name:           "Weigh Co",
		TaxIDType:      constants.TaxIDTypeCUIT,
		TaxIDNumber:    "30712345678",
		Category:       constants.CustomerCategoryOther,
		Active:         true,
		ApprovalStatus: constants.ApprovalStatusApproved,
	}
	if err := repository.NewCustomerRepository(db).Create(customer); err != nil {
		t.Fatalf("create customer failed: %v", err)
	}
	order := &models.Order{
		CustomerID:        customer.ID,
		CustomerName:      customer.Name,
		DeliveryMode:      constants.DeliveryModeShipping,
		PriceTier:         constants.PriceTierWholesale,
		ApprovalStatus:    constants.ApprovalStatusApproved,
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
	if err := repository.NewOrderRepository(db).Create(order, items); err != nil {
		t.Fatalf("create order failed: %v", err)
	}
	return order
}

func putWeights(t *testing.T, r *gin.Engine, orderID uint, body string) response.Response {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, fmt.Sprintf("/orders/%d/weights", orderID), strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("http status want 200 got %d", w.Code)
	}
	var resp response.Response
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal envelope failed: %v", err)
	}
	return resp
}

func TestRecordWeightsEndpointReturnsUpdatedOrder(t *testing.T) {
	h, db := setupWeighingHandlerTest(t)
	order := seedWeighingOrder(t, db, 3)
	r := weighingTestRouter(h, constants.RoleOperator)

	resp := putWeights(t, r, order.ID, `{"weights":[12.5, null, "3.14159"]}`)
	if resp.StatusCode != 0 {
		t.Fatalf("status_code want 0 got %d (%s)", resp.StatusCode, resp.Msg)
	}

	payload, err := json.Marshal(resp.Data)
	if err != nil {
		t.Fatalf("remarshal data failed: %v", err)
	}
	var got models.Order
	if err := json.Unmarshal(payload, &got); err != nil {
		t.Fatalf("decode order failed: %v", err)
	}
	if got.FulfillmentStatus != constants.FulfillmentStatusAwaitingWeighing {
		t.Fatalf("partial weighing should stay awaiting_weighing, got %s", got.FulfillmentStatus)
	}
	if got.Items[0].WeightKg == nil || got.Items[0].WeightKg.String() != "12.50" {
		t.Fatalf("first weight want 12.50 got %v", got.Items[0].WeightKg)
	}
	if got.Items[1].WeightKg != nil {
		t.Fatalf("null slot should stay unweighed")
	}
	if got.Items[2].WeightKg == nil || got.Items[2].WeightKg.String() != "3.14" {
		t.Fatalf("third weight want 3.14 got %v", got.Items[2].WeightKg)
	}
}

func TestRecordWeightsEndpointCountMismatch(t *testing.T) {
	h, db := setupWeighingHandlerTest(t)
	order := seedWeighingOrder(t, db, 2)
	r := weighingTestRouter(h, constants.RoleOperator)

	resp := putWeights(t, r, order.ID, `{"weights":[1.0]}`)
	if resp.StatusCode != response.CodeBadRequest {
		t.Fatalf("status_code want %d got %d", response.CodeBadRequest, resp.StatusCode)
	}
}

func TestRecordWeightsEndpointForbiddenForRunner(t *testing.T) {
	h, db := setupWeighingHandlerTest(t)
	order := seedWeighingOrder(t, db, 1)
	r := weighingTestRouter(h, constants.RoleRunner)

	resp := putWeights(t, r, order.ID, `{"weights":[1.0]}`)
	if resp.StatusCode != response.CodeForbidden {
		t.Fatalf("status_code want %d got %d", response.CodeForbidden, resp.StatusCode)
	}
}

func TestMarkDeliveredEndpoint(t *testing.T) {
	h, db := setupWeighingHandlerTest(t)
	order := seedWeighingOrder(t, db, 1)
	r := weighingTestRouter(h, constants.RoleOperator)

	for i := 0; i < 2; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, fmt.Sprintf("/orders/%d/deliver", order.ID), nil)
		r.ServeHTTP(w, req)
		var resp response.Response
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("unmarshal envelope failed: %v", err)
		}
		if resp.StatusCode != 0 {
			t.Fatalf("call %d: status_code want 0 got %d", i+1, resp.StatusCode)
		}
	}

	got, err := repository.NewOrderRepository(db).GetByID(order.ID)
	if err != nil || got == nil {
		t.Fatalf("reload order failed: %v", err)
	}
	if got.FulfillmentStatus != constants.FulfillmentStatusDelivered {
		t.Fatalf("fulfillment want delivered got %s", got.FulfillmentStatus)
	}
}

package admin

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
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

func setupApprovalHandlerTest(t *testing.T) (*Handler, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:approval_handler_test_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(
		&models.Customer{},
		&models.Order{},
		&models.OrderLineItem{},
		&models.EventLog{},
	); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}

	orderRepo := repository.NewOrderRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	queueClient, _ := queue.NewClient(nil)
	auditService := service.NewAuditService(repository.NewEventLogRepository(db), queueClient)

	h := &Handler{Container: &provider.Container{
		OrderRepo:        orderRepo,
		CustomerRepo:     customerRepo,
		AuditService:     auditService,
		OrderService:     service.NewOrderService(orderRepo, customerRepo, repository.NewProductRepository(db), auditService),
		CustomerService:  service.NewCustomerService(customerRepo, auditService),
		LifecycleService: service.NewLifecycleService(orderRepo, customerRepo, auditService),
	}}
	return h, db
}

func sessionInjector(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(shared.CtxUserID, uint(1))
		c.Set(shared.CtxUsername, "tester")
		c.Set(shared.CtxRole, role)
		c.Set(shared.CtxStation, "office")
		c.Next()
	}
}

func approvalTestRouter(h *Handler, role string) *gin.Engine {
	r := gin.New()
	authed := r.Group("/", sessionInjector(role))
	authed.POST("/orders/:id/approve", h.ApproveOrder)
	authed.POST("/customers/:id/approve", h.ApproveCustomer)
	authed.DELETE("/orders/:id", h.DeleteOrder)
	return r
}

func seedApprovalOrder(t *testing.T, db *gorm.DB, customerApproval string) (*models.Customer, *models.Order) {
	t.Helper()
	customer := &models.Customer{
		Name:           "Acme",
		TaxIDType:      constants.TaxIDTypeCUIT,
		TaxIDNumber:    "30712345678",
		Category:       constants.CustomerCategoryOther,
		Active:         true,
		ApprovalStatus: customerApproval,
	}
	if err := repository.NewCustomerRepository(db).Create(customer); err != nil {
		t.Fatalf("create customer failed: %v", err)
	}
	order := &models.Order{
		CustomerID:        customer.ID,
		CustomerName:      customer.Name,
		DeliveryMode:      constants.DeliveryModeShipping,
		PriceTier:         constants.PriceTierWholesale,
		ApprovalStatus:    constants.ApprovalStatusPending,
		FulfillmentStatus: constants.FulfillmentStatusAwaitingWeighing,
	}
	items := []models.OrderLineItem{{ProductID: 1, ProductName: "Bondiola", Quantity: 2}}
	if err := repository.NewOrderRepository(db).Create(order, items); err != nil {
		t.Fatalf("create order failed: %v", err)
	}
	return customer, order
}

func doRequest(t *testing.T, r *gin.Engine, method, path string) response.Response {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, nil)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("%s %s: http status want 200 got %d", method, path, w.Code)
	}
	var resp response.Response
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal envelope failed: %v", err)
	}
	return resp
}

func TestApproveOrderRefusalEnvelope(t *testing.T) {
	h, db := setupApprovalHandlerTest(t)
	customer, order := seedApprovalOrder(t, db, constants.ApprovalStatusPending)
	r := approvalTestRouter(h, constants.RoleAdmin)

	resp := doRequest(t, r, http.MethodPost, fmt.Sprintf("/orders/%d/approve", order.ID))
	if resp.StatusCode != response.CodeRefused {
		t.Fatalf("status_code want %d got %d", response.CodeRefused, resp.StatusCode)
	}
	if resp.Msg != "customer not yet approved" {
		t.Fatalf("msg want refusal reason got %q", resp.Msg)
	}

	resp = doRequest(t, r, http.MethodPost, fmt.Sprintf("/customers/%d/approve", customer.ID))
	if resp.StatusCode != 0 {
		t.Fatalf("customer approve status_code want 0 got %d", resp.StatusCode)
	}

	resp = doRequest(t, r, http.MethodPost, fmt.Sprintf("/orders/%d/approve", order.ID))
	if resp.StatusCode != 0 {
		t.Fatalf("order approve status_code want 0 got %d", resp.StatusCode)
	}
}

func TestApproveOrderUnknownID(t *testing.T) {
	h, _ := setupApprovalHandlerTest(t)
	r := approvalTestRouter(h, constants.RoleAdmin)

	resp := doRequest(t, r, http.MethodPost, "/orders/9999/approve")
	if resp.StatusCode != response.CodeNotFound {
		t.Fatalf("status_code want %d got %d", response.CodeNotFound, resp.StatusCode)
	}

	resp = doRequest(t, r, http.MethodPost, "/orders/abc/approve")
	if resp.StatusCode != response.CodeBadRequest {
		t.Fatalf("status_code want %d got %d", response.CodeBadRequest, resp.StatusCode)
	}
}

func TestDeleteOrderForbiddenForOperator(t *testing.T) {
	h, db := setupApprovalHandlerTest(t)
	_, order := seedApprovalOrder(t, db, constants.ApprovalStatusApproved)
	r := approvalTestRouter(h, constants.RoleOperator)

	resp := doRequest(t, r, http.MethodDelete, fmt.Sprintf("/orders/%d", order.ID))
	if resp.StatusCode != response.CodeForbidden {
		t.Fatalf("status_code want %d got %d", response.CodeForbidden, resp.StatusCode)
	}

	admin := approvalTestRouter(h, constants.RoleAdmin)
	resp = doRequest(t, admin, http.MethodDelete, fmt.Sprintf("/orders/%d", order.ID))
	if resp.StatusCode != 0 {
		t.Fatalf("admin delete status_code want 0 got %d", resp.StatusCode)
	}
}

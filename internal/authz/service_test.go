package authz

import (
	"fmt"
	"strings"
	"testing"

	"github.com/sara-ops/sara-api/internal/constants"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupAuthzServiceTest(t *testing.T) *Service {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	svc, err := NewService(db)
	if err != nil {
		t.Fatalf("new authz service failed: %v", err)
	}
	return svc
}

func TestEnforceRoleWithGrantedPolicy(t *testing.T) {
	svc := setupAuthzServiceTest(t)
	if err := svc.GrantRolePolicy("scale", "/orders/:id/weights", "PUT"); err != nil {
		t.Fatalf("grant role policy failed: %v", err)
	}

	allow, err := svc.EnforceRole("scale", "/api/v1/orders/42/weights", "put")
	if err != nil {
		t.Fatalf("enforce allow failed: %v", err)
	}
	if !allow {
		t.Fatalf("expected allow=true")
	}

	allow, err = svc.EnforceRole("scale", "/api/v1/orders/42/weights", "DELETE")
	if err != nil {
		t.Fatalf("enforce deny failed: %v", err)
	}
	if allow {
		t.Fatalf("expected allow=false")
	}
}

func TestRevokeRolePolicy(t *testing.T) {
	svc := setupAuthzServiceTest(t)
	if err := svc.GrantRolePolicy("dispatch", "/orders/:id/deliver", "POST"); err != nil {
		t.Fatalf("grant role policy failed: %v", err)
	}
	if err := svc.RevokeRolePolicy("dispatch", "/orders/:id/deliver", "POST"); err != nil {
		t.Fatalf("revoke role policy failed: %v", err)
	}
	allow, err := svc.EnforceRole("dispatch", "/orders/7/deliver", "POST")
	if err != nil {
		t.Fatalf("enforce after revoke failed: %v", err)
	}
	if allow {
		t.Fatalf("expected revoked permission to deny")
	}
}

func TestNormalizeObject(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{in: "/api/v1/orders/:id", want: "/orders/:id"},
		{in: "/orders/:id", want: "/orders/:id"},
		{in: "orders/board", want: "/orders/board"},
		{in: "/api/v1", want: "/"},
		{in: "", want: "/"},
	}
	for _, item := range cases {
		got := NormalizeObject(item.in)
		if got != item.want {
			t.Fatalf("normalize object failed, in=%q want=%q got=%q", item.in, item.want, got)
		}
	}
}

func TestNormalizeRole(t *testing.T) {
	got, err := NormalizeRole("admin")
	if err != nil {
		t.Fatalf("normalize role failed: %v", err)
	}
	if got != "role:admin" {
		t.Fatalf("role want role:admin got %s", got)
	}
	got, err = NormalizeRole("role:operator")
	if err != nil {
		t.Fatalf("normalize prefixed role failed: %v", err)
	}
	if got != "role:operator" {
		t.Fatalf("role want role:operator got %s", got)
	}
	if _, err := NormalizeRole("  "); err == nil {
		t.Fatalf("blank role should fail")
	}
}

func TestBootstrapBuiltinRoleMatrix(t *testing.T) {
	svc := setupAuthzServiceTest(t)
	if err := svc.BootstrapBuiltinRoles(); err != nil {
		t.Fatalf("bootstrap builtin roles failed: %v", err)
	}

	cases := []struct {
		role  string
		obj   string
		act   string
		allow bool
	}{
		// Administrators may do anything.
		{constants.RoleAdmin, "/api/v1/orders/5", "DELETE", true},
		{constants.RoleAdmin, "/api/v1/users", "POST", true},
		// Runners take customers and orders but never touch the scale.
		{constants.RoleRunner, "/api/v1/customers", "POST", true},
		{constants.RoleRunner, "/api/v1/orders", "POST", true},
		{constants.RoleRunner, "/api/v1/orders/board", "GET", true},
		{constants.RoleRunner, "/api/v1/orders/5/weights", "PUT", false},
		{constants.RoleRunner, "/api/v1/orders/5", "DELETE", false},
		{constants.RoleRunner, "/api/v1/users", "POST", false},
		// Operators weigh and deliver but never create orders.
		{constants.RoleOperator, "/api/v1/orders/5/weights", "PUT", true},
		{constants.RoleOperator, "/api/v1/orders/5/deliver", "POST", true},
		{constants.RoleOperator, "/api/v1/orders", "GET", true},
		{constants.RoleOperator, "/api/v1/orders", "POST", false},
		{constants.RoleOperator, "/api/v1/customers", "POST", false},
		{constants.RoleOperator, "/api/v1/approvals/orders", "GET", false},
	}
	for _, tc := range cases {
		allow, err := svc.EnforceRole(tc.role, tc.obj, tc.act)
		if err != nil {
			t.Fatalf("enforce %s %s %s failed: %v", tc.role, tc.act, tc.obj, err)
		}
		if allow != tc.allow {
			t.Fatalf("enforce %s %s %s want %v got %v", tc.role, tc.act, tc.obj, tc.allow, allow)
		}
	}
}

package domain

import "testing"

func TestEvaluate_ViewCatalogAlwaysAllowed(t *testing.T) {
	sessions := []*Session{
		nil,
		{Identity: "c@example.com", Role: RoleCustomer},
		{Identity: "a@example.com", Role: RoleAdmin},
	}
	for _, s := range sessions {
		if d := Evaluate(s, ActionViewCatalog); d != Allow {
			t.Fatalf("view catalog for %+v: expected allow, got %s", s, d)
		}
	}
}

func TestEvaluate_Anonymous(t *testing.T) {
	for _, action := range []Action{ActionPurchase, ActionViewOwnOrders, ActionManageCatalog} {
		if d := Evaluate(nil, action); d != DenyNeedsLogin {
			t.Fatalf("%s anonymous: expected deny_needs_login, got %s", action, d)
		}
	}
}

func TestEvaluate_Customer(t *testing.T) {
	s := &Session{Identity: "c@example.com", Role: RoleCustomer}

	if d := Evaluate(s, ActionPurchase); d != Allow {
		t.Fatalf("customer purchase: expected allow, got %s", d)
	}
	if d := Evaluate(s, ActionViewOwnOrders); d != Allow {
		t.Fatalf("customer own orders: expected allow, got %s", d)
	}
	if d := Evaluate(s, ActionManageCatalog); d != DenyWrongRole {
		t.Fatalf("customer manage catalog: expected deny_wrong_role, got %s", d)
	}
}

func TestEvaluate_Admin(t *testing.T) {
	s := &Session{Identity: "a@example.com", Role: RoleAdmin}

	if d := Evaluate(s, ActionManageCatalog); d != Allow {
		t.Fatalf("admin manage catalog: expected allow, got %s", d)
	}
	if d := Evaluate(s, ActionPurchase); d != DenyWrongRole {
		t.Fatalf("admin purchase: expected deny_wrong_role, got %s", d)
	}
	if d := Evaluate(s, ActionViewOwnOrders); d != DenyWrongRole {
		t.Fatalf("admin own orders: expected deny_wrong_role, got %s", d)
	}
}

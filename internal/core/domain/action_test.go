package domain

import "testing"

// expected mirrors the capability table of the back-office UI; the test
// is the deployment-discipline guard that keeps the Go table honest.
var expected = map[Action]map[Role]bool{
	ActionViewData:           {RoleAdmin: true, RoleManager: true, RoleOperator: true, RoleViewer: true},
	ActionCustomerCreate:     {RoleAdmin: true, RoleManager: true},
	ActionCustomerDetail:     {RoleAdmin: true, RoleManager: true, RoleOperator: true, RoleViewer: true},
	ActionProductCreate:      {RoleAdmin: true, RoleManager: true},
	ActionProductStockUpdate: {RoleAdmin: true, RoleManager: true, RoleOperator: true},
	ActionOrderCreate:        {RoleAdmin: true, RoleManager: true, RoleOperator: true},
	ActionOrderStatusUpdate:  {RoleAdmin: true, RoleManager: true, RoleOperator: true},
	ActionOrderCancel:        {RoleAdmin: true, RoleManager: true},
	ActionUserManage:         {RoleAdmin: true, RoleManager: true},
}

func TestCapabilityTable_Matrix(t *testing.T) {
	for action, byRole := range expected {
		for _, role := range Roles {
			user := &User{Profiles: []Role{role}}
			got := user.HasAnyProfile(AllowedRoles(action))
			if got != byRole[role] {
				t.Errorf("action %s, role %s: got %v, want %v", action, role, got, byRole[role])
			}
		}
	}
}

func TestCapabilityTable_CoversEveryAction(t *testing.T) {
	for action := range expected {
		if AllowedRoles(action) == nil {
			t.Errorf("action %s has no capability rule", action)
		}
	}
}

func TestAllowedRoles_UnknownAction(t *testing.T) {
	if roles := AllowedRoles(Action("does_not_exist")); roles != nil {
		t.Fatalf("unknown action resolved to %v, want nil", roles)
	}
	user := &User{Profiles: []Role{RoleAdmin}}
	if user.HasAnyProfile(AllowedRoles(Action("does_not_exist"))) {
		t.Fatalf("admin allowed on unknown action")
	}
}

func TestSummaryActions_FixedOrder(t *testing.T) {
	want := []Action{
		ActionViewData,
		ActionCustomerCreate,
		ActionProductCreate,
		ActionProductStockUpdate,
		ActionOrderCreate,
		ActionOrderStatusUpdate,
		ActionOrderCancel,
		ActionUserManage,
	}
	got := SummaryActions()
	if len(got) != len(want) {
		t.Fatalf("got %d summary actions, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("position %d: got %s, want %s", i, got[i], want[i])
		}
	}

	// The returned slice is a copy; mutating it must not change the order.
	got[0] = ActionUserManage
	if SummaryActions()[0] != ActionViewData {
		t.Fatalf("SummaryActions leaked internal slice")
	}
}

func TestParseRole(t *testing.T) {
	for _, role := range Roles {
		parsed, err := ParseRole(string(role))
		if err != nil || parsed != role {
			t.Fatalf("ParseRole(%s) = %v, %v", role, parsed, err)
		}
	}
	if _, err := ParseRole("superuser"); err == nil {
		t.Fatalf("expected error for unknown role")
	}
}

func TestActionLabel(t *testing.T) {
	if got := ActionOrderCancel.Label(); got != "Cancelar pedido" {
		t.Fatalf("unexpected label %q", got)
	}
	if got := Action("mystery").Label(); got != "mystery" {
		t.Fatalf("unknown action label %q, want the raw name", got)
	}
}

package domain

// Action is a named operation whose availability is gated by role
// membership. The set is closed and the capability table below must
// cover every member; the client-side table only drives affordance
// visibility — the server re-validates each call independently.
type Action string

const (
	ActionViewData           Action = "view_data"
	ActionCustomerCreate     Action = "customer_create"
	ActionCustomerDetail     Action = "customer_detail"
	ActionProductCreate      Action = "product_create"
	ActionProductStockUpdate Action = "product_stock_update"
	ActionOrderCreate        Action = "order_create"
	ActionOrderStatusUpdate  Action = "order_status_update"
	ActionOrderCancel        Action = "order_cancel"
	ActionUserManage         Action = "user_manage"
)

// capabilityRules maps every Action to the roles allowed to perform it.
// Static for the lifetime of the process; kept in sync with the server's
// policy by deployment discipline.
var capabilityRules = map[Action][]Role{
	ActionViewData:           {RoleAdmin, RoleManager, RoleOperator, RoleViewer},
	ActionCustomerCreate:     {RoleAdmin, RoleManager},
	ActionCustomerDetail:     {RoleAdmin, RoleManager, RoleOperator, RoleViewer},
	ActionProductCreate:      {RoleAdmin, RoleManager},
	ActionProductStockUpdate: {RoleAdmin, RoleManager, RoleOperator},
	ActionOrderCreate:        {RoleAdmin, RoleManager, RoleOperator},
	ActionOrderStatusUpdate:  {RoleAdmin, RoleManager, RoleOperator},
	ActionOrderCancel:        {RoleAdmin, RoleManager},
	ActionUserManage:         {RoleAdmin, RoleManager},
}

// AllowedRoles returns the roles permitted to perform the action.
// Unknown actions resolve to nil, so callers fail closed.
func AllowedRoles(a Action) []Role {
	return capabilityRules[a]
}

// summaryOrder fixes the order capability labels appear in user-facing
// summaries, independent of the profile set's internal ordering.
var summaryOrder = []Action{
	ActionViewData,
	ActionCustomerCreate,
	ActionProductCreate,
	ActionProductStockUpdate,
	ActionOrderCreate,
	ActionOrderStatusUpdate,
	ActionOrderCancel,
	ActionUserManage,
}

// actionLabels are the display strings of the original back-office UI,
// preserved verbatim.
var actionLabels = map[Action]string{
	ActionViewData:           "Leitura de dados",
	ActionCustomerCreate:     "Criar cliente",
	ActionCustomerDetail:     "Ver cliente",
	ActionProductCreate:      "Criar produto",
	ActionProductStockUpdate: "Atualizar estoque",
	ActionOrderCreate:        "Criar pedido",
	ActionOrderStatusUpdate:  "Alterar status do pedido",
	ActionOrderCancel:        "Cancelar pedido",
	ActionUserManage:         "Gerenciar usuários",
}

// SummaryActions returns the fixed priority order used for capability
// summaries.
func SummaryActions() []Action {
	out := make([]Action, len(summaryOrder))
	copy(out, summaryOrder)
	return out
}

// Label returns the human-readable name of the action.
func (a Action) Label() string {
	if l, ok := actionLabels[a]; ok {
		return l
	}
	return string(a)
}

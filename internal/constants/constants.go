package constants

// Approval status constants (shared by customers and orders)
const (
	ApprovalStatusPending  = "pending"
	ApprovalStatusApproved = "approved"
	ApprovalStatusRejected = "rejected"
)

// Order fulfillment status constants
const (
	FulfillmentStatusAwaitingWeighing = "awaiting_weighing"
	FulfillmentStatusAwaitingDelivery = "awaiting_delivery"
	FulfillmentStatusDelivered        = "delivered"
)

// Delivery mode constants
const (
	DeliveryModeShipping = "shipping"
	DeliveryModePickup   = "pickup"
)

// Price tier constants
const (
	PriceTierWholesale = "wholesale"
	PriceTierRetail    = "retail"
	PriceTierSpecial   = "special"
)

// User role constants
const (
	RoleAdmin    = "admin"
	RoleOperator = "operator"
	RoleRunner   = "runner"
)

// Customer category constants
const (
	CustomerCategoryButcher    = "butcher"
	CustomerCategoryRestaurant = "restaurant"
	CustomerCategoryWholesaler = "wholesaler"
	CustomerCategoryOther      = "other"
)

// Tax ID type constants
const (
	TaxIDTypeCUIT = "cuit"
	TaxIDTypeCUIL = "cuil"
	TaxIDTypeDNI  = "dni"
)

// Order board date window constants
const (
	DateWindowToday = "today"
	DateWindowWeek  = "week"
	DateWindowAll   = "all"
)

// Queue name constants
const (
	QueueDefault = "default"
)

// Async task type constants
const (
	TaskAuditEvent = "audit:event"
)

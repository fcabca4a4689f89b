package service

import "errors"

var (
	// ErrCustomerNotFound is returned when the referenced customer does not exist.
	ErrCustomerNotFound = errors.New("customer not found")
	// ErrOrderNotFound is returned when the referenced order does not exist.
	ErrOrderNotFound = errors.New("order not found")
	// ErrOrderItemNotFound is returned when a line item does not exist.
	ErrOrderItemNotFound = errors.New("order item not found")
	// ErrProductNotFound is returned when the referenced product does not exist.
	ErrProductNotFound = errors.New("product not found")
	// ErrUserNotFound is returned when the referenced user does not exist.
	ErrUserNotFound = errors.New("user not found")

	// ErrCustomerNameTaken is returned when another customer already uses the name.
	ErrCustomerNameTaken = errors.New("customer name already taken")
	// ErrCustomerNameRequired is returned when the customer name is blank.
	ErrCustomerNameRequired = errors.New("customer name required")
	// ErrTaxIDRequired is returned when the tax identifier is blank.
	ErrTaxIDRequired = errors.New("tax identifier required")
	// ErrProductNameRequired is returned when the product name is blank.
	ErrProductNameRequired = errors.New("product name required")
	// ErrCustomerNotApproved is returned when an order approval is refused
	// because the owning customer is not approved.
	ErrCustomerNotApproved = errors.New("customer not approved")

	// ErrNoItems is returned when an order carries no line items.
	ErrNoItems = errors.New("order has no items")
	// ErrInvalidQuantity is returned when a line quantity is not positive.
	ErrInvalidQuantity = errors.New("invalid item quantity")
	// ErrDuplicateProduct is returned when a product appears on two lines.
	ErrDuplicateProduct = errors.New("duplicate product in order")
	// ErrSpecialPriceRequired is returned when the special tier is chosen
	// without per-line prices.
	ErrSpecialPriceRequired = errors.New("special price required for every item")
	// ErrSpecialPriceNotAllowed is returned when per-line prices are sent
	// on a non-special tier.
	ErrSpecialPriceNotAllowed = errors.New("special price only allowed on special tier")
	// ErrWeightCountMismatch is returned when the weight list does not match
	// the order's line items one to one.
	ErrWeightCountMismatch = errors.New("weight count does not match item count")
	// ErrOrderDelivered is returned when weights are sent for an order that
	// already reached the terminal delivered state.
	ErrOrderDelivered = errors.New("order already delivered")
	// ErrInvalidPriceTier is returned when the price tier is not a known value.
	ErrInvalidPriceTier = errors.New("invalid price tier")
	// ErrInvalidDeliveryMode is returned when the delivery mode is not a known value.
	ErrInvalidDeliveryMode = errors.New("invalid delivery mode")

	// ErrUnauthorized is returned when the session role may not perform the operation.
	ErrUnauthorized = errors.New("operation not allowed for role")
	// ErrInvalidCredentials is returned on a failed login.
	ErrInvalidCredentials = errors.New("invalid username or password")
	// ErrUserDisabled is returned when a disabled account tries to log in.
	ErrUserDisabled = errors.New("user disabled")
	// ErrUsernameTaken is returned when the username already exists.
	ErrUsernameTaken = errors.New("username already taken")
)

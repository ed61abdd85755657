package handlers

// HandlerBundle groups the resource handlers for route registration.
type HandlerBundle struct {
	Booking  *BookingHandler
	Review   *ReviewHandler
	Purchase *PurchaseHandler
}

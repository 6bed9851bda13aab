package booking

// SubscriberDiscountRate is the share of the service price waived for active subscribers.
const SubscriberDiscountRate = 0.10

// Quote prices a booking. finalPrice is always totalPrice - discount.
func Quote(servicePrice float64, activeSubscriber bool) (total, discount, final float64) {
	total = servicePrice
	if activeSubscriber {
		discount = total * SubscriberDiscountRate
	}
	return total, discount, total - discount
}

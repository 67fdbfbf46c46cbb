package shipment

import (
	"fmt"

	"warehouse/internal/pkg/errs"
)

// DeliveryStatus represents the delivery progress of a shipment.
//
// Unlike the order lifecycle there is no transition graph here: carriers
// report progress out of order (returns, holds, redeliveries), so any
// defined status may follow any other. Validation is pure membership.
type DeliveryStatus int

const (
	// UnknownDelivery represents an invalid or undefined delivery status.
	// This value (0) helps catch uninitialized DeliveryStatus values.
	UnknownDelivery DeliveryStatus = iota

	// NotShipped is the initial status of a freshly created shipment.
	NotShipped

	// InTransit indicates the shipment has left the warehouse.
	InTransit

	// Delivered indicates the shipment reached the customer.
	// The first transition into this status stamps the shipped date.
	Delivered

	// Returned indicates the shipment came back to the warehouse.
	Returned

	// OnHold indicates delivery is paused.
	OnHold
)

func getDeliveryStatusStrings() map[DeliveryStatus]string {
	return map[DeliveryStatus]string{
		UnknownDelivery: "unknown",
		NotShipped:      "not shipped",
		InTransit:       "in transit",
		Delivered:       "delivered",
		Returned:        "returned",
		OnHold:          "on hold",
	}
}

func getValidDeliveryStatusStrings() map[DeliveryStatus]string {
	//nolint:exhaustive // UnknownDelivery is intentionally excluded as it's invalid
	return map[DeliveryStatus]string{
		NotShipped: "not shipped",
		InTransit:  "in transit",
		Delivered:  "delivered",
		Returned:   "returned",
		OnHold:     "on hold",
	}
}

// DeliveryStatusFromString parses a delivery status name as received from an
// external caller. Values outside the defined set are rejected at the boundary.
func DeliveryStatusFromString(s string) (DeliveryStatus, error) {
	for status, name := range getValidDeliveryStatusStrings() {
		if name == s {
			return status, nil
		}
	}
	return UnknownDelivery, errs.NewValueIsInvalidErrorWithCause(
		"deliveryStatus",
		fmt.Errorf("%q is not a valid delivery status", s),
	)
}

// Validate checks if the DeliveryStatus value is one of the defined statuses.
func (s DeliveryStatus) Validate() error {
	if _, ok := getValidDeliveryStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"deliveryStatus",
			fmt.Errorf("%d is not a valid delivery status", s),
		)
	}
	return nil
}

// String returns the human-readable name of the status.
// It implements fmt.Stringer and is safe to call on invalid values.
func (s DeliveryStatus) String() string {
	if str, ok := getDeliveryStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

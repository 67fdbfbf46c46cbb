// Package shipment provides the Shipment aggregate tracking delivery of
// fulfilled orders.
//
// A shipment is created only by the fulfillment use case and references its
// order one-to-one. Delivery progress is a flat membership-validated status
// set rather than a state machine, since carriers report progress out of
// order. The first move into "delivered" stamps the shipped date; the stamp
// survives later status changes unless explicitly cleared.
package shipment

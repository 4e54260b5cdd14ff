package ports

import "context"

// Routing keys for the two stages of the parcel processing pipeline.
// The broker routes each message to exactly one durable queue by these keys.
const (
	// RoutingKeyParcelCreate carries registration data toward the consumer
	// that inserts the parcel row.
	RoutingKeyParcelCreate = "package.create"

	// RoutingKeyParcelCalculate carries a parcel identifier toward the
	// consumer that computes and stores the shipping cost.
	RoutingKeyParcelCalculate = "package.calculate"
)

// Message is the closed set of payloads that travel through the broker.
// Exactly two implementations exist: CreateParcelMessage and
// CalculateCostMessage. The consumer dispatches on the concrete type, so
// adding a message kind is a compile-time-visible change.
type Message interface {
	RoutingKey() string
}

// ParcelData is the registration payload embedded in a CreateParcelMessage.
// Field names are part of the wire contract.
type ParcelData struct {
	Name          string  `json:"name"`
	Weight        float64 `json:"weight"`
	PriceUSD      float64 `json:"price_usd"`
	PackageTypeID string  `json:"package_type_id"`
	UserSessionID string  `json:"user_session_id"`
}

// CreateParcelMessage asks the consumer to create a parcel row from
// registration data and chain a costing request for it.
type CreateParcelMessage struct {
	PackageData ParcelData `json:"package_data"`
}

// RoutingKey implements Message.
func (CreateParcelMessage) RoutingKey() string {
	return RoutingKeyParcelCreate
}

// CalculateCostMessage asks the consumer to compute and persist the shipping
// cost for an existing parcel.
type CalculateCostMessage struct {
	PackageID string `json:"package_id"`
}

// RoutingKey implements Message.
func (CalculateCostMessage) RoutingKey() string {
	return RoutingKeyParcelCalculate
}

// MessagePublisher publishes work items onto the broker under the message's
// routing key. Messages are marked persistent; publishing does not wait for
// any consumer acknowledgment.
//
// A returned error means the message is not in the broker. How that is
// surfaced is the caller's decision: the HTTP-facing registration turns it
// into a server error, while the consumer's chained costing publish logs it
// and relies on the reconciliation sweep.
type MessagePublisher interface {
	Publish(ctx context.Context, msg Message) error
}

package models

// Entities reported in domain events
const (
	EntityCat  = "cat"
	EntityUser = "user"
)

// Operations reported in domain events
const (
	OperationCreated = "created"
	OperationUpdated = "updated"
	OperationDeleted = "deleted"
)

// Event is published after a successful mutation
type Event struct {
	EventID   string `json:"event_id"`  // Unique event identifier
	Timestamp int64  `json:"timestamp"` // Unix seconds
	Entity    string `json:"entity"`    // cat or user
	EntityID  string `json:"entity_id"` // Identifier of the mutated record
	ActorID   string `json:"actor_id"`  // Identifier of the acting user, empty for anonymous
	Operation string `json:"operation"` // created, updated or deleted
}

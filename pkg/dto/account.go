package dto

// Kind is the two-bucket classification stored on disk.
type Kind string

const (
	// KindPropria covers the user's own accounts (checking, savings, investment, cash).
	KindPropria Kind = "propria"
	// KindExterna covers external accounts such as credit cards.
	KindExterna Kind = "externa"
)

// TimeLayout is the ISO-8601 layout used for CreatedAt.
const TimeLayout = "2006-01-02T15:04:05.000Z07:00"

// Account is the persistence shape of an account. It is coarser than the
// domain entity: Type collapses five domain types into two kinds, Saldo is
// nil for external accounts, and there is no active flag, currency,
// description or color.
type Account struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Type      Kind     `json:"type"`
	Saldo     *float64 `json:"saldo"`
	IsDefault bool     `json:"isDefault"`
	CreatedAt string   `json:"createdAt"`
}

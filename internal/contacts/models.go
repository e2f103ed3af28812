package contacts

import "time"

// Contact is a callable phone identity owned by one user account.
//
// Phone is stored free-form, exactly as entered in the console. It is not
// unique and not canonical; matching always goes through phone.Normalize.
type Contact struct {
	ID     string `json:"id" db:"id"`
	UserID string `json:"user_id" db:"user_id"`

	Name    string `json:"name" db:"name"`
	Email   string `json:"email" db:"email"`
	Phone   string `json:"phone" db:"phone"`
	Address string `json:"address" db:"address"`
	City    string `json:"city" db:"city"`
	State   string `json:"state" db:"state"`
	ZipCode string `json:"zip_code" db:"zip_code"`

	Status ContactStatus `json:"status" db:"status"`

	// LastCalled is touched by call ingestion; nil until the first call.
	LastCalled *time.Time `json:"last_called,omitempty" db:"last_called"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

type ContactStatus string

const (
	ContactStatusActive   ContactStatus = "active"
	ContactStatusInactive ContactStatus = "inactive"
)

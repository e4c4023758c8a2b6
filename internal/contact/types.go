package contact

import "time"

// Message is a single contact form submission record.
type Message struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject,omitempty"`
	Body      string    `json:"body"`
	Relayed   bool      `json:"relayed"`
	CreatedAt time.Time `json:"created_at"`
}

// Result is the outcome of a submission, returned to the page script. The
// message text is the author-configured toast copy.
type Result struct {
	Status  string `json:"status"` // "ok" or "error"
	Message string `json:"message"`
}

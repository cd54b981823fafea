package engagement

import "time"

// SubmitReviewInput is a review submission from the reviews page
type SubmitReviewInput struct {
	Author string
	Body   string
}

// ReviewResponse is a stored review rendered on the reviews page
type ReviewResponse struct {
	ID        string    `json:"id"`
	Author    string    `json:"author"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
}

// SubmitContactInput is a message from the contact form
type SubmitContactInput struct {
	Name    string
	Email   string
	Message string
}

// ContactResponse is a stored contact-form message
type ContactResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email,omitempty"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

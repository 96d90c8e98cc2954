package domain

// Notification is an in-app message shown on a user's dashboard.
type Notification struct {
	ID        int32  `json:"id"`
	UserID    int32  `json:"user_id"`
	Title     string `json:"title"`
	Message   string `json:"message"`
	Read      bool   `json:"read"`
	CreatedOn string `json:"created_on"`
}

package model

// User defines an account. Username and email are unique case-insensitively.
type User struct {
	ID             string `json:"id"`
	Username       string `json:"username"`
	Email          string `json:"email"`
	PasswordHash   string `json:"passwordHash"`
	ProfilePicture string `json:"profilePicture,omitempty"`
	CreatedAt      int64  `json:"createdAt"`
}

// Profile is the client-facing view of a user.
type Profile struct {
	ID             string `json:"id"`
	Username       string `json:"username"`
	Email          string `json:"email"`
	ProfilePicture string `json:"profilePicture,omitempty"`
	CreatedAt      int64  `json:"createdAt"`
}

// Profile returns the user without credentials.
func (u *User) Profile() Profile {
	return Profile{
		ID:             u.ID,
		Username:       u.Username,
		Email:          u.Email,
		ProfilePicture: u.ProfilePicture,
		CreatedAt:      u.CreatedAt,
	}
}

// PasswordReset defines a pending password reset.
type PasswordReset struct {
	UserID    string `json:"userId"`
	ExpiresAt int64  `json:"expiresAt"`
}

// Comment defines a comment left on an entry.
type Comment struct {
	ID        string `json:"id"`
	MovieID   int64  `json:"movieId"`
	Username  string `json:"username"`
	Text      string `json:"text"`
	Timestamp int64  `json:"timestamp"`
}

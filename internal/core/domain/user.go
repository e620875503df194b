package domain

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User models an account provisioned from the external identity provider.
// The record is keyed internally by ID and externally by ExternalID (the
// provider subject). Role and IsActive may be absent on documents written
// before those fields existed; read them through the Effective helpers.
type User struct {
	ID         string `json:"id" bson:"_id,omitempty"`
	ExternalID string `json:"externalId" bson:"external_id"`
	Email      string `json:"email" bson:"email"`
	Name       string `json:"name,omitempty" bson:"name,omitempty"`
	ImageURL   string `json:"imageUrl,omitempty" bson:"image_url,omitempty"`
	Role       string `json:"role,omitempty" bson:"role,omitempty"`
	IsActive   *bool  `json:"isActive,omitempty" bson:"is_active,omitempty"`
	CreatedAt  int64  `json:"createdAt" bson:"created_at"` // epoch millis
}

// EffectiveRole defaults absent roles to the plain user role.
func (u *User) EffectiveRole() string {
	if u.Role == "" {
		return RoleUser
	}
	return u.Role
}

// EffectiveActive defaults absent activity flags to active.
func (u *User) EffectiveActive() bool {
	if u.IsActive == nil {
		return true
	}
	return *u.IsActive
}

// IsAdmin reports whether the user currently holds admin privileges.
// A deactivated admin has none.
func (u *User) IsAdmin() bool {
	return u.EffectiveRole() == RoleAdmin && u.EffectiveActive()
}

// Active returns a pointer suitable for User.IsActive.
func Active(v bool) *bool {
	return &v
}

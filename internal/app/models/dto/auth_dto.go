package dto

// LoginRequest carries the credentials for either login route
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// LoginResponse is the payload returned on successful login
type LoginResponse struct {
	User     interface{} `json:"user"`
	Token    string      `json:"token"`
	UserType string      `json:"userType"`
}

// ProfileResponse wraps the authenticated principal for GET /auth/profile
type ProfileResponse struct {
	User     interface{} `json:"user"`
	UserType string      `json:"userType"`
}

// UpdateProfileRequest is the self-service patch. Password, email and
// business identifiers are stripped by construction: the shape simply does
// not carry them, whatever the caller sent.
type UpdateProfileRequest struct {
	FirstName *string         `json:"firstName" binding:"omitempty,max=50"`
	LastName  *string         `json:"lastName" binding:"omitempty,max=50"`
	Phone     *string         `json:"phone" binding:"omitempty,len=10,numeric"`
	Address   *AddressRequest `json:"address" binding:"omitempty"`
}

// AddressRequest is the embedded address shape accepted on writes
type AddressRequest struct {
	Street  string `json:"street" binding:"omitempty"`
	City    string `json:"city" binding:"omitempty"`
	State   string `json:"state" binding:"omitempty"`
	Pincode string `json:"pincode" binding:"omitempty,len=6,numeric"`
}

// GuardianRequest is the student's guardian shape accepted on writes
type GuardianRequest struct {
	Name         string `json:"name" binding:"omitempty"`
	Relationship string `json:"relationship" binding:"omitempty"`
	Phone        string `json:"phone" binding:"omitempty,len=10,numeric"`
	Email        string `json:"email" binding:"omitempty,email"`
}

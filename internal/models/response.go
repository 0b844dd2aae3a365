package models

// MessageResponse is a bare message body
// swagger:model MessageResponse
type MessageResponse struct {
	// example: routes: auth, user, cat
	Message string `json:"message"`
}

// ErrorResponse is returned for every failed request
// swagger:model ErrorResponse
type ErrorResponse struct {
	// example: Cat not found
	Message string `json:"message"`
}

// CatMessageResponse wraps a mutated cat
// swagger:model CatMessageResponse
type CatMessageResponse struct {
	// example: Cat created
	Message string `json:"message"`
	Data    *Cat   `json:"data"`
}

// UserMessageResponse wraps a mutated user
// swagger:model UserMessageResponse
type UserMessageResponse struct {
	// example: User created
	Message string     `json:"message"`
	Data    UserOutput `json:"data"`
}

// LoginResponse is returned after a successful login
// swagger:model LoginResponse
type LoginResponse struct {
	// example: Login successful
	Message string `json:"message"`
	// example: JWT_TOKEN
	Token string     `json:"token"`
	User  UserOutput `json:"user"`
}

package model

// GenerateRequest represents a password generation request.
// Pointer fields distinguish a missing value (nil -> default) from an explicit zero.
type GenerateRequest struct {
	Length    int   `json:"length"`
	Uppercase *bool `json:"uppercase"`
	Lowercase *bool `json:"lowercase"`
	Numbers   *bool `json:"numbers"`
	Symbols   *bool `json:"symbols"`
	MinOfEach *int  `json:"min_of_each"`
	Count     int   `json:"count"`
	Hash      bool  `json:"hash"`
}

// GeneratedPassword is a single generated password, optionally with its Argon2id hash.
type GeneratedPassword struct {
	Password string `json:"password"`
	Hash     string `json:"hash,omitempty"`
}

// GenerateResponse represents a password generation response.
type GenerateResponse struct {
	Passwords []GeneratedPassword `json:"passwords"`
	Length    int                 `json:"length"`
}

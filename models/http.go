package models

// RegisterRequest is the body of POST /api/register.
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest is the body of POST /api/login.
//
// The caller may identify the account either by username or by e-mail;
// whichever non-empty value is present is used as the login identifier.
type LoginRequest struct {
	Username string `json:"username,omitempty"`
	Email    string `json:"email,omitempty"`
	Password string `json:"password"`
}

// Identifier returns the login identifier supplied in the request,
// preferring the username when both fields are set.
func (r LoginRequest) Identifier() string {
	if r.Username != "" {
		return r.Username
	}
	return r.Email
}

// LoginResponse is the success body of POST /api/login: the sanitized
// account plus a freshly issued session token.
type LoginResponse struct {
	Account Account `json:"account"`
	Token   string  `json:"token"`
}

// CreateRecipeRequest is the body of POST /api/recipes.
//
// Ingredients is a pointer so that an absent field can be told apart from an
// explicitly empty array during validation.
type CreateRecipeRequest struct {
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Ingredients  *[]string `json:"ingredients"`
	Instructions string    `json:"instructions"`
}

// UpdateRecipeRequest is the body of PATCH /api/recipes/{id}.
//
// All fields are pointers so that only the keys present in the JSON body are
// applied; a request carrying none of them is rejected.
type UpdateRecipeRequest struct {
	Title        *string   `json:"title,omitempty"`
	Description  *string   `json:"description,omitempty"`
	Ingredients  *[]string `json:"ingredients,omitempty"`
	Instructions *string   `json:"instructions,omitempty"`
}

// MessageResponse is the uniform JSON envelope for plain status and error
// responses: {"message": "..."}.
type MessageResponse struct {
	Message string `json:"message"`
}

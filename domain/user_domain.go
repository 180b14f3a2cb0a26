package domain

var (
	MessageSuccessRegister   = "user registered successfully"
	MessageSuccessLogin      = "token created successfully"
	MessageSuccessGetUser    = "success get user"
	MessageSuccessUpdateUser = "user updated successfully"

	MessageFailedRegister   = "failed to register user"
	MessageFailedLogin      = "failed to create token"
	MessageFailedGetUser    = "failed to get user"
	MessageFailedUpdateUser = "failed to update user"

	ErrEmailRequired      = NewValidationError("users must have an email address")
	ErrEmailAlreadyExists = NewValidationError("user with this email already exists")
	ErrPasswordTooLong    = NewValidationError("password is too long")
	ErrInvalidCredentials = NewValidationError("unable to authenticate with provided credentials")
	ErrUserNotFound       = NewNotFoundError("user not found")
	ErrUserInactive       = NewUnauthenticatedError("user inactive or deleted")
	ErrTokenExpired       = NewUnauthenticatedError("token expired")
	ErrTokenInvalid       = NewUnauthenticatedError("token invalid")
)

type (
	// CreateUserParams carries the optional profile fields accepted by the
	// user factory next to email and password.
	CreateUserParams struct {
		Name string
	}

	RegisterRequest struct {
		Email    string `json:"email" validate:"required,email,max=255"`
		Password string `json:"password" validate:"required,min=5,max=72"`
		Name     string `json:"name" validate:"max=255"`
	}

	LoginRequest struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}

	LoginResponse struct {
		Token string `json:"token"`
	}

	UpdateUserRequest struct {
		Email    *string `json:"email" validate:"omitempty,email,max=255"`
		Password *string `json:"password" validate:"omitempty,min=5,max=72"`
		Name     *string `json:"name" validate:"omitempty,max=255"`
	}

	UserResponse struct {
		Email string `json:"email"`
		Name  string `json:"name"`
	}
)

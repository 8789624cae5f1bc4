package apperr

// Domain errors — returned by the store and handlers, mapped to HTTP
// statuses at the gateway boundary.
var (
	ErrDuplicateEmail     = New(CodeAlreadyExists, "email already registered")
	ErrInvalidCredentials = New(CodeUnauthenticated, "invalid credentials")
	ErrInvalidToken       = New(CodeUnauthenticated, "invalid token")
	ErrUserNotFound       = New(CodeNotFound, "user not found")
	ErrReceiverNotFound   = New(CodeNotFound, "receiver not found")
	ErrSelfMessage        = New(CodeInvalidArgument, "cannot message yourself")
)

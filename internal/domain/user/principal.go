package user

// Principal identifies the authenticated caller as reported by the account
// service's token introspection endpoint.
type Principal struct {
	UserID string
	Email  string
}

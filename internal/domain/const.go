package domain

const (
	APIKeyCtxKey = "gp-apiKey"
)

const (
	AuthorizationHeader = "Authorization"
)

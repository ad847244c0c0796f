package contextkeys

type contextKey string

const AuthKey contextKey = "Auth"

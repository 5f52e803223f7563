package config

// GetAuthSkipperPaths returns paths served without authentication.
func GetAuthSkipperPaths() []string {
	// Public storefront surface: catalog is read-only, auth endpoints must be
	// reachable before a session exists.
	return []string{
		"/api/products",
		"/api/products/:id",
		"/api/products/search",
		"/api/auth/register",
		"/api/auth/login",
	}
}

// internal/app/bootstrap/appconfig.go
package bootstrap

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// WAFFLE's CoreConfig handles framework-level settings (HTTP ports, TLS,
// logging level, request limits); AppConfig carries everything specific to
// the BookWorm backend. Values come from environment variables
// (BOOKWORM_*), configuration files, or command-line flags, merged in
// LoadConfig.
type AppConfig struct {
	// MongoDB connection configuration
	MongoURI         string // MongoDB connection string (e.g., mongodb://localhost:27017)
	MongoDatabase    string // Database name within MongoDB
	MongoMaxPoolSize uint64 // Max connection pool size
	MongoMinPoolSize uint64 // Min connection pool size

	// CORS configuration for the browser client
	CORSAllowedOrigins []string // Origins allowed to call the API ("*" for any)

	// SuperAdmin bootstrap: this email is promoted to admin at startup so a
	// fresh deployment has at least one admin account.
	SuperAdminEmail string
}

package config

type SecurityLevel int

const (
	SecurityPublic SecurityLevel = iota // No authentication
	SecurityAccess                      // Access token required
)

// RouteSecurityConfig maps named HTTP routes to their required security level
var RouteSecurityConfig = map[string]SecurityLevel{
	"healthz": SecurityPublic,
	"metrics": SecurityPublic,

	// Invoice payments
	"payments.create":     SecurityAccess,
	"payments.due":        SecurityAccess,
	"payments.byContract": SecurityAccess,
	"payments.byHome":     SecurityAccess,
	"payments.get":        SecurityAccess,
	"payments.update":     SecurityAccess,
	"payments.markPaid":   SecurityAccess,
	"payments.delete":     SecurityAccess,
	"payments.generate":   SecurityAccess,

	// Reminders
	"reminders.dispatch": SecurityAccess,

	// Statistics
	"statistics.revenue":         SecurityAccess,
	"statistics.revenueSources":  SecurityAccess,
	"statistics.payments":        SecurityAccess,
	"statistics.paymentsMonthly": SecurityAccess,
	"statistics.paymentStatus":   SecurityAccess,
	"statistics.duePayments":     SecurityAccess,
	"statistics.dashboard":       SecurityAccess,
}

// GetSecurityLevel returns the security level for a given route name
func GetSecurityLevel(route string) SecurityLevel {
	if level, exists := RouteSecurityConfig[route]; exists {
		return level
	}
	// Default to highest security for unknown routes
	return SecurityAccess
}

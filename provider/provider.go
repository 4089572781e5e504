// Package provider defines the external translation service callers.
package provider

import "github.com/VerbaLabs/doctrans"

// ServiceCaller is the interface for external translation backends.
// This is an alias to the main package interface for convenience.
type ServiceCaller = doctrans.ServiceCaller

// Request is an alias to the main package type.
type Request = doctrans.Request

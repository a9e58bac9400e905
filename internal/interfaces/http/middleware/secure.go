package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/unrolled/secure"
)

// SecurityConfig holds configuration for security headers
type SecurityConfig struct {
	// HSTS is only sent when enabled; it requires TLS in front of the API
	HSTSEnabled           bool
	HSTSMaxAge            int64
	HSTSIncludeSubdomains bool
	SSLRedirect           bool
	ContentSecurityPolicy string
	PermissionsPolicy     string
	// IsDevelopment turns every check off
	IsDevelopment bool
}

// DefaultSecurityConfig returns the headers for a JSON and PDF API
func DefaultSecurityConfig() SecurityConfig {
	return SecurityConfig{
		HSTSMaxAge:            31536000,
		HSTSIncludeSubdomains: true,
		ContentSecurityPolicy: "default-src 'none'; frame-ancestors 'none'; base-uri 'none'",
		PermissionsPolicy:     "camera=(), geolocation=(), microphone=(), payment=(), usb=()",
	}
}

func (cfg SecurityConfig) options() secure.Options {
	opts := secure.Options{
		FrameDeny:             true,
		ContentTypeNosniff:    true,
		BrowserXssFilter:      true,
		ReferrerPolicy:        "strict-origin-when-cross-origin",
		ContentSecurityPolicy: cfg.ContentSecurityPolicy,
		PermissionsPolicy:     cfg.PermissionsPolicy,
		SSLRedirect:           cfg.SSLRedirect,
		SSLProxyHeaders:       map[string]string{"X-Forwarded-Proto": "https"},
		IsDevelopment:         cfg.IsDevelopment,
	}
	if cfg.HSTSEnabled {
		opts.STSSeconds = cfg.HSTSMaxAge
		opts.STSIncludeSubdomains = cfg.HSTSIncludeSubdomains
		opts.ForceSTSHeader = true
	}
	return opts
}

// SecureHeaders adds the security headers and, when configured, redirects
// plain HTTP to HTTPS
func SecureHeaders(cfg SecurityConfig) gin.HandlerFunc {
	s := secure.New(cfg.options())
	return func(c *gin.Context) {
		if err := s.Process(c.Writer, c.Request); err != nil {
			// the response (redirect or rejection) is already written
			c.Abort()
			return
		}
		c.Next()
	}
}

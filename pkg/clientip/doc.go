// Package clientip extracts the client IP address from an HTTP request.
//
// GetIP checks these sources in order and returns the first valid address:
//  1. CF-Connecting-IP
//  2. DO-Connecting-IP
//  3. X-Forwarded-For (leftmost entry only)
//  4. X-Real-IP
//  5. the host part of RemoteAddr
//
// Unparsable and unspecified addresses (0.0.0.0, ::) are skipped. Results are
// normalized with net.IP.String. When nothing valid is found the raw
// RemoteAddr is returned unchanged.
//
// Proxy headers are trusted as sent. The accesslog package exposes GetIP as
// the clientIp field.
package clientip

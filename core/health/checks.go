package health

import (
	"context"
	"fmt"
)

// ResolveFunc looks up a request path and reports whether it can be served.
type ResolveFunc func(requestPath string) error

// BundleCheck reports an error when requestPath no longer resolves,
// for example because the bundle was built without its index page.
func BundleCheck(resolve ResolveFunc, requestPath string) func(context.Context) error {
	return func(context.Context) error {
		if err := resolve(requestPath); err != nil {
			return fmt.Errorf("bundle resource %q: %w", requestPath, err)
		}
		return nil
	}
}

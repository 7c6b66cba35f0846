// Package handler defines the typed handler contract used by routers that carry
// a custom request context.
//
// A HandlerFunc receives the context and returns a Response; the Response is
// executed later with the real writer and request:
//
//	func hello[C handler.Context](ctx C) handler.Response {
//		return func(w http.ResponseWriter, r *http.Request) error {
//			_, err := w.Write([]byte("hello"))
//			return err
//		}
//	}
//
// The static package exposes its bundle through this contract with static.Handler.
package handler

// Package signup implements the demo sign-up form. Submitting it validates
// the fields, calls a Registrar and reports the outcome as toasts.
package signup

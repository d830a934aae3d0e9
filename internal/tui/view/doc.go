// Package view renders the static chrome of the toaster demo: the header
// with its mode badge, and the layout that places the sign-up form next to
// the toast stack.
package view

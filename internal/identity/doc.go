// Package identity confirms who is signing in.
//
// Two providers are available. The password provider checks an email and
// bcrypt-hashed password against the local user store. The Firebase
// provider verifies a Firebase ID token and maps its uid to a local account,
// provisioning a pending driver the first time an unknown subject signs in.
//
// Providers only establish identity. Whether the account may use the
// service (status, role) is decided by the caller.
package identity

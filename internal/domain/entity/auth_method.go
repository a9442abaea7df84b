// Package entity contains the core business objects of the project.
package entity

import "slices"

// AuthMethod represents a credential mechanism linked to a user account.
type AuthMethod string

const (
	// MethodEmail indicates an email/password credential.
	MethodEmail AuthMethod = "email"
	// MethodGitHub indicates a linked GitHub OAuth account.
	MethodGitHub AuthMethod = "github"
	// MethodGoogle indicates a linked Google OAuth account.
	MethodGoogle AuthMethod = "google"
)

// String returns the string representation of the AuthMethod.
func (m AuthMethod) String() string {
	return string(m)
}

// IsValid checks if the AuthMethod is a known value.
func (m AuthMethod) IsValid() bool {
	switch m {
	case MethodEmail, MethodGitHub, MethodGoogle:
		return true
	default:
		return false
	}
}

// IsOAuth reports whether the method is backed by an external OAuth provider.
func (m AuthMethod) IsOAuth() bool {
	return m == MethodGitHub || m == MethodGoogle
}

// AuthMethods is the set of credential mechanisms linked to one user.
type AuthMethods []AuthMethod

// Contains checks if the set contains a specific method.
func (ms AuthMethods) Contains(method AuthMethod) bool {
	return slices.Contains(ms, method)
}

// Add returns the set with method appended. Adding an already-present
// method is a no-op so concurrent linkers can race safely.
func (ms AuthMethods) Add(method AuthMethod) AuthMethods {
	if ms.Contains(method) {
		return ms
	}

	return append(ms, method)
}

// ToStrings converts the set to []string for persistence.
func (ms AuthMethods) ToStrings() []string {
	result := make([]string, len(ms))
	for i, m := range ms {
		result[i] = m.String()
	}

	return result
}

// AuthMethodsFromStrings converts []string to AuthMethods, filtering out unknown tags.
func AuthMethodsFromStrings(ss []string) AuthMethods {
	result := make(AuthMethods, 0, len(ss))
	for _, s := range ss {
		method := AuthMethod(s)
		if method.IsValid() {
			result = append(result, method)
		}
	}

	return result
}

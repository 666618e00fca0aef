package repositories

// CredentialRepository stores registry credentials where buf can discover them.
type CredentialRepository interface {
	// WriteNetrc writes a netrc file for machine into dir and returns its path.
	WriteNetrc(dir, machine, token string) (string, error)
}

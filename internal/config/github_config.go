package config

type GithubConfig interface {
	GetGithubClientID() string
	GetGithubClientSecret() string
	GetGithubCallbackURL() string
}

type Github struct{}

var _ GithubConfig = Github{}

func (Github) GetGithubClientID() string {
	return GetEnv("GITHUB_CLIENT_ID", "")
}

func (Github) GetGithubClientSecret() string {
	return GetEnv("GITHUB_CLIENT_SECRET", "")
}

// GetGithubCallbackURL returns the redirect URI registered with the GitHub
// OAuth App. It must match the registration exactly or GitHub rejects the
// authorization request.
func (Github) GetGithubCallbackURL() string {
	return GetEnv("GITHUB_CALLBACK_URL", "http://localhost:8080/api/auth/github/callback")
}

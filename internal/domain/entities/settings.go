package entities

import (
	"github.com/spf13/viper"
)

// Setting keys. Each key is also a flag name, and as a GitHub Action input it
// is read from INPUT_<KEY> with dashes replaced by underscores.
const (
	KeyInput         = "input"
	KeyAgainst       = "against"
	KeySince         = "since"
	KeyBufToken      = "buf-token"
	KeyBufRemote     = "buf-remote"
	KeyHTTPSUsername = "buf-input-https-username"
	KeyHTTPSPassword = "buf-input-https-password"
	KeyGitHubToken   = "github-token"
	KeyComment       = "comment"
	KeyBufPath       = "buf-path"
)

// DefaultBufRemote is the registry the netrc entry is written for.
const DefaultBufRemote = "buf.build"

// Settings holds everything a single breaking-change run needs.
type Settings struct {
	Input   string
	Against string
	Since   string

	BufToken      string
	BufRemote     string
	HTTPSUsername string
	HTTPSPassword string

	GitHubToken string
	Comment     bool

	// BufPath overrides the buf binary lookup on PATH.
	BufPath string

	Runner Runner
}

// Runner describes the CI job the run executes in.
type Runner struct {
	// TempDir is the runner-provided temporary directory (RUNNER_TEMP).
	TempDir string
	// Owner and Repository come from GITHUB_REPOSITORY.
	Owner      string
	Repository string
	// PullRequest is nil when the job was not triggered by a pull request.
	PullRequest *PullRequestTarget
}

// PullRequestTarget identifies the pull request that comments are posted to.
type PullRequestTarget struct {
	Owner      string
	Repository string
	Number     int
	HeadSHA    string
}

// NewSettings reads the settings from a viper instance bound to the command
// flags and the action inputs.
func NewSettings(v *viper.Viper, runner Runner) *Settings {
	remote := v.GetString(KeyBufRemote)
	if remote == "" {
		remote = DefaultBufRemote
	}

	return &Settings{
		Input:         v.GetString(KeyInput),
		Against:       v.GetString(KeyAgainst),
		Since:         v.GetString(KeySince),
		BufToken:      v.GetString(KeyBufToken),
		BufRemote:     remote,
		HTTPSUsername: v.GetString(KeyHTTPSUsername),
		HTTPSPassword: v.GetString(KeyHTTPSPassword),
		GitHubToken:   v.GetString(KeyGitHubToken),
		Comment:       v.GetBool(KeyComment),
		BufPath:       v.GetString(KeyBufPath),
		Runner:        runner,
	}
}

// Incremental reports whether only changes introduced since an older baseline
// should be reported.
func (s *Settings) Incremental() bool {
	return s.Since != ""
}

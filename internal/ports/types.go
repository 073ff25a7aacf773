package ports

// SearchPage is one page of a search query as returned by the provider.
// No behavior here. Normalization into domain records lives in the app layer.
type SearchPage struct {
	Nodes       []RawNode
	HasNextPage bool
	EndCursor   *string
}

// RawNode is a loosely-typed pull request node as it arrives from the GraphQL
// search. Pointer fields are nullable upstream; the app layer owns defaulting.
type RawNode struct {
	Title          string         `json:"title"`
	URL            string         `json:"url"`
	Number         int            `json:"number"`
	IsDraft        bool           `json:"isDraft"`
	CreatedAt      string         `json:"createdAt"`
	UpdatedAt      string         `json:"updatedAt"`
	HeadRefName    *string        `json:"headRefName"`
	ReviewDecision *string        `json:"reviewDecision"`
	Repository     *RawRepository `json:"repository"`
	Author         *RawActor      `json:"author"`
	Commits        *RawCommits    `json:"commits"`
}

// RawRepository is the repository a node belongs to.
type RawRepository struct {
	NameWithOwner string `json:"nameWithOwner"`
}

// RawActor is a node author. GitHub returns null for deleted accounts.
type RawActor struct {
	Login     string `json:"login"`
	AvatarURL string `json:"avatarUrl"`
}

// RawCommits holds the last commit of the pull request (commits(last: 1)).
type RawCommits struct {
	Nodes []RawCommitNode `json:"nodes"`
}

// RawCommitNode wraps a commit in the connection.
type RawCommitNode struct {
	Commit RawCommit `json:"commit"`
}

// RawCommit carries the aggregated check state of a commit.
type RawCommit struct {
	StatusCheckRollup *RawStatusRollup `json:"statusCheckRollup"`
}

// RawStatusRollup is the combined status of all checks on a commit.
type RawStatusRollup struct {
	State string `json:"state"`
}

// Profile is the authenticated account as reported by the provider.
type Profile struct {
	Login     string `json:"login"`
	AvatarURL string `json:"avatar_url"`
}

// AuthStart is the outcome of the Start -> AwaitingProviderCallback transition.
type AuthStart struct {
	// RedirectURL is where the user-agent must be sent
	RedirectURL string
	// StateCookie binds the anti-forgery nonce; the inbound adapter stores it client-side
	StateCookie string
}

// CallbackParams is what the provider hands back on the callback request.
type CallbackParams struct {
	Code        string
	State       string
	StateCookie string
}

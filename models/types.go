package models

// Response messages. Clients match on these strings.
const (
	MsgInvalidRequest     = "Invalid request"
	MsgInvalidOption      = "Invalid option"
	MsgAlreadyVoted       = "Already voted"
	MsgPollNotActive      = "Poll not active"
	MsgTotalLimitReached  = "Total vote limit reached"
	MsgOptionLimitReached = "Option limit reached"
	MsgUnauthorized       = "Unauthorized"
	MsgPollStillActive    = "Poll still active"
	MsgNoVoteFound        = "no vote found"
	MsgVoteNotRecorded    = "Vote not recorded"
	MsgStorageError       = "Storage error"
)

// Request types

type LoginRequest struct {
	Username string `json:"username"`
}

// Option is a pointer so a missing field can be told apart from option 0.
type VoteRequest struct {
	Username string `json:"username"`
	Option   *int   `json:"option"`
}

type AdminRequest struct {
	Key string `json:"key"`
}

// Response types

// Response is the envelope for login, vote and admin calls, and for errors.
type Response struct {
	Success bool   `json:"success"`
	Msg     string `json:"msg,omitempty"`
}

type StatusResponse struct {
	PollActive bool `json:"poll_active"`
}

type UserResult struct {
	Username string `json:"username"`
	Voted    string `json:"voted"`
}

type MyVoteResponse struct {
	Success bool   `json:"success"`
	Voted   string `json:"voted"`
}

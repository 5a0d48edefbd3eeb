package domain

// PostGoal represents the intended outcome of a generated post.
type PostGoal string

// Possible post goal values, mirroring the choices offered to users.
const (
	PostGoalPromoteProduct     PostGoal = "Promote a new product"
	PostGoalShareContent       PostGoal = "Share valuable content"
	PostGoalIncreaseEngagement PostGoal = "Increase engagement"
	PostGoalOther              PostGoal = "Other"
)

// PostTone represents the desired voice of a generated post.
type PostTone string

// Possible post tone values.
const (
	PostToneInformative   PostTone = "Informative"
	PostToneHumorous      PostTone = "Humorous"
	PostToneInspirational PostTone = "Inspirational"
	PostToneUpbeat        PostTone = "Upbeat"
	PostToneCasual        PostTone = "Casual"
)

// PostRequest describes a single post-generation request. Every field is
// supplied by the caller for one request and discarded once the response
// has been produced; nothing here is ever persisted.
type PostRequest struct {
	// BusinessType is the kind of business the post is for,
	// e.g. "fitness coach" or "fashion retailer". Required.
	BusinessType string `json:"business_type"`

	// TargetAudience describes who the post should reach. Required.
	TargetAudience string `json:"target_audience"`

	// PostGoal is the intended outcome of the post.
	PostGoal PostGoal `json:"post_goal"`

	// PostTone is the desired voice of the post.
	PostTone PostTone `json:"post_tone"`

	// Include lists elements the post should contain (images, links, ...).
	Include string `json:"include"`

	// Avoid lists elements the post must not contain.
	Avoid string `json:"avoid"`
}

// Validate checks if the PostRequest has valid data.
// Returns an error if any field fails validation.
func (r *PostRequest) Validate() error {
	if r.BusinessType == "" {
		return ErrEmptyBusinessType
	}

	if r.TargetAudience == "" {
		return ErrEmptyTargetAudience
	}

	if !isValidPostGoal(r.PostGoal) {
		return ErrInvalidPostGoal
	}

	if !isValidPostTone(r.PostTone) {
		return ErrInvalidPostTone
	}

	return nil
}

// isValidPostGoal checks if the given goal is a valid PostGoal.
func isValidPostGoal(goal PostGoal) bool {
	switch goal {
	case PostGoalPromoteProduct, PostGoalShareContent,
		PostGoalIncreaseEngagement, PostGoalOther:
		return true
	default:
		return false
	}
}

// isValidPostTone checks if the given tone is a valid PostTone.
func isValidPostTone(tone PostTone) bool {
	switch tone {
	case PostToneInformative, PostToneHumorous, PostToneInspirational,
		PostToneUpbeat, PostToneCasual:
		return true
	default:
		return false
	}
}

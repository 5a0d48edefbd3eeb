package api

// Common request/response structures

// GeneratePostRequest defines the payload for the post generation endpoint.
// The field set mirrors the input form: two required free-text fields, two
// enumerated choices, and two optional free-text fields.
type GeneratePostRequest struct {
	BusinessType   string `json:"business_type"   validate:"required,min=1"`
	TargetAudience string `json:"target_audience" validate:"required,min=1"`
	PostGoal       string `json:"post_goal"       validate:"required,oneof='Promote a new product' 'Share valuable content' 'Increase engagement' 'Other'"`
	PostTone       string `json:"post_tone"       validate:"required,oneof=Informative Humorous Inspirational Upbeat Casual"`
	Include        string `json:"include"`
	Avoid          string `json:"avoid"`
}

// GeneratePostResponse defines the successful response for the post
// generation endpoint. The generated text is the entire result; no metadata
// about the generation is retained or returned.
type GeneratePostResponse struct {
	Post string `json:"post"`
}

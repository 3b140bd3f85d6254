package primary

import "context"

// EnquiryService defines the primary port for enquiry operations.
type EnquiryService interface {
	// Submit creates a new enquiry by an applicant about a project.
	Submit(ctx context.Context, req SubmitEnquiryRequest) (*SubmitEnquiryResponse, error)

	// Edit updates the content of the applicant's own unreplied enquiry.
	Edit(ctx context.Context, req EditEnquiryRequest) error

	// Delete removes the applicant's own unreplied enquiry.
	Delete(ctx context.Context, req DeleteEnquiryRequest) error

	// Reply records a reply by a handling officer or the managing
	// authority. Replies are append-once: a replied enquiry is frozen.
	Reply(ctx context.Context, req ReplyEnquiryRequest) error

	// ListByApplicant lists an applicant's enquiries.
	ListByApplicant(ctx context.Context, nric string) ([]*Enquiry, error)

	// ListByProject lists a project's enquiries.
	ListByProject(ctx context.Context, projectID string) ([]*Enquiry, error)
}

// SubmitEnquiryRequest contains parameters for submitting an enquiry.
type SubmitEnquiryRequest struct {
	ApplicantNRIC string
	ProjectID     string
	Content       string
}

// SubmitEnquiryResponse contains the result of submitting an enquiry.
type SubmitEnquiryResponse struct {
	EnquiryID string
	Enquiry   *Enquiry
}

// EditEnquiryRequest contains parameters for editing an enquiry.
type EditEnquiryRequest struct {
	EnquiryID     string
	ApplicantNRIC string
	Content       string
}

// DeleteEnquiryRequest contains parameters for deleting an enquiry.
type DeleteEnquiryRequest struct {
	EnquiryID     string
	ApplicantNRIC string
}

// ReplyEnquiryRequest contains parameters for replying to an enquiry.
type ReplyEnquiryRequest struct {
	EnquiryID     string
	ResponderNRIC string
	Reply         string
}

// Enquiry represents an enquiry at the port boundary.
type Enquiry struct {
	ID            string
	ApplicantNRIC string
	ProjectID     string
	Content       string
	Reply         string
	RepliedBy     string
	CreatedAt     string
}

package domain

var (
	MessageSuccessGetTags   = "success get tags"
	MessageSuccessGetTag    = "success get tag"
	MessageSuccessUpdateTag = "tag updated successfully"

	MessageFailedGetTags   = "failed to get tags"
	MessageFailedGetTag    = "failed to get tag"
	MessageFailedUpdateTag = "failed to update tag"
	MessageFailedDeleteTag = "failed to delete tag"

	ErrTagNotFound     = NewNotFoundError("tag not found")
	ErrTagNameRequired = NewValidationError("name: this field may not be blank")
	ErrTagNameTaken    = NewValidationError("tag with this name already exists")
)

type (
	TagRequest struct {
		Name string `json:"name" validate:"required,max=255"`
	}

	UpdateTagRequest struct {
		Name *string `json:"name" validate:"omitempty,max=255"`
	}

	TagResponse struct {
		ID   uint   `json:"id"`
		Name string `json:"name"`
	}
)

package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

type AddCommentRequest struct {
	Nickname string `json:"nickname"`
	Content  string `json:"content"`
}

func (req *AddCommentRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Nickname, validation.Required, validation.Length(2, 30)),
		validation.Field(&req.Content, validation.Required, validation.Length(1, 1000)),
	)
}

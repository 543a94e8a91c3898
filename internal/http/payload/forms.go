package payload

import (
	"net/url"
	"pinboard/internal/core"

	"github.com/jellydator/validation"
)

// Form is a page form that knows how to populate itself from posted values.
type Form interface {
	Fill(values url.Values)
}

type SignupForm struct {
	Username string
	Password string
}

func (f *SignupForm) Fill(values url.Values) {
	f.Username = values.Get("username")
	f.Password = values.Get("password")
}

func (f SignupForm) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.Username, validation.Required),
		validation.Field(&f.Password, validation.Required),
	)
}

func (f SignupForm) ToCredentials() core.Credentials {
	return core.Credentials{
		Username: f.Username,
		Password: f.Password,
	}
}

type LoginForm struct {
	Username string
	Password string
}

func (f *LoginForm) Fill(values url.Values) {
	f.Username = values.Get("username")
	f.Password = values.Get("password")
}

func (f LoginForm) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.Username, validation.Required),
		validation.Field(&f.Password, validation.Required),
	)
}

func (f LoginForm) ToCredentials() core.Credentials {
	return core.Credentials{
		Username: f.Username,
		Password: f.Password,
	}
}

// MessageForm carries a new post. Both fields are free text and may be
// empty, so there are no validation rules.
type MessageForm struct {
	UserName string
	Contents string
}

func (f *MessageForm) Fill(values url.Values) {
	f.UserName = values.Get("user_name")
	f.Contents = values.Get("contents")
}

type UpdateForm struct {
	Contents string
}

func (f *UpdateForm) Fill(values url.Values) {
	f.Contents = values.Get("contents")
}

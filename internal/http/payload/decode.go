package payload

import (
	"fmt"
	"net/http"

	"github.com/jellydator/validation"
)

type Decoder struct{}

// DecodeForm parses the request body as a urlencoded form, fills the given
// form and validates it when it has rules.
func (d Decoder) DecodeForm(r *http.Request, form Form) error {
	if err := r.ParseForm(); err != nil {
		return fmt.Errorf("parsing form: %w", err)
	}

	form.Fill(r.PostForm)

	return d.validateForm(form)
}

func (d Decoder) validateForm(form Form) error {
	v, ok := form.(validation.Validatable)
	if !ok {
		// nothing to validate
		return nil
	}

	if err := v.Validate(); err != nil {
		return fmt.Errorf("validating form: %w", err)
	}

	return nil
}

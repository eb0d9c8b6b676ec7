package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// BulkUpdateRequest is the admin settings form: settings[key]=value.
// Keys that do not exist are ignored.
type BulkUpdateRequest struct {
	Settings map[string]string `json:"settings" form:"settings"`
}

func (r BulkUpdateRequest) Validate() error {
	if err := validation.ValidateStruct(&r,
		validation.Field(&r.Settings, validation.Required.Error("The settings field is required.")),
	); err != nil {
		return err
	}

	errs := validation.Errors{}
	for key, value := range r.Settings {
		if err := validation.Validate(value, validation.Required.Error("This setting is required.")); err != nil {
			errs["settings."+key] = err
		}
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

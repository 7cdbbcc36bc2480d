package adaptor

import (
	"mime/multipart"
	"net/http"
	"strings"

	"dorm-rental/internal/dto/request"
	"dorm-rental/pkg/domain"
	"dorm-rental/pkg/utils"
)

// formValues returns every value posted under name or name[].
func formValues(form *multipart.Form, name string) []string {
	if form == nil {
		return nil
	}
	return append(append([]string{}, form.Value[name]...), form.Value[name+"[]"]...)
}

func formFiles(form *multipart.Form, name string) []*multipart.FileHeader {
	if form == nil {
		return nil
	}
	return append(append([]*multipart.FileHeader{}, form.File[name]...), form.File[name+"[]"]...)
}

func formFile(form *multipart.Form, name string) *multipart.FileHeader {
	if files := formFiles(form, name); len(files) > 0 {
		return files[0]
	}
	return nil
}

// parseMultipart parses a multipart body, or a urlencoded one for clients
// that send no files.
func parseMultipart(r *http.Request, maxMemory int64) error {
	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/") {
		return r.ParseMultipartForm(maxMemory)
	}
	if err := r.ParseForm(); err != nil {
		return err
	}
	r.MultipartForm = &multipart.Form{Value: r.PostForm}
	return nil
}

// parsePropertyForm reads the property wizard submission. Field level
// problems come back as a map for a 422.
func parsePropertyForm(r *http.Request, maxMemory int64) (*request.PropertyRequest, map[string]string, error) {
	if err := parseMultipart(r, maxMemory); err != nil {
		return nil, nil, err
	}
	form := r.MultipartForm
	first := func(name string) string {
		if v := formValues(form, name); len(v) > 0 {
			return strings.TrimSpace(v[0])
		}
		return ""
	}

	fields := map[string]string{}
	req := &request.PropertyRequest{
		Name:         first("name"),
		Description:  first("description"),
		PropertyType: first("property_type"),
		Address:      first("address"),
		City:         first("city"),
		IsEligible:   utils.ParseBool(first("is_eligible")),
		IsDraft:      utils.ParseBool(first("is_draft")),
		Images:       formFiles(form, "images"),
		Credentials:  formFiles(form, "credentials"),
	}

	var err error
	if req.Latitude, err = utils.ParseOptionalFloat(first("latitude")); err != nil {
		fields["latitude"] = "must be a number"
	}
	if req.Longitude, err = utils.ParseOptionalFloat(first("longitude")); err != nil {
		fields["longitude"] = "must be a number"
	}
	if req.Amenities, err = domain.ParseStringList(formValues(form, "amenities")...); err != nil {
		fields["amenities"] = "must be a JSON array of strings or a comma separated list"
	}
	if req.Rules, err = domain.ParseStringList(formValues(form, "rules")...); err != nil {
		fields["rules"] = "must be a JSON array of strings or a comma separated list"
	}
	if req.RemoveImages, err = domain.ParseStringList(formValues(form, "remove_images")...); err != nil {
		fields["remove_images"] = "must be a JSON array of strings or a comma separated list"
	}

	if len(fields) > 0 {
		return nil, fields, nil
	}
	return req, nil, nil
}

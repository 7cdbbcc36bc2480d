package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"dorm-rental/pkg/domain"
)

type PropertyService struct {
	c *Client
}

// PropertyForm is the accumulated wizard state. It is sent once as a
// multipart payload.
type PropertyForm struct {
	Name         string
	Description  string
	PropertyType domain.PropertyType
	Address      string
	City         string
	Latitude     *float64
	Longitude    *float64
	Amenities    []string
	Rules        []string
	IsEligible   bool
	IsDraft      bool
	Images       []File
	Credentials  []File
	RemoveImages []string

	// ExistingCredentials counts credential documents already stored, for
	// updates of an eligible property.
	ExistingCredentials int
}

func (f PropertyForm) Draft() domain.PropertyDraft {
	return domain.PropertyDraft{
		Name:         f.Name,
		Description:  f.Description,
		PropertyType: string(f.PropertyType),
		Address:      f.Address,
		City:         f.City,
		Latitude:     f.Latitude,
		Longitude:    f.Longitude,
		Amenities:    f.Amenities,
		Rules:        f.Rules,
		IsEligible:   f.IsEligible,
		Credentials:  f.ExistingCredentials + len(f.Credentials),
	}
}

// Validate runs the wizard steps that apply to this submission.
func (f PropertyForm) Validate() domain.FieldErrors {
	return f.Draft().Validate(f.IsDraft)
}

func (f PropertyForm) values() url.Values {
	v := url.Values{}
	set := func(key, value string) {
		if value != "" {
			v.Set(key, value)
		}
	}
	set("name", strings.TrimSpace(f.Name))
	set("description", f.Description)
	set("property_type", string(f.PropertyType))
	set("address", f.Address)
	set("city", f.City)
	if f.Latitude != nil {
		v.Set("latitude", strconv.FormatFloat(*f.Latitude, 'f', -1, 64))
	}
	if f.Longitude != nil {
		v.Set("longitude", strconv.FormatFloat(*f.Longitude, 'f', -1, 64))
	}
	set("amenities", jsonList(f.Amenities))
	set("rules", jsonList(f.Rules))
	set("remove_images", jsonList(f.RemoveImages))
	v.Set("is_eligible", strconv.FormatBool(f.IsEligible))
	v.Set("is_draft", strconv.FormatBool(f.IsDraft))
	return v
}

func (f PropertyForm) files() []File {
	files := make([]File, 0, len(f.Images)+len(f.Credentials))
	for _, img := range f.Images {
		img.Field = "images[]"
		files = append(files, img)
	}
	for _, cred := range f.Credentials {
		cred.Field = "credentials[]"
		files = append(files, cred)
	}
	return files
}

func jsonList(items []string) string {
	if len(items) == 0 {
		return ""
	}
	raw, _ := json.Marshal(items)
	return string(raw)
}

func (s *PropertyService) List(ctx context.Context, page PageQuery) Result[Page[Property]] {
	return get[Page[Property]](ctx, s.c, "/landlord/properties", page.values())
}

func (s *PropertyService) Get(ctx context.Context, id string) Result[PropertyDetail] {
	return get[PropertyDetail](ctx, s.c, pathID("/landlord/properties/%s", id), nil)
}

// Create submits the wizard. Nothing is uploaded unless every applicable
// step validates.
func (s *PropertyService) Create(ctx context.Context, f PropertyForm) Result[Property] {
	return s.submit(ctx, "/landlord/properties", "", f)
}

// Update posts the wizard with _method=PUT.
func (s *PropertyService) Update(ctx context.Context, id string, f PropertyForm) Result[Property] {
	return s.submit(ctx, pathID("/landlord/properties/%s", id), http.MethodPut, f)
}

func (s *PropertyService) submit(ctx context.Context, path, override string, f PropertyForm) Result[Property] {
	if errs := f.Validate(); len(errs) > 0 {
		return invalid[Property](joinFields(errs))
	}
	req, err := multipartRequest(path, override, f.values(), f.files())
	if err != nil {
		return fail[Property](KindUnknown, 0, err.Error())
	}
	return call[Property](ctx, s.c, req)
}

// Delete needs the landlord's password as confirmation.
func (s *PropertyService) Delete(ctx context.Context, id, password string) Result[struct{}] {
	if password == "" {
		return invalid[struct{}]("password: is required")
	}
	return callJSON[struct{}](ctx, s.c, http.MethodDelete, pathID("/landlord/properties/%s", id), map[string]string{"password": password})
}

type PublicFilter struct {
	PageQuery
	City   string
	Type   domain.PropertyType
	Search string
}

func (s *PropertyService) Public(ctx context.Context, filter PublicFilter) Result[Page[Property]] {
	v := filter.PageQuery.values()
	if filter.City != "" {
		v.Set("city", filter.City)
	}
	if filter.Type != "" {
		v.Set("type", string(filter.Type))
	}
	if filter.Search != "" {
		v.Set("search", filter.Search)
	}
	return get[Page[Property]](ctx, s.c, "/public/properties", v)
}

func (s *PropertyService) PublicDetail(ctx context.Context, id string) Result[PropertyDetail] {
	return get[PropertyDetail](ctx, s.c, pathID("/public/properties/%s", id), nil)
}

func (s *PropertyService) Rooms(ctx context.Context, propertyID string) Result[[]Room] {
	return get[[]Room](ctx, s.c, pathID("/landlord/properties/%s/rooms", propertyID), nil)
}

type RoomForm struct {
	RoomNumber   string
	RoomType     domain.RoomType
	PricingModel domain.PricingModel
	Capacity     int // 0 derives from the room type
	MonthlyRate  float64
	DailyRate    float64
	Status       domain.RoomStatus
}

// CreateRoom applies the property-type constraints of p before sending, so
// the request carries the resolved pricing model and capacity.
func (s *PropertyService) CreateRoom(ctx context.Context, p Property, r RoomForm) Result[Room] {
	if strings.TrimSpace(r.RoomNumber) == "" {
		return invalid[Room]("room_number: is required")
	}
	spec, err := domain.ResolveRoomSpec(p.PropertyType, domain.RoomSpec{
		RoomType:     r.RoomType,
		PricingModel: r.PricingModel,
		Capacity:     r.Capacity,
	})
	if err != nil {
		return invalid[Room](err.Error())
	}

	body := map[string]any{
		"property_id":   p.ID,
		"room_number":   strings.TrimSpace(r.RoomNumber),
		"room_type":     spec.RoomType,
		"pricing_model": spec.PricingModel,
		"capacity":      spec.Capacity,
		"monthly_rate":  r.MonthlyRate,
		"daily_rate":    r.DailyRate,
	}
	if r.Status != "" {
		body["status"] = r.Status
	}
	return callJSON[Room](ctx, s.c, http.MethodPost, "/landlord/rooms", body)
}

type RoomUpdate struct {
	RoomNumber   *string              `json:"room_number,omitempty"`
	RoomType     *domain.RoomType     `json:"room_type,omitempty"`
	PricingModel *domain.PricingModel `json:"pricing_model,omitempty"`
	Capacity     *int                 `json:"capacity,omitempty"`
	MonthlyRate  *float64             `json:"monthly_rate,omitempty"`
	DailyRate    *float64             `json:"daily_rate,omitempty"`
}

func (s *PropertyService) UpdateRoom(ctx context.Context, roomID string, u RoomUpdate) Result[Room] {
	return callJSON[Room](ctx, s.c, http.MethodPut, pathID("/rooms/%s", roomID), u)
}

func (s *PropertyService) UpdateRoomStatus(ctx context.Context, roomID string, status domain.RoomStatus) Result[Room] {
	if _, err := domain.ParseRoomStatus(string(status)); err != nil {
		return invalid[Room](err.Error())
	}
	return callJSON[Room](ctx, s.c, http.MethodPatch, pathID("/rooms/%s/status", roomID), map[string]any{"status": status})
}

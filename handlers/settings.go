package handlers

import (
	"context"
	"fmt"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

// Settings serves the placeholder entries of the settings section.
// None of them is implemented: activating one answers 501 with a notice.
type Settings struct{}

type SettingModel struct {
	Key      string `json:"key"      example:"help"`
	Label    string `json:"label"    example:"Help & Support"`
	Subtitle string `json:"subtitle" example:"Get support and documentation"`
}

//nolint: gochecknoglobals
var settings = []struct {
	SettingModel
	feature string
}{
	{SettingModel{"help", "Help & Support", "Get support and documentation"}, "Help"},
	{SettingModel{"advanced", "Advanced", "Developer options"}, "Advanced Configuration"},
	{SettingModel{"premium", "Premium Option", "Get Premium for 5EUR. 24/7 Service."}, "Premium"},
}

const (
	premiumTitle = "Premium Service"
	premiumText  = "By subscribing to our membership, you join a 24/7 service dedicated to monitoring " +
		"your signals and emergencies. We ensure your well-being by immediately contacting your " +
		"emergency numbers and collaborating with authorities whenever necessary."
)

func (h *Settings) RegisterList(api huma.API) { // called by [huma.AutoRegister]
	huma.Get(api, "/", h.list, opID("list-settings"))
}

type SettingsListOutput struct {
	Body []SettingModel
}

func (h *Settings) list(_ context.Context, _ *struct{}) (*SettingsListOutput, error) {
	body := make([]SettingModel, 0, len(settings))
	for _, s := range settings {
		body = append(body, s.SettingModel)
	}
	return &SettingsListOutput{Body: body}, nil
}

func (h *Settings) RegisterActivate(api huma.API) { // called by [huma.AutoRegister]
	huma.Post(api, "/{key}",
		h.activate,
		opID("activate-setting"),
		opErrors(http.StatusNotImplemented),
	)
}

func (h *Settings) activate(_ context.Context, input *struct {
	Key string `path:"key" enum:"help,advanced,premium" doc:"key of the setting entry"`
}) (*struct{}, error) {
	for _, s := range settings {
		if s.Key == input.Key {
			return nil, huma.Error501NotImplemented(fmt.Sprintf(noticeNotImplemented, s.feature))
		}
	}
	return nil, huma.Error404NotFound("setting not found")
}

func (h *Settings) RegisterPremium(api huma.API) { // called by [huma.AutoRegister]
	huma.Get(api, "/premium/info", h.premium, opID("get-premium-info"))
}

type PremiumOutput struct {
	Body struct {
		Title string `json:"title" example:"Premium Service"`
		Text  string `json:"text"`
	}
}

func (h *Settings) premium(_ context.Context, _ *struct{}) (*PremiumOutput, error) {
	out := &PremiumOutput{}
	out.Body.Title, out.Body.Text = premiumTitle, premiumText
	return out, nil
}

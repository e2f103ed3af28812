package campaigns

import (
	"encoding/json"
	"testing"
)

func TestSettings_UnmarshalCanonicalKey(t *testing.T) {
	var s Settings
	if err := json.Unmarshal([]byte(`{"campaignType":"inbound"}`), &s); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if s.Type() != CampaignTypeInbound {
		t.Fatalf("expected inbound, got %q", s.Type())
	}
}

func TestSettings_UnmarshalLegacyKey(t *testing.T) {
	var s Settings
	if err := json.Unmarshal([]byte(`{"campaign_type":"inbound"}`), &s); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if s.Type() != CampaignTypeInbound {
		t.Fatalf("expected inbound, got %q", s.Type())
	}
}

func TestSettings_CanonicalKeyWins(t *testing.T) {
	var s Settings
	raw := `{"campaignType":"outbound","campaign_type":"inbound"}`
	if err := json.Unmarshal([]byte(raw), &s); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if s.Type() != CampaignTypeOutbound {
		t.Fatalf("canonical key should win, got %q", s.Type())
	}
}

func TestSettings_MissingTypeDefaultsOutbound(t *testing.T) {
	var s Settings
	if err := json.Unmarshal([]byte(`{}`), &s); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if s.Type() != CampaignTypeOutbound {
		t.Fatalf("expected outbound default, got %q", s.Type())
	}
}

func TestSettings_MarshalEmitsCanonicalSnakeCase(t *testing.T) {
	b, err := json.Marshal(Settings{CampaignType: CampaignTypeInbound})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if string(b) != `{"campaign_type":"inbound"}` {
		t.Fatalf("unexpected json: %s", b)
	}
}

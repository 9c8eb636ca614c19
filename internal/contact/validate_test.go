package contact

import "testing"

func TestValidate_RequiredFields(t *testing.T) {
	cases := []struct {
		name    string
		payload Payload
		field   string // "" means valid
	}{
		{"all present", Payload{Name: "Jane", Email: "jane@x.com", Message: "Hi"}, ""},
		{"missing name", Payload{Email: "jane@x.com", Message: "Hi"}, "name"},
		{"whitespace name", Payload{Name: "   ", Email: "jane@x.com", Message: "Hi"}, "name"},
		{"missing email", Payload{Name: "Jane", Message: "Hi"}, "email"},
		{"bad email", Payload{Name: "Jane", Email: "not-an-email", Message: "Hi"}, "email"},
		{"email without tld", Payload{Name: "Jane", Email: "jane@host", Message: "Hi"}, "email"},
		{"email with space", Payload{Name: "Jane", Email: "ja ne@x.com", Message: "Hi"}, "email"},
		{"missing message", Payload{Name: "Jane", Email: "jane@x.com"}, "message"},
		{"bad website", Payload{Name: "Jane", Email: "jane@x.com", Message: "Hi", Website: "not a url"}, "website"},
		{"ftp website", Payload{Name: "Jane", Email: "jane@x.com", Message: "Hi", Website: "ftp://x.com"}, "website"},
		{"good website", Payload{Name: "Jane", Email: "jane@x.com", Message: "Hi", Website: "https://x.com"}, ""},
	}

	for _, tc := range cases {
		err := Validate(tc.payload, true)
		if tc.field == "" {
			if err != nil {
				t.Errorf("%s: expected valid, got %v", tc.name, err)
			}
			continue
		}
		if err == nil {
			t.Errorf("%s: expected error on field %q, got none", tc.name, tc.field)
			continue
		}
		if err.Field != tc.field {
			t.Errorf("%s: expected field %q, got %q", tc.name, tc.field, err.Field)
		}
	}
}

func TestValidate_MessageOptional(t *testing.T) {
	p := Payload{Name: "Jane", Email: "jane@x.com"}
	if err := Validate(p, false); err != nil {
		t.Errorf("message should be optional when not required: %v", err)
	}
}

func TestValidEmail(t *testing.T) {
	valid := []string{"a@b.co", "jane.doe+tag@sub.example.com", "x_y@host.io"}
	invalid := []string{"", "plain", "@x.com", "a@", "a@b", "a b@c.de", "a@b c.de"}
	for _, e := range valid {
		if !ValidEmail(e) {
			t.Errorf("expected %q valid", e)
		}
	}
	for _, e := range invalid {
		if ValidEmail(e) {
			t.Errorf("expected %q invalid", e)
		}
	}
}

func TestValidWebsite(t *testing.T) {
	if !ValidWebsite("http://example.com") || !ValidWebsite("https://example.com/path?q=1") {
		t.Error("expected http(s) URLs to be valid")
	}
	for _, u := range []string{"example.com", "javascript:alert(1)", "//x.com", ""} {
		if ValidWebsite(u) {
			t.Errorf("expected %q invalid", u)
		}
	}
}

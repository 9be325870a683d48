package notify

import (
	"strings"
	"testing"
)

func TestShareEmailBodyContainsOwnerAndLink(t *testing.T) {
	body := ShareEmailBody("Jean Doe", "https://storage.example/u1/a.txt?sig=abc")

	if !strings.Contains(body, "Jean Doe") {
		t.Fatalf("body missing owner name:\n%s", body)
	}
	if !strings.Contains(body, "https://storage.example/u1/a.txt?sig=abc") {
		t.Fatalf("body missing presigned link:\n%s", body)
	}
	if !strings.Contains(body, "valid for one hour") {
		t.Fatalf("body missing validity wording:\n%s", body)
	}
}

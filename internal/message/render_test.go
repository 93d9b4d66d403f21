package message

import (
	"strings"
	"testing"

	"alimtalk/internal/config"
)

func TestFormatHours(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{2.5, "2시간 30분"},
		{3.0, "3시간"},
		{0, "0시간"},
		{1.25, "1시간 15분"},
		{0.5, "0시간 30분"},
		{1.999, "2시간"}, // rounds to 60 minutes, carries into the hour
	}
	for _, tc := range cases {
		if got := FormatHours(tc.in); got != tc.want {
			t.Fatalf("FormatHours(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFormatNumber(t *testing.T) {
	if got := FormatNumber(12345); got != "12,345" {
		t.Fatalf("unexpected number format: %q", got)
	}
	if got := FormatNumber(7500); got != "7,500" {
		t.Fatalf("unexpected number format: %q", got)
	}
	if got := FormatNumber(0); got != "0" {
		t.Fatalf("unexpected number format: %q", got)
	}
}

func TestRenderDefaultTemplate(t *testing.T) {
	out := Render(config.DefaultMessageTemplate, "리니지 학교", "홍길동", 1.5, 10.0, 5.0)

	for _, token := range []string{TokenBusiness, TokenCustomer, TokenPlayTime, TokenCumulative, TokenRemaining} {
		if strings.Contains(out, token) {
			t.Fatalf("literal token %s left in output:\n%s", token, out)
		}
	}
	for _, want := range []string{"리니지 학교", "홍길동", "1시간 30분", "10시간", "5시간"} {
		if strings.Count(out, want) < 1 {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
}

func TestRenderSubstitutesEachTokenOnce(t *testing.T) {
	tpl := "{업체명}|{고객명}|{플레이시간}|{누적시간}|{남은시간}"
	out := Render(tpl, "shop", "kim", 1, 2, 3)
	if out != "shop|kim|1시간|2시간|3시간" {
		t.Fatalf("unexpected render: %q", out)
	}
}

func TestRenderIsOrderDependent(t *testing.T) {
	// A customer name containing a later token gets expanded too: this
	// substitution-order behavior is the documented contract.
	out := Render("{고객명}", "shop", "ghost {남은시간}", 0, 0, 2)
	if out != "ghost 2시간" {
		t.Fatalf("unexpected render: %q", out)
	}
}

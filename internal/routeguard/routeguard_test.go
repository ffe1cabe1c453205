package routeguard

import "testing"

func TestDecide_Table(t *testing.T) {
	cases := []struct {
		auth bool
		path string
		want Decision
	}{
		{false, "/", Decision{Allow: true}},
		{false, "/login", Decision{Allow: true}},
		{false, "/register", Decision{Allow: true}},
		{false, "/elderly-persons", Decision{Redirect: "/login"}},
		{false, "/events/12", Decision{Redirect: "/login"}},

		{true, "/", Decision{Allow: true}},
		{true, "/login", Decision{Redirect: "/"}},
		{true, "/register", Decision{Redirect: "/"}},
		{true, "/elderly-persons", Decision{Allow: true}},
		{true, "/alerts", Decision{Allow: true}},
	}

	for _, tc := range cases {
		if got := Decide(tc.auth, tc.path); got != tc.want {
			t.Fatalf("Decide(%v, %q) = %+v, want %+v", tc.auth, tc.path, got, tc.want)
		}
	}
}

func TestDecide_NormalizesPath(t *testing.T) {
	if got := Decide(true, "/login/"); got.Redirect != "/" {
		t.Fatalf("trailing slash on /login should still be an auth page, got %+v", got)
	}
	if got := Decide(false, "/register?next=/events"); !got.Allow {
		t.Fatalf("query string should be ignored, got %+v", got)
	}
	if got := Decide(false, ""); !got.Allow {
		t.Fatalf("empty path is root, got %+v", got)
	}
	if got := Decide(false, "/events/../login"); !got.Allow {
		t.Fatalf("cleaned path is /login, got %+v", got)
	}
}

func TestDecide_RedirectIsNeverSelf(t *testing.T) {
	for _, auth := range []bool{true, false} {
		for _, p := range []string{"/", "/login", "/register", "/devices", "/x/y"} {
			d := Decide(auth, p)
			if d.Allow == (d.Redirect != "") {
				t.Fatalf("Decide(%v,%q) must either allow or redirect: %+v", auth, p, d)
			}
			if !d.Allow && d.Redirect == Normalize(p) {
				t.Fatalf("Decide(%v,%q) redirects to itself", auth, p)
			}
		}
	}
}

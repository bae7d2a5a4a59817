package middleware

import (
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/valyala/fasthttp"

	"github.com/semexe/backend/domain"
	"github.com/semexe/backend/internal/auth"
)

var testSecret = []byte("test-secret")

func protectedHandler(called *bool, identity *domain.Identity) fasthttp.RequestHandler {
	return func(ctx *fasthttp.RequestCtx) {
		*called = true
		if id, ok := IdentityFromRequest(ctx); ok {
			*identity = id
		}
		ctx.SetStatusCode(http.StatusOK)
	}
}

func runGate(t *testing.T, authorization string) (*fasthttp.RequestCtx, bool, domain.Identity) {
	t.Helper()

	var (
		called   bool
		identity domain.Identity
	)
	gate := JWTAuth(testSecret, nil)(protectedHandler(&called, &identity))

	ctx := &fasthttp.RequestCtx{}
	if authorization != "" {
		ctx.Request.Header.Set("Authorization", authorization)
	}
	gate(ctx)
	return ctx, called, identity
}

func TestJWTAuth_MissingHeader(t *testing.T) {
	ctx, called, _ := runGate(t, "")
	if called {
		t.Fatal("handler must not run without credentials")
	}
	if ctx.Response.StatusCode() != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", ctx.Response.StatusCode())
	}
	if !strings.Contains(string(ctx.Response.Body()), "authentication required") {
		t.Fatalf("unexpected body: %s", ctx.Response.Body())
	}
}

func TestJWTAuth_MalformedHeader(t *testing.T) {
	for _, header := range []string{"Bearer", "Bearer a b", "just-a-token"} {
		ctx, called, _ := runGate(t, header)
		if called {
			t.Fatalf("handler must not run for header %q", header)
		}
		if ctx.Response.StatusCode() != http.StatusUnauthorized {
			t.Fatalf("status = %d for header %q, want 401", ctx.Response.StatusCode(), header)
		}
	}
}

func TestJWTAuth_WrongScheme(t *testing.T) {
	tok, err := auth.IssueToken(7, "a@x.com", testSecret, time.Hour)
	if err != nil {
		t.Fatalf("IssueToken error: %v", err)
	}

	ctx, called, _ := runGate(t, "Basic "+tok)
	if called {
		t.Fatal("handler must not run with a non-Bearer scheme")
	}
	if ctx.Response.StatusCode() != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", ctx.Response.StatusCode())
	}
}

func TestJWTAuth_ExpiredToken_DistinctMessage(t *testing.T) {
	tok, err := auth.IssueToken(7, "a@x.com", testSecret, -1*time.Second)
	if err != nil {
		t.Fatalf("IssueToken error: %v", err)
	}

	ctx, called, _ := runGate(t, "Bearer "+tok)
	if called {
		t.Fatal("handler must not run with an expired token")
	}
	if ctx.Response.StatusCode() != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", ctx.Response.StatusCode())
	}
	if !strings.Contains(string(ctx.Response.Body()), "session expired") {
		t.Fatalf("expected the expiry-specific message, got: %s", ctx.Response.Body())
	}
}

func TestJWTAuth_InvalidToken(t *testing.T) {
	ctx, called, _ := runGate(t, "Bearer garbage.token.here")
	if called {
		t.Fatal("handler must not run with an invalid token")
	}
	if !strings.Contains(string(ctx.Response.Body()), "invalid token") {
		t.Fatalf("expected the generic invalid message, got: %s", ctx.Response.Body())
	}
}

func TestJWTAuth_Success_InjectsIdentity(t *testing.T) {
	tok, err := auth.IssueToken(42, "ana@x.com", testSecret, time.Hour)
	if err != nil {
		t.Fatalf("IssueToken error: %v", err)
	}

	ctx, called, identity := runGate(t, "Bearer "+tok)
	if !called {
		t.Fatal("handler should run for a valid token")
	}
	if ctx.Response.StatusCode() != http.StatusOK {
		t.Fatalf("status = %d, want 200", ctx.Response.StatusCode())
	}
	if identity.UserID != 42 || identity.Email != "ana@x.com" {
		t.Fatalf("unexpected identity: %+v", identity)
	}
}

func TestJWTAuth_SchemeIsCaseInsensitive(t *testing.T) {
	tok, err := auth.IssueToken(9, "b@x.com", testSecret, time.Hour)
	if err != nil {
		t.Fatalf("IssueToken error: %v", err)
	}

	_, called, identity := runGate(t, "bearer "+tok)
	if !called {
		t.Fatal("lowercase scheme should be accepted")
	}
	if identity.UserID != 9 {
		t.Fatalf("unexpected identity: %+v", identity)
	}
}
